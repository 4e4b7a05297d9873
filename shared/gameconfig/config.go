// Package gameconfig defines every tunable the simulation reads. It must have
// zero dependencies on ebiten or any graphics library so the dedicated server
// and terminal binaries stay headless.
package gameconfig

// RecoveryPolicy names what happens when the player falls below the canvas.
type RecoveryPolicy string

const (
	// RecoveryRespawn teleports the player back to the level spawn point.
	RecoveryRespawn RecoveryPolicy = "respawn"
	// RecoverySnapToGround places the player on the nearest platform whose
	// top lies within Recovery.GroundWindow of the canvas bottom.
	RecoverySnapToGround RecoveryPolicy = "snap_to_ground"
)

// CanvasConfig bounds the world. Read-only for the simulation.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig contains the process-wide kinematic constants.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`      // added to vy every frame, never clamped
	JumpStrength float64 `yaml:"jumpStrength"` // negative is upward
	MoveSpeed    float64 `yaml:"moveSpeed"`
}

// PlayerConfig holds the default player box and spawn, used when a level
// does not override them.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawnX"`
	SpawnY float64 `yaml:"spawnY"`
}

// CollisionConfig contains the tolerance bands of the platform resolver.
type CollisionConfig struct {
	SideTolerance    float64 `yaml:"sideTolerance"`    // vertical intrusion needed before a side hit counts
	LandingInset     float64 `yaml:"landingInset"`     // horizontal buffer on each side when landing
	LandingTolerance float64 `yaml:"landingTolerance"` // how far below a platform top the previous bottom may be
	FastFallSpeed    float64 `yaml:"fastFallSpeed"`    // above this vy a landing may snap from inside
}

// CollectibleConfig contains the pickup box and its animation rates.
type CollectibleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	FloatAmplitude float64 `yaml:"floatAmplitude"`
	FloatSpeed     float64 `yaml:"floatSpeed"` // phase added per frame
	RiseSpeed      float64 `yaml:"riseSpeed"`  // pixels per frame once collected
	FadeStep       float64 `yaml:"fadeStep"`   // opacity removed per frame once collected
}

// DoorConfig is the size of the level exit.
type DoorConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RecoveryConfig selects the out-of-bounds policy.
type RecoveryConfig struct {
	Policy       RecoveryPolicy `yaml:"policy"`
	GroundWindow float64        `yaml:"groundWindow"`
}

// LoopConfig controls the frame drivers that own a ticker.
type LoopConfig struct {
	TickRate int `yaml:"tickRate"` // steps per second
}

// Config bundles every simulation tunable.
type Config struct {
	Canvas      CanvasConfig      `yaml:"canvas"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Collision   CollisionConfig   `yaml:"collision"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Door        DoorConfig        `yaml:"door"`
	Recovery    RecoveryConfig    `yaml:"recovery"`
	Loop        LoopConfig        `yaml:"loop"`
}

// Default returns the canonical tuning.
func Default() Config {
	canvas := CanvasConfig{Width: 800, Height: 600}

	return Config{
		Canvas: canvas,
		Physics: PhysicsConfig{
			Gravity:      0.5,
			JumpStrength: -12,
			MoveSpeed:    5,
		},
		Player: PlayerConfig{
			Width:  30,
			Height: 30,
			SpawnX: 50,
			SpawnY: canvas.Height - 100,
		},
		Collision: CollisionConfig{
			SideTolerance:    5,
			LandingInset:     2,
			LandingTolerance: 10,
			FastFallSpeed:    10,
		},
		Collectible: CollectibleConfig{
			Width:          20,
			Height:         20,
			FloatAmplitude: 5,
			FloatSpeed:     0.05,
			RiseSpeed:      1,
			FadeStep:       0.05,
		},
		Door: DoorConfig{
			Width:  40,
			Height: 60,
		},
		Recovery: RecoveryConfig{
			Policy:       RecoveryRespawn,
			GroundWindow: 30,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
	}
}
