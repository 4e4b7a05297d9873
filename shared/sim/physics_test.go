package sim

import (
	"math/rand"
	"testing"

	"github.com/automoto/pawprint/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// far keeps the door closed so stepping on it never triggers a load.
var far = leveldata.CollectibleSpawn{X: 0, Y: 0}

func single(p leveldata.Platform) leveldata.Level {
	return leveldata.Level{
		Name:         "single",
		Platforms:    []leveldata.Platform{p},
		Collectibles: []leveldata.CollectibleSpawn{far},
	}
}

func TestRestingPlayerStaysOnEveryPlatform(t *testing.T) {
	for _, level := range leveldata.Builtin(800, 600) {
		for _, p := range level.Platforms {
			s := newTestState(t, single(p))
			x := p.X + p.W/2 - s.Player.W/2
			restOn(s, p, x)
			wantY := s.Player.Y

			for i := 0; i < 10; i++ {
				Step(s, Input{})
			}

			assert.Equal(t, wantY, s.Player.Y, "%s platform %+v", level.Name, p.Rect)
			assert.Equal(t, x, s.Player.X)
			assert.Zero(t, s.Player.VY)
			assert.True(t, s.Player.Grounded)
		}
	}
}

func TestGravityWithoutSupport(t *testing.T) {
	s := newTestState(t, single(plat(0, 580, 800, 20)))
	restOn(s, s.Platforms[0], 100)
	s.Player.Y = 100
	s.Platforms = nil

	Step(s, Input{})

	assert.Equal(t, 0.5, s.Player.VY)
	assert.Equal(t, 100.5, s.Player.Y)
	assert.False(t, s.Player.Grounded)
}

func TestWalkingAlongGroundDoesNotSnag(t *testing.T) {
	ground := plat(0, 580, 800, 20)
	s := newTestState(t, single(ground))
	restOn(s, ground, 100)

	for i := 0; i < 20; i++ {
		Step(s, Input{Right: true})
	}

	assert.Equal(t, 200.0, s.Player.X)
	assert.Equal(t, 550.0, s.Player.Y)
	assert.True(t, s.Player.Grounded)
}

func TestSideCollision(t *testing.T) {
	wall := plat(300, 400, 50, 200)

	tests := []struct {
		name  string
		x     float64
		input Input
		wantX float64
	}{
		{"moving right stops at left face", 268, Input{Right: true}, 270},
		{"moving left stops at right face", 352, Input{Left: true}, 350},
		{"no intent leaves overlap alone", 310, Input{}, 310},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, single(wall))
			airborne(s, tt.x, 450, 0)

			Step(s, tt.input)

			assert.Equal(t, tt.wantX, s.Player.X)
			assert.Zero(t, s.Player.VX)
		})
	}
}

func TestSideCollisionChecksEveryPlatform(t *testing.T) {
	s := newTestState(t, leveldata.Level{
		Name: "double wall",
		Platforms: []leveldata.Platform{
			plat(300, 400, 50, 200),
			plat(200, 400, 100, 200),
		},
		Collectibles: []leveldata.CollectibleSpawn{far},
	})
	airborne(s, 270, 450, 0)

	Step(s, Input{Right: true})

	// The first wall stops the player; the second only sees vx already zeroed.
	assert.Equal(t, 270.0, s.Player.X)
	assert.Zero(t, s.Player.VX)
}

func TestSideToleranceIgnoresShallowOverlap(t *testing.T) {
	ledge := plat(300, 500, 100, 20)
	s := newTestState(t, single(ledge))
	// Bottom 3px into the ledge's top: under the tolerance band.
	airborne(s, 268, 473, -0.5)

	Step(s, Input{Right: true})

	assert.Equal(t, 273.0, s.Player.X)
}

func TestFacing(t *testing.T) {
	s := builtinState(t)
	assert.Equal(t, FacingRight, s.Player.Facing)

	Step(s, Input{Left: true})
	assert.Equal(t, FacingLeft, s.Player.Facing)
	assert.Equal(t, -5.0, s.Player.VX)

	Step(s, Input{})
	assert.Equal(t, FacingLeft, s.Player.Facing, "no intent keeps the last facing")
	assert.Zero(t, s.Player.VX)

	Step(s, Input{Left: true, Right: true})
	assert.Equal(t, FacingRight, s.Player.Facing, "right wins when both are held")
	assert.Equal(t, 5.0, s.Player.VX)
}

func TestLandingInsetRejectsEdgeContact(t *testing.T) {
	ledge := plat(300, 500, 100, 20)

	tests := []struct {
		name     string
		x        float64
		wantLand bool
	}{
		{"two pixels of overlap falls past", 272, false},
		{"five pixels of overlap lands", 275, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, single(ledge))
			airborne(s, tt.x, 470, 0)

			Step(s, Input{})

			assert.Equal(t, tt.wantLand, s.Player.Grounded)
			if tt.wantLand {
				assert.Equal(t, 470.0, s.Player.Y)
				assert.Zero(t, s.Player.VY)
			} else {
				assert.Equal(t, 470.5, s.Player.Y)
			}
		})
	}
}

func TestLandingTolerance(t *testing.T) {
	slab := plat(300, 500, 100, 40)

	t.Run("slow body deep inside does not snap", func(t *testing.T) {
		s := newTestState(t, single(slab))
		airborne(s, 320, 485, 0)

		Step(s, Input{})

		assert.False(t, s.Player.Grounded)
		assert.Equal(t, 485.5, s.Player.Y)
	})

	t.Run("fast fall snaps from inside", func(t *testing.T) {
		s := newTestState(t, single(slab))
		airborne(s, 320, 485, 11)

		Step(s, Input{})

		assert.True(t, s.Player.Grounded)
		assert.Equal(t, 470.0, s.Player.Y)
		assert.Zero(t, s.Player.VY)
	})
}

func TestRisingPassesThroughPlatform(t *testing.T) {
	ceiling := plat(300, 400, 100, 20)
	s := newTestState(t, single(ceiling))
	airborne(s, 320, 420, -10)

	Step(s, Input{})

	assert.Equal(t, 410.5, s.Player.Y)
	assert.Equal(t, -9.5, s.Player.VY)
	assert.True(t, s.Player.PassingThrough)
	assert.False(t, s.Player.Grounded)
}

func TestJump(t *testing.T) {
	s := builtinState(t)
	ground := s.Platforms[0]
	restOn(s, ground, 100)

	require.True(t, Jump(s))
	assert.Equal(t, -12.0, s.Player.VY)
	assert.False(t, s.Player.Grounded)

	assert.False(t, Jump(s), "no double jump")
	assert.Equal(t, -12.0, s.Player.VY)

	Step(s, Input{Up: true})
	assert.Equal(t, -11.5, s.Player.VY)
	assert.Equal(t, 538.5, s.Player.Y)
}

func TestPlayerStaysInsideCanvas(t *testing.T) {
	s := builtinState(t)
	rng := rand.New(rand.NewSource(7))
	maxX := s.Config.Canvas.Width - s.Player.W

	for i := 0; i < 3000; i++ {
		in := Input{Left: rng.Intn(3) == 0, Right: rng.Intn(2) == 0}
		if rng.Intn(10) == 0 {
			Jump(s)
		}
		Step(s, in)

		require.GreaterOrEqual(t, s.Player.X, 0.0, "frame %d", i)
		require.LessOrEqual(t, s.Player.X, maxX, "frame %d", i)
	}
}
