package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundCollect
	SoundDoorOpen
	SoundLevel
	SoundComplete
	SoundRecover
)

// Tone is one sine note of a synthesized effect.
type Tone struct {
	Freq float64 // Hz
	Ms   int
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	FadeMs        int // attack and release ramp of every note
}

// SoundConfig maps sound IDs to the notes they are synthesized from
type SoundConfig struct {
	SFXTones          map[SoundID][]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
		FadeMs:        5,
	}

	Sound = SoundConfig{
		SFXTones: map[SoundID][]Tone{
			SoundJump:     {{Freq: 330, Ms: 40}, {Freq: 440, Ms: 40}},
			SoundCollect:  {{Freq: 880, Ms: 50}, {Freq: 1320, Ms: 70}},
			SoundDoorOpen: {{Freq: 523, Ms: 90}, {Freq: 784, Ms: 140}},
			SoundLevel:    {{Freq: 440, Ms: 120}, {Freq: 660, Ms: 120}},
			SoundComplete: {{Freq: 523, Ms: 120}, {Freq: 659, Ms: 120}, {Freq: 784, Ms: 120}, {Freq: 1046, Ms: 300}},
			SoundRecover:  {{Freq: 220, Ms: 90}, {Freq: 165, Ms: 140}},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundJump:    0.4,
			SoundRecover: 0.8,
		},
	}
}
