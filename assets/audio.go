package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/pawprint/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache of rendered PCM per effect
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	tones, ok := cfg.Sound.SFXTones[id]
	if !ok || len(tones) == 0 {
		return fmt.Errorf("no tones for sound %d", id)
	}

	l.sfxCache[id] = synthesize(tones, l.context.SampleRate(), cfg.Audio.FadeMs)
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// synthesize renders the notes back to back as 16-bit little-endian stereo,
// the format audio.Context players expect. Each note ramps in and out over
// fadeMs to avoid clicks.
func synthesize(tones []cfg.Tone, sampleRate, fadeMs int) []byte {
	var buf bytes.Buffer
	fade := sampleRate * fadeMs / 1000

	for _, t := range tones {
		n := sampleRate * t.Ms / 1000
		for i := 0; i < n; i++ {
			gain := 1.0
			if fade > 0 {
				gain = math.Min(1, float64(min(i, n-1-i))/float64(fade))
			}
			v := math.Sin(2*math.Pi*t.Freq*float64(i)/float64(sampleRate)) * gain
			sample := int16(v * math.MaxInt16 * 0.8)
			// left, right
			_ = binary.Write(&buf, binary.LittleEndian, sample)
			_ = binary.Write(&buf, binary.LittleEndian, sample)
		}
	}
	return buf.Bytes()
}
