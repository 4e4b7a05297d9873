package main

import (
	"time"

	"github.com/automoto/pawprint/shared/sim"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq float64
	dur  time.Duration
}

var eventTones = map[sim.EventKind][]tone{
	sim.EventCollected:     {{880, 60 * time.Millisecond}},
	sim.EventDoorOpened:    {{523, 90 * time.Millisecond}, {784, 140 * time.Millisecond}},
	sim.EventLevelLoaded:   {{440, 120 * time.Millisecond}},
	sim.EventGameCompleted: {{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {1046, 300 * time.Millisecond}},
	sim.EventRecovered:     {{180, 150 * time.Millisecond}},
}

// sounds plays short sine beeps through one mixer. A zero sounds is silent.
type sounds struct {
	mixer *beep.Mixer
}

func newSounds() (*sounds, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &sounds{}, err
	}
	s := &sounds{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *sounds) play(kind sim.EventKind) {
	if s.mixer == nil {
		return
	}
	tones, ok := eventTones[kind]
	if !ok {
		return
	}

	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(t.dur), sine))
	}
	quiet := &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -2}

	speaker.Lock()
	s.mixer.Add(quiet)
	speaker.Unlock()
}

func (s *sounds) close() {
	if s.mixer != nil {
		speaker.Close()
	}
}
