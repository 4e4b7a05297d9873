package systems

import (
	"sync"

	"github.com/automoto/pawprint/assets"
	"github.com/automoto/pawprint/components"
	cfg "github.com/automoto/pawprint/config"
	"github.com/automoto/pawprint/shared/sim"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

var eventSounds = map[sim.EventKind]cfg.SoundID{
	sim.EventCollected:     cfg.SoundCollect,
	sim.EventDoorOpened:    cfg.SoundDoorOpen,
	sim.EventLevelLoaded:   cfg.SoundLevel,
	sim.EventGameCompleted: cfg.SoundComplete,
	sim.EventRecovered:     cfg.SoundRecover,
}

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.SFXTones {
		_ = globalAudioLoader.PreloadSFX(id)
	}
}

// QueueSFX schedules an effect for the next UpdateAudio.
func QueueSFX(e *ecs.ECS, id cfg.SoundID) {
	audioData := getOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// UpdateAudio turns the frame's simulation events into effects and plays
// everything queued.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	for _, ev := range frameEvents(e) {
		if id, ok := eventSounds[ev.Kind]; ok {
			QueueSFX(e, id)
		}
	}

	audioData := getOrCreateAudio(e)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// SetMuted silences or restores sound effects.
func SetMuted(muted bool) {
	globalMuted = muted
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	if _, ok := components.Audio.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Audio))
	}

	ent, _ := components.Audio.First(e.World)
	return components.Audio.Get(ent)
}
