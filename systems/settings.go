package systems

import (
	"github.com/automoto/pawprint/components"
	cfg "github.com/automoto/pawprint/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the fullscreen and mute toggles and writes changed
// settings back to disk. It runs even while paused.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		settings.Dirty = true
	}

	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		settings.Muted = !settings.Muted
		SetMuted(settings.Muted)
		settings.Dirty = true
	}

	if settings.Dirty {
		SaveCurrentSettings(settings)
		settings.Dirty = false
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug:      cfg.Debug.Enabled,
			Fullscreen: ebiten.IsFullscreen(),
			Muted:      globalMuted,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
