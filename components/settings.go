package components

import "github.com/yohamta/donburi"

// SettingsData holds the user toggles that survive restarts.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	Muted      bool
	Dirty      bool // changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
