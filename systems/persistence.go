package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/pawprint/components"
	cfg "github.com/automoto/pawprint/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug          bool   `json:"debug"`
	Fullscreen     bool   `json:"fullscreen"`
	Muted          bool   `json:"muted"`
	RecoveryPolicy string `json:"recoveryPolicy,omitempty"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result means nothing is saved.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.ItemKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.ItemKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the toggles from the SettingsData component along
// with the recovery policy in use.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Debug:          s.Debug,
		Fullscreen:     s.Fullscreen,
		Muted:          s.Muted,
		RecoveryPolicy: string(cfg.Sim.Recovery.Policy),
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies loaded settings that do not need a world:
// the window mode, the debug default, muting and the recovery policy.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
	cfg.Debug.Enabled = saved.Debug
	SetMuted(saved.Muted)

	if saved.RecoveryPolicy != "" {
		policy := cfg.RecoveryPolicy(saved.RecoveryPolicy)
		switch policy {
		case cfg.RecoveryRespawn, cfg.RecoverySnapToGround:
			cfg.Sim.Recovery.Policy = policy
		default:
			log.Printf("Warning: ignoring saved recovery policy %q", saved.RecoveryPolicy)
		}
	}
}
