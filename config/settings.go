package config

// SettingsConfig names where user settings are persisted
type SettingsConfig struct {
	AppName string
	ItemKey string
}

// Settings is the global persistence configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "pawprint",
		ItemKey: "settings",
	}
}
