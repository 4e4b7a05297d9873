package config

import (
	"image/color"

	"github.com/automoto/pawprint/shared/gameconfig"
)

// Config holds general window configuration. Width and Height are the logical
// screen size and always match the simulation canvas.
type Config struct {
	Width  int
	Height int
	Title  string
	Scale  float64 // initial window scale
}

// PaletteConfig contains the colors used to draw the world
type PaletteConfig struct {
	Background      color.RGBA
	Platform        color.RGBA // used when a platform has no color hint
	Player          color.RGBA
	PlayerEye       color.RGBA
	Collectible     color.RGBA
	CollectibleRing color.RGBA
	DoorInactive    color.RGBA
	DoorActive      color.RGBA
	DoorFrame       color.RGBA
}

// HUDConfig contains the on-screen counter layout
type HUDConfig struct {
	X, Y        int
	LineHeight  int
	TextColor   color.RGBA
	HintColor   color.RGBA
	BgColor     color.RGBA
	DoorHintGap float64 // resolv probe distance for the "door nearby" hint
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// BannerConfig contains the level banner fade timings (seconds)
type BannerConfig struct {
	FadeIn    float32
	Hold      float32
	FadeOut   float32
	TextColor color.RGBA
	Y         int
}

// CompleteConfig contains the overlay shown after the last door wraps to the start
type CompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	Title        string
	Message      string
	Duration     float32 // seconds the overlay takes to fade out
}

// DebugConfig contains debug overlay colors and command-line options
type DebugConfig struct {
	Enabled        bool // initial state, overridden by saved settings
	SolidColor     color.RGBA
	PlayerColor    color.RGBA
	PickupColor    color.RGBA
	DoorColor      color.RGBA
	ContactColor   color.RGBA
	PassThrough    color.RGBA
}

// Global configuration instances
var C *Config
var Sim gameconfig.Config
var Palette PaletteConfig
var HUD HUDConfig
var Pause PauseConfig
var Banner BannerConfig
var Complete CompleteConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 46, G: 204, B: 113, A: 255}
	DarkGreen    = color.RGBA{R: 39, G: 174, B: 96, A: 255}
	Blue         = color.RGBA{R: 52, G: 152, B: 219, A: 255}
	Brown        = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	Grey         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	SkyBlue      = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Sim = gameconfig.Default()

	C = &Config{
		Width:  int(Sim.Canvas.Width),
		Height: int(Sim.Canvas.Height),
		Title:  "Pawprint",
		Scale:  1,
	}

	Palette = PaletteConfig{
		Background:      SkyBlue,
		Platform:        DarkGreen,
		Player:          Blue,
		PlayerEye:       White,
		Collectible:     Gold,
		CollectibleRing: Orange,
		DoorInactive:    Grey,
		DoorActive:      Brown,
		DoorFrame:       color.RGBA{R: 80, G: 40, B: 10, A: 255},
	}

	HUD = HUDConfig{
		X:           10,
		Y:           20,
		LineHeight:  16,
		TextColor:   White,
		HintColor:   Yellow,
		BgColor:     color.RGBA{R: 0, G: 0, B: 0, A: 120},
		DoorHintGap: 60,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "P / Esc to resume  F1 debug  F11 fullscreen  M mute",
	}

	Banner = BannerConfig{
		FadeIn:    0.3,
		Hold:      1.2,
		FadeOut:   0.6,
		TextColor: White,
		Y:         120,
	}

	Complete = CompleteConfig{
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TitleColor:   Gold,
		TextColor:    White,
		Title:        "ALL LEVELS COMPLETE",
		Message:      "Back to the first level...",
		Duration:     3,
	}

	Debug = DebugConfig{
		SolidColor:     color.RGBA{R: 100, G: 100, B: 100, A: 255},
		PlayerColor:    color.RGBA{R: 0, G: 0, B: 255, A: 255},
		PickupColor:    color.RGBA{R: 0, G: 255, B: 255, A: 255},
		DoorColor:      color.RGBA{R: 255, G: 0, B: 255, A: 255},
		ContactColor:   Red,
		PassThrough:    Orange,
	}
}

// ApplySim replaces the simulation tuning and keeps the window size in step
// with the canvas.
func ApplySim(c gameconfig.Config) {
	Sim = c
	C.Width = int(c.Canvas.Width)
	C.Height = int(c.Canvas.Height)
}
