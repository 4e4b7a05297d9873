// Package leveldata provides level definitions shared between every frontend.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

import "github.com/automoto/pawprint/shared/gamemath"

// Level is an immutable level definition. Platform order is significant: the
// resolver lands on the first qualifying platform and resolves side hits in
// sequence, so loaders must preserve authoring order.
type Level struct {
	Name         string
	Platforms    []Platform
	Collectibles []CollectibleSpawn
	Spawn        *SpawnPoint // nil uses the configured default spawn

	// Zero means the configured default player size.
	PlayerWidth  float64
	PlayerHeight float64
}

// Platform is a static solid rectangle. Color is a display hint only.
type Platform struct {
	gamemath.Rect
	Color string `json:"color,omitempty"`
}

// CollectibleSpawn is the template a live collectible is instantiated from on
// every load. Zero width or height means the configured default size.
type CollectibleSpawn struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y float64
}
