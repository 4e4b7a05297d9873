package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// PlatformData is the draw color resolved from the platform's hint.
type PlatformData struct {
	Color color.RGBA
}

var Platform = donburi.NewComponentType[PlatformData]()

// CollectibleData points at the collectible's slot in the simulation state.
type CollectibleData struct {
	Index int
}

var Collectible = donburi.NewComponentType[CollectibleData]()
