package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors a simulation body into the resolv space so the debug
// overlay and HUD can query it.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton resolv space for the current level.
var Space = donburi.NewComponentType[resolv.Space]()
