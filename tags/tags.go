package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Platform    = donburi.NewTag().SetName("Platform")
	Collectible = donburi.NewTag().SetName("Collectible")
	Door        = donburi.NewTag().SetName("Door")
)

// Resolv tags for the collision mirror
const (
	ResolvSolid       = "solid"
	ResolvPlayer      = "Player"
	ResolvCollectible = "collectible"
	ResolvDoor        = "door"
)
