package components

import (
	cfg "github.com/automoto/pawprint/config"
	"github.com/yohamta/donburi"
)

// AudioData queues the effects to play this frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
