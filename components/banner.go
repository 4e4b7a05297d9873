package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData drives the level title card and the completion overlay. Both
// fade on tweens; the alphas are the latest tween values in [0, 1].
type BannerData struct {
	Text     string
	Sequence *gween.Sequence
	Alpha    float32

	Completed     bool
	CompleteTween *gween.Tween
	CompleteAlpha float32
}

var Banner = donburi.NewComponentType[BannerData]()
