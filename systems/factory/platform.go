package factory

import (
	"image/color"
	"log"
	"strconv"
	"strings"

	"github.com/automoto/pawprint/archetypes"
	"github.com/automoto/pawprint/components"
	cfg "github.com/automoto/pawprint/config"
	"github.com/automoto/pawprint/shared/leveldata"
	"github.com/automoto/pawprint/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, p leveldata.Platform) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(p.X, p.Y, p.W, p.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, p.W, p.H))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Platform.SetValue(platform, components.PlatformData{
		Color: ParseColor(p.Color, cfg.Palette.Platform),
	})

	return platform
}

// ParseColor reads a "#rrggbb" or "#rrggbbaa" hint, falling back when the
// hint is empty or malformed.
func ParseColor(hint string, fallback color.RGBA) color.RGBA {
	if hint == "" {
		return fallback
	}
	hex := strings.TrimPrefix(hint, "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if len(hex) != 8 || err != nil {
		log.Printf("Warning: bad platform color %q, using default", hint)
		return fallback
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}
