package fonts

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the bitmap faces. basicfont ships a single size, so
// titles are drawn scaled by the caller.
func LoadDefaults() {
	LoadFace(HUD, basicfont.Face7x13)
	LoadFace(Title, basicfont.Face7x13)
	LoadFace(Small, basicfont.Face7x13)
}

func LoadFace(name FontName, face font.Face) {
	fonts[name] = face
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
