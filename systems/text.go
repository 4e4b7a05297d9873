package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

var textOp = &ebiten.DrawImageOptions{}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64, scale float64) int {
	bounds := text.BoundString(face, s)
	textWidth := float64(bounds.Dx()) * scale
	return int((screenWidth - textWidth) / 2)
}

// drawScaledText draws s with its baseline at (x, y), scaled and tinted.
func drawScaledText(screen *ebiten.Image, s string, face font.Face, x, y int, scale float64, c color.Color) {
	textOp.GeoM.Reset()
	textOp.ColorScale.Reset()
	textOp.GeoM.Scale(scale, scale)
	textOp.GeoM.Translate(float64(x), float64(y))
	textOp.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(screen, s, face, textOp)
}
