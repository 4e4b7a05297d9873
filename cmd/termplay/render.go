package main

import (
	"fmt"

	"github.com/automoto/pawprint/shared/sim"
	"github.com/automoto/pawprint/shared/termview"
	"github.com/gdamore/tcell/v2"
)

var kindStyles = map[termview.Kind]tcell.Style{
	termview.Solid:      tcell.StyleDefault.Foreground(tcell.ColorOlive),
	termview.Pickup:     tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true),
	termview.Fading:     tcell.StyleDefault.Foreground(tcell.ColorGray),
	termview.DoorClosed: tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown),
	termview.DoorOpen:   tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
	termview.Hero:       tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
}

var hudStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)

// draw renders the snapshot into everything but the bottom row, which holds
// the HUD line.
func draw(screen tcell.Screen, snap sim.Snapshot, banner string) {
	screen.Clear()
	cols, rows := screen.Size()
	if cols < 1 || rows < 2 {
		screen.Show()
		return
	}

	grid := termview.NewGrid(cols, rows-1, snap.CanvasWidth, snap.CanvasHeight)
	for y, row := range termview.Rasterize(snap, grid) {
		for x, cell := range row {
			if cell.Kind == termview.Empty {
				continue
			}
			screen.SetContent(x, y, cell.Rune, nil, kindStyles[cell.Kind])
		}
	}

	door := "closed"
	if snap.DoorActive {
		door = "open"
	}
	hud := fmt.Sprintf(" Level %d/%d %s | %d/%d | door %s | arrows/WASD move, space jump, q quits ",
		snap.Level+1, snap.LevelCount, snap.LevelName, snap.Collected, snap.Total, door)
	if banner != "" {
		hud = " " + banner + " |" + hud
	}
	drawText(screen, 0, rows-1, cols, hud, hudStyle)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
