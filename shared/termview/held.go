package termview

import "github.com/automoto/pawprint/shared/sim"

type Direction int

const (
	Left Direction = iota
	Right
	Up
)

// Held turns key-press events into held movement intent. Terminals report
// presses and auto-repeats but never releases, so a direction stays held for
// a fixed number of ticks after its last press.
type Held struct {
	hold  int
	ticks [3]int
}

func NewHeld(holdTicks int) *Held {
	return &Held{hold: max(holdTicks, 1)}
}

// Press refreshes a direction. Pressing one horizontal direction releases the
// other.
func (h *Held) Press(d Direction) {
	switch d {
	case Left:
		h.ticks[Right] = 0
	case Right:
		h.ticks[Left] = 0
	}
	h.ticks[d] = h.hold
}

// Release drops every held direction.
func (h *Held) Release() {
	h.ticks = [3]int{}
}

// Tick returns the intent for this step and ages every held direction by one.
func (h *Held) Tick() sim.Input {
	in := sim.Input{
		Left:  h.ticks[Left] > 0,
		Right: h.ticks[Right] > 0,
		Up:    h.ticks[Up] > 0,
	}
	for i := range h.ticks {
		if h.ticks[i] > 0 {
			h.ticks[i]--
		}
	}
	return in
}
