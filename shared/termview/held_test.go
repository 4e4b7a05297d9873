package termview

import (
	"testing"

	"github.com/automoto/pawprint/shared/sim"
	"github.com/stretchr/testify/assert"
)

func TestHeldDecays(t *testing.T) {
	h := NewHeld(3)
	h.Press(Left)

	for i := 0; i < 3; i++ {
		assert.Equal(t, sim.Input{Left: true}, h.Tick())
	}
	assert.Equal(t, sim.Input{}, h.Tick())
}

func TestHeldRepeatRefreshes(t *testing.T) {
	h := NewHeld(2)
	h.Press(Right)
	h.Tick()
	h.Press(Right)

	assert.True(t, h.Tick().Right)
	assert.True(t, h.Tick().Right)
	assert.False(t, h.Tick().Right)
}

func TestHeldOppositeReleases(t *testing.T) {
	h := NewHeld(5)
	h.Press(Left)
	h.Press(Up)
	h.Press(Right)

	assert.Equal(t, sim.Input{Right: true, Up: true}, h.Tick())

	h.Release()
	assert.Equal(t, sim.Input{}, h.Tick())
}

func TestNewHeldMinimum(t *testing.T) {
	h := NewHeld(0)
	h.Press(Up)
	assert.True(t, h.Tick().Up)
	assert.False(t, h.Tick().Up)
}
