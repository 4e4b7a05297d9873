package sim

import (
	"testing"

	"github.com/automoto/pawprint/shared/gamemath"
	"github.com/automoto/pawprint/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosedDoorIsIgnored(t *testing.T) {
	s := builtinState(t)
	top, _ := HighestPlatform(s.Platforms)
	restOn(s, top, 665)
	require.True(t, gamemath.Overlaps(s.Player.Rect, s.Door.Rect))

	for i := 0; i < 5; i++ {
		events := Step(s, Input{})
		assert.Empty(t, events)
	}
	assert.Equal(t, 0, s.LevelIndex)
	assert.Equal(t, 665.0, s.Player.X)
}

func TestOpenDoorAdvancesLevel(t *testing.T) {
	s := builtinState(t)
	top, _ := HighestPlatform(s.Platforms)
	restOn(s, top, 665)
	for i := range s.Collectibles {
		s.Collectibles[i].Collected = true
	}
	s.CollectedCount = s.Total()

	events := Step(s, Input{})

	assert.Equal(t, []Event{{Kind: EventLevelLoaded, Level: 1}}, events)
	assert.Equal(t, 1, s.LevelIndex)
	assert.Equal(t, 0, s.CollectedCount)
	assert.Equal(t, gamemath.Rect{X: 50, Y: 500, W: 30, H: 30}, s.Player.Rect)
}

func TestCollectEverythingAndWrap(t *testing.T) {
	walkway := leveldata.Level{
		Name:      "walkway",
		Platforms: []leveldata.Platform{plat(0, 580, 800, 20)},
		Collectibles: []leveldata.CollectibleSpawn{
			{X: 200, Y: 555},
			{X: 350, Y: 555},
			{X: 500, Y: 555},
		},
	}
	levels := []leveldata.Level{leveldata.Builtin(800, 600)[0], walkway}
	s := newTestState(t, levels...)
	require.NoError(t, s.LoadLevel(1))
	require.True(t, s.IsLastLevel())

	var collected []int
	var opened, completed bool
	for i := 0; i < 400 && !completed; i++ {
		for _, e := range Step(s, Input{Right: true}) {
			switch e.Kind {
			case EventCollected:
				assert.Equal(t, 1, e.Level)
				collected = append(collected, e.Index)
			case EventDoorOpened:
				opened = true
				assert.Equal(t, 3, s.CollectedCount)
				assert.True(t, s.DoorActive())
			case EventGameCompleted:
				completed = true
			}
		}
	}

	require.True(t, completed, "player never reached the door")
	assert.True(t, opened)
	assert.Equal(t, []int{0, 1, 2}, collected)

	assert.Equal(t, 0, s.LevelIndex)
	assert.Equal(t, 0, s.CollectedCount)
	assert.Equal(t, levels[0].Platforms, s.Platforms)
	assert.Equal(t, instantiateCollectibles(levels[0].Collectibles, s.Config.Collectible), s.Collectibles)
	assert.Equal(t, gamemath.Rect{X: 50, Y: 500, W: 30, H: 30}, s.Player.Rect)
	assert.Zero(t, s.Player.VX)
	assert.Zero(t, s.Player.VY)
}

func TestWrapEmitsLoadAndCompletion(t *testing.T) {
	s := newTestState(t, leveldata.Level{
		Name:      "only",
		Platforms: []leveldata.Platform{plat(0, 580, 800, 20)},
	})
	// No collectibles: the door is open from the start.
	restOn(s, s.Platforms[0], 770)

	events := Step(s, Input{})

	assert.Equal(t, []Event{
		{Kind: EventLevelLoaded, Level: 0},
		{Kind: EventGameCompleted, Level: 0},
	}, events)
	assert.Equal(t, 50.0, s.Player.X)
}
