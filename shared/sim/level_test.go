package sim

import (
	"testing"

	"github.com/automoto/pawprint/shared/gameconfig"
	"github.com/automoto/pawprint/shared/gamemath"
	"github.com/automoto/pawprint/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresLevels(t *testing.T) {
	_, err := New(gameconfig.Default(), nil)
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := gameconfig.Default()
	cfg.Recovery.Policy = "bounce"

	_, err := New(cfg, leveldata.Builtin(800, 600))
	assert.ErrorIs(t, err, gameconfig.ErrInvalidConfig)
}

func TestNewRejectsPlayerWiderThanCanvas(t *testing.T) {
	levels := leveldata.Builtin(800, 600)
	levels[1].PlayerWidth = 900

	_, err := New(gameconfig.Default(), levels)
	assert.ErrorIs(t, err, ErrLevelDoesNotFit)

	levels[1].PlayerWidth = 800
	_, err = New(gameconfig.Default(), levels)
	assert.NoError(t, err)
}

func TestLoadLevelResetsState(t *testing.T) {
	s := builtinState(t)

	// Dirty everything the load is supposed to reset.
	s.Player.X, s.Player.Y, s.Player.VX, s.Player.VY = 300, 120, 5, -3
	s.Player.Grounded = true
	s.Collectibles[0].Collected = true
	s.Collectibles[0].Opacity = 0.2
	s.CollectedCount = 1

	require.NoError(t, s.LoadLevel(1))

	assert.Equal(t, 1, s.LevelIndex)
	assert.Equal(t, "stepping-stones", s.LevelName())
	assert.Equal(t, 0, s.CollectedCount)
	assert.Equal(t, s.Levels[1].Platforms, s.Platforms)
	assert.Equal(t, gamemath.Rect{X: 50, Y: 500, W: 30, H: 30}, s.Player.Rect)
	assert.Zero(t, s.Player.VX)
	assert.Zero(t, s.Player.VY)
	assert.False(t, s.Player.Grounded)

	require.Len(t, s.Collectibles, 3)
	for _, c := range s.Collectibles {
		assert.False(t, c.Collected)
		assert.Equal(t, 1.0, c.Opacity)
		assert.Equal(t, 20.0, c.W)
	}
}

func TestLoadLevelInvalidIndexIsNoop(t *testing.T) {
	s := builtinState(t)
	s.Player.X = 333
	s.CollectedCount = 2

	for _, index := range []int{-1, 3, 99} {
		before := s.Clone()
		err := s.LoadLevel(index)
		assert.ErrorIs(t, err, ErrInvalidLevel, "index %d", index)
		assert.Equal(t, before, s, "index %d", index)
	}
}

func TestLoadLevelUsesLevelOverrides(t *testing.T) {
	level := leveldata.Level{
		Name:         "custom",
		Platforms:    []leveldata.Platform{plat(0, 580, 800, 20)},
		Spawn:        &leveldata.SpawnPoint{X: 200, Y: 100},
		PlayerWidth:  24,
		PlayerHeight: 40,
	}
	s := newTestState(t, level)

	assert.Equal(t, gamemath.Rect{X: 200, Y: 100, W: 24, H: 40}, s.Player.Rect)
	assert.Equal(t, leveldata.SpawnPoint{X: 200, Y: 100}, s.Spawn)
}

func TestReloadProducesIndependentCollectibles(t *testing.T) {
	s := builtinState(t)
	first := s.Collectibles
	first[0].Collected = true
	first[0].Opacity = 0
	s.CollectedCount = 1

	require.NoError(t, s.LoadLevel(0))

	assert.Equal(t, 0, s.CollectedCount)
	assert.False(t, s.Collectibles[0].Collected)
	assert.Equal(t, 1.0, s.Collectibles[0].Opacity)

	s.Collectibles[1].Collected = true
	assert.False(t, first[1].Collected, "new instantiation must not alias the old one")
	assert.Equal(t, leveldata.Builtin(800, 600)[0].Collectibles, s.Levels[0].Collectibles, "templates are untouched")
}

func TestHighestPlatform(t *testing.T) {
	a := plat(0, 300, 10, 10)
	a.Color = "a"
	b := plat(50, 200, 10, 10)
	b.Color = "b"
	c := plat(90, 200, 10, 10)
	c.Color = "c"

	top, ok := HighestPlatform([]leveldata.Platform{a, b, c})
	require.True(t, ok)
	assert.Equal(t, "b", top.Color, "ties keep the earliest platform")

	top, ok = HighestPlatform([]leveldata.Platform{a})
	require.True(t, ok)
	assert.Equal(t, "a", top.Color)

	_, ok = HighestPlatform(nil)
	assert.False(t, ok)
}

func TestDoorSitsOnHighestPlatform(t *testing.T) {
	s := builtinState(t)

	// meadow's highest platform is {600, 320, 100, 20}.
	require.NotNil(t, s.Door)
	assert.Equal(t, gamemath.Rect{X: 660, Y: 260, W: 40, H: 60}, s.Door.Rect)
	assert.False(t, s.DoorActive())
}

func TestLevelWithoutPlatformsHasNoDoor(t *testing.T) {
	s := newTestState(t, leveldata.Level{Name: "void"})

	assert.Nil(t, s.Door)
	assert.False(t, s.DoorActive())
}

func TestLevelWithoutCollectiblesOpensDoor(t *testing.T) {
	s := newTestState(t, leveldata.Level{
		Name:      "open",
		Platforms: []leveldata.Platform{plat(0, 580, 800, 20)},
	})

	assert.Equal(t, 0, s.Total())
	assert.True(t, s.DoorActive())
}

func TestCloneIsDeep(t *testing.T) {
	s := builtinState(t)
	c := s.Clone()

	c.Collectibles[0].Collected = true
	c.Door.X = -100
	c.Player.X = -100

	assert.False(t, s.Collectibles[0].Collected)
	assert.Equal(t, 660.0, s.Door.X)
	assert.Equal(t, 50.0, s.Player.X)
}
