package gameconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.5, cfg.Physics.Gravity)
	assert.Equal(t, -12.0, cfg.Physics.JumpStrength)
	assert.Equal(t, 5.0, cfg.Physics.MoveSpeed)
	assert.Equal(t, cfg.Canvas.Height-100, cfg.Player.SpawnY)
	assert.Equal(t, RecoveryRespawn, cfg.Recovery.Policy)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
physics:
  gravity: 0.8
recovery:
  policy: snap_to_ground
`))
	require.NoError(t, err)

	assert.Equal(t, 0.8, cfg.Physics.Gravity)
	assert.Equal(t, -12.0, cfg.Physics.JumpStrength, "unset keys keep defaults")
	assert.Equal(t, RecoverySnapToGround, cfg.Recovery.Policy)
	assert.Equal(t, 30.0, cfg.Recovery.GroundWindow)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown policy", yaml: "recovery:\n  policy: bounce\n"},
		{name: "zero canvas", yaml: "canvas:\n  width: 0\n"},
		{name: "negative player", yaml: "player:\n  height: -1\n"},
		{name: "zero tick rate", yaml: "loop:\n  tickRate: 0\n"},
		{name: "malformed", yaml: "physics: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pawprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  moveSpeed: 7\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7.0, cfg.Physics.MoveSpeed)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("respawn")
	require.NoError(t, err)
	assert.Equal(t, RecoveryRespawn, p)

	_, err = ParsePolicy("teleport")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
