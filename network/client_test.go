package network

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/automoto/pawprint/server/core"
	"github.com/automoto/pawprint/shared/gameconfig"
	"github.com/automoto/pawprint/shared/leveldata"
	"github.com/automoto/pawprint/shared/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*core.Server, string) {
	t.Helper()
	cfg := gameconfig.Default()
	srv, err := core.NewServer(cfg, leveldata.Builtin(cfg.Canvas.Width, cfg.Canvas.Height))
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(func() {
		ts.Close()
		srv.Stop()
	})
	return srv, "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
}

func TestClientPlaysRemoteSession(t *testing.T) {
	_, url := newTestServer(t)

	c := NewClient()
	require.NoError(t, c.Connect(context.Background(), url))
	assert.Equal(t, StateConnected, c.State())

	require.NoError(t, c.SendInput(sim.Input{Right: true}))

	var last *sim.Snapshot
	require.Eventually(t, func() bool {
		if snap := c.LatestSnapshot(); snap != nil {
			last = snap
		}
		return last != nil && last.Player.X > 50
	}, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, "meadow", last.LevelName)
	assert.Equal(t, sim.FacingRight, last.Player.Facing)

	require.NoError(t, c.SendJump())

	c.Disconnect()
	select {
	case <-c.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("read loop did not stop")
	}
	assert.Equal(t, StateDisconnected, c.State())
	assert.ErrorIs(t, c.SendJump(), ErrNotConnected)
}

func TestClientConnectFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	c := NewClient()
	err := c.Connect(ctx, "ws://127.0.0.1:1/ws")
	require.Error(t, err)
	assert.Equal(t, StateError, c.State())
	assert.ErrorIs(t, c.LastError(), err)
}

func TestSendBeforeConnect(t *testing.T) {
	c := NewClient()
	assert.ErrorIs(t, c.SendInput(sim.Input{Left: true}), ErrNotConnected)
	assert.Nil(t, c.LatestSnapshot())
	assert.Empty(t, c.DrainEvents())
}
