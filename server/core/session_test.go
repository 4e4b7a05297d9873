package core

import (
	"testing"
	"time"

	"github.com/automoto/pawprint/shared/gameconfig"
	"github.com/automoto/pawprint/shared/leveldata"
	"github.com/automoto/pawprint/shared/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := gameconfig.Default()
	state, err := sim.New(cfg, leveldata.Builtin(cfg.Canvas.Width, cfg.Canvas.Height))
	require.NoError(t, err)
	return NewSession("test", state)
}

func drain(s *Session) []ServerMessage {
	var msgs []ServerMessage
	for {
		select {
		case m := <-s.Outbox():
			msgs = append(msgs, m)
		default:
			return msgs
		}
	}
}

func TestSessionTickAppliesLatchedInput(t *testing.T) {
	s := newTestSession(t)

	s.SetInput(sim.Input{Left: true})
	s.SetInput(sim.Input{Right: true}) // last write wins
	s.Tick()

	snap := s.Snapshot()
	assert.Equal(t, 55.0, snap.Player.X)
	assert.Equal(t, uint64(1), snap.Frame)

	msgs := drain(s)
	require.Len(t, msgs, 1)
	assert.Equal(t, MsgState, msgs[0].Type)
	require.NotNil(t, msgs[0].Payload)
	assert.Equal(t, 55.0, msgs[0].Payload.Player.X)
}

func TestSessionJumpNeedsGround(t *testing.T) {
	s := newTestSession(t)

	// Spawned in the air.
	assert.False(t, s.Jump())

	for i := 0; i < 30; i++ {
		s.Tick()
	}
	require.True(t, s.Snapshot().Player.Grounded)
	assert.True(t, s.Jump())
	assert.Equal(t, -12.0, s.Snapshot().Player.VY)
}

func TestSessionForwardsEvents(t *testing.T) {
	s := newTestSession(t)
	drain(s)

	// Drop the player below the canvas.
	s.mu.Lock()
	s.state.Player.Y = 700
	s.mu.Unlock()
	s.Tick()

	msgs := drain(s)
	require.Len(t, msgs, 2)
	assert.Equal(t, MsgEvent, msgs[0].Type)
	require.NotNil(t, msgs[0].Event)
	assert.Equal(t, sim.EventRecovered, msgs[0].Event.Kind)
	assert.Equal(t, MsgState, msgs[1].Type)
}

func TestSessionDropsWhenOutboxFull(t *testing.T) {
	s := newTestSession(t)

	for i := 0; i < outboxSize+10; i++ {
		s.Tick()
	}

	assert.Len(t, drain(s), outboxSize)
	assert.Equal(t, 10, s.dropped)
}

func TestSessionLoop(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	select {
	case msg := <-s.Outbox():
		assert.Equal(t, MsgState, msg.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot from running session")
	}

	s.Stop()
	s.Stop()
	frame := s.Info().Frame
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, frame, s.Info().Frame, "stopped session must not tick")
}
