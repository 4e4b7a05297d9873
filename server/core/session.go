package core

import (
	"log"
	"sync"

	"github.com/automoto/pawprint/shared/sim"
)

// outboxSize bounds how far a slow reader may fall behind before snapshots
// are dropped.
const outboxSize = 64

// Session is one player's simulation. The held input is a last-write-wins
// latch read once per tick.
type Session struct {
	ID string

	mu    sync.Mutex
	state *sim.State
	input sim.Input

	out     chan ServerMessage
	dropped int
	loop    *GameLoop
}

// NewSession wraps state; call Start to begin ticking.
func NewSession(id string, state *sim.State) *Session {
	return &Session{
		ID:    id,
		state: state,
		out:   make(chan ServerMessage, outboxSize),
	}
}

// Start runs the session's loop in its own goroutine.
func (s *Session) Start() {
	s.loop = NewGameLoop(s.Tick, s.state.Config.Loop.TickRate)
	go s.loop.Run()
}

// Stop halts the loop and waits for it to exit.
func (s *Session) Stop() {
	if s.loop == nil {
		return
	}
	s.loop.Stop()
	<-s.loop.Done()
}

// Outbox delivers the messages produced by Tick.
func (s *Session) Outbox() <-chan ServerMessage {
	return s.out
}

// SetInput replaces the held intent.
func (s *Session) SetInput(in sim.Input) {
	s.mu.Lock()
	s.input = in
	s.mu.Unlock()
}

// Jump applies the jump impulse now, as a key-down would.
func (s *Session) Jump() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sim.Jump(s.state)
}

// Tick advances the simulation one frame and queues its snapshot and events.
func (s *Session) Tick() {
	s.mu.Lock()
	events := sim.Step(s.state, s.input)
	snap := s.state.Snapshot()
	s.mu.Unlock()

	for i := range events {
		e := events[i]
		s.send(ServerMessage{Type: MsgEvent, Event: &e})
	}
	s.send(ServerMessage{Type: MsgState, Payload: &snap})
}

func (s *Session) send(msg ServerMessage) {
	select {
	case s.out <- msg:
	default:
		s.dropped++
		if s.dropped == 1 || s.dropped%600 == 0 {
			log.Printf("Warning: session %s outbox full, dropped %d messages", s.ID, s.dropped)
		}
	}
}

// Info summarises the session for listings.
func (s *Session) Info() SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionInfo{
		ID:        s.ID,
		Level:     s.state.LevelIndex,
		LevelName: s.state.LevelName(),
		Collected: s.state.CollectedCount,
		Total:     s.state.Total(),
		Frame:     s.state.Frame,
	}
}

// Snapshot copies the current state.
func (s *Session) Snapshot() sim.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}
