package core

import "github.com/automoto/pawprint/shared/sim"

// Client message types.
const (
	MsgInput = "input"
	MsgJump  = "jump"
)

// Server message types.
const (
	MsgState = "state"
	MsgEvent = "event"
)

// ClientMessage is what a connected player sends. Input replaces the held
// intent; jump fires the impulse if the player is grounded.
type ClientMessage struct {
	Type  string `json:"type"`
	Left  bool   `json:"left,omitempty"`
	Right bool   `json:"right,omitempty"`
	Up    bool   `json:"up,omitempty"`
}

// ServerMessage is pushed to the player: a snapshot every tick and one message
// per simulation event.
type ServerMessage struct {
	Type    string        `json:"type"`
	Payload *sim.Snapshot `json:"payload,omitempty"`
	Event   *sim.Event    `json:"event,omitempty"`
}

// SessionInfo is the public summary of a running session.
type SessionInfo struct {
	ID        string `json:"id"`
	Level     int    `json:"level"`
	LevelName string `json:"levelName"`
	Collected int    `json:"collected"`
	Total     int    `json:"total"`
	Frame     uint64 `json:"frame"`
}

// LevelInfo describes one level of the set a server plays.
type LevelInfo struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	Platforms    int    `json:"platforms"`
	Collectibles int    `json:"collectibles"`
}
