package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/pawprint/server/core"
	"github.com/automoto/pawprint/shared/sim"
	"github.com/gorilla/websocket"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateError
)

var ErrNotConnected = errors.New("not connected")

// Client plays one remote session over a server's /ws endpoint. A Client
// connects once.
// All shared fields are protected by mu; the read loop runs on its own goroutine.
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	conn      *websocket.Conn
	writeMu   sync.Mutex

	snapshotCh chan sim.Snapshot // size-1 buffered; latest wins
	eventCh    chan sim.Event
	done       chan struct{}
}

func NewClient() *Client {
	return &Client{
		state:      StateDisconnected,
		snapshotCh: make(chan sim.Snapshot, 1),
		eventCh:    make(chan sim.Event, 32),
		done:       make(chan struct{}),
	}
}

// Connect dials the websocket URL (ws://host:port/ws) and starts reading.
func (c *Client) Connect(ctx context.Context, url string) error {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		err = fmt.Errorf("connection failed: %w", err)
		c.setError(err)
		return err
	}
	log.Printf("[client] connected to %s", url)

	c.mu.Lock()
	c.conn = conn
	c.state = StateConnected
	c.mu.Unlock()

	go c.readLoop(conn)
	return nil
}

func (c *Client) readLoop(conn *websocket.Conn) {
	defer close(c.done)
	for {
		var msg core.ServerMessage
		if err := conn.ReadJSON(&msg); err != nil {
			c.mu.Lock()
			if c.state == StateConnected {
				log.Printf("[client] disconnected: %v", err)
				c.state = StateDisconnected
			}
			c.conn = nil
			c.mu.Unlock()
			return
		}

		switch msg.Type {
		case core.MsgState:
			if msg.Payload == nil {
				continue
			}
			select { // drain stale, push latest
			case <-c.snapshotCh:
			default:
			}
			c.snapshotCh <- *msg.Payload
		case core.MsgEvent:
			if msg.Event == nil {
				continue
			}
			select {
			case c.eventCh <- *msg.Event:
			default:
			}
		}
	}
}

// Done is closed once the read loop has stopped.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		c.writeMu.Lock()
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		c.writeMu.Unlock()
		_ = conn.Close()
	}
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// LatestSnapshot returns the most recent snapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *sim.Snapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

// DrainEvents returns all pending simulation events, non-blocking.
func (c *Client) DrainEvents() []sim.Event {
	return drainChan(c.eventCh)
}

// SendInput replaces the session's held intent.
func (c *Client) SendInput(in sim.Input) error {
	return c.send(core.ClientMessage{Type: core.MsgInput, Left: in.Left, Right: in.Right, Up: in.Up})
}

// SendJump asks the session to fire the jump impulse.
func (c *Client) SendJump() error {
	return c.send(core.ClientMessage{Type: core.MsgJump})
}

func (c *Client) send(msg core.ClientMessage) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("send %s: %w", msg.Type, err)
	}
	return nil
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
