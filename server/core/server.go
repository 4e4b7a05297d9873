package core

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"sync"

	"github.com/automoto/pawprint/shared/gameconfig"
	"github.com/automoto/pawprint/shared/leveldata"
	"github.com/automoto/pawprint/shared/sim"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server hands every websocket connection its own simulation session.
type Server struct {
	cfg    gameconfig.Config
	levels []leveldata.Level

	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewServer validates the configuration and level set up front so a bad
// setup fails at startup instead of on the first connection.
func NewServer(cfg gameconfig.Config, levels []leveldata.Level) (*Server, error) {
	if _, err := sim.New(cfg, levels); err != nil {
		return nil, err
	}
	return &Server{
		cfg:      cfg,
		levels:   levels,
		sessions: make(map[string]*Session),
	}, nil
}

// Router returns the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/levels", s.handleLevels)
	r.Get("/sessions", s.handleSessions)
	r.Get("/ws", s.handleWebSocket)
	return r
}

// Stop halts every running session.
func (s *Server) Stop() {
	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for id, sess := range s.sessions {
		sessions = append(sessions, sess)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Stop()
	}
}

// NewSession creates and registers a session without starting it.
func (s *Server) NewSession() (*Session, error) {
	state, err := sim.New(s.cfg, s.levels)
	if err != nil {
		return nil, err
	}
	sess := NewSession(uuid.New().String(), state)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *Server) removeSession(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Sessions lists running sessions ordered by ID.
func (s *Server) Sessions() []SessionInfo {
	s.mu.RLock()
	infos := make([]SessionInfo, 0, len(s.sessions))
	for _, sess := range s.sessions {
		infos = append(infos, sess.Info())
	}
	s.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Levels describes the level set.
func (s *Server) Levels() []LevelInfo {
	infos := make([]LevelInfo, len(s.levels))
	for i, l := range s.levels {
		infos[i] = LevelInfo{
			Index:        i,
			Name:         l.Name,
			Platforms:    len(l.Platforms),
			Collectibles: len(l.Collectibles),
		}
	}
	return infos
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Levels())
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sessions())
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	sess, err := s.NewSession()
	if err != nil {
		log.Printf("Failed to create session: %v", err)
		_ = conn.Close()
		return
	}
	log.Printf("Session %s started for %s", sess.ID, r.RemoteAddr)

	sess.Start()
	writerDone := make(chan struct{})
	go writePump(conn, sess, writerDone)

	readPump(conn, sess)

	sess.Stop()
	s.removeSession(sess.ID)
	_ = conn.Close()
	<-writerDone
	log.Printf("Session %s ended", sess.ID)
}

// readPump applies client messages until the connection fails.
func readPump(conn *websocket.Conn, sess *Session) {
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Session %s read: %v", sess.ID, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("Warning: session %s sent malformed message: %v", sess.ID, err)
			continue
		}
		switch msg.Type {
		case MsgInput:
			sess.SetInput(sim.Input{Left: msg.Left, Right: msg.Right, Up: msg.Up})
		case MsgJump:
			sess.Jump()
		default:
			log.Printf("Warning: session %s sent unknown message type %q", sess.ID, msg.Type)
		}
	}
}

// writePump forwards the session outbox to the connection. It exits when the
// session loop has stopped or a write fails.
func writePump(conn *websocket.Conn, sess *Session, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case msg := <-sess.Outbox():
			data, err := json.Marshal(msg)
			if err != nil {
				log.Println("marshal:", err)
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Println("write:", err)
				_ = conn.Close()
				return
			}
		case <-sess.loop.Done():
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Warning: could not encode response: %v", err)
	}
}
