package realtime

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"requisicoes/internal/domain/entities"
)

// Hub tracks the live sessions.
type Hub struct {
	deps     SessionDeps
	mu       sync.RWMutex
	sessions map[string]*Session
	log      logrus.FieldLogger
}

func NewHub(deps SessionDeps) *Hub {
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}
	return &Hub{deps: deps, sessions: map[string]*Session{}, log: deps.Logger}
}

// Serve runs a new session over conn and blocks until it ends.
func (h *Hub) Serve(ctx context.Context, conn Conn, claims entities.Claims) {
	s := NewSession(uuid.NewString(), claims, conn, h.deps)
	h.register(s)
	defer h.unregister(s)
	s.Run(ctx)
}

func (h *Hub) register(s *Session) {
	h.mu.Lock()
	h.sessions[s.ID()] = s
	n := len(h.sessions)
	h.mu.Unlock()
	h.log.WithFields(logrus.Fields{"session_id": s.ID(), "sessions": n}).Info("[realtime][hub] registered")
}

func (h *Hub) unregister(s *Session) {
	h.mu.Lock()
	delete(h.sessions, s.ID())
	n := len(h.sessions)
	h.mu.Unlock()
	h.log.WithFields(logrus.Fields{"session_id": s.ID(), "sessions": n}).Info("[realtime][hub] unregistered")
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// CloseAll ends every session; used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	sessions := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()
	for _, s := range sessions {
		s.Close()
	}
}
