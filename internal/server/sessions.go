package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/joshuaphillips-collab/mortgage-compare/internal/config"
)

// sessionStore keeps uploaded sessions in memory so a borrower can share a
// comparison by id. Sessions do not survive a restart.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]config.Configuration
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]config.Configuration)}
}

func (s *sessionStore) create(conf config.Configuration) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = conf
	s.mu.Unlock()
	return id
}

func (s *sessionStore) get(id string) (config.Configuration, bool) {
	s.mu.RLock()
	conf, ok := s.sessions[id]
	s.mu.RUnlock()
	return conf, ok
}
