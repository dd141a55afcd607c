package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maplequiz/geoquiz/internal/game"
	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

// Registry owns the live game sessions. Sessions are in-memory only and are
// dropped wholesale on shutdown.
type Registry struct {
	catalog      *geoquiz.Catalog
	broker       *Broker
	optionCount  int
	advanceDelay time.Duration

	mu       sync.RWMutex
	sessions map[string]*game.Session
}

func NewRegistry(catalog *geoquiz.Catalog, broker *Broker, optionCount int, advanceDelay time.Duration) *Registry {
	return &Registry{
		catalog:      catalog,
		broker:       broker,
		optionCount:  optionCount,
		advanceDelay: advanceDelay,
		sessions:     make(map[string]*game.Session),
	}
}

// Create starts a new session in the given mode, wired to the feedback
// broker under a fresh game ID.
func (r *Registry) Create(mode geoquiz.Mode, optionCount int) *game.Session {
	if optionCount <= 0 {
		optionCount = r.optionCount
	}
	id := uuid.NewString()
	s := game.NewSession(id, r.catalog, mode, r.broker.Sink(id), game.SessionConfig{
		OptionCount:  optionCount,
		AdvanceDelay: r.advanceDelay,
	})

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) Get(id string) (*game.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete closes and removes a session.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		s.Close()
	}
}

// Close cancels every session's pending timers.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		s.Close()
		delete(r.sessions, id)
	}
}
