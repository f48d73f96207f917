// Package session gives every client its own OrderStore. A session is created
// on first contact and torn down explicitly or after sitting idle.
package session

import (
	"context"
	"sync"
	"time"

	"go-hotel-ordering/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoreFactory builds the store for a new session.
type StoreFactory func(sessionID string) *store.OrderStore

type entry struct {
	store    *store.OrderStore
	lastSeen time.Time
}

type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	factory  StoreFactory
	onEnd    []func(sessionID string)
	now      func() time.Time
	logger   *zap.Logger
}

func NewRegistry(ttl time.Duration, factory StoreFactory, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		factory:  factory,
		now:      time.Now,
		logger:   logger,
	}
}

// OnEnd registers fn to run after a session has been removed.
func (r *Registry) OnEnd(fn func(sessionID string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onEnd = append(r.onEnd, fn)
}

// Resolve returns the store of a live session. An empty or unknown id starts
// a new session under a fresh id; created reports which case happened.
func (r *Registry) Resolve(sessionID string) (id string, st *store.OrderStore, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	if e, ok := r.sessions[sessionID]; ok && sessionID != "" {
		e.lastSeen = now
		return sessionID, e.store, false
	}
	id = uuid.NewString()
	e := &entry{store: r.factory(id), lastSeen: now}
	r.sessions[id] = e
	r.logger.Info("session started", zap.String("session_id", id))
	return id, e.store, true
}

// Get looks a session up without creating one.
func (r *Registry) Get(sessionID string) (*store.OrderStore, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sessionID]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.store, true
}

func (r *Registry) End(sessionID string) bool {
	r.mu.Lock()
	_, ok := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	hooks := append([]func(string){}, r.onEnd...)
	r.mu.Unlock()

	if !ok {
		return false
	}
	r.logger.Info("session ended", zap.String("session_id", sessionID))
	for _, fn := range hooks {
		fn(sessionID)
	}
	return true
}

// Sweep ends every session idle for longer than the ttl and returns how many
// were removed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	var expired []string
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.ttl {
			expired = append(expired, id)
			delete(r.sessions, id)
		}
	}
	hooks := append([]func(string){}, r.onEnd...)
	r.mu.Unlock()

	for _, id := range expired {
		r.logger.Info("session expired", zap.String("session_id", id))
		for _, fn := range hooks {
			fn(id)
		}
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(r.now()); n > 0 {
				r.logger.Info("expired idle sessions", zap.Int("count", n))
			}
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
