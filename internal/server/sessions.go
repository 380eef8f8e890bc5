package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathdiv/core"
	"github.com/katalvlaran/pathdiv/internal/telemetry"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("server: session not found")

// session owns a private copy of the network so its visit counters evolve
// independently of every other client.
type session struct {
	mu       sync.Mutex // serializes diversification runs on graph
	graph    *core.Graph
	lastUsed time.Time // guarded by Sessions.mu
}

// Sessions is the registry of live sessions.
type Sessions struct {
	mu    sync.Mutex
	base  *core.Graph
	ttl   time.Duration
	now   func() time.Time
	items map[string]*session
}

// NewSessions creates a registry whose sessions start from a fresh clone of
// base and expire after ttl without use.
func NewSessions(base *core.Graph, ttl time.Duration) *Sessions {
	return &Sessions{
		base:  base,
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]*session),
	}
}

// Create registers a new session and returns its id.
func (s *Sessions) Create() string {
	id := uuid.NewString()
	sess := &session{graph: s.base.CloneFresh(), lastUsed: s.now()}

	s.mu.Lock()
	s.items[id] = sess
	n := len(s.items)
	s.mu.Unlock()
	telemetry.SessionsActive.Set(float64(n))

	return id
}

// Use runs fn on the session graph while holding the session lock.
func (s *Sessions) Use(id string, fn func(g *core.Graph) error) error {
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return fn(sess.graph)
}

// Reset zeroes the visit counters of a session.
func (s *Sessions) Reset(id string) error {
	return s.Use(id, func(g *core.Graph) error {
		g.ResetVisits()

		return nil
	})
}

// Delete removes a session.
func (s *Sessions) Delete(id string) error {
	s.mu.Lock()
	_, ok := s.items[id]
	delete(s.items, id)
	n := len(s.items)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	telemetry.SessionsActive.Set(float64(n))

	return nil
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Sweep drops sessions idle for longer than the ttl and returns how many
// were removed.
func (s *Sessions) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	removed := 0
	for id, sess := range s.items {
		if sess.lastUsed.Before(cutoff) {
			delete(s.items, id)
			removed++
		}
	}
	n := len(s.items)
	s.mu.Unlock()
	telemetry.SessionsActive.Set(float64(n))

	return removed
}

// Janitor sweeps every interval until ctx is done.
func (s *Sessions) Janitor(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// get looks up a live session and marks it used.
func (s *Sessions) get(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.items[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.now().Sub(sess.lastUsed) > s.ttl {
		delete(s.items, id)
		telemetry.SessionsActive.Set(float64(len(s.items)))

		return nil, ErrSessionNotFound
	}
	sess.lastUsed = s.now()

	return sess, nil
}
