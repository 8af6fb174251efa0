// apps/go-solver/internal/store/memory.go
//
// In-memory store of live solver sessions for the HTTP API.
//
// Characteristics:
//   - Stores *solver.Session objects keyed by a uuid in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs the caller's function under the write lock, so a session
//     only ever sees one round at a time.
//   - Every entry expires ttl after it was created. Expired entries are
//     invisible to View/Update and are dropped by Sweep.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var ErrNotFound = errors.New("session not found")

// Store defines the interface for live session storage.
type Store interface {
	// Create adds s and returns its new ID.
	Create(ctx context.Context, s *solver.Session) (string, error)

	// View runs fn with the session under a read lock.
	View(ctx context.Context, id string, fn func(*solver.Session) error) error

	// Update runs fn with the session under the write lock.
	Update(ctx context.Context, id string, fn func(*solver.Session) error) error

	// Delete drops a session. Missing IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Sweep drops every expired session and reports how many were removed.
	Sweep(ctx context.Context) int

	// Len reports the number of stored sessions, expired or not.
	Len() int
}

type entry struct {
	sess    *solver.Session
	expires time.Time // zero means never
}

type memory struct {
	mu       sync.RWMutex     // guards sessions
	sessions map[string]entry // keyed by uuid
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store whose entries live for
// ttl. A ttl <= 0 keeps entries until they are deleted.
func NewMemoryStore(ttl time.Duration) Store {
	return newMemory(ttl, time.Now)
}

func newMemory(ttl time.Duration, now func() time.Time) *memory {
	return &memory{sessions: make(map[string]entry), ttl: ttl, now: now}
}

func (m *memory) Create(ctx context.Context, s *solver.Session) (string, error) {
	id := uuid.NewString()
	e := entry{sess: s}
	if m.ttl > 0 {
		e.expires = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = e
	return id, nil
}

func (m *memory) View(ctx context.Context, id string, fn func(*solver.Session) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.live(id)
	if !ok {
		return ErrNotFound
	}
	return fn(e.sess)
}

func (m *memory) Update(ctx context.Context, id string, fn func(*solver.Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live(id)
	if !ok {
		return ErrNotFound
	}
	return fn(e.sess)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context) int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		if e.expired(now) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// live looks up id, hiding expired entries. Callers hold the lock.
func (m *memory) live(id string) (entry, bool) {
	e, ok := m.sessions[id]
	if !ok || e.expired(m.now()) {
		return entry{}, false
	}
	return e, true
}

func (e entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}
