// Package session keeps the server's registry of logged-in users. A session
// is created at login, looked up on every authenticated call and ended at
// logout or when it expires.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

type Session struct {
	ID        string
	Username  string
	Started   time.Time
	ExpiresAt time.Time
}

// Manager is safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]Session
	validity time.Duration
	now      func() time.Time
}

func NewManager(validity time.Duration) *Manager {
	return &Manager{
		sessions: map[string]Session{},
		validity: validity,
		now:      time.Now,
	}
}

func (m *Manager) Create(username string) Session {
	now := m.now()
	s := Session{
		ID:        uuid.NewString(),
		Username:  username,
		Started:   now,
		ExpiresAt: now.Add(m.validity),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get returns the live session with the given id. Expired sessions are
// removed on lookup.
func (m *Manager) Get(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if !m.now().Before(s.ExpiresAt) {
		delete(m.sessions, id)
		return Session{}, ErrSessionExpired
	}
	return s, nil
}

// End removes the session; ending an unknown session is a no-op.
func (m *Manager) End(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Purge drops all expired sessions and returns how many were removed.
func (m *Manager) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	n := 0
	for id, s := range m.sessions {
		if !now.Before(s.ExpiresAt) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of registered sessions, expired ones included.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by NewContext.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
