package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager owns all live sessions. Lookup is by session ID; idle sessions are
// reaped by a background sweep so abandoned sessions do not accumulate.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	idleTTL  time.Duration
}

// NewManager creates a Manager. idleTTL bounds how long an untouched session
// survives; zero disables sweeping.
func NewManager(idleTTL time.Duration) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		idleTTL:  idleTTL,
	}
}

// Create registers a new session for the given display language.
func (m *Manager) Create(language string) *Session {
	now := time.Now()
	s := &Session{
		ID:         uuid.New(),
		Language:   language,
		CreatedAt:  now,
		lastActive: now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

// Get returns the session with the given ID, or nil if unknown.
func (m *Manager) Get(id uuid.UUID) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Delete tears down a session. Deleting an unknown ID is a no-op.
func (m *Manager) Delete(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep runs the idle reaper until ctx is cancelled. It is a no-op when the
// manager has no TTL configured.
func (m *Manager) Sweep(ctx context.Context) {
	if m.idleTTL <= 0 {
		return
	}

	ticker := time.NewTicker(m.idleTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.reap(time.Now().Add(-m.idleTTL))
		}
	}
}

func (m *Manager) reap(cutoff time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
