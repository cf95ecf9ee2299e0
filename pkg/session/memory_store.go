package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Sessions do not survive a restart and
// are not shared between instances.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	stop     func()
}

// NewMemoryStore creates a store. A positive sweepEvery starts a goroutine that
// drops expired sessions until Close is called.
func NewMemoryStore(sweepEvery time.Duration) *MemoryStore {
	m := &MemoryStore{sessions: make(map[string]Session), stop: func() {}}
	if sweepEvery <= 0 {
		return m
	}

	done := make(chan struct{})
	m.stop = sync.OnceFunc(func() { close(done) })
	go func() {
		t := time.NewTicker(sweepEvery)
		defer t.Stop()
		for {
			select {
			case now := <-t.C:
				m.DeleteExpired(now)
			case <-done:
				return
			}
		}
	}()
	return m
}

func (m *MemoryStore) Create(_ context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	m.sessions[session.Token] = *session
	m.mu.Unlock()
	return nil
}

// Get returns a copy of the stored session.
func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok || session.IsExpired(time.Now()) {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

// DeleteExpired drops every session whose lifetime elapsed.
func (m *MemoryStore) DeleteExpired(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for token, session := range m.sessions {
		if session.IsExpired(now) {
			delete(m.sessions, token)
		}
	}
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the sweeper goroutine. It is safe to call more than once.
func (m *MemoryStore) Close() error {
	m.stop()
	return nil
}
