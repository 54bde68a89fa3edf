package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one client's in-progress booking flow. Handlers lock the
// session for the duration of each action.
type Session struct {
	mu        sync.Mutex
	Token     string
	Flow      *Flow
	expiresAt time.Time
}

// Do runs fn with the session locked.
func (s *Session) Do(fn func(f *Flow) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.Flow)
}

// Store holds booking sessions in memory with a sliding TTL. Sessions are
// throwaway flow state, not durable data; a restart simply starts clients
// over at step one.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

// Create opens a new session and returns it with a fresh token.
func (s *Store) Create() *Session {
	session := &Session{
		Token:     uuid.NewString(),
		Flow:      NewFlow(),
		expiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}

// Get returns the session for token, sliding its expiry forward.
func (s *Store) Get(token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok || time.Now().After(session.expiresAt) {
		delete(s.sessions, token)
		return nil, ErrSessionNotFound
	}
	session.expiresAt = time.Now().Add(s.ttl)
	return session, nil
}

// Delete discards the session, if it still exists.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close stops the background cleanup.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for token, session := range s.sessions {
				if now.After(session.expiresAt) {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		case <-s.stop:
			return
		}
	}
}
