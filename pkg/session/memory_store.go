package session

import (
	"context"
	"sync"
	"time"
)

type memorySession struct {
	values    map[string]string
	expiresAt time.Time
}

// MemoryStore implements Store in process memory. Sessions expire ttl after
// their last write.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*memorySession
	ttl      time.Duration
	now      func() time.Time
	done     chan struct{}
	once     sync.Once
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	store := &MemoryStore{
		sessions: make(map[string]*memorySession),
		ttl:      ttl,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go store.cleanupRoutine()
	return store
}

func (s *MemoryStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	if sessionID == "" {
		return "", ErrEmptySession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return "", ErrNotFound
	}
	if s.now().After(sess.expiresAt) {
		delete(s.sessions, sessionID)
		return "", ErrNotFound
	}

	value, ok := sess.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemoryStore) Set(ctx context.Context, sessionID, key, value string) error {
	if sessionID == "" {
		return ErrEmptySession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[sessionID]
	if !exists || s.now().After(sess.expiresAt) {
		sess = &memorySession{values: make(map[string]string)}
		s.sessions[sessionID] = sess
	}
	sess.values[key] = value
	sess.expiresAt = s.now().Add(s.ttl)
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Close stops the cleanup goroutine.
func (s *MemoryStore) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *MemoryStore) cleanupRoutine() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-s.done:
			return
		}
	}
}

func (s *MemoryStore) removeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, id)
		}
	}
}
