package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"travel/pkg/cache"
)

// CacheStore keeps each session as one JSON object in a cache.Cache (Redis in
// production). Every write refreshes the TTL.
type CacheStore struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewCacheStore(c cache.Cache, ttl time.Duration) *CacheStore {
	return &CacheStore{cache: c, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (s *CacheStore) load(ctx context.Context, sessionID string) (map[string]string, error) {
	raw, err := s.cache.Get(ctx, sessionKey(sessionID))
	if errors.Is(err, cache.ErrMiss) || (err == nil && raw == "") {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	values := make(map[string]string)
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return values, nil
}

func (s *CacheStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	if sessionID == "" {
		return "", ErrEmptySession
	}

	values, err := s.load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *CacheStore) Set(ctx context.Context, sessionID, key, value string) error {
	if sessionID == "" {
		return ErrEmptySession
	}

	values, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	values[key] = value

	encoded, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKey(sessionID), string(encoded), s.ttl); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (s *CacheStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.cache.Del(ctx, sessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
