package session

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("session value not found")
	ErrEmptySession = errors.New("session id is empty")
)

// Store is a per-session key/value store for short-lived browsing state such
// as booking drafts. Values survive navigation within one session only.
type Store interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Clear(ctx context.Context, sessionID string) error
}
