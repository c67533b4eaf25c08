package state

import (
	"context"
	"errors"
)

var (
	ErrNoActiveSession   = errors.New("no active session")
	ErrSessionNotCreated = errors.New("session not created")
)

// Store persists at most one active session id per username.
type Store interface {
	Get(ctx context.Context, username string) (int64, bool, error)
	Set(ctx context.Context, username string, sessionID int64) error
	Delete(ctx context.Context, username string) error
}
