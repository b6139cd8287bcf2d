package repository

import (
	"context"

	"course-outline-planner/internal/auth"
)

// Repository stores one credential per session id.
type Repository interface {
	// Get returns ErrNotFound when the session has no credential.
	Get(ctx context.Context, sessionID string) (auth.Credential, error)
	Save(ctx context.Context, sessionID string, cred auth.Credential) error
	// Delete is a no-op for an unknown session.
	Delete(ctx context.Context, sessionID string) error
}
