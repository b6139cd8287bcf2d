package auth

import (
	"context"

	"golang.org/x/oauth2"

	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// AuthURL returns the Google consent URL for the session.
	AuthURL(ctx context.Context, sc model.Scope) (string, error)

	// Callback exchanges the authorization code and stores the session's credential.
	Callback(ctx context.Context, input CallbackInput) (CallbackOutput, error)

	// Status reports whether the session has a credential.
	Status(ctx context.Context, sc model.Scope) (StatusOutput, error)

	// Logout forgets the session's credential.
	Logout(ctx context.Context, sc model.Scope) error

	// TokenSource returns a refreshing token source for the session.
	// Refreshed tokens are persisted.
	TokenSource(ctx context.Context, sc model.Scope) (oauth2.TokenSource, error)

	// Calendar returns a calendar client for the session and the calendar id to use.
	Calendar(ctx context.Context, sc model.Scope) (gcalendar.API, string, error)
}
