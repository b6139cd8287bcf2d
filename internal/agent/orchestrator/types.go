package orchestrator

import (
	"context"

	"golang.org/x/oauth2"

	"course-outline-planner/internal/model"
)

// ConnectionChecker reports whether a session can reach Google Calendar.
type ConnectionChecker interface {
	TokenSource(ctx context.Context, sc model.Scope) (oauth2.TokenSource, error)
}
