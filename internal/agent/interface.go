package agent

import (
	"context"

	"course-outline-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat answers a transcript, acting on the session's calendar through tools.
	Chat(ctx context.Context, sc model.Scope, transcript []Message) (string, error)
}
