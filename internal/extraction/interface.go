package extraction

import (
	"context"

	"course-outline-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Extract reads a course outline PDF with the extraction LLM chain and
	// returns a new Course with freshly generated ids.
	Extract(ctx context.Context, input ExtractInput) (model.Course, error)
}
