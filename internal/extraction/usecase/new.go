package usecase

import (
	"course-outline-planner/pkg/datemath"
	"course-outline-planner/pkg/llmprovider"
	pkgLog "course-outline-planner/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      *llmprovider.Manager
	dateMath *datemath.Parser
}

// New creates a new extraction UseCase. Dates and clocks in the outline are
// read in the parser's timezone.
func New(l pkgLog.Logger, llm *llmprovider.Manager, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		dateMath: dateMath,
	}
}
