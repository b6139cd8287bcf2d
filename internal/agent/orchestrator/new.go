package orchestrator

import (
	"time"

	"course-outline-planner/internal/agent"
	"course-outline-planner/pkg/datemath"
	"course-outline-planner/pkg/llmprovider"
	pkgLog "course-outline-planner/pkg/log"
	"course-outline-planner/pkg/metrics"
)

type Orchestrator struct {
	llm      *llmprovider.Manager
	registry *agent.ToolRegistry
	auth     ConnectionChecker
	dateMath *datemath.Parser
	metrics  metrics.Recorder
	l        pkgLog.Logger
	now      func() time.Time
}

func New(llm *llmprovider.Manager, registry *agent.ToolRegistry, auth ConnectionChecker, dateMath *datemath.Parser, m metrics.Recorder, l pkgLog.Logger) *Orchestrator {
	if m == nil {
		m = metrics.Nop{}
	}
	return &Orchestrator{
		llm:      llm,
		registry: registry,
		auth:     auth,
		dateMath: dateMath,
		metrics:  m,
		l:        l,
		now:      time.Now,
	}
}

var _ agent.UseCase = (*Orchestrator)(nil)
