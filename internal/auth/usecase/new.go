package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"

	"course-outline-planner/internal/auth/repository"
	"course-outline-planner/pkg/gcalendar"
	pkgLog "course-outline-planner/pkg/log"
)

const (
	DefaultStateTTL = 10 * time.Minute
	maxPendingState = 1000
)

// Config holds the OAuth client settings.
type Config struct {
	CredentialsPath string // client secrets JSON
	RedirectURL     string
	FrontendOrigin  string
	CalendarID      string // used until the primary calendar id is known
	StateTTL        time.Duration
}

type calendarFactory func(ctx context.Context, ts oauth2.TokenSource) (gcalendar.API, error)

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	cfg         Config
	states      *expirable.LRU[string, string] // state nonce -> session id
	newCalendar calendarFactory
}

// New creates the auth UseCase.
func New(l pkgLog.Logger, repo repository.Repository, cfg Config) *implUseCase {
	if cfg.StateTTL <= 0 {
		cfg.StateTTL = DefaultStateTTL
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = gcalendar.DefaultCalendarID
	}
	return &implUseCase{
		l:      l,
		repo:   repo,
		cfg:    cfg,
		states: expirable.NewLRU[string, string](maxPendingState, nil, cfg.StateTTL),
		newCalendar: func(ctx context.Context, ts oauth2.TokenSource) (gcalendar.API, error) {
			return gcalendar.NewClientFromTokenSource(ctx, ts)
		},
	}
}
