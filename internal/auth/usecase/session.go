package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/oauth2"

	"course-outline-planner/internal/auth"
	"course-outline-planner/internal/auth/repository"
	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/gcalendar"
)

// Status reports whether the session holds a credential.
func (uc *implUseCase) Status(ctx context.Context, sc model.Scope) (auth.StatusOutput, error) {
	cred, err := uc.repo.Get(ctx, sc.SessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return auth.StatusOutput{Connected: false}, nil
	}
	if err != nil {
		return auth.StatusOutput{}, err
	}
	return auth.StatusOutput{Connected: true, Email: cred.Email}, nil
}

// Logout forgets the session's credential.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	if err := uc.repo.Delete(ctx, sc.SessionID); err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Logout: repo.Delete: %v", err)
		return err
	}
	uc.l.Infof(ctx, "internal.auth.usecase.Logout: session=%s", sc.SessionID)
	return nil
}

// TokenSource returns a refreshing token source. An expired token without a
// refresh token means the session is not connected.
func (uc *implUseCase) TokenSource(ctx context.Context, sc model.Scope) (oauth2.TokenSource, error) {
	cred, err := uc.credential(ctx, sc)
	if err != nil {
		return nil, err
	}
	return uc.tokenSource(ctx, sc, cred)
}

// Calendar returns a client for the session's calendar and the calendar id to write to.
func (uc *implUseCase) Calendar(ctx context.Context, sc model.Scope) (gcalendar.API, string, error) {
	cred, err := uc.credential(ctx, sc)
	if err != nil {
		return nil, "", err
	}
	ts, err := uc.tokenSource(ctx, sc, cred)
	if err != nil {
		return nil, "", err
	}

	api, err := uc.newCalendar(ctx, ts)
	if err != nil {
		return nil, "", err
	}

	calendarID := cred.CalendarID
	if calendarID == "" {
		calendarID = uc.cfg.CalendarID
	}
	return api, calendarID, nil
}

func (uc *implUseCase) credential(ctx context.Context, sc model.Scope) (auth.Credential, error) {
	cred, err := uc.repo.Get(ctx, sc.SessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return auth.Credential{}, auth.ErrNotConnected
	}
	if err != nil {
		return auth.Credential{}, err
	}
	if !cred.Token.Valid() && cred.Token.RefreshToken == "" {
		return auth.Credential{}, fmt.Errorf("%w: credentials expired", auth.ErrNotConnected)
	}
	return cred, nil
}

func (uc *implUseCase) tokenSource(ctx context.Context, sc model.Scope, cred auth.Credential) (oauth2.TokenSource, error) {
	cfg, err := uc.oauthConfig()
	if err != nil {
		return nil, err
	}
	return &persistingTokenSource{
		base:      cfg.TokenSource(ctx, cred.Token),
		uc:        uc,
		sessionID: sc.SessionID,
		cred:      cred,
		last:      cred.Token.AccessToken,
	}, nil
}

// persistingTokenSource writes refreshed tokens back to the repository.
type persistingTokenSource struct {
	base      oauth2.TokenSource
	uc        *implUseCase
	sessionID string

	mu   sync.Mutex
	cred auth.Credential
	last string
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrNotConnected, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if tok.AccessToken != s.last {
		s.last = tok.AccessToken
		s.cred.Token = tok
		ctx := context.Background()
		if err := s.uc.repo.Save(ctx, s.sessionID, s.cred); err != nil {
			s.uc.l.Warnf(ctx, "internal.auth.usecase.Token: persist refreshed token: %v", err)
		} else {
			s.uc.l.Infof(ctx, "internal.auth.usecase.Token: refreshed token for session=%s", s.sessionID)
		}
	}
	return tok, nil
}
