package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"course-outline-planner/internal/auth"
	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/gcalendar"
)

// AuthURL issues a state nonce bound to the session and returns the consent URL.
func (uc *implUseCase) AuthURL(ctx context.Context, sc model.Scope) (string, error) {
	cfg, err := uc.oauthConfig()
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.AuthURL: %v", err)
		return "", err
	}

	state := uuid.NewString()
	uc.states.Add(state, sc.SessionID)

	return cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	), nil
}

// Callback redeems the state, exchanges the code and stores the credential.
func (uc *implUseCase) Callback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	sessionID, ok := uc.states.Get(input.State)
	if input.State == "" || !ok {
		return auth.CallbackOutput{}, auth.ErrInvalidState
	}
	uc.states.Remove(input.State)

	if strings.TrimSpace(input.Code) == "" {
		return auth.CallbackOutput{}, auth.ErrMissingCode
	}

	cfg, err := uc.oauthConfig()
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Callback: %v", err)
		return auth.CallbackOutput{}, err
	}

	tok, err := cfg.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Callback: exchange: %v", err)
		return auth.CallbackOutput{}, fmt.Errorf("%w: %v", auth.ErrExchangeFailed, err)
	}

	cred := auth.Credential{Token: tok}

	// The primary calendar id doubles as the account email. Failure leaves it empty.
	if api, err := uc.newCalendar(ctx, cfg.TokenSource(ctx, tok)); err != nil {
		uc.l.Warnf(ctx, "internal.auth.usecase.Callback: calendar client: %v", err)
	} else if id, err := api.PrimaryCalendarID(ctx); err != nil {
		uc.l.Warnf(ctx, "internal.auth.usecase.Callback: primary calendar: %v", err)
	} else {
		cred.Email = id
		cred.CalendarID = id
	}

	if err := uc.repo.Save(ctx, sessionID, cred); err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Callback: repo.Save: %v", err)
		return auth.CallbackOutput{}, err
	}

	uc.l.Infof(ctx, "internal.auth.usecase.Callback: session=%s connected email=%q", sessionID, cred.Email)

	return auth.CallbackOutput{
		SessionID:   sessionID,
		RedirectURL: connectedURL(uc.cfg.FrontendOrigin),
	}, nil
}

func (uc *implUseCase) oauthConfig() (*oauth2.Config, error) {
	cfg, err := gcalendar.LoadOAuthConfig(uc.cfg.CredentialsPath, uc.cfg.RedirectURL)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", auth.ErrClientSecretsMissing, uc.cfg.CredentialsPath)
		}
		return nil, err
	}
	return cfg, nil
}

func connectedURL(origin string) string {
	u, err := url.Parse(origin)
	if err != nil {
		return origin + "?connected=1"
	}
	q := u.Query()
	q.Set("connected", "1")
	u.RawQuery = q.Encode()
	return u.String()
}
