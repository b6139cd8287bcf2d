package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"course-outline-planner/internal/auth"
	"course-outline-planner/internal/auth/repository/file"
	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/gcalendar"
	"course-outline-planner/pkg/log"
)

// stubCalendar only answers PrimaryCalendarID.
type stubCalendar struct {
	gcalendar.API
	primary string
	err     error
}

func (s *stubCalendar) PrimaryCalendarID(ctx context.Context) (string, error) {
	return s.primary, s.err
}

type fixture struct {
	uc         *implUseCase
	tokenCalls *int32
	dir        string
}

func newFixture(t *testing.T, cal *stubCalendar) fixture {
	t.Helper()

	var calls int32
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("code") == "bad" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"access-%d","token_type":"Bearer","refresh_token":"refresh","expires_in":3600}`, n)
	}))
	t.Cleanup(tokenServer.Close)

	dir := t.TempDir()
	secrets := fmt.Sprintf(`{"web":{"client_id":"cid","client_secret":"secret","auth_uri":"https://accounts.example.com/auth","token_uri":"%s/token"}}`, tokenServer.URL)
	if err := os.WriteFile(filepath.Join(dir, "client_secret.json"), []byte(secrets), 0o600); err != nil {
		t.Fatal(err)
	}

	repo, err := file.New(filepath.Join(dir, "token.json"))
	if err != nil {
		t.Fatalf("file.New: %v", err)
	}

	uc := New(log.NewNop(), repo, Config{
		CredentialsPath: filepath.Join(dir, "client_secret.json"),
		RedirectURL:     "http://localhost:8000/api/auth/google/callback",
		FrontendOrigin:  "http://localhost:5173",
	})
	uc.newCalendar = func(ctx context.Context, ts oauth2.TokenSource) (gcalendar.API, error) {
		return cal, nil
	}

	return fixture{uc: uc, tokenCalls: &calls, dir: dir}
}

func stateFrom(t *testing.T, authURL string) string {
	t.Helper()
	u, err := url.Parse(authURL)
	if err != nil {
		t.Fatalf("parse auth url: %v", err)
	}
	return u.Query().Get("state")
}

var sc = model.Scope{SessionID: "default"}

func TestAuthURL(t *testing.T) {
	f := newFixture(t, &stubCalendar{primary: "me@example.com"})

	raw, err := f.uc.AuthURL(context.Background(), sc)
	if err != nil {
		t.Fatalf("AuthURL: %v", err)
	}

	u, _ := url.Parse(raw)
	q := u.Query()
	checks := map[string]string{
		"access_type":            "offline",
		"prompt":                 "consent",
		"include_granted_scopes": "true",
		"client_id":              "cid",
		"redirect_uri":           "http://localhost:8000/api/auth/google/callback",
	}
	for k, want := range checks {
		if got := q.Get(k); got != want {
			t.Errorf("%s = %q, want %q", k, got, want)
		}
	}
	if q.Get("state") == "" {
		t.Error("state should be set")
	}
}

func TestOAuthFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &stubCalendar{primary: "me@example.com"})

	status, err := f.uc.Status(ctx, sc)
	if err != nil || status.Connected {
		t.Fatalf("expected disconnected before callback, got %+v %v", status, err)
	}

	authURL, _ := f.uc.AuthURL(ctx, sc)
	state := stateFrom(t, authURL)

	out, err := f.uc.Callback(ctx, auth.CallbackInput{State: state, Code: "good"})
	if err != nil {
		t.Fatalf("Callback: %v", err)
	}
	if out.RedirectURL != "http://localhost:5173?connected=1" {
		t.Errorf("RedirectURL = %q", out.RedirectURL)
	}
	if out.SessionID != "default" {
		t.Errorf("SessionID = %q", out.SessionID)
	}

	status, err = f.uc.Status(ctx, sc)
	if err != nil || !status.Connected || status.Email != "me@example.com" {
		t.Errorf("expected connected with email, got %+v %v", status, err)
	}

	api, calendarID, err := f.uc.Calendar(ctx, sc)
	if err != nil || api == nil {
		t.Fatalf("Calendar: %v", err)
	}
	if calendarID != "me@example.com" {
		t.Errorf("calendarID = %q", calendarID)
	}

	if _, err := f.uc.Callback(ctx, auth.CallbackInput{State: state, Code: "good"}); !errors.Is(err, auth.ErrInvalidState) {
		t.Errorf("state must be single use, got %v", err)
	}

	if err := f.uc.Logout(ctx, sc); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	status, _ = f.uc.Status(ctx, sc)
	if status.Connected {
		t.Error("expected disconnected after logout")
	}
	if _, err := os.Stat(filepath.Join(f.dir, "token.json")); !os.IsNotExist(err) {
		t.Errorf("token file should be removed after last logout, stat err = %v", err)
	}
}

func TestCallback_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &stubCalendar{primary: "me@example.com"})

	if _, err := f.uc.Callback(ctx, auth.CallbackInput{State: "unknown", Code: "good"}); !errors.Is(err, auth.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}

	authURL, _ := f.uc.AuthURL(ctx, sc)
	if _, err := f.uc.Callback(ctx, auth.CallbackInput{State: stateFrom(t, authURL)}); !errors.Is(err, auth.ErrMissingCode) {
		t.Errorf("expected ErrMissingCode, got %v", err)
	}

	authURL, _ = f.uc.AuthURL(ctx, sc)
	if _, err := f.uc.Callback(ctx, auth.CallbackInput{State: stateFrom(t, authURL), Code: "bad"}); !errors.Is(err, auth.ErrExchangeFailed) {
		t.Errorf("expected ErrExchangeFailed, got %v", err)
	}
}

func TestCallback_PrimaryCalendarFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &stubCalendar{err: errors.New("403")})

	authURL, _ := f.uc.AuthURL(ctx, sc)
	if _, err := f.uc.Callback(ctx, auth.CallbackInput{State: stateFrom(t, authURL), Code: "good"}); err != nil {
		t.Fatalf("Callback: %v", err)
	}

	status, _ := f.uc.Status(ctx, sc)
	if !status.Connected || status.Email != "" {
		t.Errorf("expected connected without email, got %+v", status)
	}

	_, calendarID, err := f.uc.Calendar(ctx, sc)
	if err != nil || calendarID != "primary" {
		t.Errorf("expected fallback to configured calendar, got %q %v", calendarID, err)
	}
}

func TestStateBoundToSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &stubCalendar{primary: "other@example.com"})

	authURL, _ := f.uc.AuthURL(ctx, model.Scope{SessionID: "s2"})
	if _, err := f.uc.Callback(ctx, auth.CallbackInput{State: stateFrom(t, authURL), Code: "good"}); err != nil {
		t.Fatalf("Callback: %v", err)
	}

	if st, _ := f.uc.Status(ctx, model.Scope{SessionID: "s2"}); !st.Connected {
		t.Error("session s2 should be connected")
	}
	if st, _ := f.uc.Status(ctx, sc); st.Connected {
		t.Error("default session should stay disconnected")
	}
}

func TestMissingClientSecrets(t *testing.T) {
	f := newFixture(t, &stubCalendar{})
	f.uc.cfg.CredentialsPath = filepath.Join(f.dir, "absent.json")

	if _, err := f.uc.AuthURL(context.Background(), sc); !errors.Is(err, auth.ErrClientSecretsMissing) {
		t.Errorf("expected ErrClientSecretsMissing, got %v", err)
	}
}

func TestTokenSource(t *testing.T) {
	ctx := context.Background()

	t.Run("not connected", func(t *testing.T) {
		f := newFixture(t, &stubCalendar{})
		if _, err := f.uc.TokenSource(ctx, sc); !errors.Is(err, auth.ErrNotConnected) {
			t.Errorf("expected ErrNotConnected, got %v", err)
		}
		if _, _, err := f.uc.Calendar(ctx, sc); !errors.Is(err, auth.ErrNotConnected) {
			t.Errorf("expected ErrNotConnected from Calendar, got %v", err)
		}
	})

	t.Run("expired without refresh token", func(t *testing.T) {
		f := newFixture(t, &stubCalendar{})
		_ = f.uc.repo.Save(ctx, "default", auth.Credential{Token: &oauth2.Token{
			AccessToken: "old",
			Expiry:      time.Now().Add(-time.Hour),
		}})
		if _, err := f.uc.TokenSource(ctx, sc); !errors.Is(err, auth.ErrNotConnected) {
			t.Errorf("expected ErrNotConnected, got %v", err)
		}
	})

	t.Run("refresh is persisted", func(t *testing.T) {
		f := newFixture(t, &stubCalendar{})
		_ = f.uc.repo.Save(ctx, "default", auth.Credential{
			Token: &oauth2.Token{
				AccessToken:  "old",
				RefreshToken: "refresh",
				Expiry:       time.Now().Add(-time.Hour),
			},
			Email: "me@example.com",
		})

		ts, err := f.uc.TokenSource(ctx, sc)
		if err != nil {
			t.Fatalf("TokenSource: %v", err)
		}
		tok, err := ts.Token()
		if err != nil {
			t.Fatalf("Token: %v", err)
		}
		if tok.AccessToken == "old" {
			t.Fatal("expected a refreshed token")
		}

		stored, err := f.uc.repo.Get(ctx, "default")
		if err != nil {
			t.Fatalf("repo.Get: %v", err)
		}
		if stored.Token.AccessToken != tok.AccessToken {
			t.Errorf("refreshed token not persisted: %q vs %q", stored.Token.AccessToken, tok.AccessToken)
		}
		if stored.Email != "me@example.com" {
			t.Errorf("email lost on refresh: %q", stored.Email)
		}
		if atomic.LoadInt32(f.tokenCalls) != 1 {
			t.Errorf("expected one refresh call, got %d", atomic.LoadInt32(f.tokenCalls))
		}
	})
}
