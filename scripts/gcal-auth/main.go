// scripts/gcal-auth/main.go
//
// Authorizes Google Calendar access from a terminal and stores the credential
// in the token file the API server reads, for hosts where the browser
// callback cannot reach the server.
//
// Usage:
//
//	go run ./scripts/gcal-auth --session default
//
// Open the printed URL, sign in, then paste the "code" query parameter of
// the page Google redirects to.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/oauth2"

	"course-outline-planner/config"
	"course-outline-planner/internal/auth"
	authFile "course-outline-planner/internal/auth/repository/file"
	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/gcalendar"
	"course-outline-planner/pkg/log"
)

func main() {
	sessionID := pflag.String("session", model.DefaultSessionID, "session id to store the credential under")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	oauthCfg, err := gcalendar.LoadOAuthConfig(cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.RedirectURL)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load client secrets %q: %v", cfg.GoogleCalendar.CredentialsPath, err)
	}

	authURL := oauthCfg.AuthCodeURL("gcal-auth",
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		logger.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}

	cred := auth.Credential{Token: tok}
	client, err := gcalendar.NewClientFromTokenSource(ctx, oauthCfg.TokenSource(ctx, tok))
	if err == nil {
		if id, idErr := client.PrimaryCalendarID(ctx); idErr == nil {
			cred.Email = id
			cred.CalendarID = id
		} else {
			logger.Warnf(ctx, "Could not resolve the primary calendar: %v", idErr)
		}
	}

	repo, err := authFile.New(cfg.GoogleCalendar.TokenPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open token file %s: %v", cfg.GoogleCalendar.TokenPath, err)
	}
	if err := repo.Save(ctx, *sessionID, cred); err != nil {
		logger.Fatalf(ctx, "Failed to save credential: %v", err)
	}

	fmt.Println()
	fmt.Printf("Credential for session %q saved to %s\n", *sessionID, cfg.GoogleCalendar.TokenPath)
	if cred.Email != "" {
		fmt.Printf("Connected as %s\n", cred.Email)
	}
}
