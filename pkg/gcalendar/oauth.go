package gcalendar

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// Scopes requested from the user.
var Scopes = []string{calendar.CalendarScope}

// LoadOAuthConfig reads a client secrets file ("web" or "installed" app) and
// returns the OAuth2 config for the calendar scope.
func LoadOAuthConfig(path, redirectURL string) (*oauth2.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secrets file: %w", err)
	}
	return OAuthConfigFromJSON(data, redirectURL)
}

// OAuthConfigFromJSON is LoadOAuthConfig for raw client secrets bytes.
// A non-empty redirectURL replaces the file's redirect_uris, so secrets
// downloaded without any registered redirect still load.
func OAuthConfigFromJSON(data []byte, redirectURL string) (*oauth2.Config, error) {
	if redirectURL != "" {
		patched, err := withRedirectURL(data, redirectURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidClientSecret, err)
		}
		data = patched
	}

	cfg, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidClientSecret, err)
	}
	return cfg, nil
}

// withRedirectURL sets redirect_uris on the "web" and "installed" sections.
func withRedirectURL(data []byte, redirectURL string) ([]byte, error) {
	var file map[string]json.RawMessage
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	for _, key := range []string{"web", "installed"} {
		raw, ok := file[key]
		if !ok {
			continue
		}
		var section map[string]interface{}
		if err := json.Unmarshal(raw, &section); err != nil {
			return nil, err
		}
		section["redirect_uris"] = []string{redirectURL}
		patched, err := json.Marshal(section)
		if err != nil {
			return nil, err
		}
		file[key] = patched
	}

	return json.Marshal(file)
}
