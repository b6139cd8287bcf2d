package auth

import "golang.org/x/oauth2"

// Credential is what is stored per session.
type Credential struct {
	Token      *oauth2.Token `json:"token"`
	Email      string        `json:"email,omitempty"`
	CalendarID string        `json:"calendar_id,omitempty"`
}

// --- UseCase Inputs ---

type CallbackInput struct {
	State string
	Code  string
}

// --- UseCase Outputs ---

type CallbackOutput struct {
	SessionID   string
	RedirectURL string
}

type StatusOutput struct {
	Connected bool   `json:"connected"`
	Email     string `json:"email,omitempty"`
}
