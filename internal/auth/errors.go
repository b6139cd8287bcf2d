package auth

import "errors"

var (
	ErrNotConnected         = errors.New("not connected to Google")
	ErrInvalidState         = errors.New("unknown or expired OAuth state")
	ErrMissingCode          = errors.New("missing authorization code")
	ErrClientSecretsMissing = errors.New("OAuth client secrets file not found")
	ErrExchangeFailed       = errors.New("failed to exchange authorization code")
)
