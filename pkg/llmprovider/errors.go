package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrAllProvidersFailed    = errors.New("all providers failed")
	// ErrInvalidRequest is returned before any provider is called.
	ErrInvalidRequest  = errors.New("invalid request")
	ErrProviderTimeout = errors.New("provider timeout")
)

// ProviderError is one provider's failure inside ErrAllProvidersFailed.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
