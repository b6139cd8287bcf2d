package model

import "context"

// DefaultSessionID is used when a request carries no session identity.
const DefaultSessionID = "default"

// Scope identifies whose credentials an operation runs with.
type Scope struct {
	SessionID string
}

type scopeKey struct{}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the scope stored in ctx, or the default scope.
func GetScopeFromContext(ctx context.Context) Scope {
	sc, ok := ctx.Value(scopeKey{}).(Scope)
	if !ok || sc.SessionID == "" {
		return Scope{SessionID: DefaultSessionID}
	}
	return sc
}
