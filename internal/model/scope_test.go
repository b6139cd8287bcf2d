package model

import (
	"context"
	"testing"
)

func TestGetScopeFromContext(t *testing.T) {
	if got := GetScopeFromContext(context.Background()); got.SessionID != DefaultSessionID {
		t.Errorf("expected default session, got %q", got.SessionID)
	}

	ctx := SetScopeToContext(context.Background(), Scope{SessionID: "abc"})
	if got := GetScopeFromContext(ctx); got.SessionID != "abc" {
		t.Errorf("expected abc, got %q", got.SessionID)
	}

	ctx = SetScopeToContext(context.Background(), Scope{})
	if got := GetScopeFromContext(ctx); got.SessionID != DefaultSessionID {
		t.Errorf("empty session should fall back to default, got %q", got.SessionID)
	}
}
