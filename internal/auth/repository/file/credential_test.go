package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"course-outline-planner/internal/auth"
	"course-outline-planner/internal/auth/repository"
)

func testCredential(access string) auth.Credential {
	return auth.Credential{
		Token: &oauth2.Token{
			AccessToken:  access,
			RefreshToken: "refresh-" + access,
			TokenType:    "Bearer",
			Expiry:       time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Email:      "student@example.com",
		CalendarID: "student@example.com",
	}
}

func TestRepository_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token.json")

	repo, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := repo.Get(ctx, "default"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}

	if err := repo.Save(ctx, "default", testCredential("a1")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, "other", testCredential("b1")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("token file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("token file mode = %o, want 600", perm)
	}

	got, err := repo.Get(ctx, "default")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Token.AccessToken != "a1" || got.Email != "student@example.com" {
		t.Errorf("unexpected credential %+v", got)
	}

	if err := repo.Delete(ctx, "default"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file should remain while other sessions exist: %v", err)
	}

	if err := repo.Delete(ctx, "other"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file should be removed when empty, stat err = %v", err)
	}

	if err := repo.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("deleting unknown session should be a no-op, got %v", err)
	}
}

func TestRepository_ReloadsFromDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token.json")

	first, _ := New(path)
	if err := first.Save(ctx, "default", testCredential("persisted")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := second.Get(ctx, "default")
	if err != nil {
		t.Fatalf("Get after reload: %v", err)
	}
	if got.Token.AccessToken != "persisted" || got.Token.RefreshToken != "refresh-persisted" {
		t.Errorf("unexpected token after reload %+v", got.Token)
	}
	if !got.Token.Expiry.Equal(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expiry lost: %v", got.Token.Expiry)
	}
}

func TestRepository_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo, _ := New(filepath.Join(t.TempDir(), "token.json"))
	_ = repo.Save(ctx, "default", testCredential("a1"))

	got, _ := repo.Get(ctx, "default")
	got.Token.AccessToken = "mutated"

	again, _ := repo.Get(ctx, "default")
	if again.Token.AccessToken != "a1" {
		t.Error("stored token mutated through returned credential")
	}
}

func TestNew_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := New(path); !errors.Is(err, repository.ErrFailedToLoad) {
		t.Errorf("expected ErrFailedToLoad, got %v", err)
	}
}
