package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"course-outline-planner/internal/auth"
	"course-outline-planner/internal/auth/repository"
)

func (r *implRepository) Get(ctx context.Context, sessionID string) (auth.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.creds[sessionID]
	if !ok || cred.Token == nil {
		return auth.Credential{}, repository.ErrNotFound
	}
	tok := *cred.Token
	cred.Token = &tok
	return cred, nil
}

func (r *implRepository) Save(ctx context.Context, sessionID string, cred auth.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, existed := r.creds[sessionID]
	r.creds[sessionID] = cred
	if err := r.flush(); err != nil {
		if existed {
			r.creds[sessionID] = prev
		} else {
			delete(r.creds, sessionID)
		}
		return err
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.creds[sessionID]; !ok {
		return nil
	}
	delete(r.creds, sessionID)
	return r.flush()
}

// flush rewrites the token file, or removes it once no session is left.
// Callers hold r.mu.
func (r *implRepository) flush() error {
	if len(r.creds) == 0 {
		if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
		}
		return nil
	}

	data, err := json.MarshalIndent(r.creds, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}

	// Replace atomically via a temp file in the same directory.
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".token-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}
	return nil
}
