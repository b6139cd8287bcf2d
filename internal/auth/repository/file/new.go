package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"course-outline-planner/internal/auth"
	"course-outline-planner/internal/auth/repository"
)

const fileMode = 0o600

type implRepository struct {
	mu    sync.RWMutex
	path  string
	creds map[string]auth.Credential
}

// New loads the token file at path. A missing file starts an empty store.
func New(path string) (repository.Repository, error) {
	r := &implRepository{
		path:  path,
		creds: make(map[string]auth.Credential),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	if len(data) == 0 {
		return r, nil
	}

	if err := json.Unmarshal(data, &r.creds); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrFailedToLoad, path, err)
	}
	return r, nil
}
