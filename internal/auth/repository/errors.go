package repository

import "errors"

var (
	ErrNotFound      = errors.New("credential not found")
	ErrFailedToLoad  = errors.New("failed to load credentials")
	ErrFailedToWrite = errors.New("failed to write credentials")
)
