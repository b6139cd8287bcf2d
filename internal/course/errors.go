package course

import "errors"

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrEmptyUpload    = errors.New("uploaded file is empty")
)
