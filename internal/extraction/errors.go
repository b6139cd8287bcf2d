package extraction

import "errors"

var (
	ErrEmptyInput  = errors.New("outline file is empty")
	ErrEmptyOutput = errors.New("no text output from model")
	ErrParseOutput = errors.New("failed to parse JSON from model")
)
