package datemath

import "errors"

var (
	ErrUnrecognized = errors.New("unrecognized date expression")
	ErrInvalidClock = errors.New("invalid clock time")
	ErrInvalidDate  = errors.New("invalid calendar date")
)
