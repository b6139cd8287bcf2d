package calsync

import "errors"

var (
	ErrMissingArgument   = errors.New("missing required argument")
	ErrInvalidTimeRange  = errors.New("end must be after start")
	ErrInvalidRecurrence = errors.New("invalid recurrence rule")
)
