package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources (an offer or
	// talent id that does not resolve). Batch drivers propagate it untouched.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)
