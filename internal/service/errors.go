package service

import (
	"errors"
	"fmt"
)

var (
	ErrMissingToken    = errors.New("missing authorization header")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrProfileNotFound = errors.New("user profile not found")
)

// UpstreamError reports a failed data-store call. Op names the call.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
