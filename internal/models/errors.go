package models

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("validation failed")
	// ErrUpstream marks a failure of the object store or another remote
	// dependency.
	ErrUpstream    = errors.New("upstream service failed")
	ErrUnavailable = errors.New("service not configured")
)
