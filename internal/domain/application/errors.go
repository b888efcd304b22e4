package application

import "errors"

var (
	// ErrApplicationNotFound indicates the application doesn't exist.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrInvalidInput indicates invalid application input.
	ErrInvalidInput = errors.New("invalid application input")
)
