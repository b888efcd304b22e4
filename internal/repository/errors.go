package repository

import "errors"

// ErrNotFound is returned when a requested entity doesn't exist
var ErrNotFound = errors.New("not found")
