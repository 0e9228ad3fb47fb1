package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input")
)
