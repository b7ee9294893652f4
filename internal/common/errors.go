// Package common defines shared constants and sentinel errors used across
// the server and client layers of SmartFridge. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Request validation errors.
	ErrInvalidPayload = errors.New("invalid payload")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
