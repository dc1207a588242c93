// Package common defines sentinel errors shared across shopkeeper layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound         = errors.New("not found")
	ErrDuplicateAccount = errors.New("account already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal           = errors.New("internal error")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Auth errors (missing, invalid, expired or malformed token).
	ErrUnauthenticated = errors.New("not authenticated")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
)
