package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfDelete         = errors.New("cannot delete own account")

	// Catalog errors
	ErrVideoNotFound = errors.New("video not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found or expired")

	// Store errors
	ErrStoreUnavailable = errors.New("record store unavailable")
)
