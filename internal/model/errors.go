package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrNameRequired    = errors.New("player name is required")
	ErrNegativeStat    = errors.New("statistics must not be negative")
	ErrNegativeDelta   = errors.New("feedback increments must not be negative")
	ErrInvalidPosition = errors.New("invalid position")

	// Session errors
	ErrUnauthorized      = errors.New("no stored credential")
	ErrForbidden         = errors.New("admin role required")
	ErrInvalidCredential = errors.New("invalid or expired credential")
	ErrInvalidLogin      = errors.New("invalid email or password")

	// Account errors
	ErrAccountNotFound = errors.New("account not found")
)
