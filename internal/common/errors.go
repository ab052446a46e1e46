// Package common defines shared sentinel errors used across the service
// and presentation layers. Callers should use errors.Is to match them.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUnauthorized       = errors.New("Invalid or expired session")
	ErrEmailTaken         = errors.New("Email already registered")

	// Validation errors. The messages are rendered verbatim in the UI.
	ErrFieldsRequired    = errors.New("All fields are required")
	ErrPasswordMismatch  = errors.New("Passwords do not match")
	ErrPasswordTooShort  = errors.New("Password must be at least 6 characters")
	ErrContentRequired   = errors.New("Content is required")
	ErrInvalidNoteID     = errors.New("Invalid note ID")
	ErrMissingCredential = errors.New("Email and password are required")
)
