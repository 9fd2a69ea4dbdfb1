// Package common defines shared constants and sentinel errors used across
// the investprofile client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyInUse  = errors.New("email already in use")

	// Validation errors.
	ErrInvalidInput = errors.New("invalid input")

	// Storage errors. Backends wrap driver failures with these.
	ErrStorageRead  = errors.New("storage read failure")
	ErrStorageWrite = errors.New("storage write failure")
)
