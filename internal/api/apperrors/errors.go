// Package apperrors defines the error taxonomy shared by repositories,
// services and controllers. Controllers map these sentinels to HTTP statuses
// in exactly one place.
package apperrors

import "errors"

var (
	// ErrConflict marks an attempt to register a username that already exists.
	ErrConflict = errors.New("username already taken")

	// ErrUnauthorized covers every credential failure: wrong password,
	// invalid, expired or malformed token, and tokens for users that no
	// longer exist. Callers must not be able to tell these apart.
	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrNotFound is returned when a task does not exist or belongs to a
	// different owner. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("task not found")
)
