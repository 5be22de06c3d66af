package client

import "errors"

// Error taxonomy surfaced by every remote call. Callers branch with
// errors.Is; the concrete message still carries the server's detail.
var (
	// ErrNetwork: transport failure or the backend answered 5xx.
	ErrNetwork = errors.New("network error")
	// ErrValidation: the request was rejected before or by the backend as
	// malformed (missing name, negative calories, out-of-range month…).
	ErrValidation = errors.New("validation error")
	// ErrConflict: unique-name collision on a saved food.
	ErrConflict = errors.New("conflict")
	// ErrNotFound: the row does not exist, or belongs to someone else.
	ErrNotFound = errors.New("not found")
	// ErrAuthorization: missing, expired or foreign credentials.
	ErrAuthorization = errors.New("not authorized")
)
