package service

import (
	"errors"
	"fmt"
)

// Error kinds surfaced at the operation boundary. Handlers map these to HTTP
// status codes; anything else is treated as a storage failure and hidden
// behind a generic envelope.
var (
	// ErrNotFound covers both a missing id and a row owned by someone else —
	// deliberately indistinguishable so existence of other users' data never
	// leaks.
	ErrNotFound = errors.New("record not found")

	ErrInvalidCredentials = errors.New("login failed, please check your username/email and password")
	ErrAccountDisabled    = errors.New("your account has been deactivated by the admin")
	ErrDuplicateIdentity  = errors.New("username or email already registered")
)

// ValidationError reports a single user-correctable input problem.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError rejects a sale that would overdraw the ledger.
// The message matches the storefront copy exactly.
type InsufficientStockError struct {
	Remaining int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Not enough stock! Only %d left.", e.Remaining)
}
