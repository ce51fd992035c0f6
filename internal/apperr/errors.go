// Package apperr defines the error taxonomy shared by every store. Handlers
// translate these into status codes; anything else surfaces as a 500 with a
// generic message.
package apperr

import "errors"

var ErrNotFound = errors.New("not found")

// ErrDuplicate signals a uniqueness violation, e.g. favoriting the same
// artwork twice.
var ErrDuplicate = errors.New("already exists")

// ErrLikesExhausted signals an unlike on an artwork whose counter is
// already at zero.
var ErrLikesExhausted = errors.New("likes already at zero")

// ValidationError covers malformed identifiers, missing required fields and
// invalid enum values.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Invalid(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is a ValidationError anywhere in its
// chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
