// pkg/ks_err/types.go

package ks_err

import "errors"

// UserError marks an error as expected and recoverable by the user.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewExpectedError wraps an error for softer UX handling.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpectedUserError checks if the error is marked as expected. Requests
// and inputs rejected by validation count as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	if errors.As(err, &e) {
		return true
	}
	switch CategoryOf(err) {
	case CategoryInvalidRequest, CategoryInvalidInput, CategoryConfig:
		return true
	}
	return false
}
