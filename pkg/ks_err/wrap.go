// pkg/ks_err/wrap.go

package ks_err

import (
	cerr "github.com/cockroachdb/errors"
)

// ValidationHint is attached by WrapValidationError.
const ValidationHint = "run with --help to list accepted values"

// ConfigHint is attached by WrapConfigError.
const ConfigHint = "check the config file, KEYSMITH_* environment and flags"

func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return cerr.WithHint(cerr.WithStack(err), ValidationHint)
}

func WrapConfigError(err error) error {
	if err == nil {
		return nil
	}
	return cerr.WithHint(cerr.WithStack(err), ConfigHint)
}

// Hints returns the user-facing hints attached anywhere in err's chain.
func Hints(err error) []string {
	return cerr.GetAllHints(err)
}
