// pkg/ks_cli/wrap.go

package ks_cli

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RunFunc is a command body that receives the runtime context.
type RunFunc func(rc *ks_io.RuntimeContext, cmd *cobra.Command, args []string) error

// Wrap gives fn a RuntimeContext, recovers panics into errors and closes the
// command span. Unexpected errors gain a stack; user errors pass unchanged
// so their message prints cleanly. Cancellation is treated as a user error.
func Wrap(fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := ks_io.NewContext(cmd.Context(), cmd.CommandPath())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		rc.Log.Debug("Running command", zap.Int("args", len(args)))

		err = fn(rc, cmd, args)
		if cerr.Is(err, context.Canceled) {
			return ks_err.NewExpectedError(err)
		}
		if err != nil && !ks_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
