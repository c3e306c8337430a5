/* cmd/root.go */

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/CodeMonkeyCybersecurity/keysmith/cmd/create"
	"github.com/CodeMonkeyCybersecurity/keysmith/cmd/inspect"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/config"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the keysmith command tree with its own configuration
// state, so tests can execute it repeatedly.
func NewRootCmd() *cobra.Command {
	v := config.New()
	var (
		configPath string
		noColor    bool
	)

	root := &cobra.Command{
		Use:   shared.BinaryName,
		Short: "Generate passwords, PINs and passphrases and rate their strength",
		Long: `keysmith generates secrets from a cryptographically secure random source
and scores passwords against a fixed strength rubric.

Secrets are written to stdout; logs go to stderr.`,
		Version:       shared.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(""); err != nil {
				return err
			}
			if err := config.ReadFile(v, configPath); err != nil {
				return err
			}
			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}
			if noColor {
				cfg.Output.Color = false
			}

			logger.Init(logger.Options{
				Level:   cfg.Log.Level,
				File:    cfg.Log.File,
				Color:   cfg.Output.Color,
				Console: cmd.ErrOrStderr(),
			})
			if err := telemetry.Init(shared.ServiceName, cfg.Telemetry.Enabled, cfg.Telemetry.File); err != nil {
				return ks_err.NewConfigError("cannot start telemetry", err,
					"Set telemetry.file to a writable path or disable telemetry")
			}

			cmd.SetContext(config.WithContext(cmd.Context(), cfg))
			return nil
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return ks_err.InvalidRequest(err.Error(), "Run '"+cmd.CommandPath()+" --help' for usage")
	})

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/keysmith/config.yaml)")
	root.PersistentFlags().String("format", "text", "output format: text, json or yaml")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	if err := config.BindFlags(v, root.PersistentFlags(), map[string]string{
		"format":    config.KeyOutputFormat,
		"log-level": config.KeyLogLevel,
	}); err != nil {
		panic(fmt.Sprintf("binding persistent flags: %v", err))
	}

	root.AddCommand(
		create.NewCreateCmd(),
		inspect.NewInspectCmd(),
	)
	return root
}

// Run executes the command tree with args and returns the process exit
// code. Errors are printed to stderr.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if shutdownErr := telemetry.Shutdown(ctx); shutdownErr != nil {
		_, _ = fmt.Fprintf(stderr, "Failed to flush telemetry: %v\n", shutdownErr)
	}
	if err == nil {
		return 0
	}

	if !ks_err.IsExpectedUserError(err) {
		if l := logger.L(); l != nil {
			l.Error("CLI execution error", zap.Error(err))
		}
	}
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	for _, hint := range ks_err.Hints(err) {
		_, _ = fmt.Fprintf(stderr, "Hint: %s\n", hint)
	}
	return ks_err.GetExitCode(err)
}

// Execute runs keysmith against the process arguments and exits.
func Execute() {
	code := Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err := logger.Sync(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to flush logs: %v\n", err)
	}
	os.Exit(code)
}
