// cmd/inspect/strength.go
package inspect

import (
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/config"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_cli"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_io"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/output"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/strength"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func NewStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength [password]",
		Short: "Score a password against the strength rubric",
		Long: `Score a password from 0 to 100 and suggest improvements.

Without an argument the password is read from stdin: one line, without
echo when stdin is a terminal. Prefer stdin, since arguments end up in
shell history.`,
		Example: `  keysmith inspect strength
  printf '%s\n' "$PASSWORD" | keysmith inspect strength --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: ks_cli.Wrap(runInspectStrength),
	}
}

func runInspectStrength(rc *ks_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)
	cfg := config.FromContext(rc.Ctx)

	var secret string
	if len(args) == 1 {
		secret = args[0]
	} else {
		var err error
		secret, err = ks_io.ReadSecret(rc, cmd.InOrStdin(), cmd.ErrOrStderr(), "Password: ")
		if err != nil {
			return err
		}
	}

	logger.Debug("Evaluating password", zap.String("secret", crypto.Redact(secret)))
	report, err := strength.Evaluate(secret)
	if err != nil {
		return err
	}
	logger.Info("Evaluated password strength",
		zap.Int("score", report.Score),
		zap.String("label", report.Label.String()),
		zap.Int("length", report.Length))
	rc.Attributes["label"] = report.Label.String()

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	return output.New(cmd.OutOrStdout(), format, cfg.Output.Color).Report(report)
}
