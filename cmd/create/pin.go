// cmd/create/pin.go
package create

import (
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/config"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_cli"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_io"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/telemetry"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const kindPIN = "pin"

func NewPINCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Generate a numeric PIN",
		Example: `  keysmith create pin
  keysmith create pin --length 6`,
		Args: cobra.NoArgs,
		RunE: ks_cli.Wrap(runCreatePIN),
	}
	cmd.Flags().IntP("length", "l", 0, "number of digits, at least 4 (default pin.length)")
	cmd.Flags().Bool("show-strength", false, "evaluate the generated PIN")
	return cmd
}

func runCreatePIN(rc *ks_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)
	cfg := config.FromContext(rc.Ctx)

	length := cfg.PIN.Length
	if cmd.Flags().Changed("length") {
		length, _ = cmd.Flags().GetInt("length")
	}

	logger.Info("Generating PIN", zap.Int("length", length))
	pin, err := crypto.GeneratePIN(length)
	if err != nil {
		return err
	}
	telemetry.RecordGenerated(rc.Ctx, kindPIN, 1)
	rc.Attributes["kind"] = kindPIN

	showStrength, _ := cmd.Flags().GetBool("show-strength")
	return renderGenerated(cmd, cfg, kindPIN, []string{pin}, showStrength)
}
