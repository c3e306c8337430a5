// cmd/create/passphrase.go
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

const kindPassphrase = "passphrase"

func NewPassphraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate a memorable passphrase",
		Long: `Generate capitalised words from the built-in word list joined by a
separator, followed by a number from 0 to 99.`,
		Example: `  keysmith create passphrase
  keysmith create passphrase --words 6 --separator .`,
		Args: cobra.NoArgs,
		RunE: ks_cli.Wrap(runCreatePassphrase),
	}
	cmd.Flags().IntP("words", "w", 0, "number of words (default passphrase.words)")
	cmd.Flags().StringP("separator", "s", "", "text placed between tokens (default passphrase.separator)")
	cmd.Flags().Bool("show-strength", false, "evaluate the generated passphrase")
	return cmd
}

func runCreatePassphrase(rc *ks_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)
	cfg := config.FromContext(rc.Ctx)

	words := cfg.Passphrase.Words
	if cmd.Flags().Changed("words") {
		words, _ = cmd.Flags().GetInt("words")
	}
	separator := cfg.Passphrase.Separator
	if cmd.Flags().Changed("separator") {
		separator, _ = cmd.Flags().GetString("separator")
	}

	logger.Info("Generating passphrase",
		zap.Int("words", words),
		zap.String("separator", separator),
		zap.Int("word_list_size", crypto.WordListSize))
	phrase, err := crypto.GeneratePassphrase(words, separator)
	if err != nil {
		return err
	}
	telemetry.RecordGenerated(rc.Ctx, kindPassphrase, 1)
	rc.Attributes["kind"] = kindPassphrase

	showStrength, _ := cmd.Flags().GetBool("show-strength")
	return renderGenerated(cmd, cfg, kindPassphrase, []string{phrase}, showStrength)
}
