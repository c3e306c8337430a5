// cmd/create/password.go
package create

import (
	"time"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/charset"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/config"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/history"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_cli"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_io"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/telemetry"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const kindPassword = "password"

// NewPasswordCmd generates passwords from a preset or an explicit policy.
func NewPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate a random password",
		Long: `Generate a password that contains at least one character from every
enabled class. Without flags the length comes from password.length in the
config file (default 12) and all four classes are used.`,
		Example: `  keysmith create password
  keysmith create password --length 20 --exclude-ambiguous
  keysmith create password --preset easy
  keysmith create password --classes lower,digit --extra '_-'
  keysmith create password --count 5 --show-strength --format json
  keysmith create password --description "staging db"`,
		Args: cobra.NoArgs,
		RunE: ks_cli.Wrap(runCreatePassword),
	}

	cmd.Flags().IntP("length", "l", 0, "password length (default password.length)")
	cmd.Flags().StringP("preset", "p", "", "composition preset: easy, medium or strong")
	cmd.Flags().String("classes", "", "comma-separated classes: lower, upper, digit, special (default all)")
	cmd.Flags().Bool("exclude-ambiguous", false, "leave out look-alike characters (il1Lo0O)")
	cmd.Flags().String("extra", "", "extra characters to add to the pool")
	cmd.Flags().IntP("count", "n", 1, "number of passwords to generate (max 50)")
	cmd.Flags().Bool("batch", false, "generate batch.count passwords")
	cmd.Flags().StringP("description", "d", "", "annotate each password for storage hand-off")
	cmd.Flags().Bool("show-strength", false, "evaluate each generated password")
	return cmd
}

func runCreatePassword(rc *ks_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)
	cfg := config.FromContext(rc.Ctx)

	req, err := passwordRequest(cmd, cfg)
	if err != nil {
		return err
	}
	count := batchCount(cmd, cfg)

	logger.Info("Generating passwords",
		zap.Int("count", count),
		zap.Int("length", req.Length),
		zap.String("classes", req.Classes.String()),
		zap.Bool("exclude_ambiguous", req.ExcludeAmbiguous),
		zap.Int("extra_chars", len([]rune(req.ExtraChars))))

	var secrets []string
	if count == 1 {
		pw, err := crypto.Generate(req)
		if err != nil {
			return err
		}
		secrets = []string{pw}
	} else {
		secrets, err = crypto.GenerateMany(count, req)
		if err != nil {
			return err
		}
	}
	telemetry.RecordGenerated(rc.Ctx, kindPassword, len(secrets))
	rc.Attributes["kind"] = kindPassword
	logger.Debug("Generated passwords", zap.Strings("secrets", crypto.RedactAll(secrets)))

	description, _ := cmd.Flags().GetString("description")
	if cmd.Flags().Changed("description") {
		entries, err := history.NewEntries(secrets, description, time.Now().UTC())
		if err != nil {
			return err
		}
		return rendererFor(cmd, cfg).Entries(entries)
	}

	showStrength, _ := cmd.Flags().GetBool("show-strength")
	return renderGenerated(cmd, cfg, kindPassword, secrets, showStrength)
}

// passwordRequest merges the flags over the configured defaults.
func passwordRequest(cmd *cobra.Command, cfg *config.Config) (crypto.GenerationRequest, error) {
	flags := cmd.Flags()

	customClasses := flags.Changed("classes") || flags.Changed("extra")
	presetName := ""
	if flags.Changed("preset") {
		presetName, _ = flags.GetString("preset")
		if presetName != "" && customClasses {
			return crypto.GenerationRequest{}, ks_err.InvalidRequest(
				"--preset cannot be combined with --classes or --extra",
				"Drop --preset to choose classes yourself")
		}
	} else if !customClasses {
		// a configured preset yields to explicit class flags
		presetName = cfg.Password.Preset
	}
	exclude := cfg.Password.ExcludeAmbiguous
	if flags.Changed("exclude-ambiguous") {
		exclude, _ = flags.GetBool("exclude-ambiguous")
	}
	length := 0
	if flags.Changed("length") {
		length, _ = flags.GetInt("length")
	}

	if presetName != "" {
		preset, err := crypto.ParsePreset(presetName)
		if err != nil {
			return crypto.GenerationRequest{}, err
		}
		if flags.Changed("length") && length <= 0 {
			return crypto.GenerationRequest{}, ks_err.InvalidRequestf("password length must be at least %d characters", crypto.MinLength)
		}
		req, err := preset.Request(length)
		if err != nil {
			return crypto.GenerationRequest{}, err
		}
		req.ExcludeAmbiguous = req.ExcludeAmbiguous || exclude
		return req, nil
	}

	if !flags.Changed("length") {
		length = cfg.Password.Length
	}
	classes := charset.AllClasses
	if flags.Changed("classes") {
		raw, _ := flags.GetString("classes")
		parsed, err := charset.ParseSet(raw)
		if err != nil {
			return crypto.GenerationRequest{}, ks_err.InvalidRequest(err.Error(),
				"Use a comma-separated list of lower, upper, digit, special")
		}
		classes = parsed
	}
	extra, _ := flags.GetString("extra")

	return crypto.GenerationRequest{
		Length:           length,
		Classes:          classes,
		ExcludeAmbiguous: exclude,
		ExtraChars:       extra,
	}, nil
}

// batchCount is 1 unless --batch or --count asks for more; an explicit
// --count wins over batch.count.
func batchCount(cmd *cobra.Command, cfg *config.Config) int {
	if cmd.Flags().Changed("count") {
		n, _ := cmd.Flags().GetInt("count")
		return n
	}
	if batch, _ := cmd.Flags().GetBool("batch"); batch {
		return cfg.Batch.Count
	}
	return 1
}
