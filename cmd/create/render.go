// cmd/create/render.go
package create

import (
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/config"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/output"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/strength"
	"github.com/spf13/cobra"
)

func rendererFor(cmd *cobra.Command, cfg *config.Config) *output.Renderer {
	// Format was validated when the configuration was loaded.
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		format = output.FormatText
	}
	return output.New(cmd.OutOrStdout(), format, cfg.Output.Color)
}

func renderGenerated(cmd *cobra.Command, cfg *config.Config, kind string, secrets []string, withStrength bool) error {
	results := make([]output.Generated, 0, len(secrets))
	for _, s := range secrets {
		g := output.Generated{Kind: kind, Secret: s}
		if withStrength {
			report, err := strength.Evaluate(s)
			if err != nil {
				return err
			}
			g.Strength = &report
		}
		results = append(results, g)
	}
	return rendererFor(cmd, cfg).Generated(results)
}
