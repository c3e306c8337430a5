/*
Copyright © 2025 CODE MONKEY CYBERSECURITY git@cybermonkey.net.au
*/
// cmd/inspect/inspect.go
package inspect

import (
	"github.com/spf13/cobra"
)

// NewInspectCmd is the parent of the evaluation commands.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspect",
		Short:   "Evaluate existing secrets",
		Aliases: []string{"check", "rate"},
	}
	cmd.AddCommand(NewStrengthCmd())
	return cmd
}
