// cmd/create/create.go
package create

import (
	"github.com/spf13/cobra"
)

// NewCreateCmd is the parent of the generation commands.
func NewCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Generate a password, PIN or passphrase",
		Aliases: []string{"gen", "generate"},
	}
	cmd.AddCommand(
		NewPasswordCmd(),
		NewPINCmd(),
		NewPassphraseCmd(),
	)
	return cmd
}
