package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Build or refresh the project overlay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return c.app.Install(cmd.Context(), force)
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rebuild even when the overlay is up to date")
	return cmd
}
