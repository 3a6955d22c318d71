package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <program> [args...]",
		Short: "Run a tool inside the project overlay",
		// Everything after `run` belongs to the child, including flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			code, err := c.app.Exec(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			c.exitCode = code
			return nil
		},
	}
}
