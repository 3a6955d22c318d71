// Package commands implements the CLI commands for tlenv.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/tlenv/internal/app"
	"go.trai.ch/tlenv/internal/build"
)

// CLI represents the command line interface for tlenv.
type CLI struct {
	app      *app.App
	rootCmd  *cobra.Command
	exitCode int
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "tlenv",
		Short:         "Project-local TeX Live environments",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code a completed run should terminate with,
// propagated from the child process of `tlenv run`.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
