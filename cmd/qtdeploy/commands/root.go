// Package commands implements the CLI commands for the qtdeploy tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/qtdeploy/internal/app"
	"go.trai.ch/qtdeploy/internal/build"
)

// CLI represents the command line interface for qtdeploy.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
	configFile string
}

// New creates a new CLI instance over the assembled components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "qtdeploy",
		Short:         "Bundle a Linux binary and its libraries into an AppDir",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		components: components,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentFlags().StringVar(&c.configFile, "config", "",
		"Configuration file (default \"qtdeploy.yaml\" in the working directory)")

	rootCmd.AddCommand(c.newDeployCmd())
	rootCmd.AddCommand(c.newWorkerCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
