package commands

import (
	"github.com/spf13/cobra"
)

// newWorkerCmd runs one deployment for a supervising front end. The
// machine-readable PROGRESS:<percent>:<message> lines come from the worker
// tracer, selected before dependency wiring via QTDEPLOY_PROGRESS=worker.
func (c *CLI) newWorkerCmd() *cobra.Command {
	flags := &deployFlags{}

	cmd := &cobra.Command{
		Use:    "worker",
		Short:  "Run one deployment, emitting parseable progress on stdout",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.applyVerbosity(flags)
			req := flags.request()
			req.ConfigFile = c.configFile
			_, err := c.components.App.Deploy(cmd.Context(), req)
			return err
		},
	}
	bindDeployFlags(cmd, flags)
	return cmd
}
