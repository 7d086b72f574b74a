// Package docker provides the "docker" command.
package docker

import (
	"github.com/spf13/cobra"
)

// NewDockerCmd creates the root command for docker-scaffold, so that it
// runs as 'docker scaffold' when installed as a docker cli plugin.
func NewDockerCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "docker",
		Short:         "Root command for docker scaffold",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	return rootCmd
}
