// Package version provides the "version" command.
package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the docker-scaffold version. Release builds override it with
// -ldflags "-X github.com/safe-waters/docker-scaffold/cmd/version.Version=<tag>".
var Version = "v0.1.0" // nolint: gochecknoglobals

// NewVersionCmd creates the command 'version' used in
// 'docker scaffold version'.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the docker-scaffold version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
			return nil
		},
	}
}
