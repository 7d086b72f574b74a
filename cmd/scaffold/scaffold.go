// Package scaffold provides the "scaffold" command.
package scaffold

import (
	"github.com/safe-waters/docker-scaffold/cmd/generate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewScaffoldCmd creates the command 'scaffold' used in 'docker scaffold'.
// Its persistent flags load a dotenv file and set the log level before any
// subcommand runs.
func NewScaffoldCmd() (*cobra.Command, error) {
	scaffoldCmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate compose manifests and Dockerfiles from a JSON config",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlag(
				"env-file", cmd.Flags().Lookup("env-file"),
			); err != nil {
				return err
			}

			if err := viper.BindPFlag(
				"verbose", cmd.Flags().Lookup("verbose"),
			); err != nil {
				return err
			}

			SetupLogger(logrus.StandardLogger(), viper.GetBool("verbose"))

			return generate.DefaultLoadEnv(viper.GetString("env-file"))
		},
	}
	scaffoldCmd.PersistentFlags().StringP(
		"env-file", "e", ".env", "Path to .env file",
	)
	scaffoldCmd.PersistentFlags().BoolP(
		"verbose", "v", false, "Print debug logs to stderr",
	)

	return scaffoldCmd, nil
}

// SetupLogger logs warnings and errors as text, or everything if verbose.
func SetupLogger(logger *logrus.Logger, verbose bool) {
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
		return
	}

	logger.SetLevel(logrus.WarnLevel)
}
