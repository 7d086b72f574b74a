// Package verify provides the "verify" command.
package verify

import (
	"fmt"

	cmd_generate "github.com/safe-waters/docker-scaffold/cmd/generate"
	"github.com/safe-waters/docker-scaffold/pkg/generate/render"
	"github.com/safe-waters/docker-scaffold/pkg/verify"
	"github.com/safe-waters/docker-scaffold/pkg/verify/diff"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const namespace = "verify"

// NewVerifyCmd creates the command 'verify' used in
// 'docker scaffold verify'.
func NewVerifyCmd(fs afero.Fs) (*cobra.Command, error) {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify that the manifest and Dockerfiles are up-to-date",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cmd_generate.BindPFlags(cmd, namespace, []string{
				"config-dir",
				"output-dir",
				"compose-file",
				"format",
				"base-dir",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := cmd_generate.ParseFlags(namespace, false)
			if err != nil {
				return err
			}

			verifier, err := SetupVerifier(fs, flags, logrus.StandardLogger())
			if err != nil {
				return err
			}

			if err := verifier.VerifyFiles(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "files are up-to-date!")

			return nil
		},
	}
	cmd_generate.AddFlags(verifyCmd)

	return verifyCmd, nil
}

// SetupVerifier creates a Verifier configured for docker-scaffold's cli.
func SetupVerifier(
	fs afero.Fs,
	flags *cmd_generate.Flags,
	logger logrus.FieldLogger,
) (verify.IVerifier, error) {
	loader, err := cmd_generate.DefaultConfigLoader(fs, flags, logger)
	if err != nil {
		return nil, err
	}

	formatter, err := cmd_generate.DefaultManifestFormatter(flags)
	if err != nil {
		return nil, err
	}

	manifestWriter, err := cmd_generate.DefaultManifestWriter(fs, flags)
	if err != nil {
		return nil, err
	}

	dockerfileWriter, err := cmd_generate.DefaultDockerfileWriter(fs, flags)
	if err != nil {
		return nil, err
	}

	manifestDifferentiator, err := diff.NewManifestDifferentiator(flags.Format)
	if err != nil {
		return nil, err
	}

	return verify.NewVerifier(
		fs,
		loader,
		formatter,
		render.NewDockerfileRenderer(),
		manifestWriter,
		dockerfileWriter,
		manifestDifferentiator,
		diff.NewDockerfileDifferentiator(),
		logger,
	)
}
