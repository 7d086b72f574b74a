// Package generate provides the "generate" command.
package generate

import (
	"fmt"
	"io"

	"github.com/safe-waters/docker-scaffold/pkg/generate"
	"github.com/safe-waters/docker-scaffold/pkg/generate/render"
	"github.com/safe-waters/docker-scaffold/pkg/generate/write"
	"github.com/safe-waters/docker-scaffold/pkg/kind"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const namespace = "generate"

// NewGenerateCmd creates the command 'generate' used in
// 'docker scaffold generate'.
func NewGenerateCmd(fs afero.Fs) (*cobra.Command, error) {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a compose manifest and Dockerfiles from a config",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return BindPFlags(cmd, namespace, []string{
				"config-dir",
				"output-dir",
				"compose-file",
				"format",
				"base-dir",
				"validate",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := parseFlags()
			if err != nil {
				return err
			}

			generator, err := SetupGenerator(fs, flags, logrus.StandardLogger())
			if err != nil {
				return err
			}

			writtenPaths, err := generator.GenerateFiles(cmd.Context())
			printWrittenPaths(cmd.OutOrStdout(), writtenPaths)

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "successfully generated files!")

			return nil
		},
	}
	AddFlags(generateCmd)
	generateCmd.Flags().Bool(
		"validate", false,
		"Validate the manifest with the compose loader before writing it",
	)

	return generateCmd, nil
}

// AddFlags adds the flags shared by commands that need to know where the
// configuration is and where files are generated.
func AddFlags(cmd *cobra.Command) {
	cmd.Flags().String(
		"config-dir", "docker",
		"Directory to discover the JSON configuration file in",
	)
	cmd.Flags().String(
		"output-dir", "docker", "Directory to write the manifest to",
	)
	cmd.Flags().String(
		"compose-file", "compose.json",
		"Manifest file name, never read as the configuration file",
	)
	cmd.Flags().String(
		"format", "json", "Manifest format, 'json' or 'yaml'",
	)
	cmd.Flags().String(
		"base-dir", ".", "Directory relative Dockerfile paths are resolved from",
	)
}

// SetupGenerator creates a Generator configured for docker-scaffold's cli.
func SetupGenerator(
	fs afero.Fs,
	flags *Flags,
	logger logrus.FieldLogger,
) (generate.IGenerator, error) {
	if err := ensureFlagsNotNil(flags); err != nil {
		return nil, err
	}

	loader, err := DefaultConfigLoader(fs, flags, logger)
	if err != nil {
		return nil, err
	}

	formatter, err := DefaultManifestFormatter(flags)
	if err != nil {
		return nil, err
	}

	manifestWriter, err := DefaultManifestWriter(fs, flags)
	if err != nil {
		return nil, err
	}

	dockerfileWriter, err := DefaultDockerfileWriter(fs, flags)
	if err != nil {
		return nil, err
	}

	validator, err := DefaultManifestValidator(flags)
	if err != nil {
		return nil, err
	}

	return generate.NewGenerator(
		loader,
		formatter,
		render.NewDockerfileRenderer(),
		manifestWriter,
		dockerfileWriter,
		validator,
		logger,
	)
}

// BindPFlags binds flags to viper under namespace, so that a key such as
// 'generate.format' may also be set in the docker-scaffold config file.
func BindPFlags(
	cmd *cobra.Command,
	namespace string,
	flagNames []string,
) error {
	for _, name := range flagNames {
		if err := viper.BindPFlag(
			fmt.Sprintf("%s.%s", namespace, name), cmd.Flags().Lookup(name),
		); err != nil {
			return err
		}
	}

	return nil
}

// ParseFlags reads the flags added by AddFlags from viper under namespace.
func ParseFlags(namespace string, validate bool) (*Flags, error) {
	var (
		configDir = viper.GetString(
			fmt.Sprintf("%s.%s", namespace, "config-dir"),
		)
		outputDir = viper.GetString(
			fmt.Sprintf("%s.%s", namespace, "output-dir"),
		)
		composeFileName = viper.GetString(
			fmt.Sprintf("%s.%s", namespace, "compose-file"),
		)
		manifestFormat = viper.GetString(
			fmt.Sprintf("%s.%s", namespace, "format"),
		)
		baseDir = viper.GetString(
			fmt.Sprintf("%s.%s", namespace, "base-dir"),
		)
	)

	return NewFlags(
		configDir, outputDir, composeFileName, manifestFormat, baseDir,
		validate,
	)
}

func parseFlags() (*Flags, error) {
	return ParseFlags(
		namespace, viper.GetBool(fmt.Sprintf("%s.%s", namespace, "validate")),
	)
}

func printWrittenPaths(w io.Writer, writtenPaths []*write.WrittenPath) {
	for _, writtenPath := range writtenPaths {
		switch writtenPath.Kind {
		case kind.Manifest:
			fmt.Fprintf(w, "manifest created -> %s\n", writtenPath.Path)
		case kind.Dockerfile:
			fmt.Fprintf(
				w, "%s Dockerfile created -> %s\n",
				writtenPath.ServiceName, writtenPath.Path,
			)
		}
	}
}
