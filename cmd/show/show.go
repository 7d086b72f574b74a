// Package show provides the "show" command, which prints what would be
// generated without writing anything.
package show

import (
	"fmt"
	"io"

	cmd_generate "github.com/safe-waters/docker-scaffold/cmd/generate"
	"github.com/safe-waters/docker-scaffold/pkg/config"
	"github.com/safe-waters/docker-scaffold/pkg/generate"
	"github.com/safe-waters/docker-scaffold/pkg/generate/format"
	"github.com/safe-waters/docker-scaffold/pkg/generate/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const namespace = "show"

// NewShowCmd creates the command 'show' used in 'docker scaffold show',
// with the subcommands 'compose' and 'dockerfiles'.
func NewShowCmd(fs afero.Fs) (*cobra.Command, error) {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the manifest or Dockerfiles without writing them",
	}

	composeCmd := &cobra.Command{
		Use:   "compose",
		Short: "Print the manifest as YAML, or JSON with --format json",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cmd_generate.BindPFlags(
				cmd, namespace, []string{"config-dir", "compose-file", "format"},
			)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(fs)
			if err != nil {
				return err
			}

			return PrintManifest(
				cmd.OutOrStdout(),
				cfg,
				format.Format(
					viper.GetString(fmt.Sprintf("%s.%s", namespace, "format")),
				),
			)
		},
	}
	addFlags(composeCmd)
	composeCmd.Flags().String(
		"format", string(format.YAML), "Output format, 'yaml' or 'json'",
	)

	dockerfilesCmd := &cobra.Command{
		Use:   "dockerfiles",
		Short: "Print the Dockerfile of every service with actions",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cmd_generate.BindPFlags(
				cmd, namespace, []string{"config-dir", "compose-file"},
			)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(fs)
			if err != nil {
				return err
			}

			return PrintDockerfiles(
				cmd.OutOrStdout(), cfg, render.NewDockerfileRenderer(),
			)
		},
	}
	addFlags(dockerfilesCmd)

	showCmd.AddCommand(composeCmd, dockerfilesCmd)

	return showCmd, nil
}

// PrintManifest writes the manifest of cfg to w. YAML is standard YAML,
// unlike the manifest written by 'generate'.
func PrintManifest(
	w io.Writer,
	cfg *config.Configuration,
	manifestFormat format.Format,
) error {
	manifest := generate.BuildManifest(cfg)

	var (
		byt []byte
		err error
	)

	switch manifestFormat {
	case format.YAML:
		byt, err = yaml.Marshal(manifest)
	case format.JSON:
		byt, err = format.NewJSONManifestFormatter().FormatManifest(manifest)
		byt = append(byt, '\n')
	default:
		return fmt.Errorf(
			"%w: '%s'", format.ErrUnsupportedFormat, manifestFormat,
		)
	}

	if err != nil {
		return err
	}

	_, err = w.Write(byt)

	return err
}

// PrintDockerfiles writes every non-empty Dockerfile of cfg to w, each
// followed by a blank line.
func PrintDockerfiles(
	w io.Writer,
	cfg *config.Configuration,
	renderer generate.IDockerfileRenderer,
) error {
	for _, service := range generate.BuildServices(cfg) {
		dockerfile, err := renderer.RenderDockerfile(service)
		if err != nil {
			return err
		}

		if dockerfile.Contents == "" {
			continue
		}

		if _, err := fmt.Fprintf(w, "%s\n\n", dockerfile.Contents); err != nil {
			return err
		}
	}

	return nil
}

func addFlags(cmd *cobra.Command) {
	cmd.Flags().String(
		"config-dir", "docker",
		"Directory to discover the JSON configuration file in",
	)
	cmd.Flags().String(
		"compose-file", "compose.json",
		"Manifest file name, never read as the configuration file",
	)
}

func loadConfig(fs afero.Fs) (*config.Configuration, error) {
	var (
		configDir = viper.GetString(
			fmt.Sprintf("%s.%s", namespace, "config-dir"),
		)
		composeFileName = viper.GetString(
			fmt.Sprintf("%s.%s", namespace, "compose-file"),
		)
	)

	pathCollector, err := config.NewPathCollector(fs, configDir, composeFileName)
	if err != nil {
		return nil, err
	}

	parser, err := config.NewParser(fs)
	if err != nil {
		return nil, err
	}

	loader, err := config.NewLoader(
		pathCollector, parser, logrus.StandardLogger(),
	)
	if err != nil {
		return nil, err
	}

	return loader.Load()
}
