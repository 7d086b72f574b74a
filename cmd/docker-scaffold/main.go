// Package main is a cli tool that generates a compose manifest and one
// Dockerfile per service from a single JSON configuration - describe
// services, networks, volumes and build steps once as data, and run
// 'docker scaffold generate' to write the files from it.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/safe-waters/docker-scaffold/cmd/docker"
	"github.com/safe-waters/docker-scaffold/cmd/generate"
	"github.com/safe-waters/docker-scaffold/cmd/scaffold"
	"github.com/safe-waters/docker-scaffold/cmd/show"
	"github.com/safe-waters/docker-scaffold/cmd/verify"
	"github.com/safe-waters/docker-scaffold/cmd/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "docker-cli-plugin-metadata" {
		m := map[string]string{
			"SchemaVersion":    "0.1.0",
			"Vendor":           "https://github.com/safe-waters/docker-scaffold",
			"Version":          version.Version,
			"ShortDescription": "Generate compose manifests and Dockerfiles",
		}
		j, _ := json.Marshal(m)

		fmt.Println(string(j))

		os.Exit(0)
	}

	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}

func execute() error {
	if err := initViper(); err != nil {
		return err
	}

	fs := afero.NewOsFs()

	dockerCmd := docker.NewDockerCmd()

	scaffoldCmd, err := scaffold.NewScaffoldCmd()
	if err != nil {
		return err
	}

	versionCmd := version.NewVersionCmd()

	generateCmd, err := generate.NewGenerateCmd(fs)
	if err != nil {
		return err
	}

	verifyCmd, err := verify.NewVerifyCmd(fs)
	if err != nil {
		return err
	}

	showCmd, err := show.NewShowCmd(fs)
	if err != nil {
		return err
	}

	dockerCmd.AddCommand(scaffoldCmd)
	scaffoldCmd.AddCommand(
		[]*cobra.Command{versionCmd, generateCmd, verifyCmd, showCmd}...,
	)

	return dockerCmd.Execute()
}

func initViper() error {
	const (
		cfgFilePrefix = ".docker-scaffold"
		envPrefix     = "DOCKER_SCAFFOLD"
	)

	// works with variety of files such as .docker-scaffold.[yaml|json|toml]
	viper.SetConfigName(cfgFilePrefix)
	viper.AddConfigPath(".")

	// generate.format can be set with DOCKER_SCAFFOLD_GENERATE_FORMAT
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("malformed '%s' file: %v", cfgFilePrefix, err)
		}
	}

	return nil
}
