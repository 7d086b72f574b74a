package generate

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/safe-waters/docker-scaffold/pkg/config"
	"github.com/safe-waters/docker-scaffold/pkg/generate"
	"github.com/safe-waters/docker-scaffold/pkg/generate/format"
	"github.com/safe-waters/docker-scaffold/pkg/generate/validate"
	"github.com/safe-waters/docker-scaffold/pkg/generate/write"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DefaultConfigLoader creates an ILoader that discovers the configuration
// file in flags.ConfigDir, skipping the manifest named
// flags.ComposeFileName.
func DefaultConfigLoader(
	fs afero.Fs,
	flags *Flags,
	logger logrus.FieldLogger,
) (config.ILoader, error) {
	if err := ensureFlagsNotNil(flags); err != nil {
		return nil, err
	}

	pathCollector, err := config.NewPathCollector(
		fs, flags.ConfigDir, flags.ComposeFileName,
	)
	if err != nil {
		return nil, err
	}

	parser, err := config.NewParser(fs)
	if err != nil {
		return nil, err
	}

	return config.NewLoader(pathCollector, parser, logger)
}

// DefaultManifestFormatter creates the IManifestFormatter for flags.Format.
func DefaultManifestFormatter(flags *Flags) (format.IManifestFormatter, error) {
	if err := ensureFlagsNotNil(flags); err != nil {
		return nil, err
	}

	return format.NewManifestFormatter(flags.Format)
}

// DefaultManifestWriter creates an IManifestWriter that writes
// flags.ComposeFileName in flags.OutputDir.
func DefaultManifestWriter(
	fs afero.Fs,
	flags *Flags,
) (write.IManifestWriter, error) {
	if err := ensureFlagsNotNil(flags); err != nil {
		return nil, err
	}

	return write.NewManifestWriter(fs, flags.OutputDir, flags.ComposeFileName)
}

// DefaultDockerfileWriter creates an IDockerfileWriter that resolves
// relative Dockerfile paths from flags.BaseDir.
func DefaultDockerfileWriter(
	fs afero.Fs,
	flags *Flags,
) (write.IDockerfileWriter, error) {
	if err := ensureFlagsNotNil(flags); err != nil {
		return nil, err
	}

	return write.NewDockerfileWriter(fs, flags.BaseDir)
}

// DefaultManifestValidator returns a compose validator if flags.Validate is
// set, otherwise nil.
func DefaultManifestValidator(
	flags *Flags,
) (generate.IManifestValidator, error) {
	if err := ensureFlagsNotNil(flags); err != nil {
		return nil, err
	}

	if !flags.Validate {
		return nil, nil
	}

	return validate.NewComposeValidator(
		flags.BaseDir, flags.ComposeFileName,
	), nil
}

// DefaultLoadEnv loads environment variables from a dotenv file. A missing
// ".env" is not an error, but any other missing path is.
func DefaultLoadEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if path == ".env" {
			return nil
		}

		return err
	}

	return godotenv.Load(path)
}

func ensureFlagsNotNil(flags *Flags) error {
	if flags == nil {
		return errors.New("'flags' cannot be nil")
	}

	return nil
}
