package generate

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/safe-waters/docker-scaffold/pkg/generate/format"
)

// Flags holds all command line options to generate a manifest and
// Dockerfiles.
type Flags struct {
	ConfigDir       string
	OutputDir       string
	ComposeFileName string
	Format          format.Format
	BaseDir         string
	Validate        bool
}

// NewFlags returns Flags after validating its fields.
//
// configDir, outputDir and baseDir must be the current working directory
// or a sub directory. Absolute paths are not supported.
//
// configDir is where the configuration file is discovered. It may not be
// empty.
//
// outputDir is where the manifest is written. If empty, it is written in
// the current working directory.
//
// composeFileName may not contain slashes. The configuration file is never
// the file with this name.
//
// manifestFormat must be "json" or "yaml".
//
// baseDir is the directory relative Dockerfile paths are resolved from.
// If empty, the current working directory is used.
func NewFlags(
	configDir string,
	outputDir string,
	composeFileName string,
	manifestFormat string,
	baseDir string,
	validate bool,
) (*Flags, error) {
	if configDir == "" {
		return nil, errors.New("'config-dir' cannot be empty")
	}

	for _, dir := range []struct {
		name  string
		value string
	}{
		{name: "config-dir", value: configDir},
		{name: "output-dir", value: outputDir},
		{name: "base-dir", value: baseDir},
	} {
		if err := validateDirectory(dir.name, dir.value); err != nil {
			return nil, err
		}
	}

	if err := validateComposeFileName(composeFileName); err != nil {
		return nil, err
	}

	if err := validateFormat(manifestFormat); err != nil {
		return nil, err
	}

	if outputDir == "" {
		outputDir = "."
	}

	if baseDir == "" {
		baseDir = "."
	}

	return &Flags{
		ConfigDir:       configDir,
		OutputDir:       outputDir,
		ComposeFileName: composeFileName,
		Format:          format.Format(manifestFormat),
		BaseDir:         baseDir,
		Validate:        validate,
	}, nil
}

func validateDirectory(name string, dir string) error {
	if filepath.IsAbs(dir) {
		return fmt.Errorf("'%s' %s does not support absolute paths", dir, name)
	}

	if strings.HasPrefix(filepath.Join(".", dir), "..") {
		return fmt.Errorf(
			"'%s' %s is outside the current working directory", dir, name,
		)
	}

	return nil
}

func validateComposeFileName(composeFileName string) error {
	if composeFileName == "" {
		return errors.New("'compose-file' cannot be empty")
	}

	if filepath.IsAbs(composeFileName) {
		return fmt.Errorf(
			"'%s' compose-file does not support absolute paths",
			composeFileName,
		)
	}

	if strings.ContainsAny(composeFileName, `/\`) {
		return fmt.Errorf(
			"'%s' compose-file cannot contain slashes", composeFileName,
		)
	}

	return nil
}

func validateFormat(manifestFormat string) error {
	switch format.Format(manifestFormat) {
	case format.JSON, format.YAML:
		return nil
	}

	return fmt.Errorf(
		"%w: '%s' format must be '%s' or '%s'",
		format.ErrUnsupportedFormat, manifestFormat, format.JSON, format.YAML,
	)
}
