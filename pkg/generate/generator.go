package generate

import (
	"context"
	"errors"
	"reflect"

	"github.com/safe-waters/docker-scaffold/pkg/generate/write"
	"github.com/sirupsen/logrus"
)

type generator struct {
	configLoader       IConfigLoader
	manifestFormatter  IManifestFormatter
	dockerfileRenderer IDockerfileRenderer
	manifestWriter     write.IManifestWriter
	dockerfileWriter   write.IDockerfileWriter
	manifestValidator  IManifestValidator
	logger             logrus.FieldLogger
}

// NewGenerator returns an IGenerator after ensuring all arguments but
// manifestValidator are non-nil. If manifestValidator is nil, the manifest
// is written without being validated.
func NewGenerator(
	configLoader IConfigLoader,
	manifestFormatter IManifestFormatter,
	dockerfileRenderer IDockerfileRenderer,
	manifestWriter write.IManifestWriter,
	dockerfileWriter write.IDockerfileWriter,
	manifestValidator IManifestValidator,
	logger logrus.FieldLogger,
) (IGenerator, error) {
	if configLoader == nil || reflect.ValueOf(configLoader).IsNil() {
		return nil, errors.New("'configLoader' cannot be nil")
	}

	if manifestFormatter == nil ||
		reflect.ValueOf(manifestFormatter).IsNil() {
		return nil, errors.New("'manifestFormatter' cannot be nil")
	}

	if dockerfileRenderer == nil ||
		reflect.ValueOf(dockerfileRenderer).IsNil() {
		return nil, errors.New("'dockerfileRenderer' cannot be nil")
	}

	if manifestWriter == nil || reflect.ValueOf(manifestWriter).IsNil() {
		return nil, errors.New("'manifestWriter' cannot be nil")
	}

	if dockerfileWriter == nil || reflect.ValueOf(dockerfileWriter).IsNil() {
		return nil, errors.New("'dockerfileWriter' cannot be nil")
	}

	if manifestValidator != nil &&
		reflect.ValueOf(manifestValidator).IsNil() {
		manifestValidator = nil
	}

	if logger == nil || reflect.ValueOf(logger).IsNil() {
		return nil, errors.New("'logger' cannot be nil")
	}

	return &generator{
		configLoader:       configLoader,
		manifestFormatter:  manifestFormatter,
		dockerfileRenderer: dockerfileRenderer,
		manifestWriter:     manifestWriter,
		dockerfileWriter:   dockerfileWriter,
		manifestValidator:  manifestValidator,
		logger:             logger,
	}, nil
}

// GenerateFiles loads the configuration, writes the manifest and then
// writes the Dockerfile of every service with a build block, in the order
// the services appear. It stops at the first error. Files written before
// the error are left in place and returned along with it.
func (g *generator) GenerateFiles(
	ctx context.Context,
) ([]*write.WrittenPath, error) {
	cfg, err := g.configLoader.Load()
	if err != nil {
		return nil, err
	}

	manifest := BuildManifest(cfg)

	if g.manifestValidator != nil {
		if err := g.manifestValidator.ValidateManifest(
			ctx, manifest,
		); err != nil {
			return nil, err
		}

		g.logger.Debug("validated manifest")
	}

	contents, err := g.manifestFormatter.FormatManifest(manifest)
	if err != nil {
		return nil, err
	}

	var writtenPaths []*write.WrittenPath

	writtenPath, err := g.manifestWriter.WriteManifest(contents)
	if err != nil {
		return nil, err
	}

	writtenPaths = append(writtenPaths, writtenPath)

	g.logger.WithField("path", writtenPath.Path).Debug("wrote manifest")

	for _, service := range cfg.Services() {
		if err := ctx.Err(); err != nil {
			return writtenPaths, err
		}

		if !service.HasBuild() {
			g.logger.WithField(
				"service", service.Name,
			).Debug("no build block, skipping Dockerfile")

			continue
		}

		dockerfile, err := g.dockerfileRenderer.RenderDockerfile(service)
		if err != nil {
			return writtenPaths, err
		}

		writtenPath, err := g.dockerfileWriter.WriteDockerfile(dockerfile)
		if err != nil {
			return writtenPaths, err
		}

		writtenPaths = append(writtenPaths, writtenPath)

		g.logger.WithFields(logrus.Fields{
			"service": service.Name,
			"path":    writtenPath.Path,
		}).Debug("wrote Dockerfile")
	}

	return writtenPaths, nil
}
