package verify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/safe-waters/docker-scaffold/pkg/generate"
	"github.com/safe-waters/docker-scaffold/pkg/generate/render"
	"github.com/safe-waters/docker-scaffold/pkg/generate/write"
	"github.com/safe-waters/docker-scaffold/pkg/kind"
	"github.com/safe-waters/docker-scaffold/pkg/verify/diff"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ErrMissingFile is wrapped by a FileDifference when a file that would be
// generated does not exist.
var ErrMissingFile = errors.New("file does not exist")

type verifier struct {
	fs                       afero.Fs
	configLoader             generate.IConfigLoader
	manifestFormatter        generate.IManifestFormatter
	dockerfileRenderer       generate.IDockerfileRenderer
	manifestWriter           write.IManifestWriter
	dockerfileWriter         write.IDockerfileWriter
	manifestDifferentiator   diff.IManifestDifferentiator
	dockerfileDifferentiator diff.IDockerfileDifferentiator
	logger                   logrus.FieldLogger
}

// NewVerifier returns an IVerifier after ensuring all arguments are
// non-nil. The writers are only used to resolve where files would be
// written; nothing is written.
func NewVerifier(
	fs afero.Fs,
	configLoader generate.IConfigLoader,
	manifestFormatter generate.IManifestFormatter,
	dockerfileRenderer generate.IDockerfileRenderer,
	manifestWriter write.IManifestWriter,
	dockerfileWriter write.IDockerfileWriter,
	manifestDifferentiator diff.IManifestDifferentiator,
	dockerfileDifferentiator diff.IDockerfileDifferentiator,
	logger logrus.FieldLogger,
) (IVerifier, error) {
	if fs == nil || reflect.ValueOf(fs).IsNil() {
		return nil, errors.New("'fs' cannot be nil")
	}

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

	if manifestDifferentiator == nil ||
		reflect.ValueOf(manifestDifferentiator).IsNil() {
		return nil, errors.New("'manifestDifferentiator' cannot be nil")
	}

	if dockerfileDifferentiator == nil ||
		reflect.ValueOf(dockerfileDifferentiator).IsNil() {
		return nil, errors.New("'dockerfileDifferentiator' cannot be nil")
	}

	if logger == nil || reflect.ValueOf(logger).IsNil() {
		return nil, errors.New("'logger' cannot be nil")
	}

	return &verifier{
		fs:                       fs,
		configLoader:             configLoader,
		manifestFormatter:        manifestFormatter,
		dockerfileRenderer:       dockerfileRenderer,
		manifestWriter:           manifestWriter,
		dockerfileWriter:         dockerfileWriter,
		manifestDifferentiator:   manifestDifferentiator,
		dockerfileDifferentiator: dockerfileDifferentiator,
		logger:                   logger,
	}, nil
}

// VerifyFiles renders the manifest and Dockerfiles in memory and compares
// them with the files on disk. If any differ, a *DifferentFilesError
// listing all of them is returned. Errors loading the configuration or
// rendering are returned as is.
func (v *verifier) VerifyFiles(ctx context.Context) error {
	cfg, err := v.configLoader.Load()
	if err != nil {
		return err
	}

	newManifest, err := v.manifestFormatter.FormatManifest(
		generate.BuildManifest(cfg),
	)
	if err != nil {
		return err
	}

	services := generate.BuildServices(cfg)

	dockerfiles := make([]*render.Dockerfile, 0, len(services))

	for _, service := range services {
		dockerfile, err := v.dockerfileRenderer.RenderDockerfile(service)
		if err != nil {
			return err
		}

		dockerfiles = append(dockerfiles, dockerfile)
	}

	var differences []*FileDifference

	if difference := v.verifyManifest(newManifest); difference != nil {
		differences = append(differences, difference)
	}

	dockerfileDifferences := make([]*FileDifference, len(dockerfiles))

	var waitGroup sync.WaitGroup

	for i, dockerfile := range dockerfiles {
		i := i
		dockerfile := dockerfile

		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()

			if ctx.Err() != nil {
				return
			}

			dockerfileDifferences[i] = v.verifyDockerfile(dockerfile)
		}()
	}

	waitGroup.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	for _, difference := range dockerfileDifferences {
		if difference != nil {
			differences = append(differences, difference)
		}
	}

	if len(differences) != 0 {
		return &DifferentFilesError{Differences: differences}
	}

	return nil
}

func (v *verifier) verifyManifest(newManifest []byte) *FileDifference {
	path := v.manifestWriter.Path()

	v.logger.WithField("path", path).Debug("verifying manifest")

	difference := &FileDifference{Kind: kind.Manifest, Path: path}

	existingManifest, err := v.readFile(path)
	if err != nil {
		difference.Err = err
		return difference
	}

	if err := v.manifestDifferentiator.DifferentiateManifest(
		existingManifest, newManifest,
	); err != nil {
		difference.Err = err
		return difference
	}

	return nil
}

func (v *verifier) verifyDockerfile(
	dockerfile *render.Dockerfile,
) *FileDifference {
	path := v.dockerfileWriter.Path(dockerfile)

	v.logger.WithFields(logrus.Fields{
		"service": dockerfile.ServiceName,
		"path":    path,
	}).Debug("verifying Dockerfile")

	difference := &FileDifference{
		Kind:        kind.Dockerfile,
		Path:        path,
		ServiceName: dockerfile.ServiceName,
	}

	existingDockerfile, err := v.readFile(path)
	if err != nil {
		difference.Err = err
		return difference
	}

	if err := v.dockerfileDifferentiator.DifferentiateDockerfile(
		string(existingDockerfile), dockerfile.Contents,
	); err != nil {
		difference.Err = err
		return difference
	}

	return nil
}

func (v *verifier) readFile(path string) ([]byte, error) {
	contents, err := afero.ReadFile(v.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrMissingFile
	}

	if err != nil {
		return nil, fmt.Errorf("unable to read: %w", err)
	}

	return contents, nil
}
