// Package generate provides functionality to generate a manifest and the
// Dockerfiles of every service that declares a build block.
package generate

import (
	"context"

	"github.com/safe-waters/docker-scaffold/pkg/config"
	"github.com/safe-waters/docker-scaffold/pkg/document"
	"github.com/safe-waters/docker-scaffold/pkg/generate/render"
	"github.com/safe-waters/docker-scaffold/pkg/generate/write"
)

// ManifestVersion is the version written at the top of every manifest.
const ManifestVersion = "3.8"

// IGenerator provides an interface for Generators, which are responsible
// for writing the manifest and Dockerfiles of a configuration.
type IGenerator interface {
	GenerateFiles(ctx context.Context) ([]*write.WrittenPath, error)
}

// IConfigLoader provides an interface for ConfigLoaders, which find and
// parse the configuration file.
type IConfigLoader interface {
	Load() (*config.Configuration, error)
}

// IManifestFormatter provides an interface for ManifestFormatters, which
// serialize a manifest.
type IManifestFormatter interface {
	FormatManifest(manifest document.Mapping) ([]byte, error)
}

// IDockerfileRenderer provides an interface for DockerfileRenderers, which
// render the Dockerfile of a service.
type IDockerfileRenderer interface {
	RenderDockerfile(service *config.Service) (*render.Dockerfile, error)
}

// IManifestValidator provides an interface for ManifestValidators, which
// check a manifest before it is written.
type IManifestValidator interface {
	ValidateManifest(ctx context.Context, manifest document.Mapping) error
}
