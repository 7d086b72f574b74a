// Package write provides functionality to write generated files.
package write

import (
	"github.com/safe-waters/docker-scaffold/pkg/generate/render"
	"github.com/safe-waters/docker-scaffold/pkg/kind"
)

// IManifestWriter provides an interface for ManifestWriters, which write
// the serialized manifest to the manifest file.
type IManifestWriter interface {
	Path() string
	WriteManifest(contents []byte) (*WrittenPath, error)
}

// IDockerfileWriter provides an interface for DockerfileWriters, which
// write a rendered Dockerfile to the path named by its service.
type IDockerfileWriter interface {
	Path(dockerfile *render.Dockerfile) string
	WriteDockerfile(dockerfile *render.Dockerfile) (*WrittenPath, error)
}

// WrittenPath records a file that has been written.
type WrittenPath struct {
	Kind        kind.Kind `json:"kind"`
	Path        string    `json:"path"`
	ServiceName string    `json:"service,omitempty"`
}
