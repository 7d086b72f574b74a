// Package diff provides functionality to diff generated files against the
// files on disk.
package diff

import (
	"fmt"

	"github.com/safe-waters/docker-scaffold/pkg/kind"
)

// IManifestDifferentiator provides an interface for ManifestDifferentiators,
// which report the difference between an existing manifest and one that
// is newly formatted.
type IManifestDifferentiator interface {
	DifferentiateManifest(existing []byte, generated []byte) error
}

// IDockerfileDifferentiator provides an interface for
// DockerfileDifferentiators, which report the difference between an
// existing Dockerfile and one that is newly rendered.
type IDockerfileDifferentiator interface {
	DifferentiateDockerfile(existing string, generated string) error
}

// Error reports how an existing file differs from the generated one.
// Diff is in the format of cmp.Diff, with '-' lines from the existing file
// and '+' lines from the generated file.
type Error struct {
	Kind kind.Kind
	Diff string
}

// Error returns the diff.
func (e *Error) Error() string {
	return fmt.Sprintf("%s differ (-existing +new):\n%s", e.Kind, e.Diff)
}
