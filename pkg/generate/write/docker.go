package write

import (
	"errors"
	"path/filepath"

	"github.com/safe-waters/docker-scaffold/pkg/generate/render"
	"github.com/safe-waters/docker-scaffold/pkg/kind"
	"github.com/spf13/afero"
)

type dockerfileWriter struct {
	kind    kind.Kind
	fs      afero.Fs
	baseDir string
}

// NewDockerfileWriter returns an IDockerfileWriter. Relative Dockerfile
// paths are resolved from baseDir.
func NewDockerfileWriter(fs afero.Fs, baseDir string) (IDockerfileWriter, error) {
	if fs == nil {
		return nil, errors.New("'fs' cannot be nil")
	}

	return &dockerfileWriter{
		kind:    kind.Dockerfile,
		fs:      fs,
		baseDir: baseDir,
	}, nil
}

// Path returns where the Dockerfile is written.
func (d *dockerfileWriter) Path(dockerfile *render.Dockerfile) string {
	return ResolvePath(d.baseDir, dockerfile.Path)
}

// WriteDockerfile creates or truncates the Dockerfile, creating its
// parent directories.
func (d *dockerfileWriter) WriteDockerfile(
	dockerfile *render.Dockerfile,
) (*WrittenPath, error) {
	if dockerfile == nil {
		return nil, errors.New("'dockerfile' cannot be nil")
	}

	path := d.Path(dockerfile)

	if err := d.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	if err := afero.WriteFile(
		d.fs, path, []byte(dockerfile.Contents), 0644,
	); err != nil {
		return nil, err
	}

	return &WrittenPath{
		Kind:        d.kind,
		Path:        path,
		ServiceName: dockerfile.ServiceName,
	}, nil
}
