package write

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/safe-waters/docker-scaffold/pkg/kind"
	"github.com/spf13/afero"
)

type manifestWriter struct {
	kind      kind.Kind
	fs        afero.Fs
	outputDir string
	fileName  string
}

// NewManifestWriter returns an IManifestWriter that writes fileName in
// outputDir. fileName may not contain slashes.
func NewManifestWriter(
	fs afero.Fs,
	outputDir string,
	fileName string,
) (IManifestWriter, error) {
	if fs == nil {
		return nil, errors.New("'fs' cannot be nil")
	}

	if fileName == "" {
		return nil, errors.New("'fileName' cannot be empty")
	}

	if strings.ContainsAny(fileName, `/\`) {
		return nil, fmt.Errorf("'%s' fileName cannot contain slashes", fileName)
	}

	if outputDir == "" {
		outputDir = "."
	}

	return &manifestWriter{
		kind:      kind.Manifest,
		fs:        fs,
		outputDir: outputDir,
		fileName:  fileName,
	}, nil
}

// Path returns the path of the manifest file.
func (m *manifestWriter) Path() string {
	return filepath.Join(m.outputDir, m.fileName)
}

// WriteManifest creates the output directory if needed and replaces the
// manifest file with contents.
func (m *manifestWriter) WriteManifest(contents []byte) (*WrittenPath, error) {
	if err := m.fs.MkdirAll(m.outputDir, 0755); err != nil {
		return nil, err
	}

	path := m.Path()

	if err := afero.WriteFile(m.fs, path, contents, 0644); err != nil {
		return nil, err
	}

	return &WrittenPath{Kind: m.kind, Path: path}, nil
}
