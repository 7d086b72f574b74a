package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// IPathCollector provides an interface for PathCollectors, which are
// responsible for finding the configuration file.
type IPathCollector interface {
	CollectPath() (string, error)
}

type pathCollector struct {
	fs           afero.Fs
	dir          string
	reservedName string
}

// NewPathCollector returns an IPathCollector that looks for JSON files
// directly inside dir. Files whose name ends with reservedName, the
// generated manifest, are never collected.
func NewPathCollector(
	fs afero.Fs,
	dir string,
	reservedName string,
) (IPathCollector, error) {
	if fs == nil {
		return nil, errors.New("'fs' cannot be nil")
	}

	if dir == "" {
		dir = "."
	}

	return &pathCollector{
		fs:           fs,
		dir:          filepath.Clean(dir),
		reservedName: reservedName,
	}, nil
}

// CollectPath returns the first JSON file in lexical order that is not
// the reserved file.
func (p *pathCollector) CollectPath() (string, error) {
	candidates, err := afero.Glob(p.fs, filepath.Join(p.dir, "*.json"))
	if err != nil {
		return "", &Error{Path: p.dir, Kind: ErrNotFound, Err: err}
	}

	for _, candidate := range candidates {
		if p.reservedName != "" &&
			strings.HasSuffix(filepath.Base(candidate), p.reservedName) {
			continue
		}

		fileInfo, err := p.fs.Stat(candidate)
		if err != nil {
			return "", &Error{Path: candidate, Kind: ErrNotFound, Err: err}
		}

		if fileInfo.IsDir() {
			continue
		}

		return candidate, nil
	}

	return "", &Error{
		Path: p.dir,
		Kind: ErrNotFound,
		Err:  fmt.Errorf("no '*.json' file other than '%s'", p.reservedName),
	}
}
