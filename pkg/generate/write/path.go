package write

import "path/filepath"

// ResolvePath joins path to baseDir unless path is absolute.
func ResolvePath(baseDir string, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return filepath.Clean(path)
	}

	return filepath.Join(baseDir, path)
}
