// Package format provides functionality to serialize a manifest.
package format

import (
	"errors"
	"fmt"

	"github.com/safe-waters/docker-scaffold/pkg/document"
)

// Format names a manifest serialization.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for any format other than JSON or YAML.
var ErrUnsupportedFormat = errors.New("unsupported format")

// IManifestFormatter provides an interface for ManifestFormatters, which
// serialize a manifest into the contents of the manifest file.
type IManifestFormatter interface {
	Format() Format
	FormatManifest(manifest document.Mapping) ([]byte, error)
}

// NewManifestFormatter returns the IManifestFormatter for format.
func NewManifestFormatter(format Format) (IManifestFormatter, error) {
	switch format {
	case JSON:
		return NewJSONManifestFormatter(), nil
	case YAML:
		return NewYAMLManifestFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, format)
	}
}
