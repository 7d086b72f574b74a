package format

import (
	"bytes"
	"encoding/json"

	"github.com/safe-waters/docker-scaffold/pkg/document"
)

type jsonManifestFormatter struct {
	format Format
}

// NewJSONManifestFormatter returns an IManifestFormatter that writes JSON
// indented by two spaces.
func NewJSONManifestFormatter() IManifestFormatter {
	return &jsonManifestFormatter{format: JSON}
}

// Format is a getter for the format.
func (j *jsonManifestFormatter) Format() Format {
	return j.format
}

// FormatManifest writes the manifest as indented JSON, keys in document
// order, without a trailing newline.
func (j *jsonManifestFormatter) FormatManifest(
	manifest document.Mapping,
) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(manifest); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
