package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/safe-waters/docker-scaffold/pkg/document"
	"github.com/safe-waters/docker-scaffold/pkg/generate/format"
	"github.com/safe-waters/docker-scaffold/pkg/kind"
)

type jsonManifestDifferentiator struct{}

type textManifestDifferentiator struct{}

// NewManifestDifferentiator returns the IManifestDifferentiator for a
// manifest format. JSON manifests are compared by value, so whitespace
// and formatting do not matter. YAML manifests are compared line by line,
// ignoring trailing whitespace.
func NewManifestDifferentiator(
	manifestFormat format.Format,
) (IManifestDifferentiator, error) {
	switch manifestFormat {
	case format.JSON:
		return &jsonManifestDifferentiator{}, nil
	case format.YAML:
		return &textManifestDifferentiator{}, nil
	}

	return nil, fmt.Errorf("%w: '%s'", format.ErrUnsupportedFormat, manifestFormat)
}

// DifferentiateManifest decodes both manifests and compares their values,
// including the order of keys.
func (j *jsonManifestDifferentiator) DifferentiateManifest(
	existing []byte,
	generated []byte,
) error {
	existingManifest, err := document.Decode(bytes.NewReader(existing))
	if err != nil {
		return fmt.Errorf("existing manifest: %w", err)
	}

	newManifest, err := document.Decode(bytes.NewReader(generated))
	if err != nil {
		return fmt.Errorf("new manifest: %w", err)
	}

	if d := cmp.Diff(existingManifest, newManifest); d != "" {
		return &Error{Kind: kind.Manifest, Diff: d}
	}

	return nil
}

// DifferentiateManifest compares the lines of both manifests.
func (t *textManifestDifferentiator) DifferentiateManifest(
	existing []byte,
	generated []byte,
) error {
	if d := cmp.Diff(lines(string(existing)), lines(string(generated))); d != "" {
		return &Error{Kind: kind.Manifest, Diff: d}
	}

	return nil
}

func lines(s string) []string {
	split := strings.Split(strings.TrimRight(s, " \t\r\n"), "\n")

	for i := range split {
		split[i] = strings.TrimRight(split[i], " \t\r")
	}

	return split
}
