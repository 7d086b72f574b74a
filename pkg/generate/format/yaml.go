package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/safe-waters/docker-scaffold/pkg/document"
)

type yamlManifestFormatter struct {
	format Format
}

// NewYAMLManifestFormatter returns an IManifestFormatter that writes the
// manifest with a line based YAML encoder.
//
// Items of a list that are objects are written as their keys, indented,
// without a leading "- ". Scalar items do get a "- ". This layout matches
// manifests written by earlier versions of the tool. Scalars are written
// as YAML: true, false, null, and nested lists inline as [a, b].
func NewYAMLManifestFormatter() IManifestFormatter {
	return &yamlManifestFormatter{format: YAML}
}

// Format is a getter for the format.
func (y *yamlManifestFormatter) Format() Format {
	return y.format
}

// FormatManifest writes the manifest without a trailing newline.
func (y *yamlManifestFormatter) FormatManifest(
	manifest document.Mapping,
) ([]byte, error) {
	return []byte(strings.Join(EncodeYAML(manifest, 0), "\n")), nil
}

// EncodeYAML returns the lines for mapping, indented by indent spaces.
func EncodeYAML(mapping document.Mapping, indent int) []string {
	var (
		lines  []string
		prefix = strings.Repeat(" ", indent)
	)

	for _, item := range mapping {
		switch value := item.Value.(type) {
		case document.Mapping:
			lines = append(lines, fmt.Sprintf("%s%s:", prefix, item.Key))
			lines = append(lines, EncodeYAML(value, indent+2)...)
		case []interface{}:
			lines = append(lines, fmt.Sprintf("%s%s:", prefix, item.Key))

			for _, element := range value {
				if nested, ok := element.(document.Mapping); ok {
					lines = append(lines, EncodeYAML(nested, indent+2)...)
					continue
				}

				lines = append(
					lines, fmt.Sprintf("%s  - %s", prefix, scalar(element)),
				)
			}
		default:
			lines = append(
				lines, fmt.Sprintf("%s%s: %s", prefix, item.Key, scalar(value)),
			)
		}
	}

	return lines
}

func scalar(value interface{}) string {
	switch value := value.(type) {
	case nil:
		return "null"
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		if value {
			return "true"
		}

		return "false"
	case []interface{}:
		// nested lists are written inline
		elements := make([]string, len(value))

		for i, element := range value {
			elements[i] = scalar(element)
		}

		return fmt.Sprintf("[%s]", strings.Join(elements, ", "))
	case document.Mapping:
		pairs := make([]string, len(value))

		for i, item := range value {
			pairs[i] = fmt.Sprintf("%s: %s", item.Key, scalar(item.Value))
		}

		return fmt.Sprintf("{%s}", strings.Join(pairs, ", "))
	default:
		return fmt.Sprintf("%v", value)
	}
}
