package document_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/safe-waters/docker-scaffold/pkg/document"
	"gopkg.in/yaml.v2"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name       string
		Contents   string
		Expected   document.Mapping
		ShouldFail bool
	}{
		{
			Name:     "Keeps Key Order",
			Contents: `{"z": 1, "a": {"y": true, "b": null}, "m": ["x", 2.50]}`,
			Expected: document.Mapping{
				{Key: "z", Value: json.Number("1")},
				{Key: "a", Value: document.Mapping{
					{Key: "y", Value: true},
					{Key: "b", Value: nil},
				}},
				{Key: "m", Value: []interface{}{"x", json.Number("2.50")}},
			},
		},
		{
			Name:     "Duplicate Key Keeps First Position",
			Contents: `{"a": 1, "b": 2, "a": 3}`,
			Expected: document.Mapping{
				{Key: "a", Value: json.Number("3")},
				{Key: "b", Value: json.Number("2")},
			},
		},
		{
			Name:     "Empty Object",
			Contents: `{}`,
			Expected: document.Mapping{},
		},
		{
			Name:     "Objects In Arrays",
			Contents: `{"a": [{"b": "c"}, []]}`,
			Expected: document.Mapping{
				{Key: "a", Value: []interface{}{
					document.Mapping{{Key: "b", Value: "c"}},
					[]interface{}{},
				}},
			},
		},
		{
			Name:       "Top Level Array",
			Contents:   `["a"]`,
			ShouldFail: true,
		},
		{
			Name:       "Malformed",
			Contents:   `{"a": }`,
			ShouldFail: true,
		},
		{
			Name:       "Truncated",
			Contents:   `{"a": {"b": 1}`,
			ShouldFail: true,
		},
		{
			Name:       "Trailing Data",
			Contents:   `{"a": 1} {"b": 2}`,
			ShouldFail: true,
		},
		{
			Name:       "Empty",
			Contents:   ``,
			ShouldFail: true,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()

			got, err := document.Decode(strings.NewReader(test.Contents))
			if test.ShouldFail {
				if err == nil {
					t.Fatal("expected error but did not get one")
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if !reflect.DeepEqual(test.Expected, got) {
				t.Fatalf("expected %#v, got %#v", test.Expected, got)
			}
		})
	}
}

func TestMappingMarshalJSON(t *testing.T) {
	t.Parallel()

	mapping := document.Mapping{
		{Key: "version", Value: "3.8"},
		{Key: "services", Value: document.Mapping{
			{Key: "web", Value: document.Mapping{
				{Key: "command", Value: "a && b <c>"},
				{Key: "replicas", Value: json.Number("2")},
			}},
		}},
		{Key: "networks", Value: document.Mapping{}},
	}

	got, err := json.Marshal(mapping)
	if err != nil {
		t.Fatal(err)
	}

	expected := `{"version":"3.8","services":{"web":{"command":"a && b <c>",` +
		`"replicas":2}},"networks":{}}`

	if string(got) != expected {
		t.Fatalf("expected %s, got %s", expected, got)
	}
}

func TestMappingMarshalYAML(t *testing.T) {
	t.Parallel()

	mapping := document.Mapping{
		{Key: "b", Value: json.Number("1")},
		{Key: "a", Value: document.Mapping{
			{Key: "d", Value: []interface{}{"x", "z"}},
			{Key: "c", Value: false},
		}},
	}

	got, err := yaml.Marshal(mapping)
	if err != nil {
		t.Fatal(err)
	}

	expected := `b: 1
a:
  d:
  - x
  - z
  c: false
`

	if string(got) != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestMappingWithout(t *testing.T) {
	t.Parallel()

	nested := document.Mapping{{Key: "dockerfile", Value: "Dockerfile"}}
	mapping := document.Mapping{
		{Key: "image", Value: "nginx"},
		{Key: "dockerfile_actions", Value: []interface{}{}},
		{Key: "build", Value: nested},
	}

	got := mapping.Without("dockerfile_actions")

	expected := document.Mapping{
		{Key: "image", Value: "nginx"},
		{Key: "build", Value: nested},
	}

	if !reflect.DeepEqual(expected, got) {
		t.Fatalf("expected %#v, got %#v", expected, got)
	}

	if len(mapping) != 3 {
		t.Fatal("expected receiver to be left untouched")
	}
}

func TestMappingPlain(t *testing.T) {
	t.Parallel()

	mapping := document.Mapping{
		{Key: "int", Value: json.Number("3")},
		{Key: "float", Value: json.Number("1.5")},
		{Key: "list", Value: []interface{}{
			document.Mapping{{Key: "a", Value: "b"}},
		}},
	}

	expected := map[string]interface{}{
		"int":   int64(3),
		"float": 1.5,
		"list": []interface{}{
			map[string]interface{}{"a": "b"},
		},
	}

	if got := mapping.Plain(); !reflect.DeepEqual(expected, got) {
		t.Fatalf("expected %#v, got %#v", expected, got)
	}
}

func TestMappingGet(t *testing.T) {
	t.Parallel()

	mapping := document.Mapping{{Key: "a", Value: nil}}

	if _, ok := mapping.Get("a"); !ok {
		t.Fatal("expected key 'a' to exist")
	}

	if _, ok := mapping.Get("b"); ok {
		t.Fatal("expected key 'b' to be missing")
	}

	if keys := mapping.Keys(); !reflect.DeepEqual([]string{"a"}, keys) {
		t.Fatalf("expected [a], got %v", keys)
	}
}
