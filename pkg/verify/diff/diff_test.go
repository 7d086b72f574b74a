package diff_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/safe-waters/docker-scaffold/pkg/generate/format"
	"github.com/safe-waters/docker-scaffold/pkg/verify/diff"
)

func TestManifestDifferentiator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name       string
		Format     format.Format
		Existing   string
		New        string
		ShouldFail bool
	}{
		{
			Name:     "JSON Same Value Different Whitespace",
			Format:   format.JSON,
			Existing: `{"version": "3.8", "services": {"a": {"image": "x"}}}`,
			New: `{
  "version": "3.8",
  "services": {
    "a": {
      "image": "x"
    }
  }
}`,
		},
		{
			Name:       "JSON Different Value",
			Format:     format.JSON,
			Existing:   `{"version": "3.8", "services": {"a": {"image": "x"}}}`,
			New:        `{"version": "3.8", "services": {"a": {"image": "y"}}}`,
			ShouldFail: true,
		},
		{
			Name:       "JSON Different Key Order",
			Format:     format.JSON,
			Existing:   `{"services": {"a": {}}, "version": "3.8"}`,
			New:        `{"version": "3.8", "services": {"a": {}}}`,
			ShouldFail: true,
		},
		{
			Name:       "JSON Malformed Existing",
			Format:     format.JSON,
			Existing:   `{"version": `,
			New:        `{"version": "3.8"}`,
			ShouldFail: true,
		},
		{
			Name:     "YAML Trailing Whitespace",
			Format:   format.YAML,
			Existing: "version: 3.8  \nservices:\n  a:\n    image: x\n\n",
			New:      "version: 3.8\nservices:\n  a:\n    image: x",
		},
		{
			Name:       "YAML Different Line",
			Format:     format.YAML,
			Existing:   "version: 3.8\nservices:\n  a:\n    image: x",
			New:        "version: 3.8\nservices:\n  a:\n    image: y",
			ShouldFail: true,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()

			differentiator, err := diff.NewManifestDifferentiator(test.Format)
			if err != nil {
				t.Fatal(err)
			}

			err = differentiator.DifferentiateManifest(
				[]byte(test.Existing), []byte(test.New),
			)
			if test.ShouldFail {
				if err == nil {
					t.Fatal("expected error but did not get one")
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestNewManifestDifferentiatorUnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := diff.NewManifestDifferentiator(format.Format("toml"))
	if !errors.Is(err, format.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDockerfileDifferentiator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name       string
		Existing   string
		New        string
		ShouldFail bool
	}{
		{
			Name:     "Same Instructions",
			Existing: "FROM alpine\nRUN echo a",
			New:      "FROM alpine\nRUN echo a",
		},
		{
			Name:     "Comments And Case",
			Existing: "# base\nfrom alpine\n\nrun   echo a\n",
			New:      "FROM alpine\nRUN echo a",
		},
		{
			Name:     "Line Continuation",
			Existing: "FROM alpine\nRUN echo a \\\n    && echo b",
			New:      "FROM alpine\nRUN echo a && echo b",
		},
		{
			Name:     "Both Empty",
			Existing: "\n",
			New:      "",
		},
		{
			Name:       "Different Argument",
			Existing:   "FROM alpine\nRUN echo a",
			New:        "FROM alpine\nRUN echo b",
			ShouldFail: true,
		},
		{
			Name:       "Missing Instruction",
			Existing:   "FROM alpine",
			New:        "FROM alpine\nENTRYPOINT [\"/bin/api\"]",
			ShouldFail: true,
		},
		{
			Name:       "Existing Empty",
			Existing:   "",
			New:        "FROM alpine",
			ShouldFail: true,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()

			err := diff.NewDockerfileDifferentiator().DifferentiateDockerfile(
				test.Existing, test.New,
			)
			if test.ShouldFail {
				var diffErr *diff.Error
				if !errors.As(err, &diffErr) {
					t.Fatalf("expected *diff.Error, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestInstructions(t *testing.T) {
	t.Parallel()

	got, err := diff.Instructions(
		"FROM golang:1.22 AS builder\ncopy --from=builder /a /b\nENTRYPOINT [\"/bin/api\"]",
	)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"FROM golang:1.22 AS builder",
		"COPY --from=builder /a /b",
		"ENTRYPOINT [\"/bin/api\"]",
	}

	if !reflect.DeepEqual(expected, got) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}
