// Package testutils holds fixtures and helpers shared by tests.
package testutils

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// ExampleConfig has one service without a build block, one with actions
// and one with a build block but no actions.
const ExampleConfig = `{
  "services": {
    "web": {
      "image": "nginx:latest",
      "ports": ["80:80"],
      "depends_on": ["api"],
      "networks": ["frontend"]
    },
    "api": {
      "build": {
        "context": ".",
        "dockerfile": "services/api/Dockerfile"
      },
      "restart": "always",
      "networks": ["frontend", "backend"],
      "dockerfile_actions": [
        ["FROM", "golang:1.22 AS builder"],
        ["WORKDIR", "/src/{service_name}"],
        ["COPY", ". ."],
        ["RUN", "go build -o /bin/{service_name} ./cmd/{service_name}"],
        ["FROM", "alpine:3.19"],
        ["COPY", "--from=builder /bin/{service_name} /bin/{service_name}"],
        ["ENTRYPOINT", "[\"/bin/{service_name}\"]"]
      ]
    },
    "worker": {
      "build": {
        "context": ".",
        "dockerfile": "services/worker/Dockerfile"
      },
      "networks": ["backend"]
    }
  },
  "networks": {
    "frontend": {},
    "backend": {"internal": true}
  },
  "volumes": {
    "data": {}
  }
}`

// ExampleAPIDockerfile is the Dockerfile rendered for the "api" service of
// ExampleConfig.
const ExampleAPIDockerfile = `FROM golang:1.22 AS builder
WORKDIR /src/{service_name}
COPY . .
RUN go build -o /bin/api ./cmd/api
FROM alpine:3.19
COPY --from=builder /bin/{service_name} /bin/{service_name}
ENTRYPOINT ["/bin/api"]`

// WriteFiles writes every path/contents pair to fs, creating parent
// directories.
func WriteFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()

	for path, contents := range files {
		if err := fs.MkdirAll(filepath.Dir(path), 0777); err != nil {
			t.Fatal(err)
		}

		if err := afero.WriteFile(fs, path, []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

// ReadFile returns the contents of path in fs.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	byt, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatal(err)
	}

	return string(byt)
}

// JSONPrettyPrint indents i for failure messages.
func JSONPrettyPrint(t *testing.T, i interface{}) string {
	t.Helper()

	byt, err := json.MarshalIndent(i, "", "\t")
	if err != nil {
		t.Fatal(err)
	}

	return string(byt)
}
