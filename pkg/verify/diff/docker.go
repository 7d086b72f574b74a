package diff

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/moby/buildkit/frontend/dockerfile/parser"
	"github.com/safe-waters/docker-scaffold/pkg/kind"
)

type dockerfileDifferentiator struct{}

// NewDockerfileDifferentiator returns an IDockerfileDifferentiator that
// compares Dockerfiles instruction by instruction. Comments, blank lines,
// line continuations and the case of instructions are ignored.
func NewDockerfileDifferentiator() IDockerfileDifferentiator {
	return &dockerfileDifferentiator{}
}

// DifferentiateDockerfile diffs the instructions of both Dockerfiles.
func (d *dockerfileDifferentiator) DifferentiateDockerfile(
	existing string,
	generated string,
) error {
	existingInstructions, err := Instructions(existing)
	if err != nil {
		return fmt.Errorf("existing Dockerfile: %w", err)
	}

	newInstructions, err := Instructions(generated)
	if err != nil {
		return fmt.Errorf("new Dockerfile: %w", err)
	}

	if d := cmp.Diff(existingInstructions, newInstructions); d != "" {
		return &Error{Kind: kind.Dockerfile, Diff: d}
	}

	return nil
}

// Instructions parses a Dockerfile and returns one normalized line per
// instruction: the uppercased instruction followed by its arguments as
// written. A Dockerfile without instructions has none.
func Instructions(dockerfile string) ([]string, error) {
	if strings.TrimSpace(dockerfile) == "" {
		return []string{}, nil
	}

	loadedDockerfile, err := parser.Parse(strings.NewReader(dockerfile))
	if err != nil {
		return nil, err
	}

	instructions := make([]string, 0, len(loadedDockerfile.AST.Children))

	for _, child := range loadedDockerfile.AST.Children {
		fields := strings.Fields(child.Original)
		if len(fields) == 0 {
			continue
		}

		fields[0] = strings.ToUpper(child.Value)

		instructions = append(instructions, strings.Join(fields, " "))
	}

	return instructions, nil
}
