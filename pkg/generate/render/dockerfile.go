package render

import (
	"fmt"
	"strings"

	"github.com/safe-waters/docker-scaffold/pkg/config"
	"github.com/safe-waters/docker-scaffold/pkg/document"
)

// Dockerfile is the rendered Dockerfile of a service and where it belongs.
type Dockerfile struct {
	ServiceName string
	Path        string
	Contents    string
}

// IDockerfileRenderer provides an interface for DockerfileRenderers, which
// turn a service definition into a Dockerfile.
type IDockerfileRenderer interface {
	RenderDockerfile(service *config.Service) (*Dockerfile, error)
}

type dockerfileRenderer struct{}

// NewDockerfileRenderer returns an IDockerfileRenderer.
func NewDockerfileRenderer() IDockerfileRenderer {
	return &dockerfileRenderer{}
}

// RenderDockerfile renders the actions of a service, one line per action
// without a trailing newline. The service must name its Dockerfile in
// 'build.dockerfile'. A service without actions renders an empty
// Dockerfile.
func (d *dockerfileRenderer) RenderDockerfile(
	service *config.Service,
) (*Dockerfile, error) {
	if service == nil {
		return nil, fmt.Errorf("'service' cannot be nil")
	}

	path, err := DockerfilePath(service)
	if err != nil {
		return nil, err
	}

	actions, err := ParseActions(service)
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(actions))

	for i, action := range actions {
		line, err := action.Render(service.Name)
		if err != nil {
			return nil, &ActionError{
				Service:     service.Name,
				Index:       i,
				Instruction: string(action.Instruction),
				Err:         err,
			}
		}

		lines[i] = line
	}

	return &Dockerfile{
		ServiceName: service.Name,
		Path:        path,
		Contents:    strings.Join(lines, "\n"),
	}, nil
}

// DockerfilePath returns 'build.dockerfile' of a service.
func DockerfilePath(service *config.Service) (string, error) {
	field := fmt.Sprintf("%s.%s", config.BuildKey, config.DockerfileKey)

	value, ok := service.Definition.Get(config.BuildKey)
	if !ok {
		return "", &FieldError{
			Service: service.Name, Field: field, Reason: "no build block",
		}
	}

	build, ok := value.(document.Mapping)
	if !ok {
		return "", &FieldError{
			Service: service.Name,
			Field:   field,
			Reason:  "build block is not an object",
		}
	}

	value, ok = build.Get(config.DockerfileKey)
	if !ok {
		return "", &FieldError{
			Service: service.Name, Field: field, Reason: "not set",
		}
	}

	path, ok := value.(string)
	if !ok || path == "" {
		return "", &FieldError{
			Service: service.Name,
			Field:   field,
			Reason:  "must be a non empty string",
		}
	}

	return path, nil
}

// ParseActions reads 'dockerfile_actions' of a service. Each action must be
// a list of exactly two strings, the instruction and its params.
func ParseActions(service *config.Service) ([]*Action, error) {
	value, ok := service.Definition.Get(config.DockerfileActionsKey)
	if !ok || value == nil {
		return nil, nil
	}

	rawActions, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf(
			"service '%s': %w: '%s' must be a list",
			service.Name, ErrMalformedAction, config.DockerfileActionsKey,
		)
	}

	actions := make([]*Action, len(rawActions))

	for i, rawAction := range rawActions {
		const numFields = 2

		fields, ok := rawAction.([]interface{})
		if !ok || len(fields) != numFields {
			return nil, &ActionError{
				Service: service.Name,
				Index:   i,
				Err: fmt.Errorf(
					"%w: expected [instruction, params]", ErrMalformedAction,
				),
			}
		}

		instruction, ok := fields[0].(string)
		if !ok {
			return nil, &ActionError{
				Service: service.Name,
				Index:   i,
				Err: fmt.Errorf(
					"%w: instruction must be a string", ErrMalformedAction,
				),
			}
		}

		params, ok := fields[1].(string)
		if !ok {
			return nil, &ActionError{
				Service:     service.Name,
				Index:       i,
				Instruction: instruction,
				Err: fmt.Errorf(
					"%w: params must be a string", ErrMalformedAction,
				),
			}
		}

		actions[i] = &Action{
			Instruction: Instruction(instruction),
			Params:      params,
		}
	}

	return actions, nil
}
