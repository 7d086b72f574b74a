// Package render provides functionality to render Dockerfiles from the
// actions declared by a service.
package render

import (
	"fmt"
	"strings"
)

// Instruction is the kind of an action, one of the Dockerfile
// instructions supported by the renderer.
type Instruction string

const (
	From       Instruction = "FROM"
	Workdir    Instruction = "WORKDIR"
	Copy       Instruction = "COPY"
	Run        Instruction = "RUN"
	Entrypoint Instruction = "ENTRYPOINT"
)

// ServiceNamePlaceholder is replaced by the name of the service in the
// params of RUN and ENTRYPOINT actions.
const ServiceNamePlaceholder = "{service_name}"

// Action is one step of a Dockerfile.
type Action struct {
	Instruction Instruction
	Params      string
}

// RenderAction returns the Dockerfile line for an action. Unknown
// instructions fail with ErrUnknownAction.
func RenderAction(
	instruction Instruction,
	params string,
	serviceName string,
) (string, error) {
	switch instruction {
	case From, Workdir, Copy:
		return fmt.Sprintf("%s %s", instruction, params), nil
	case Run, Entrypoint:
		return fmt.Sprintf(
			"%s %s",
			instruction,
			strings.ReplaceAll(params, ServiceNamePlaceholder, serviceName),
		), nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnknownAction, instruction)
	}
}

// Render is RenderAction for an Action.
func (a *Action) Render(serviceName string) (string, error) {
	return RenderAction(a.Instruction, a.Params, serviceName)
}
