package render

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAction is returned for an action whose instruction is not
	// FROM, WORKDIR, COPY, RUN or ENTRYPOINT.
	ErrUnknownAction = errors.New("unknown action")

	// ErrMalformedAction is returned when 'dockerfile_actions' is not a list
	// of [instruction, params] string pairs.
	ErrMalformedAction = errors.New("malformed action")

	// ErrMissingField is returned when a service has no 'build.dockerfile'.
	ErrMissingField = errors.New("missing field")
)

// ActionError reports which action of which service could not be
// rendered. Instruction is empty if the action was malformed.
type ActionError struct {
	Service     string
	Index       int
	Instruction string
	Err         error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf(
		"service '%s' action %d: %v", e.Service, e.Index, e.Err,
	)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// FieldError reports a required field missing from a service definition.
type FieldError struct {
	Service string
	Field   string
	Reason  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf(
		"service '%s': %v '%s': %s",
		e.Service, ErrMissingField, e.Field, e.Reason,
	)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}
