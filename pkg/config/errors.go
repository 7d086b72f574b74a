package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no configuration file can be discovered.
	ErrNotFound = errors.New("no configuration file found")

	// ErrParse is returned when the configuration file is not valid JSON.
	ErrParse = errors.New("malformed configuration file")

	// ErrValidation is returned when the configuration lacks services.
	ErrValidation = errors.New("invalid configuration")
)

// Error records which configuration file or directory failed to load.
type Error struct {
	Path string
	Kind error
	Err  error
}

// Error prints the path, the kind of failure and the cause, if any.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("'%s': %v", e.Path, e.Kind)
	}

	return fmt.Sprintf("'%s': %v: %v", e.Path, e.Kind, e.Err)
}

// Unwrap returns the kind so that callers can use errors.Is with
// ErrNotFound, ErrParse and ErrValidation.
func (e *Error) Unwrap() error {
	return e.Kind
}
