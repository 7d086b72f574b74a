// Package kind marks a type of generated file.
package kind

// Kind marks a type of generated file.
type Kind string

const (
	Manifest   Kind = "manifest"
	Dockerfile Kind = "dockerfiles"
)
