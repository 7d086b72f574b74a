// Package config provides functionality to discover, parse and validate
// the configuration file that describes services, networks and volumes.
package config

import "github.com/safe-waters/docker-scaffold/pkg/document"

// Keys with a meaning inside a configuration file.
const (
	ServicesKey          = "services"
	NetworksKey          = "networks"
	VolumesKey           = "volumes"
	BuildKey             = "build"
	DockerfileKey        = "dockerfile"
	DockerfileActionsKey = "dockerfile_actions"
)

// Configuration is a parsed configuration file. It always has at least one
// service.
type Configuration struct {
	path     string
	document document.Mapping
	services []*Service
}

// Service is a named service definition. Definition holds every key of
// the service as written in the configuration file.
type Service struct {
	Name       string
	Definition document.Mapping
}

// HasBuild reports whether the service declares a build block, in which
// case a Dockerfile is generated for it.
func (s *Service) HasBuild() bool {
	_, ok := s.Definition.Get(BuildKey)
	return ok
}

// Path is a getter for the file the Configuration was read from.
func (c *Configuration) Path() string {
	return c.path
}

// Document is a getter for the whole configuration.
func (c *Configuration) Document() document.Mapping {
	return c.document
}

// Get returns the top level value for key, or nil if the key is unknown.
func (c *Configuration) Get(key string) interface{} {
	value, _ := c.document.Get(key)
	return value
}

// Services returns the services in the order they appear in the file.
func (c *Configuration) Services() []*Service {
	return c.services
}
