package generate

import (
	"github.com/safe-waters/docker-scaffold/pkg/config"
	"github.com/safe-waters/docker-scaffold/pkg/document"
)

// BuildManifest derives the manifest from a configuration. Every service
// keeps its keys in order except 'dockerfile_actions'. Nested values are
// shared with the configuration, not copied. Networks and volumes are
// copied as is, including an explicit null, and default to empty mappings
// only when the key is absent.
func BuildManifest(cfg *config.Configuration) document.Mapping {
	services := make(document.Mapping, 0, len(cfg.Services()))

	for _, service := range cfg.Services() {
		services = append(services, document.Item{
			Key:   service.Name,
			Value: service.Definition.Without(config.DockerfileActionsKey),
		})
	}

	return document.Mapping{
		{Key: "version", Value: ManifestVersion},
		{Key: config.ServicesKey, Value: services},
		{Key: config.NetworksKey, Value: orEmpty(cfg, config.NetworksKey)},
		{Key: config.VolumesKey, Value: orEmpty(cfg, config.VolumesKey)},
	}
}

func orEmpty(cfg *config.Configuration, key string) interface{} {
	value, ok := cfg.Document().Get(key)
	if !ok {
		return document.Mapping{}
	}

	return value
}

// BuildServices returns the services that declare a build block, in the
// order they appear in the configuration.
func BuildServices(cfg *config.Configuration) []*config.Service {
	var services []*config.Service

	for _, service := range cfg.Services() {
		if service.HasBuild() {
			services = append(services, service)
		}
	}

	return services
}
