package config

import (
	"errors"
	"fmt"

	"github.com/safe-waters/docker-scaffold/pkg/document"
	"github.com/spf13/afero"
)

// IParser provides an interface for Parsers, which read and validate a
// configuration file.
type IParser interface {
	ParseFile(path string) (*Configuration, error)
}

type parser struct {
	fs afero.Fs
}

// NewParser returns an IParser that reads files from fs.
func NewParser(fs afero.Fs) (IParser, error) {
	if fs == nil {
		return nil, errors.New("'fs' cannot be nil")
	}

	return &parser{fs: fs}, nil
}

// ParseFile decodes the file at path and checks that it has a non empty
// 'services' object whose values are all objects.
func (p *parser) ParseFile(path string) (*Configuration, error) {
	f, err := p.fs.Open(path)
	if err != nil {
		return nil, &Error{Path: path, Kind: ErrNotFound, Err: err}
	}
	defer f.Close()

	doc, err := document.Decode(f)
	if err != nil {
		return nil, &Error{Path: path, Kind: ErrParse, Err: err}
	}

	services, err := parseServices(doc)
	if err != nil {
		return nil, &Error{Path: path, Kind: ErrValidation, Err: err}
	}

	return &Configuration{
		path:     path,
		document: doc,
		services: services,
	}, nil
}

func parseServices(doc document.Mapping) ([]*Service, error) {
	value, ok := doc.Get(ServicesKey)
	if !ok || value == nil {
		return nil, fmt.Errorf("missing '%s'", ServicesKey)
	}

	mapping, ok := value.(document.Mapping)
	if !ok {
		return nil, fmt.Errorf("'%s' must be an object", ServicesKey)
	}

	if len(mapping) == 0 {
		return nil, fmt.Errorf("'%s' cannot be empty", ServicesKey)
	}

	services := make([]*Service, len(mapping))

	for i, item := range mapping {
		definition, ok := item.Value.(document.Mapping)
		if !ok {
			return nil, fmt.Errorf(
				"'%s.%s' must be an object", ServicesKey, item.Key,
			)
		}

		services[i] = &Service{Name: item.Key, Definition: definition}
	}

	return services, nil
}
