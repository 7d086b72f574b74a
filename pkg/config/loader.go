package config

import (
	"errors"
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ILoader provides an interface for Loaders, which find and parse the
// configuration file.
type ILoader interface {
	Load() (*Configuration, error)
}

type loader struct {
	pathCollector IPathCollector
	parser        IParser
	logger        logrus.FieldLogger
}

// NewLoader returns an ILoader after ensuring all arguments are non-nil.
func NewLoader(
	pathCollector IPathCollector,
	parser IParser,
	logger logrus.FieldLogger,
) (ILoader, error) {
	if pathCollector == nil || reflect.ValueOf(pathCollector).IsNil() {
		return nil, errors.New("'pathCollector' cannot be nil")
	}

	if parser == nil || reflect.ValueOf(parser).IsNil() {
		return nil, errors.New("'parser' cannot be nil")
	}

	if logger == nil || reflect.ValueOf(logger).IsNil() {
		return nil, errors.New("'logger' cannot be nil")
	}

	return &loader{
		pathCollector: pathCollector,
		parser:        parser,
		logger:        logger,
	}, nil
}

// Load finds the configuration file and parses it.
func (l *loader) Load() (*Configuration, error) {
	path, err := l.pathCollector.CollectPath()
	if err != nil {
		return nil, err
	}

	l.logger.WithField("path", path).Debug("found configuration file")

	configuration, err := l.parser.ParseFile(path)
	if err != nil {
		return nil, err
	}

	l.logger.WithFields(logrus.Fields{
		"path":     path,
		"services": len(configuration.Services()),
	}).Debug("parsed configuration file")

	return configuration, nil
}

// Load finds the configuration file in dir, skipping reservedName, and
// parses it.
func Load(fs afero.Fs, dir string, reservedName string) (*Configuration, error) {
	pathCollector, err := NewPathCollector(fs, dir, reservedName)
	if err != nil {
		return nil, err
	}

	parser, err := NewParser(fs)
	if err != nil {
		return nil, err
	}

	loader, err := NewLoader(pathCollector, parser, logrus.StandardLogger())
	if err != nil {
		return nil, err
	}

	return loader.Load()
}
