package generate_test

import (
	"context"
	"testing"

	"github.com/safe-waters/docker-scaffold/pkg/config"
	"github.com/safe-waters/docker-scaffold/pkg/document"
	"github.com/safe-waters/docker-scaffold/pkg/generate"
	"github.com/safe-waters/docker-scaffold/pkg/generate/format"
	"github.com/safe-waters/docker-scaffold/pkg/generate/render"
	"github.com/safe-waters/docker-scaffold/pkg/generate/write"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
)

type rejectingValidator struct {
	err   error
	calls int
}

func (r *rejectingValidator) ValidateManifest(
	_ context.Context,
	_ document.Mapping,
) error {
	r.calls++
	return r.err
}

func nullLogger() (*test.Hook, logrus.FieldLogger) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return hook, logger
}

func makeGenerator(
	t *testing.T,
	fs afero.Fs,
	manifestFormat format.Format,
) generate.IGenerator {
	t.Helper()

	return makeGeneratorWithValidator(t, fs, manifestFormat, nil)
}

func makeGeneratorWithValidator(
	t *testing.T,
	fs afero.Fs,
	manifestFormat format.Format,
	validator generate.IManifestValidator,
) generate.IGenerator {
	t.Helper()

	_, logger := nullLogger()

	pathCollector, err := config.NewPathCollector(fs, "docker", "compose.json")
	if err != nil {
		t.Fatal(err)
	}

	parser, err := config.NewParser(fs)
	if err != nil {
		t.Fatal(err)
	}

	loader, err := config.NewLoader(pathCollector, parser, logger)
	if err != nil {
		t.Fatal(err)
	}

	formatter, err := format.NewManifestFormatter(manifestFormat)
	if err != nil {
		t.Fatal(err)
	}

	manifestWriter, err := write.NewManifestWriter(fs, "docker", "compose.json")
	if err != nil {
		t.Fatal(err)
	}

	dockerfileWriter, err := write.NewDockerfileWriter(fs, ".")
	if err != nil {
		t.Fatal(err)
	}

	generator, err := generate.NewGenerator(
		loader,
		formatter,
		render.NewDockerfileRenderer(),
		manifestWriter,
		dockerfileWriter,
		validator,
		logger,
	)
	if err != nil {
		t.Fatal(err)
	}

	return generator
}
