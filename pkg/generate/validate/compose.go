// Package validate provides functionality to check a manifest before it is
// written.
package validate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/compose-spec/compose-go/v2/loader"
	"github.com/compose-spec/compose-go/v2/types"
	"github.com/safe-waters/docker-scaffold/pkg/document"
)

// ErrInvalidManifest is returned when compose rejects the manifest.
var ErrInvalidManifest = errors.New("invalid manifest")

const projectName = "scaffold"

// IManifestValidator provides an interface for ManifestValidators, which
// check that a manifest would be accepted by compose.
type IManifestValidator interface {
	ValidateManifest(ctx context.Context, manifest document.Mapping) error
}

type composeValidator struct {
	workingDir string
	fileName   string
}

// NewComposeValidator returns an IManifestValidator backed by compose-go's
// loader. workingDir and fileName are only used in error messages and to
// resolve relative paths.
func NewComposeValidator(workingDir string, fileName string) IManifestValidator {
	return &composeValidator{workingDir: workingDir, fileName: fileName}
}

// ValidateManifest loads the manifest as a compose project, which checks
// it against the compose schema and checks that services only reference
// networks, volumes and services that exist.
func (c *composeValidator) ValidateManifest(
	ctx context.Context,
	manifest document.Mapping,
) error {
	if manifest == nil {
		return errors.New("'manifest' cannot be nil")
	}

	content, err := json.Marshal(manifest)
	if err != nil {
		return err
	}

	if _, err = loader.LoadWithContext(ctx, types.ConfigDetails{
		WorkingDir: c.workingDir,
		ConfigFiles: []types.ConfigFile{
			{
				Filename: c.fileName,
				Content:  content,
				Config:   manifest.Plain(),
			},
		},
		Environment: types.Mapping{},
	}, func(opts *loader.Options) {
		opts.SetProjectName(projectName, true)
		opts.SkipNormalization = true
		opts.SkipExtends = true
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	return nil
}
