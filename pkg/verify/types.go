// Package verify provides functionality for verifying that the manifest
// and Dockerfiles on disk are up-to-date with the configuration.
package verify

import "context"

// IVerifier provides an interface for Verifiers, which are responsible
// for verifying that newly generated files equal the files on disk.
type IVerifier interface {
	VerifyFiles(ctx context.Context) error
}
