package verify

import (
	"fmt"
	"strings"

	"github.com/safe-waters/docker-scaffold/pkg/kind"
)

// FileDifference is a file on disk that does not match what would be
// generated.
type FileDifference struct {
	Kind        kind.Kind
	Path        string
	ServiceName string
	Err         error
}

// DifferentFilesError reports every file on disk that differs from what
// would be generated.
type DifferentFilesError struct {
	Differences []*FileDifference
}

// Error returns the differences, one path at a time.
func (d *DifferentFilesError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d file(s) out of date", len(d.Differences))

	for _, difference := range d.Differences {
		fmt.Fprintf(&b, "\n'%s': %v", difference.Path, difference.Err)
	}

	return b.String()
}
