//go:build !windows

package merge

import (
	"github.com/google/renameio/v2"
)

// pendingOutput writes to a temporary file that replaces the output on Commit.
type pendingOutput struct {
	*renameio.PendingFile
}

// openOutput creates a pending file next to path. The previous output, if any,
// stays untouched until Commit, and its permissions carry over.
func openOutput(path string) (outputTarget, error) {
	pending, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions())
	if err != nil {
		return nil, err
	}
	return pendingOutput{pending}, nil
}

func (p pendingOutput) Commit() error {
	return p.CloseAtomicallyReplace()
}
