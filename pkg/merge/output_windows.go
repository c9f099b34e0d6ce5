//go:build windows

package merge

import (
	"os"
)

// directOutput writes straight into the truncated output file; renameio has no
// pending-file support on Windows.
type directOutput struct {
	*os.File
	closed bool
}

func openOutput(path string) (outputTarget, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &directOutput{File: f}, nil
}

func (d *directOutput) Commit() error {
	d.closed = true
	return d.Close()
}

func (d *directOutput) Cleanup() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.Close()
}
