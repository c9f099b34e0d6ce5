package merge

import "io"

// outputTarget is the file a run writes its records into.
type outputTarget interface {
	io.Writer
	// Name is the path of the file being written, which may differ from the
	// final output path until Commit.
	Name() string
	// Commit makes the written content the output file.
	Commit() error
	// Cleanup releases the target. It is a no-op after a successful Commit.
	Cleanup() error
}
