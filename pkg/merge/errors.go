package merge

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is returned for source files whose bytes are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 content")

// FileReadError reports a candidate file that could not be read or decoded.
// The run skips the file and continues.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// OutputOpenError reports that the output file could not be created.
// It ends the run.
type OutputOpenError struct {
	Path string
	Err  error
}

func (e *OutputOpenError) Error() string {
	return fmt.Sprintf("open output %s: %v", e.Path, e.Err)
}

func (e *OutputOpenError) Unwrap() error { return e.Err }
