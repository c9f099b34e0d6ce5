// File: pkg/merge/report.go
package merge

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter prints per-file progress lines for a run.
type Reporter struct {
	out     io.Writer
	added   *color.Color
	skipped *color.Color
	done    *color.Color
}

// NewReporter creates a Reporter writing to out. Colors are used only when out
// is a terminal. A nil out discards all progress.
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = io.Discard
	}
	r := &Reporter{
		out:     out,
		added:   color.New(color.FgGreen),
		skipped: color.New(color.FgYellow),
		done:    color.New(color.FgCyan),
	}
	if !isTerminal(out) {
		r.added.DisableColor()
		r.skipped.DisableColor()
		r.done.DisableColor()
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Added reports a file written to the bundle.
func (r *Reporter) Added(path string) {
	fmt.Fprintf(r.out, "%s %s\n", r.added.Sprint("Added:"), path)
}

// Skipped reports a qualifying file that could not be read.
func (r *Reporter) Skipped(path string, err error) {
	cause := err
	var fre *FileReadError
	if errors.As(err, &fre) {
		cause = fre.Err
	}
	fmt.Fprintf(r.out, "%s %s (Error: %v)\n", r.skipped.Sprint("Skipped"), path, cause)
}

// Done reports the end of the run.
func (r *Reporter) Done(outputFile string) {
	fmt.Fprintf(r.out, "\n%s\n", r.done.Sprintf("Done! Upload '%s' to the chat.", outputFile))
}
