// File: pkg/merge/record.go
package merge

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// separatorLine frames the header of every record.
var separatorLine = strings.Repeat("=", 50)

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// readSource reads a candidate file as UTF-8 text with line endings normalized to "\n".
func readSource(path string, logger *zap.Logger) (string, error) {
	logger.Debug("Reading file content", zap.String("filePath", path))

	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return "", &FileReadError{Path: path, Err: err}
	}
	if !utf8.Valid(fileBytes) {
		return "", &FileReadError{Path: path, Err: ErrInvalidUTF8}
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", path),
		zap.Int("contentSizeBytes", len(fileBytes)))

	return newlineReplacer.Replace(string(fileBytes)), nil
}

// formatRecord builds one delimited record for the bundle.
func formatRecord(path, content string) string {
	var b strings.Builder
	b.Grow(len(content) + len(path) + 2*len(separatorLine) + 32)
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\nFILE PATH: ")
	b.WriteString(path)
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n\n")
	b.WriteString(content)
	b.WriteString("\n\n")
	return b.String()
}

// writeRecord writes one record and returns the number of bytes written.
func writeRecord(w io.Writer, path, content string) (int, error) {
	return io.WriteString(w, formatRecord(path, content))
}
