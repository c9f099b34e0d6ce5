// Package merge bundles the text sources of a directory tree into a single file.
package merge

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Merger walks a directory tree and writes every qualifying file into one output.
type Merger struct {
	cfg      Config
	logger   *zap.Logger
	reporter *Reporter
}

// New creates a Merger. A nil logger disables diagnostic logging; progress lines
// are written to progress.
func New(cfg Config, logger *zap.Logger, progress io.Writer) *Merger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Merger{
		cfg:      cfg,
		logger:   logger,
		reporter: NewReporter(progress),
	}
}

// Merge walks root and writes the bundle to the configured output file.
// Files that cannot be read are reported and skipped. Outside Windows the output
// is committed only after the whole tree has been written; on Windows it is
// truncated up front. An *OutputOpenError is returned when it cannot be created.
func (m *Merger) Merge(root string) (res Result, err error) {
	startTime := time.Now()
	m.logger.Info("Starting merge",
		zap.String("directory", root),
		zap.String("outputFile", m.cfg.OutputFile))

	out, err := openOutput(m.cfg.OutputFile)
	if err != nil {
		m.logger.Error("Failed to create output file", zap.String("file", m.cfg.OutputFile), zap.Error(err))
		return res, &OutputOpenError{Path: m.cfg.OutputFile, Err: err}
	}
	defer func() {
		// No-op once the file has been committed.
		multierr.AppendInto(&err, out.Cleanup())
	}()

	f := newFilter(m.cfg)
	f.ignoreFiles[filepath.Base(out.Name())] = struct{}{}

	writer := bufio.NewWriter(out)
	err = walkTree(root, f, m.logger, func(path, name string) error {
		if f.shouldSkipFile(name, m.logger) {
			return nil
		}

		content, readErr := readSource(path, m.logger)
		if readErr != nil {
			m.logger.Warn("Skipping unreadable file", zap.String("filePath", path), zap.Error(readErr))
			m.reporter.Skipped(path, readErr)
			res.Skipped++
			return nil
		}

		n, writeErr := writeRecord(writer, path, content)
		res.Bytes += int64(n)
		if writeErr != nil {
			return fmt.Errorf("failed to write record for %s: %w", path, writeErr)
		}
		res.Added++
		m.reporter.Added(path)
		return nil
	})
	if err != nil {
		m.logger.Error("Failed to write output", zap.String("file", m.cfg.OutputFile), zap.Error(err))
		return res, err
	}

	if err := writer.Flush(); err != nil {
		m.logger.Error("Failed to flush output file", zap.String("file", m.cfg.OutputFile), zap.Error(err))
		return res, fmt.Errorf("failed to flush output: %w", err)
	}
	if err := out.Commit(); err != nil {
		m.logger.Error("Failed to commit output file", zap.String("file", m.cfg.OutputFile), zap.Error(err))
		return res, fmt.Errorf("failed to commit output: %w", err)
	}

	m.reporter.Done(m.cfg.OutputFile)
	m.logger.Info("Merge completed",
		zap.String("outputFile", m.cfg.OutputFile),
		zap.Int("addedFiles", res.Added),
		zap.Int("skippedFiles", res.Skipped),
		zap.String("size", humanize.Bytes(uint64(res.Bytes))),
		zap.Duration("elapsed", time.Since(startTime)))
	return res, nil
}
