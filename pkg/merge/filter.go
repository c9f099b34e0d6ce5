// File: pkg/merge/filter.go
package merge

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// filter holds the lookup sets built once per run from a Config.
type filter struct {
	ignoreDirs  map[string]struct{}
	ignoreFiles map[string]struct{}
	extensions  []string
}

func toSet(names []string) map[string]struct{} {
	return lo.Associate(names, func(name string) (string, struct{}) {
		return name, struct{}{}
	})
}

// newFilter builds the lookup sets. The output file's base name is always ignored
// so a run never bundles its own output.
func newFilter(cfg Config) *filter {
	f := &filter{
		ignoreDirs:  toSet(cfg.IgnoreDirs),
		ignoreFiles: toSet(cfg.IgnoreFiles),
		extensions:  lo.Uniq(cfg.ValidExtensions),
	}
	if cfg.OutputFile != "" {
		f.ignoreFiles[filepath.Base(cfg.OutputFile)] = struct{}{}
	}
	return f
}

// skipDir reports whether a directory with the given name must not be descended into.
func (f *filter) skipDir(name string) bool {
	_, ok := f.ignoreDirs[name]
	return ok
}

// hasValidExtension matches literal name suffixes, not parsed extensions.
func (f *filter) hasValidExtension(name string) bool {
	return lo.SomeBy(f.extensions, func(ext string) bool {
		return strings.HasSuffix(name, ext)
	})
}

// shouldSkipFile determines if a file should be left out of the bundle based on
// the ignore-files set and the valid extensions.
func (f *filter) shouldSkipFile(name string, logger *zap.Logger) bool {
	if _, ok := f.ignoreFiles[name]; ok {
		logger.Debug("File is in ignore list", zap.String("file", name))
		return true
	}
	if !f.hasValidExtension(name) {
		logger.Debug("File has no valid extension", zap.String("file", name))
		return true
	}
	return false
}
