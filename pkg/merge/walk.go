// File: pkg/merge/walk.go
package merge

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// visitFunc is called for every non-directory entry of a visited directory.
// A non-nil error stops the walk.
type visitFunc func(path, name string) error

// walkTree performs a pre-order traversal of dir. The files of a directory are
// visited before any of its subdirectories, and subdirectories named in the
// ignore-dirs set are removed before recursion, so ignored trees are never read.
// Symlinked directories are not followed. Unreadable directories are logged and
// skipped; only an error from visit is returned.
func walkTree(dir string, f *filter, logger *zap.Logger, visit visitFunc) error {
	logger.Debug("Visiting directory", zap.String("directory", dir))

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("Failed to read directory", zap.String("directory", dir), zap.Error(err))
		return nil
	}

	var subdirs []string
	for _, entry := range entries {
		path := joinPath(dir, entry.Name())

		isDir, followable := classify(path, entry)
		if isDir {
			if followable {
				subdirs = append(subdirs, entry.Name())
			} else {
				logger.Debug("Not following symlinked directory", zap.String("path", path))
			}
			continue
		}
		if err := visit(path, entry.Name()); err != nil {
			return err
		}
	}

	subdirs = lo.Filter(subdirs, func(name string, _ int) bool {
		if f.skipDir(name) {
			logger.Debug("Pruned ignored directory", zap.String("directory", joinPath(dir, name)))
			return false
		}
		return true
	})

	for _, name := range subdirs {
		if err := walkTree(joinPath(dir, name), f, logger, visit); err != nil {
			return err
		}
	}
	return nil
}

// classify reports whether entry is a directory and, if so, whether the walk may
// descend into it. A symlink whose target cannot be resolved is treated as a file.
func classify(path string, entry fs.DirEntry) (isDir, followable bool) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), entry.IsDir()
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, false
	}
	return info.IsDir(), false
}

// joinPath appends name to dir without cleaning, keeping a leading "./" intact.
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}
