package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"ctxmerge/pkg/logging"
	"ctxmerge/pkg/merge"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runMerge merges the current working directory with the compiled-in rules.
func runMerge(cmd *cobra.Command, _ []string) error {
	logger := logging.Logger

	cfg := merge.DefaultConfig().WithIgnoredFile(executableName())
	if _, err := merge.New(cfg, logger, cmd.OutOrStdout()).Merge("."); err != nil {
		logger.Error("ctxmerge execution failed", zap.Error(err))
		return fmt.Errorf("merge failed: %w", err)
	}
	return nil
}

// executableName returns the base name of the running binary so it is never bundled.
func executableName() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Base(os.Args[0])
	}
	return filepath.Base(exe)
}
