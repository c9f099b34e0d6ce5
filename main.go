package main

import (
	"log"
	"os"
	"strings"

	"ctxmerge/cmd"
	"ctxmerge/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	err := cmd.Execute()
	syncLogger(logging.Logger)
	if err != nil {
		os.Exit(1)
	}
}

// syncLogger flushes the logger when stderr can be synced.
func syncLogger(logger *zap.Logger) {
	// Check if stderr is a terminal or a regular file before attempting to sync.
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		lowerErr := strings.ToLower(syncErr.Error())
		if !strings.Contains(lowerErr, "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false // Assume not a regular file if we can't get the file info
	}
	return fileInfo.Mode().IsRegular()
}
