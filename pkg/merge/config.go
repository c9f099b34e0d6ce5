// File: pkg/merge/config.go
package merge

import (
	"slices"
)

// DefaultOutputFile is the bundle written into the working directory.
const DefaultOutputFile = "full_project_context.txt"

// Config holds the filtering rules and output target for a merge run.
type Config struct {
	OutputFile      string   // Destination path for the merged bundle.
	IgnoreDirs      []string // Directory names that are never descended into.
	ValidExtensions []string // Literal name suffixes that qualify a file for inclusion.
	IgnoreFiles     []string // File names that are always excluded, regardless of suffix.
}

// DefaultConfig returns the compiled-in rule set.
func DefaultConfig() Config {
	return Config{
		OutputFile: DefaultOutputFile,
		IgnoreDirs: []string{
			".git",
			"node_modules",
			"vendor",
			"__pycache__",
			".vscode",
			"dist",
			"build",
		},
		ValidExtensions: []string{
			".php",
			".html",
			".css",
			".js",
			".json",
			".sql",
			".py",
			".ts",
			".jsx",
			".tsx",
			".vue",
			".md",
		},
		IgnoreFiles: []string{
			"package-lock.json",
			"composer.lock",
			DefaultOutputFile,
		},
	}
}

// WithIgnoredFile returns a copy of c that also excludes files named name.
// The receiver's slices are not modified.
func (c Config) WithIgnoredFile(name string) Config {
	if name == "" || slices.Contains(c.IgnoreFiles, name) {
		return c
	}
	c.IgnoreFiles = append(slices.Clone(c.IgnoreFiles), name)
	return c
}

// Result summarizes a completed merge run.
type Result struct {
	Added   int   // Records written to the output.
	Skipped int   // Qualifying files that could not be read.
	Bytes   int64 // Total bytes written to the output.
}
