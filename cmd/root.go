package cmd

import (
	"ctxmerge/pkg/logging"
	"ctxmerge/pkg/version"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the base command. Run without subcommands it merges
// the current working directory into a single bundle file.
func NewRootCommand() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "ctxmerge",
		Short: "ctxmerge bundles a project's source files into one text file",
		Long: `ctxmerge walks the current directory, skips dependency and build folders,
and concatenates every source file into a single output, designed for workflows
like preparing a codebase for an AI assistant.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := logging.Setup(debug, version.AppName, version.Get().Version)
			return err
		},
		RunE: runMerge,
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
