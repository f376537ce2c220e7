// Package cli provides the Cobra command structure for razorlex.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/razorlex/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root razorlex command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "razorlex",
		Short: "Tokenizer and incremental syntax trees for Razor-style templates",
		Long: `razorlex tokenizes HTML and JavaScript with Razor @ transitions and
segments them into syntax trees of blocks and spans.

It reports lexical errors such as unterminated strings and comments, shows
which span owns an edit and whether the edit forces a full reparse, and
serves the same engine to editors as a language server.`,
		Version: info.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(commandContext(cmd), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withExitCode(ExitInvalidUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newTokenizeCommand())
	rootCmd.AddCommand(newTreeCommand())
	rootCmd.AddCommand(newOwnerCommand())
	rootCmd.AddCommand(newReplCommand())
	rootCmd.AddCommand(newLSPCommand(info))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(color).ApplyToCommand(rootCmd)

	return rootCmd
}
