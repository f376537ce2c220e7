package cli

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/yaklabco/razorlex/internal/logging"
	"github.com/yaklabco/razorlex/internal/lsp"
	"github.com/yaklabco/razorlex/pkg/config"
)

func newLSPCommand(info BuildInfo) *cobra.Command {
	var trace string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the language server on stdin and stdout",
		Long: `Start a Language Server Protocol server over stdio.

The server tracks open HTML and JavaScript documents, applies edits
incrementally and publishes lexical errors as diagnostics. Its log goes to
lsp.log_file from the configuration, or stderr.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCfg := &config.Config{}
			if cmd.Flags().Changed("trace") {
				cliCfg.LSP.Trace = trace
			}
			cfg, err := loadConfig(cmd, cliCfg)
			if err != nil {
				return err
			}

			debug, _ := cmd.Flags().GetBool("debug")
			configureServerLog(cfg, debug)

			logging.FromContext(commandContext(cmd)).Debug("starting language server",
				logging.FieldVersion, info.Version,
				logging.FieldLanguage, cfg.Language,
			)
			return lsp.New(cfg, info.Version).RunStdio()
		},
	}

	cmd.Flags().StringVar(&trace, "trace", "", "initial protocol trace: off, messages, verbose")

	return cmd
}

// configureServerLog points the protocol library's log at the configured
// file. Stdout carries the protocol and is never used.
func configureServerLog(cfg *config.Config, debug bool) {
	verbosity := 0
	if debug {
		verbosity = 2
	}
	var path *string
	if cfg.LSP.LogFile != "" {
		path = &cfg.LSP.LogFile
	}
	commonlog.Configure(verbosity, path)
}
