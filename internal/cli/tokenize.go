package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/razorlex/internal/logging"
)

type tokenizeFlags struct {
	languageFlags
	format string
}

func newTokenizeCommand() *cobra.Command {
	flags := &tokenizeFlags{}

	cmd := &cobra.Command{
		Use:   "tokenize [file|-]",
		Short: "Print the symbols of a file",
		Long: `Tokenize a file and print its symbols.

The language comes from --language, the configured extension table or the
file content. Reads stdin when no file is given or the file is "-".

Examples:
  razorlex tokenize page.cshtml             List symbols with positions
  razorlex tokenize --format highlight a.js Print the source highlighted by symbol class
  cat a.js | razorlex tokenize -l javascript`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(cmd, args, flags)
		},
	}

	addLanguageFlags(cmd, &flags.languageFlags)
	cmd.Flags().StringVarP(&flags.format, "format", "f", "list", "output format: list, highlight")

	return cmd
}

func runTokenize(cmd *cobra.Command, args []string, flags *tokenizeFlags) error {
	if flags.format != "list" && flags.format != "highlight" {
		return withExitCode(ExitInvalidUsage,
			fmt.Errorf("invalid format %q: must be list or highlight", flags.format))
	}

	cfg, err := loadConfig(cmd, flags.cliConfig(cmd))
	if err != nil {
		return err
	}

	in, err := readInput(cmd, inputPath(args), cfg)
	if err != nil {
		return err
	}

	symbols := in.engine.Tokenize(in.content)
	styles := stylesFor(cmd)

	errorCount := 0
	for _, sym := range symbols {
		errorCount += len(sym.Errors())
	}
	logging.FromContext(commandContext(cmd)).Debug("tokenized input",
		logging.FieldPath, in.path,
		logging.FieldSymbols, len(symbols),
		logging.FieldErrors, errorCount,
	)

	out := cmd.OutOrStdout()
	if flags.format == "highlight" {
		fmt.Fprint(out, styles.Highlight(symbols, in.engine.Classify))
	} else {
		fmt.Fprint(out, styles.FormatSymbols(symbols, in.engine.Classify))
	}

	if errorCount > 0 {
		return ErrLexicalErrors
	}
	return nil
}
