package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/razorlex/internal/logging"
	"github.com/yaklabco/razorlex/pkg/segment"
)

func newTreeCommand() *cobra.Command {
	flags := &languageFlags{}

	cmd := &cobra.Command{
		Use:   "tree [file|-]",
		Short: "Print the syntax tree of a file",
		Long: `Segment a file into blocks and spans and print the tree.

Markup files become a Markup block holding expression and comment blocks.
Script files become a Statement block of code spans. Lexical errors are
printed to stderr and set exit code 1.

Examples:
  razorlex tree index.cshtml
  razorlex tree -l javascript - < app.js`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, args, flags)
		},
	}

	addLanguageFlags(cmd, flags)

	return cmd
}

func runTree(cmd *cobra.Command, args []string, flags *languageFlags) error {
	cfg, err := loadConfig(cmd, flags.cliConfig(cmd))
	if err != nil {
		return err
	}

	in, err := readInput(cmd, inputPath(args), cfg)
	if err != nil {
		return err
	}

	doc, err := segment.ParseDocument(in.engine, in.content)
	if errors.Is(err, segment.ErrNotMarkupParser) {
		doc = segment.Parse(in.engine, in.content)
	} else if err != nil {
		return fmt.Errorf("parse %s: %w", in.path, err)
	}

	logging.FromContext(commandContext(cmd)).Debug("segmented input",
		logging.FieldPath, in.path,
		logging.FieldLanguage, doc.Language(),
		logging.FieldSpans, len(doc.Spans()),
		logging.FieldErrors, doc.Errors.Len(),
	)

	styles := stylesFor(cmd)
	fmt.Fprint(cmd.OutOrStdout(), styles.FormatTree(doc.Root))

	if writeErrors(cmd, styles, in, doc) {
		return ErrLexicalErrors
	}
	return nil
}
