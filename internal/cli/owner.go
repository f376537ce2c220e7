package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/razorlex/internal/logging"
	"github.com/yaklabco/razorlex/pkg/segment"
)

type ownerFlags struct {
	languageFlags
	position  int
	deleteLen int
	insert    string
	showTree  bool
}

func newOwnerCommand() *cobra.Command {
	flags := &ownerFlags{}

	cmd := &cobra.Command{
		Use:   "owner [file|-]",
		Short: "Show which span owns an edit and whether it forces a full reparse",
		Long: `Apply an edit to a file in memory and report the span that owns it.

The edit replaces --delete characters at --position with --insert. Positions
count characters from the start of the file. The file itself is not changed.

Examples:
  razorlex owner --position 12 --insert x page.cshtml
  razorlex owner --position 4 --delete 2 --tree app.js`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOwner(cmd, args, flags)
		},
	}

	addLanguageFlags(cmd, &flags.languageFlags)
	cmd.Flags().IntVarP(&flags.position, "position", "p", 0, "character offset of the edit")
	cmd.Flags().IntVarP(&flags.deleteLen, "delete", "d", 0, "number of characters removed at the position")
	cmd.Flags().StringVarP(&flags.insert, "insert", "i", "", "text inserted at the position")
	cmd.Flags().BoolVar(&flags.showTree, "tree", false, "print the tree after the edit")

	return cmd
}

func runOwner(cmd *cobra.Command, args []string, flags *ownerFlags) error {
	if flags.position < 0 || flags.deleteLen < 0 {
		return withExitCode(ExitInvalidUsage, fmt.Errorf("position and delete must not be negative"))
	}

	cfg, err := loadConfig(cmd, flags.cliConfig(cmd))
	if err != nil {
		return err
	}

	in, err := readInput(cmd, inputPath(args), cfg)
	if err != nil {
		return err
	}

	doc := segment.Parse(in.engine, in.content)
	change := doc.Edit(flags.position, flags.deleteLen, flags.insert)
	result := segment.Reparse(doc, change)

	owner := "none"
	if result.Owner != nil {
		owner = result.Owner.String()
	}

	logging.FromContext(commandContext(cmd)).Debug("applied edit",
		logging.FieldPath, in.path,
		logging.FieldOffset, change.OldPosition,
		logging.FieldReparsed, result.Reparsed,
	)

	styles := stylesFor(cmd)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", styles.Bold.Render("change:  "), change)
	fmt.Fprintf(out, "%s %s\n", styles.Bold.Render("owner:   "), owner)
	fmt.Fprintf(out, "%s %t\n", styles.Bold.Render("reparsed:"), result.Reparsed)
	if flags.showTree {
		fmt.Fprint(out, styles.FormatTree(doc.Root))
	}

	return nil
}
