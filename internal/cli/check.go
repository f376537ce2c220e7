package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/razorlex/internal/logging"
	"github.com/yaklabco/razorlex/pkg/config"
	"github.com/yaklabco/razorlex/pkg/reporter"
	"github.com/yaklabco/razorlex/pkg/runner"
)

type checkFlags struct {
	languageFlags
	format         string
	jobs           int
	ignore         []string
	include        []string
	followSymlinks bool
	noContext      bool
	compact        bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report lexical errors in template and script files",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Tokenize files and report lexical errors such as unterminated
strings, comments and regular expressions.

By default, checks every file in the current directory tree whose extension
appears in the configured extension table. Explicitly named files are always
checked; their language is detected when the extension is unknown.

Examples:
  razorlex check                    # Check current directory
  razorlex check Views/             # Check a directory
  razorlex check wwwroot/site.js    # Check a single file
  razorlex check --format json      # Output as JSON for CI
  razorlex check --ignore 'dist/**' # Skip generated files`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return withExitCode(ExitInvalidUsage, fmt.Errorf("invalid format: %w", err))
	}

	// Only values explicitly provided on the command line override the
	// configuration files.
	cliCfg := flags.cliConfig(cmd)
	cliCfg.Format = config.OutputFormat(format)
	cliCfg.Jobs = flags.jobs
	if cmd.Flags().Changed("ignore") {
		cliCfg.Ignore = flags.ignore
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		IncludeGlobs:   flags.include,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           cfg.Jobs,
		Config:         cfg,
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldFormat, cfg.Format,
	)

	result, err := runner.New().Run(ctx, runOpts)
	if err != nil {
		return withExitCode(ExitIOError, errors.Join(errors.New("check run failed"), err))
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = string(config.ColorAuto)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      reporter.Format(cfg.Format),
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("check finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithErrors, result.Stats.FilesWithErrors,
		logging.FieldErrorsTotal, result.Stats.ErrorsTotal,
	)

	switch ExitCodeFromResult(result) {
	case ExitLexicalErrors:
		return ErrLexicalErrors
	case ExitIOError:
		return withExitCode(ExitIOError, fmt.Errorf("%d files could not be read", result.Stats.FilesErrored))
	default:
		return nil
	}
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	addLanguageFlags(cmd, &flags.languageFlags)
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, summary")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "only check files matching these glob patterns")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow symbolic links to directories")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}
