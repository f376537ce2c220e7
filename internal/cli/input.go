package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/razorlex/internal/configloader"
	"github.com/yaklabco/razorlex/internal/logging"
	"github.com/yaklabco/razorlex/internal/ui/pretty"
	"github.com/yaklabco/razorlex/pkg/config"
	"github.com/yaklabco/razorlex/pkg/fsutil"
	"github.com/yaklabco/razorlex/pkg/runner"
	"github.com/yaklabco/razorlex/pkg/segment"
)

// ErrUnknownLanguage is returned when no engine applies to an input.
var ErrUnknownLanguage = errors.New("cannot determine language")

// languageFlags are shared by the commands that read a single input.
type languageFlags struct {
	language      string
	validateRegex bool
}

func addLanguageFlags(cmd *cobra.Command, flags *languageFlags) {
	cmd.Flags().StringVarP(&flags.language, "language", "l", "",
		"tokenizer language: auto, html, javascript (default from config)")
	cmd.Flags().BoolVar(&flags.validateRegex, "validate-regex", false,
		"check JavaScript regular expression literals")
}

// cliConfig returns the configuration overrides set on the command line.
func (f *languageFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{}
	if cmd.Flags().Changed("language") {
		cfg.Language = config.Language(f.language)
	}
	if cmd.Flags().Changed("validate-regex") {
		validate := f.validateRegex
		cfg.ValidateRegex = &validate
	}
	return cfg
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig merges the configuration sources with the command-line
// overrides in cliCfg.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	// The explicit config path comes from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, withExitCode(ExitConfigError, fmt.Errorf("load configuration: %w", err))
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// input is one source text with the engine chosen for it.
type input struct {
	path    string
	content string
	engine  segment.Engine
}

// readInput reads path, or stdin for "-", and picks its engine.
func readInput(cmd *cobra.Command, path string, cfg *config.Config) (*input, error) {
	ctx := commandContext(cmd)

	content, _, err := fsutil.ReadInput(ctx, path, cmd.InOrStdin())
	if err != nil {
		return nil, withExitCode(ExitIOError, err)
	}

	name := path
	if path == fsutil.StdinPath {
		name = ""
	}
	lang := runner.ResolveLanguage(cfg, name, content)
	if lang == "" {
		return nil, withExitCode(ExitInvalidUsage,
			fmt.Errorf("%w for %s; use --language", ErrUnknownLanguage, path))
	}

	engine, err := segment.ForLanguage(lang, cfg.ShouldValidateRegex())
	if err != nil {
		return nil, withExitCode(ExitInvalidUsage, err)
	}

	logging.FromContext(ctx).Debug("read input",
		logging.FieldPath, path,
		logging.FieldLanguage, engine.Language(),
	)
	return &input{path: path, content: string(content), engine: engine}, nil
}

// inputPath returns the single positional argument, or stdin.
func inputPath(args []string) string {
	if len(args) == 0 {
		return fsutil.StdinPath
	}
	return args[0]
}

// stylesFor returns output styles honouring the persistent --color flag.
func stylesFor(cmd *cobra.Command) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = string(config.ColorAuto)
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return withExitCode(ExitInvalidUsage, validate(cmd, args))
	}
}

// writeErrors prints the lexical errors of a document to the error writer
// and reports whether there were any.
func writeErrors(cmd *cobra.Command, styles *pretty.Styles, in *input, doc *segment.Document) bool {
	errs := doc.Errors.Errors()
	if len(errs) == 0 {
		return false
	}
	out := cmd.ErrOrStderr()
	fmt.Fprintln(out, styles.FormatFileHeader(in.path, len(errs)))
	for _, err := range errs {
		line := pretty.SourceLine(in.content, err.Location.Line)
		fmt.Fprint(out, styles.FormatError(in.path, err, true, line))
	}
	return true
}
