package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/razorlex/internal/configloader"
	"github.com/yaklabco/razorlex/internal/logging"
	"github.com/yaklabco/razorlex/pkg/config"
	"github.com/yaklabco/razorlex/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new razorlex configuration file",
		Long: `Create a new .razorlex.yml configuration file in the current directory
with sensible defaults. The file can be customized to force a language, map
extensions to languages and ignore paths.

Examples:
  razorlex init                      Create minimal .razorlex.yml
  razorlex init --full               Write every setting with its default
  razorlex init --output custom.yml  Write to a custom file path`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with every setting")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .razorlex.yml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), "info")

	outputPath := flags.output
	if outputPath == "" {
		outputPath = configloader.ProjectConfigFiles[0]
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	err = fsutil.WriteNew(commandContext(cmd), absPath, content, fsutil.DefaultFileMode, flags.force)
	if errors.Is(err, fsutil.ErrExists) {
		return withExitCode(ExitInvalidUsage,
			fmt.Errorf("file %q already exists; use --force to overwrite", outputPath))
	}
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("write file: %w", err))
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	if flags.full {
		logger.Info("full template lists every setting with its default")
	}
	logger.Info("run 'razorlex check' to report lexical errors")

	return nil
}
