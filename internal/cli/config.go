package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/razorlex/internal/configloader"
	"github.com/yaklabco/razorlex/pkg/config"
)

func newConfigCommand() *cobra.Command {
	var showEnv bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging the system, user, project and
explicit config files with RAZORLEX_* environment variables.

Examples:
  razorlex config          Print the merged configuration as YAML
  razorlex config --env    List the supported environment variables`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showEnv {
				printEnvVars(cmd)
				return nil
			}

			cfg, err := loadConfig(cmd, &config.Config{})
			if err != nil {
				return err
			}
			data, err := cfg.ToYAML()
			if err != nil {
				return fmt.Errorf("encode configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&showEnv, "env", false, "list supported environment variables")

	return cmd
}

func printEnvVars(cmd *cobra.Command) {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		width = max(width, len(name))
	}
	slices.Sort(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		fmt.Fprintf(out, "%s  %s\n", name+strings.Repeat(" ", width-len(name)), vars[name])
	}
}
