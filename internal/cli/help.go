package cli

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/yaklabco/razorlex/internal/ui/pretty"
	"github.com/yaklabco/razorlex/pkg/config"
)

const usageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ command .CommandPath }}{{if .Version}} {{ dim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trimTrailing }}

{{end}}` + usageTemplate

// HelpFormatter renders cobra help with the output styles. Colors follow
// the --color flag of the command being described.
type HelpFormatter struct {
	fallbackColor string
}

// NewHelpFormatter returns a formatter that uses colorMode when a command
// has no --color flag.
func NewHelpFormatter(colorMode string) *HelpFormatter {
	return &HelpFormatter{fallbackColor: colorMode}
}

// ApplyToCommand installs the styled help and usage functions on cmd. Its
// subcommands inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return h.render(command, "usage", usageTemplate)
	})
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := h.render(command, "help", helpTemplate); err != nil {
			command.PrintErrln(err)
		}
	})
}

func (h *HelpFormatter) render(command *cobra.Command, name, text string) error {
	styles := pretty.NewStyles(pretty.IsColorEnabled(h.colorMode(command), command.OutOrStdout()))

	tmpl, err := template.New(name).Funcs(helpFuncs(styles)).Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s template: %w", name, err)
	}
	return tmpl.Execute(command.OutOrStdout(), command)
}

func (h *HelpFormatter) colorMode(command *cobra.Command) string {
	if mode, err := command.Flags().GetString("color"); err == nil && mode != "" {
		return mode
	}
	if h.fallbackColor != "" {
		return h.fallbackColor
	}
	return string(config.ColorAuto)
}

func helpFuncs(styles *pretty.Styles) template.FuncMap {
	return template.FuncMap{
		"command":    styles.Bold.Render,
		"heading":    styles.SummaryTitle.Render,
		"subcommand": styles.Identifier.Render,
		"dim":        styles.Dim.Render,
		"flags": func(usages string) string {
			return styleFlagUsages(styles, usages)
		},
		"join":         strings.Join,
		"rpad":         rpad,
		"trimTrailing": trimTrailingWhitespace,
	}
}

// styleFlagUsages colors the flag names of pflag usage lines, which look
// like "  -f, --flag type   description".
func styleFlagUsages(styles *pretty.Styles, usages string) string {
	lines := strings.Split(strings.TrimSuffix(usages, "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		flagPart, description, found := strings.Cut(trimmed, "   ")
		if !found {
			continue
		}

		tokens := strings.Fields(flagPart)
		for j, token := range tokens {
			name, comma := strings.CutSuffix(token, ",")
			if strings.HasPrefix(name, "-") {
				name = styles.Keyword.Render(name)
			} else {
				name = styles.Dim.Render(name)
			}
			if comma {
				name += ","
			}
			tokens[j] = name
		}

		indent := line[:len(line)-len(trimmed)]
		lines[i] = indent + strings.Join(tokens, " ") + "   " + strings.TrimLeft(description, " ")
	}
	return strings.Join(lines, "\n")
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
