package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/razorlex/pkg/config"
)

// envVarPrefix is the prefix for all razorlex environment variables.
const envVarPrefix = "RAZORLEX_"

// envSetter applies one environment value to the config.
type envSetter struct {
	description string
	apply       func(cfg *config.Config, value string) error
}

// envMappings maps environment variable names (without prefix) to setters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envSetter{
	"LANGUAGE": {"Tokenizer for every file: auto, html or javascript", func(cfg *config.Config, v string) error {
		cfg.Language = config.Language(strings.ToLower(v))
		return nil
	}},
	"FORMAT": {"Output format: text, table, json or summary", func(cfg *config.Config, v string) error {
		cfg.Format = config.OutputFormat(strings.ToLower(v))
		return nil
	}},
	"COLOR": {"Color mode: auto, always or never", func(cfg *config.Config, v string) error {
		cfg.Color = config.ColorMode(strings.ToLower(v))
		return nil
	}},
	"JOBS": {"Number of parallel workers (0 = auto)", func(cfg *config.Config, v string) error {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sJOBS: %q", envVarPrefix, v)
		}
		cfg.Jobs = jobs
		return nil
	}},
	"VALIDATE_REGEX": {"Check JavaScript regular expression literals: true or false", func(cfg *config.Config, v string) error {
		validate, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sVALIDATE_REGEX: %q (expected true/false/1/0)", envVarPrefix, v)
		}
		cfg.ValidateRegex = &validate
		return nil
	}},
	"IGNORE": {"Comma-separated list of ignore patterns", func(cfg *config.Config, v string) error {
		cfg.Ignore = parseSliceValue(v)
		return nil
	}},
	"LSP_TRACE": {"Language server trace level: off, messages or verbose", func(cfg *config.Config, v string) error {
		cfg.LSP.Trace = strings.ToLower(v)
		return nil
	}},
	"LSP_LOG_FILE": {"Language server log file", func(cfg *config.Config, v string) error {
		cfg.LSP.LogFile = v
		return nil
	}},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with RAZORLEX_ (e.g., RAZORLEX_LANGUAGE).
func LoadFromEnv(cfg *config.Config) error {
	return loadFromLookup(cfg, os.LookupEnv)
}

func loadFromLookup(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range envSuffixes() {
		value, ok := lookup(envVarPrefix + suffix)
		if !ok || value == "" {
			continue
		}
		if err := envMappings[suffix].apply(cfg, value); err != nil {
			return err
		}
	}

	return nil
}

func envSuffixes() []string {
	suffixes := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, setter := range envMappings {
		vars[envVarPrefix+suffix] = setter.description
	}
	return vars
}
