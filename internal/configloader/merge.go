package configloader

import (
	"maps"

	"github.com/yaklabco/razorlex/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointers: override overwrites base if override is non-nil
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Language != "" {
		result.Language = override.Language
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.ValidateRegex != nil {
		validate := *override.ValidateRegex
		result.ValidateRegex = &validate
	}

	if override.LSP.Trace != "" {
		result.LSP.Trace = override.LSP.Trace
	}
	if override.LSP.LogFile != "" {
		result.LSP.LogFile = override.LSP.LogFile
	}

	if override.Extensions != nil {
		if result.Extensions == nil {
			result.Extensions = make(map[string]config.Language, len(override.Extensions))
		}
		maps.Copy(result.Extensions, override.Extensions)
	}

	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
