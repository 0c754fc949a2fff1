package configloader

import "github.com/yaklabco/dailyreport/pkg/config"

// merge combines two configurations, with override taking precedence over base.
//   - Strings: override overwrites base if non-empty
//   - Booleans: override overwrites base if set (non-nil), so false can win
//   - CLI-only fields follow the same rules
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Markdown != nil {
		result.Markdown = config.Bool(*override.Markdown)
	}
	if override.Slides != nil {
		result.Slides = config.Bool(*override.Slides)
	}
	if override.Backups != nil {
		result.Backups = config.Bool(*override.Backups)
	}

	if override.MarkdownOutput != "" {
		result.MarkdownOutput = override.MarkdownOutput
	}
	if override.HTMLOutput != "" {
		result.HTMLOutput = override.HTMLOutput
	}
	if override.SlidesOutput != "" {
		result.SlidesOutput = override.SlidesOutput
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Input != "" {
		result.Input = override.Input
	}
	if override.Strict {
		result.Strict = true
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
