package configloader

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/yaklabco/dailyreport/pkg/config"
)

// EnvVarPrefix is the prefix for all dailyreport environment variables.
const EnvVarPrefix = "DAILYREPORT_"

// EnvError reports an environment variable with an unusable value.
type EnvError struct {
	Name  string
	Value string
	Want  string
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("invalid value for %s: %q (expected %s)", e.Name, e.Value, e.Want)
}

type envMapping struct {
	description string
	setString   func(cfg *config.Config, value string)
	setBool     func(cfg *config.Config, value bool)
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"MARKDOWN": {
		description: "Always print Markdown: true or false",
		setBool:     func(c *config.Config, v bool) { c.Markdown = config.Bool(v) },
	},
	"MARKDOWN_OUTPUT": {
		description: "Markdown output file",
		setString:   func(c *config.Config, v string) { c.MarkdownOutput = v },
	},
	"HTML_OUTPUT": {
		description: "HTML output file",
		setString:   func(c *config.Config, v string) { c.HTMLOutput = v },
	},
	"SLIDES": {
		description: "Build a slide deck: true or false",
		setBool:     func(c *config.Config, v bool) { c.Slides = config.Bool(v) },
	},
	"SLIDES_OUTPUT": {
		description: "Slide deck output file",
		setString:   func(c *config.Config, v string) { c.SlidesOutput = v },
	},
	"BACKUPS": {
		description: "Keep previous outputs as .bak: true or false",
		setBool:     func(c *config.Config, v bool) { c.Backups = config.Bool(v) },
	},
	"COLOR": {
		description: "Terminal colors: auto, always or never",
		setString:   func(c *config.Config, v string) { c.Color = config.ColorMode(v) },
	},
	"LOG_LEVEL": {
		description: "Log level: debug, info, warn or error",
		setString:   func(c *config.Config, v string) { c.LogLevel = v },
	},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with DAILYREPORT_ (e.g., DAILYREPORT_SLIDES).
// Empty values are ignored.
func LoadFromEnv(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	// Sorted so the first bad variable reported is stable.
	for _, suffix := range envSuffixes() {
		name := EnvVarPrefix + suffix
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}

		mapping := envMappings[suffix]
		if mapping.setBool != nil {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return &EnvError{Name: name, Value: value, Want: "true/false/1/0"}
			}
			mapping.setBool(cfg, b)
			continue
		}
		mapping.setString(cfg, value)
	}

	return nil
}

func envSuffixes() []string {
	suffixes := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		suffixes = append(suffixes, suffix)
	}
	slices.Sort(suffixes)
	return suffixes
}

// ListEnvVars returns all supported environment variables with their
// descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[EnvVarPrefix+suffix] = mapping.description
	}
	return vars
}
