// Package config defines the configuration types for dailyreport.
// These types are plain data; discovery and merging live in configloader.
package config

import "strings"

// ColorMode controls colorized terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// LogLevels lists the accepted log_level values.
func LogLevels() []string {
	return []string{"debug", "info", "warn", "warning", "error"}
}

// IsValidLogLevel reports whether level is one of LogLevels, ignoring case.
func IsValidLogLevel(level string) bool {
	for _, l := range LogLevels() {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}

// Config is the root configuration structure.
//
// Boolean options are pointers so that a config file or environment variable
// can switch off something a lower-precedence source switched on. Use the
// accessor methods to read them.
type Config struct {
	// Markdown writes the Markdown report even when other outputs are requested.
	Markdown *bool `yaml:"markdown,omitempty"`

	// MarkdownOutput is the Markdown file path. Empty means stdout.
	MarkdownOutput string `yaml:"markdown_output,omitempty"`

	// HTMLOutput is the HTML file path. Empty disables HTML export.
	HTMLOutput string `yaml:"html_output,omitempty"`

	// Slides enables the slide deck.
	Slides *bool `yaml:"slides,omitempty"`

	// SlidesOutput is the .pptx path. Requires Slides.
	SlidesOutput string `yaml:"slides_output,omitempty"`

	// Backups keeps the previous output file as <path>.bak.
	Backups *bool `yaml:"backups,omitempty"`

	// Color is "auto", "always" or "never".
	Color ColorMode `yaml:"color,omitempty"`

	// LogLevel is the default logger level.
	LogLevel string `yaml:"log_level,omitempty"`

	// CLI-level options (not persisted to config files).

	// Input is the report file to render.
	Input string `yaml:"-"`

	// Strict fails on report validation problems instead of warning.
	Strict bool `yaml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Markdown: Bool(false),
		Slides:   Bool(false),
		Backups:  Bool(false),
		Color:    ColorAuto,
		LogLevel: "info",
	}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

func deref(b *bool) bool {
	return b != nil && *b
}

// MarkdownEnabled reports whether Markdown was explicitly requested.
func (c *Config) MarkdownEnabled() bool {
	return deref(c.Markdown)
}

// SlidesEnabled reports whether the slide deck is enabled.
func (c *Config) SlidesEnabled() bool {
	return deref(c.Slides)
}

// BackupsEnabled reports whether previous outputs are backed up.
func (c *Config) BackupsEnabled() bool {
	return deref(c.Backups)
}
