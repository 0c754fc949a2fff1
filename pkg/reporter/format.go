package reporter

import "fmt"

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatSlides   Format = "slides"
)

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatMarkdown, FormatHTML, FormatSlides}
}

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "markdown", "md", "":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "slides", "pptx":
		return FormatSlides, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: markdown, html, slides", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatHTML, FormatSlides:
		return true
	default:
		return false
	}
}

// NeedsOutputPath reports whether the format can only be written to a file.
func (f Format) NeedsOutputPath() bool {
	return f == FormatSlides
}
