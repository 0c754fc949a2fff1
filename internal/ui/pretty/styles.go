// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const defaultTermWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Deck outline
	SlideTitle  lipgloss.Style
	SlideIndex  lipgloss.Style
	SlideLayout lipgloss.Style
	Heading     lipgloss.Style
	Entry       lipgloss.Style

	// Report summary
	FilePath lipgloss.Style
	Count    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style

	// Tables
	TableHeader lipgloss.Style
	TableBorder lipgloss.Style
	TableCell   lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		SlideTitle:  lipgloss.NewStyle().Bold(true),
		SlideIndex:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		SlideLayout: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Entry:       lipgloss.NewStyle(),

		FilePath: lipgloss.NewStyle().Bold(true),
		Count:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")).Padding(0, 1),
		TableBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableCell:   lipgloss.NewStyle().Padding(0, 1),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	padded := plain.Padding(0, 1)
	return &Styles{
		SlideTitle:  plain,
		SlideIndex:  plain,
		SlideLayout: plain,
		Heading:     plain,
		Entry:       plain,
		FilePath:    plain,
		Count:       plain,
		Warning:     plain,
		Success:     plain,
		Failure:     plain,
		TableHeader: padded,
		TableBorder: plain,
		TableCell:   padded,
		Dim:         plain,
		Bold:        plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the width of the terminal behind writer, or a
// default of 100 columns when writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
