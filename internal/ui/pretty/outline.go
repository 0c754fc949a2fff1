package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/dailyreport/pkg/slides"
)

const (
	outlineIndent = "    "
	ellipsis      = "…"
	minLineWidth  = 20

	// maxOutlineLevel caps indentation for decks built outside this tool.
	maxOutlineLevel = 8
)

// OutlineFormatter prints a slide deck as an indented text outline.
type OutlineFormatter struct {
	styles *Styles
	width  int
}

// NewOutlineFormatter creates an outline formatter. Lines longer than width
// are truncated; a non-positive width means 100 columns.
func NewOutlineFormatter(styles *Styles, width int) *OutlineFormatter {
	if width <= 0 {
		width = defaultTermWidth
	}
	return &OutlineFormatter{styles: styles, width: max(width, minLineWidth)}
}

// FormatDeck renders every slide as a numbered title followed by its body
// paragraphs, indented by outline level. Bold paragraphs use the heading style.
func (o *OutlineFormatter) FormatDeck(deck *slides.Deck, path string) string {
	var b strings.Builder

	header := fmt.Sprintf("%s %s", o.styles.FilePath.Render(path),
		o.styles.Dim.Render(fmt.Sprintf("(%d %s)", len(deck.Slides), plural(len(deck.Slides), "slide", "slides"))))
	b.WriteString(header)
	b.WriteString("\n")

	digits := len(fmt.Sprint(len(deck.Slides)))
	for i, s := range deck.Slides {
		index := fmt.Sprintf("%*d.", digits, i+1)
		title := o.truncate(s.Title, o.width-digits-len(s.Layout.String())-6)
		fmt.Fprintf(&b, "\n%s %s %s\n",
			o.styles.SlideIndex.Render(index),
			o.styles.SlideTitle.Render(title),
			o.styles.SlideLayout.Render("["+s.Layout.String()+"]"),
		)

		for _, p := range s.Body {
			indent := strings.Repeat(outlineIndent, min(max(p.Level, 0), maxOutlineLevel)+1)
			text := o.truncate(p.Text, o.width-len(indent))

			style := o.styles.Entry
			if p.Bold {
				style = o.styles.Heading
			}
			b.WriteString(indent)
			b.WriteString(style.Render(text))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// truncate shortens s to at most width display cells.
func (o *OutlineFormatter) truncate(s string, width int) string {
	if width < 1 {
		width = 1
	}
	if lipgloss.Width(s) <= width {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+lipgloss.Width(ellipsis) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
