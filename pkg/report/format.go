package report

import (
	"fmt"
	"strings"
)

// RangeSeparator joins the first and last day of a multi-day period.
const RangeSeparator = " .. "

// DefaultTheme is shown when the aggregator found no themes.
const DefaultTheme = "general development"

// Typography selects the punctuation a renderer uses for shared fragments.
type Typography struct {
	// Minus precedes the deletion count in the diff stats suffix.
	Minus string
}

// Output typographies. Markdown uses a true minus sign (U+2212); slides use
// an ASCII hyphen.
var (
	MarkdownTypography = Typography{Minus: "−"}
	PlainTypography    = Typography{Minus: "-"}
)

// Suffixes returns the author suffix " (name)" for contributed PRs and the
// diff stats suffix " (+a/-d)" for PRs still in flight. Either may be empty.
func (t Typography) Suffixes(pr AuthoredPR) (author, stats string) {
	if name := pr.Author(); name != "" {
		author = fmt.Sprintf(" (%s)", name)
	}
	if pr.Status.ShowsDiffStats() {
		stats = fmt.Sprintf(" (+%d/%s%d)", pr.Additions, t.Minus, pr.Deletions)
	}
	return author, stats
}

// MergedLabel returns the word used after the merged count.
func (s SummaryStats) MergedLabel() string {
	if s.IsRange {
		return "merged"
	}
	return "merged today"
}

// ThemesString joins the themes in order, or returns DefaultTheme.
func (s SummaryStats) ThemesString() string {
	if len(s.Themes) == 0 {
		return DefaultTheme
	}
	return strings.Join(s.Themes, ", ")
}
