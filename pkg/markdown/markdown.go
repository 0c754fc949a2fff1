// Package markdown renders an activity report as a Markdown document.
package markdown

import (
	"fmt"
	"strings"

	"github.com/yaklabco/dailyreport/pkg/report"
)

// Section labels and the placeholders shown when a section is empty.
const (
	authoredLabel = "Authored / Contributed PRs"
	reviewedLabel = "Reviewed / Approved PRs"
	waitingLabel  = "Waiting for review"

	NoAuthored = "No authored or contributed PRs."
	NoReviewed = "No reviewed or approved PRs."
	NoWaiting  = "No PRs waiting for review."
)

// Render returns the report as Markdown: a header, the authored, reviewed and
// waiting sections in that order, and a one-line summary. Lines are joined with
// "\n" and the document has no trailing newline.
//
// Render is pure; the same report always yields the same bytes.
func Render(r *report.Data) string {
	b := &builder{}

	b.line(fmt.Sprintf("# Daily Report — %s", r.Period(report.RangeSeparator)))
	b.blank()

	b.section(authoredLabel, NoAuthored, len(r.AuthoredPRs), func(i int) string {
		return authoredLine(r.AuthoredPRs[i])
	})
	b.section(reviewedLabel, NoReviewed, len(r.ReviewedPRs), func(i int) string {
		pr := r.ReviewedPRs[i]
		return fmt.Sprintf("- `%s` — %s #%d (%s) — **%s**", pr.Repo, pr.Title, pr.Number, pr.Author, pr.Status)
	})
	b.section(waitingLabel, NoWaiting, len(r.WaitingPRs), func(i int) string {
		return waitingLine(r.WaitingPRs[i])
	})

	s := r.Summary
	b.line(fmt.Sprintf("**Summary:** %d PRs across %d repos, %d %s, %d still open. Key themes: %s.",
		s.TotalPRs, s.RepoCount, s.MergedCount, s.MergedLabel(), s.OpenCount, s.ThemesString()))

	return strings.Join(b.lines, "\n")
}

func authoredLine(pr report.AuthoredPR) string {
	author, stats := report.MarkdownTypography.Suffixes(pr)
	return fmt.Sprintf("- `%s` — %s #%d%s — **%s**%s", pr.Repo, pr.Title, pr.Number, author, pr.Status, stats)
}

func waitingLine(pr report.WaitingPR) string {
	reviewers := make([]string, len(pr.Reviewers))
	for i, name := range pr.Reviewers {
		reviewers[i] = "**" + name + "**"
	}
	return fmt.Sprintf("- `%s` — %s #%d — reviewer: %s — since %s (%d days)",
		pr.Repo, pr.Title, pr.Number, strings.Join(reviewers, ", "), pr.CreatedAt, pr.DaysWaiting)
}

type builder struct {
	lines []string
}

func (b *builder) line(s string) {
	b.lines = append(b.lines, s)
}

func (b *builder) blank() {
	b.lines = append(b.lines, "")
}

// section writes a bold label, then either n bullets or the italic
// placeholder, each block followed by a blank line.
func (b *builder) section(label, placeholder string, n int, item func(int) string) {
	b.line("**" + label + "**")
	b.blank()
	if n == 0 {
		b.line("_" + placeholder + "_")
	}
	for i := range n {
		b.line(item(i))
	}
	b.blank()
}
