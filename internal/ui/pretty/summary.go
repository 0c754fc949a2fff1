package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yaklabco/dailyreport/pkg/report"
	"github.com/yaklabco/dailyreport/pkg/slides"
)

// Output describes one file or stream a render run produced.
type Output struct {
	Format string

	// Path is the written file; empty means stdout.
	Path string

	Err error
}

// FormatOutputs lists what a render run wrote, one line per output.
func (s *Styles) FormatOutputs(outputs []Output) string {
	var b strings.Builder
	for _, out := range outputs {
		dest := "stdout"
		if out.Path != "" {
			dest = s.FilePath.Render(out.Path)
		}

		if out.Err != nil {
			fmt.Fprintf(&b, "%s %s %s: %v\n", s.Failure.Render("✗"), out.Format, dest, out.Err)
			continue
		}
		fmt.Fprintf(&b, "%s %s %s %s\n", s.Success.Render("✓"), out.Format, s.Dim.Render("→"), dest)
	}
	return b.String()
}

// FormatReportHeadline formats a one-line description of a report.
// Example: "alice 2026-02-10: 4 PRs across 2 repos, 1 merged today, 2 still open".
func (s *Styles) FormatReportHeadline(r *report.Data) string {
	sum := r.Summary
	return fmt.Sprintf("%s %s: %s PRs across %s repos, %s %s, %s still open\n",
		s.Bold.Render(r.User),
		r.Period(report.RangeSeparator),
		s.Count.Render(fmt.Sprint(sum.TotalPRs)),
		s.Count.Render(fmt.Sprint(sum.RepoCount)),
		s.Count.Render(fmt.Sprint(sum.MergedCount)), sum.MergedLabel(),
		s.Count.Render(fmt.Sprint(sum.OpenCount)),
	)
}

// FormatRepoTable tabulates the PR counts per repository in slide order.
// It returns an empty string when there are no repositories.
func (s *Styles) FormatRepoTable(groups []slides.RepoGroup) string {
	if len(groups) == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.TableBorder).
		Headers("REPOSITORY", "AUTHORED", "REVIEWED", "WAITING").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			return s.TableCell
		})

	for _, g := range groups {
		t.Row(g.Repo,
			fmt.Sprint(len(g.Authored)),
			fmt.Sprint(len(g.Reviewed)),
			fmt.Sprint(len(g.Waiting)),
		)
	}

	return t.String() + "\n"
}

// FormatProblems lists report validation problems under a warning header.
func (s *Styles) FormatProblems(problems []string) string {
	if len(problems) == 0 {
		return s.Success.Render("Report is well-formed") + "\n"
	}

	var b strings.Builder
	b.WriteString(s.Warning.Render(fmt.Sprintf("%d %s", len(problems), plural(len(problems), "problem", "problems"))))
	b.WriteString("\n")
	for _, p := range problems {
		fmt.Fprintf(&b, "  %s %s\n", s.Dim.Render("-"), p)
	}
	return b.String()
}
