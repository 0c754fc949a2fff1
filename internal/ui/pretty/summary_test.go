package pretty_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/dailyreport/internal/ui/pretty"
	"github.com/yaklabco/dailyreport/pkg/report/reporttest"
	"github.com/yaklabco/dailyreport/pkg/slides"
)

func TestFormatOutputs(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatOutputs([]pretty.Output{
		{Format: "markdown"},
		{Format: "slides", Path: "deck.pptx"},
		{Format: "html", Path: "out/report.html", Err: errors.New("permission denied")},
	})

	assert.Equal(t, "✓ markdown → stdout\n"+
		"✓ slides → deck.pptx\n"+
		"✗ html out/report.html: permission denied\n", out)
}

func TestFormatReportHeadline(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "alice 2026-02-10: 4 PRs across 2 repos, 1 merged today, 2 still open\n",
		styles.FormatReportHeadline(reporttest.Full()))
	assert.Equal(t, "rangeuser 2026-02-03 .. 2026-02-09: 5 PRs across 2 repos, 3 merged, 2 still open\n",
		styles.FormatReportHeadline(reporttest.Range()))
}

func TestFormatRepoTable(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatRepoTable(slides.GroupByRepo(reporttest.Full()))
	assert.Contains(t, out, "REPOSITORY")
	assert.Contains(t, out, "org/alpha")
	assert.Contains(t, out, "org/beta")
	assert.Less(t, strings.Index(out, "org/alpha"), strings.Index(out, "org/beta"))

	assert.Empty(t, styles.FormatRepoTable(nil))
}

func TestFormatProblems(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "Report is well-formed\n", styles.FormatProblems(nil))
	assert.Equal(t, "1 problem\n  - user: must not be empty\n",
		styles.FormatProblems([]string{"user: must not be empty"}))
}
