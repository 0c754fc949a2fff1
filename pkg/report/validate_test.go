package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/dailyreport/pkg/report"
	"github.com/yaklabco/dailyreport/pkg/report/reporttest"
)

func TestValidate_Fixtures(t *testing.T) {
	t.Parallel()

	for name, d := range map[string]*report.Data{
		"empty": reporttest.Empty(),
		"full":  reporttest.Full(),
		"range": reporttest.Range(),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result := report.Validate(d)
			assert.True(t, result.Valid(), "unexpected violations: %v", result.Messages())
		})
	}
}

func TestValidate_Violations(t *testing.T) {
	t.Parallel()

	d := report.New("", "2026-02-10", "2026-02-10",
		report.WithAuthored(report.AuthoredPR{
			Repo: "org/a", Number: 0, Status: "Queued", Additions: -1, OriginalAuthor: "bob",
		}),
		report.WithReviewed(report.ReviewedPR{Repo: "", Number: 3, Status: report.StatusOpen}),
		report.WithWaiting(report.WaitingPR{Repo: "org/b", Number: 4, DaysWaiting: -2}),
		report.WithSummary(report.SummaryStats{IsRange: true, OpenCount: -1}),
	)

	result := report.Validate(d)
	require.False(t, result.Valid())

	fields := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		fields = append(fields, e.Field)
	}

	assert.Equal(t, []string{
		"user",
		"summary.is_range",
		"authored_prs[0].number",
		"authored_prs[0].status",
		"authored_prs[0].additions",
		"authored_prs[0].original_author",
		"reviewed_prs[0].repo",
		"waiting_prs[0].reviewers",
		"waiting_prs[0].days_waiting",
		"summary.open_count",
	}, fields)
	assert.Contains(t, result.Messages()[1], "covers 2026-02-10")
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	assert.False(t, report.Validate(nil).Valid())
}
