// Package reporttest provides report fixtures shared by renderer tests.
package reporttest

import "github.com/yaklabco/dailyreport/pkg/report"

// Day is the date used by single-day fixtures.
const Day = "2026-02-10"

// Empty returns a single-day report for "testuser" with no PRs.
func Empty() *report.Data {
	return report.New("testuser", Day, Day)
}

// Full returns a single-day report for "alice" touching org/alpha and org/beta
// with every section populated.
func Full() *report.Data {
	return report.New("alice", Day, Day,
		report.WithAuthored(
			report.AuthoredPR{
				Repo: "org/alpha", Title: "Add login", Number: 10,
				Status: report.StatusOpen, Additions: 50, Deletions: 10,
			},
			report.AuthoredPR{
				Repo: "org/beta", Title: "Fix crash", Number: 20,
				Status: report.StatusMerged, Contributed: true, OriginalAuthor: "bob",
			},
		),
		report.WithReviewed(
			report.ReviewedPR{
				Repo: "org/alpha", Title: "Update docs", Number: 11,
				Author: "charlie", Status: report.StatusOpen,
			},
		),
		report.WithWaiting(
			report.WaitingPR{
				Repo: "org/beta", Title: "Refactor DB", Number: 21,
				Reviewers: []string{"dave", "eve"}, CreatedAt: "2026-02-08", DaysWaiting: 2,
			},
		),
		report.WithSummary(report.SummaryStats{
			TotalPRs: 4, RepoCount: 2, MergedCount: 1, OpenCount: 2,
			Themes: []string{"feat", "fix"},
		}),
	)
}

// Range returns an empty report for "rangeuser" covering a week.
func Range() *report.Data {
	return report.New("rangeuser", "2026-02-03", "2026-02-09",
		report.WithSummary(report.SummaryStats{
			TotalPRs: 5, RepoCount: 2, MergedCount: 3, OpenCount: 2, IsRange: true,
		}),
	)
}

// Authored returns a single-day report holding only the given authored PRs.
func Authored(prs ...report.AuthoredPR) *report.Data {
	return report.New("testuser", Day, Day, report.WithAuthored(prs...))
}
