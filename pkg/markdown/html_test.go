package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/dailyreport/pkg/markdown"
	"github.com/yaklabco/dailyreport/pkg/report"
	"github.com/yaklabco/dailyreport/pkg/report/reporttest"
)

func TestToHTML(t *testing.T) {
	t.Parallel()

	out, err := markdown.ToHTML(markdown.Render(reporttest.Full()))
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<h1>Daily Report — 2026-02-10</h1>")
	assert.Contains(t, html, "<code>org/alpha</code>")
	assert.Contains(t, html, "<strong>dave</strong>, <strong>eve</strong>")
	assert.Contains(t, html, "<em>"+markdown.NoAuthored+"</em>")
}

func TestToHTML_Placeholders(t *testing.T) {
	t.Parallel()

	out, err := markdown.ToHTML(markdown.Render(reporttest.Empty()))
	require.NoError(t, err)

	assert.Contains(t, string(out), "<em>"+markdown.NoWaiting+"</em>")
	assert.NotContains(t, string(out), "<li>")
}

func TestToHTML_OmitsRawHTML(t *testing.T) {
	t.Parallel()

	d := reporttest.Authored(report.AuthoredPR{
		Repo: "org/repo", Title: "<script>alert(1)</script>", Number: 1, Status: report.StatusMerged,
	})

	out, err := markdown.ToHTML(markdown.Render(d))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}
