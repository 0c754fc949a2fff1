package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/dailyreport/internal/cli"
	"github.com/yaklabco/dailyreport/pkg/fsutil"
	"github.com/yaklabco/dailyreport/pkg/markdown"
	"github.com/yaklabco/dailyreport/pkg/report"
	"github.com/yaklabco/dailyreport/pkg/report/reporttest"
	"github.com/yaklabco/dailyreport/pkg/slides"
)

func TestRender_MarkdownToStdout(t *testing.T) {
	dir := workspace(t)
	input := writeReport(t, dir, "report.json", reporttest.Full())

	stdout, stderr, err := execute(t, "render", "--input", input)
	require.NoError(t, err)

	assert.Equal(t, markdown.Render(reporttest.Full())+"\n", stdout)
	assert.Empty(t, stderr)
}

func TestRender_YAMLInput(t *testing.T) {
	dir := workspace(t)
	input := filepath.Join(dir, "report.yaml")
	require.NoError(t, os.WriteFile(input, []byte(`user: testuser
date_from: "2026-02-10"
date_to: "2026-02-10"
summary:
  is_range: false
`), 0o644))

	stdout, _, err := execute(t, "render", "-i", input)
	require.NoError(t, err)

	assert.Equal(t, markdown.Render(reporttest.Empty())+"\n", stdout)
}

func TestRender_SlidesDefaultFilename(t *testing.T) {
	dir := workspace(t)
	input := writeReport(t, dir, "report.json", reporttest.Full())

	stdout, stderr, err := execute(t, "render", "--input", input, "--slides")
	require.NoError(t, err)

	assert.Empty(t, stdout, "markdown is not printed when only slides are requested")
	assert.Contains(t, stderr, "daily-report-2026-02-10.pptx")

	deck, err := slides.Read(context.Background(), filepath.Join(dir, "daily-report-2026-02-10.pptx"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Activity Report", "org/alpha", "org/beta", "Summary"}, deck.Titles())
}

func TestRender_MarkdownAndSlides(t *testing.T) {
	dir := workspace(t)
	input := writeReport(t, dir, "report.json", reporttest.Range())
	deckPath := filepath.Join(dir, "week.pptx")

	stdout, _, err := execute(t, "render", "--input", input, "--markdown", "--slides", "--slides-output", deckPath)
	require.NoError(t, err)

	assert.Equal(t, markdown.Render(reporttest.Range())+"\n", stdout)

	deck, err := slides.Read(context.Background(), deckPath)
	require.NoError(t, err)
	assert.Len(t, deck.Slides, 2)
	assert.Equal(t, "rangeuser", deck.Author)
}

func TestRender_SlidesOutputRequiresSlides(t *testing.T) {
	dir := workspace(t)
	input := writeReport(t, dir, "report.json", reporttest.Full())
	deckPath := filepath.Join(dir, "deck.pptx")

	stdout, _, err := execute(t, "render", "--input", input, "--slides-output", deckPath)
	require.Error(t, err)

	require.ErrorIs(t, err, cli.ErrInvalidUsage)
	assert.Contains(t, err.Error(), "--slides-output requires --slides")
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
	assert.Empty(t, stdout)
	assert.NoFileExists(t, deckPath)
}

func TestRender_SlidesEnabledByConfig(t *testing.T) {
	dir := workspace(t)
	input := writeReport(t, dir, "report.json", reporttest.Full())
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".dailyreport.yml"), []byte("slides: true\n"), 0o644))
	deckPath := filepath.Join(dir, "deck.pptx")

	_, _, err := execute(t, "render", "--input", input, "--slides-output", deckPath)
	require.NoError(t, err)
	assert.FileExists(t, deckPath)
}

func TestRender_SlidesOutputInConfigWithoutSlides(t *testing.T) {
	dir := workspace(t)
	input := writeReport(t, dir, "report.json", reporttest.Full())
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".dailyreport.yml"), []byte("slides_output: deck.pptx\n"), 0o644))

	_, _, err := execute(t, "render", "--input", input)
	require.Error(t, err)
	assert.Equal(t, cli.ExitDataError, cli.ExitCode(err))
}

func TestRender_HTMLAndMarkdownFiles(t *testing.T) {
	dir := workspace(t)
	input := writeReport(t, dir, "report.json", reporttest.Full())
	mdPath := filepath.Join(dir, "report.md")
	htmlPath := filepath.Join(dir, "report.html")

	stdout, stderr, err := execute(t, "render", "--input", input,
		"--markdown-output", mdPath, "--html-output", htmlPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "report.md")
	assert.Contains(t, stderr, "report.html")

	md, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.Equal(t, markdown.Render(reporttest.Full())+"\n", string(md))

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1>Daily Report — 2026-02-10</h1>")
}

func TestRender_Backup(t *testing.T) {
	dir := workspace(t)
	input := writeReport(t, dir, "report.json", reporttest.Full())
	mdPath := filepath.Join(dir, "report.md")
	require.NoError(t, os.WriteFile(mdPath, []byte("old\n"), 0o644))

	_, _, err := execute(t, "render", "--input", input, "--markdown-output", mdPath, "--backup")
	require.NoError(t, err)

	old, err := os.ReadFile(fsutil.BackupPath(mdPath))
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(old))
}

func TestRender_MissingOutputDirectory(t *testing.T) {
	dir := workspace(t)
	input := writeReport(t, dir, "report.json", reporttest.Full())

	stdout, _, err := execute(t, "render", "--input", input, "--markdown",
		"--slides", "--slides-output", filepath.Join(dir, "missing", "deck.pptx"))
	require.Error(t, err)

	require.ErrorIs(t, err, fsutil.ErrNotFound)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
	assert.Empty(t, stdout, "nothing is rendered when an output cannot be created")
}

func TestRender_MissingInput(t *testing.T) {
	dir := workspace(t)

	_, _, err := execute(t, "render", "--input", filepath.Join(dir, "nope.json"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
}

func TestRender_InputRequired(t *testing.T) {
	workspace(t)

	_, _, err := execute(t, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input")
}

func TestRender_MalformedInput(t *testing.T) {
	dir := workspace(t)
	input := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(input, []byte("{not json"), 0o644))

	_, _, err := execute(t, "render", "--input", input)
	require.Error(t, err)
	require.ErrorIs(t, err, cli.ErrInvalidReport)
	assert.Equal(t, cli.ExitDataError, cli.ExitCode(err))
}

func TestRender_UnknownInputExtension(t *testing.T) {
	dir := workspace(t)
	input := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(input, []byte("{}"), 0o644))

	_, _, err := execute(t, "render", "--input", input)
	require.Error(t, err)
	assert.Equal(t, cli.ExitDataError, cli.ExitCode(err))
}

func TestRender_ProblemsAreWarnings(t *testing.T) {
	dir := workspace(t)
	data := reporttest.Authored(report.AuthoredPR{Repo: "org/x", Title: "Odd", Number: 1, Status: "Queued"})
	input := writeReport(t, dir, "report.json", data)

	stdout, stderr, err := execute(t, "render", "--input", input)
	require.NoError(t, err)

	assert.Contains(t, stdout, "**Queued**")
	assert.Contains(t, stderr, "report problem")
	assert.Contains(t, stderr, "authored_prs[0].status")
}

func TestRender_StrictRejectsProblems(t *testing.T) {
	dir := workspace(t)
	data := reporttest.Authored(report.AuthoredPR{Repo: "org/x", Title: "Odd", Number: 1, Status: "Queued"})
	input := writeReport(t, dir, "report.json", data)

	stdout, _, err := execute(t, "render", "--input", input, "--strict")
	require.Error(t, err)

	require.ErrorIs(t, err, cli.ErrInvalidReport)
	assert.Equal(t, cli.ExitDataError, cli.ExitCode(err))
	assert.Empty(t, stdout)
}

func TestRender_InvalidLogLevel(t *testing.T) {
	workspace(t)

	_, _, err := execute(t, "render", "--input", "report.json", "--log-level", "loud")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}
