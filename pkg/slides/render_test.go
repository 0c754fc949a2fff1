package slides_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/dailyreport/pkg/fsutil"
	"github.com/yaklabco/dailyreport/pkg/report/reporttest"
	"github.com/yaklabco/dailyreport/pkg/slides"
)

func TestRender(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "report.pptx")

	require.NoError(t, slides.Render(ctx, reporttest.Full(), path))

	deck, err := slides.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Activity Report", "org/alpha", "org/beta", "Summary"}, deck.Titles())
	assert.Equal(t, "alice\n2026-02-10", deck.Slides[0].Text())
}

func TestRender_Twice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	first := filepath.Join(dir, "first.pptx")
	second := filepath.Join(dir, "second.pptx")

	require.NoError(t, slides.Render(ctx, reporttest.Full(), first))
	require.NoError(t, slides.Render(ctx, reporttest.Full(), second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRender_Overwrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "report.pptx")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	require.NoError(t, slides.Render(ctx, reporttest.Empty(), path))

	deck, err := slides.Read(ctx, path)
	require.NoError(t, err)
	assert.Len(t, deck.Slides, 2)
}

func TestRender_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "report.pptx")

	err := slides.Render(context.Background(), reporttest.Full(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, fsutil.ErrNotFound)
	assert.NoFileExists(t, path)
}

func TestRender_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "report.pptx")
	err := slides.Render(ctx, reporttest.Full(), path)
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

func TestRead_Missing(t *testing.T) {
	t.Parallel()

	_, err := slides.Read(context.Background(), filepath.Join(t.TempDir(), "nope.pptx"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)
}
