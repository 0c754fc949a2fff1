package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/dailyreport/internal/ui/pretty"
	"github.com/yaklabco/dailyreport/pkg/markdown"
	"github.com/yaklabco/dailyreport/pkg/report/reporttest"
	"github.com/yaklabco/dailyreport/pkg/reporter"
)

func TestRunJobs_FailureDoesNotCancelSiblings(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	jobs := []*job{
		{
			// Slides without a path fail before rendering.
			opts: reporter.Options{Writer: &stdout, Format: reporter.FormatSlides},
			out:  pretty.Output{Format: "slides"},
		},
		{
			opts: reporter.Options{Writer: &stdout, Format: reporter.FormatMarkdown},
			out:  pretty.Output{Format: "markdown"},
		},
	}

	err := runJobs(context.Background(), jobs, reporttest.Full())
	require.ErrorIs(t, err, reporter.ErrOutputPathRequired)

	require.ErrorIs(t, jobs[0].out.Err, reporter.ErrOutputPathRequired)
	require.NoError(t, jobs[1].out.Err, "an independent output must not report the sibling's failure")
	assert.Equal(t, markdown.Render(reporttest.Full())+"\n", stdout.String())
}
