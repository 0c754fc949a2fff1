package reporter

import (
	"context"

	"github.com/yaklabco/dailyreport/pkg/markdown"
	"github.com/yaklabco/dailyreport/pkg/report"
)

// MarkdownReporter writes the report as Markdown followed by a newline.
type MarkdownReporter struct {
	opts Options
}

// NewMarkdownReporter creates a new Markdown reporter.
func NewMarkdownReporter(opts Options) *MarkdownReporter {
	return &MarkdownReporter{opts: opts}
}

// Report implements Reporter.
func (r *MarkdownReporter) Report(ctx context.Context, data *report.Data) error {
	return writeDocument(ctx, r.opts, []byte(markdown.Render(data)+"\n"))
}
