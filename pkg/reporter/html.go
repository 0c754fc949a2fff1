package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/dailyreport/pkg/markdown"
	"github.com/yaklabco/dailyreport/pkg/report"
)

// HTMLReporter writes the Markdown report converted to an HTML fragment.
type HTMLReporter struct {
	opts Options
}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter(opts Options) *HTMLReporter {
	return &HTMLReporter{opts: opts}
}

// Report implements Reporter.
func (r *HTMLReporter) Report(ctx context.Context, data *report.Data) error {
	content, err := markdown.ToHTML(markdown.Render(data))
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return writeDocument(ctx, r.opts, content)
}
