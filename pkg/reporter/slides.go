package reporter

import (
	"context"

	"github.com/yaklabco/dailyreport/internal/logging"
	"github.com/yaklabco/dailyreport/pkg/report"
	"github.com/yaklabco/dailyreport/pkg/slides"
)

// SlidesReporter writes the report as a .pptx deck to Options.OutputPath.
type SlidesReporter struct {
	opts Options
}

// NewSlidesReporter creates a new slide deck reporter.
func NewSlidesReporter(opts Options) *SlidesReporter {
	return &SlidesReporter{opts: opts}
}

// Report implements Reporter.
func (r *SlidesReporter) Report(ctx context.Context, data *report.Data) error {
	if r.opts.OutputPath == "" {
		return ErrOutputPathRequired
	}
	if err := backup(ctx, r.opts); err != nil {
		return err
	}
	if err := slides.Render(ctx, data, r.opts.OutputPath); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug("Wrote slide deck",
		logging.FieldOutput, r.opts.OutputPath,
		logging.FieldSlides, len(slides.GroupByRepo(data))+2,
	)
	return nil
}
