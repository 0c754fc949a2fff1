// Package reporter writes a rendered activity report to its destination.
package reporter

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/dailyreport/pkg/report"
)

// ErrOutputPathRequired is returned when a file-only format has no output path.
var ErrOutputPathRequired = errors.New("output path required")

// Compile-time interface checks.
var (
	_ Reporter = (*MarkdownReporter)(nil)
	_ Reporter = (*HTMLReporter)(nil)
	_ Reporter = (*SlidesReporter)(nil)
)

// Reporter renders a report and writes it out.
type Reporter interface {
	Report(ctx context.Context, data *report.Data) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatMarkdown
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if format.NeedsOutputPath() && opts.OutputPath == "" {
		return nil, fmt.Errorf("%w: %s output cannot be written to a stream", ErrOutputPathRequired, format)
	}
	opts.Format = format

	switch format {
	case FormatMarkdown:
		return NewMarkdownReporter(opts), nil
	case FormatHTML:
		return NewHTMLReporter(opts), nil
	case FormatSlides:
		return NewSlidesReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
