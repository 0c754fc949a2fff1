package slides

import (
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/dailyreport/pkg/fsutil"
	"github.com/yaklabco/dailyreport/pkg/report"
)

// Render builds the deck for r and writes it to path. The file is replaced
// atomically, so a failed write leaves any previous deck in place.
// A missing parent directory or a permission error is returned wrapped and
// matches fsutil.ErrNotFound or fsutil.ErrPermissionDenied.
func Render(ctx context.Context, r *report.Data, path string) error {
	deck := Build(r)

	err := fsutil.WriteAtomicFunc(ctx, path, fsutil.DefaultFileMode, func(w io.Writer) error {
		return Encode(w, deck)
	})
	if err != nil {
		return fmt.Errorf("write slide deck: %w", err)
	}
	return nil
}
