package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/dailyreport/internal/logging"
	"github.com/yaklabco/dailyreport/pkg/fsutil"
)

// writeDocument sends content to opts.OutputPath, or to opts.Writer when no
// path is set.
func writeDocument(ctx context.Context, opts Options, content []byte) (err error) {
	if opts.OutputPath == "" {
		bw := bufio.NewWriterSize(opts.Writer, bufWriterSize)
		defer func() {
			if flushErr := bw.Flush(); err == nil && flushErr != nil {
				err = fmt.Errorf("flush %s output: %w", opts.Format, flushErr)
			}
		}()

		if _, err := bw.Write(content); err != nil {
			return fmt.Errorf("write %s output: %w", opts.Format, err)
		}
		return nil
	}

	// An identical re-render leaves both the file and its backup alone.
	same, err := fsutil.Unchanged(opts.OutputPath, content)
	if err != nil {
		return fmt.Errorf("write %s output: %w", opts.Format, err)
	}
	if same {
		logging.FromContext(ctx).Debug("Report unchanged",
			logging.FieldFormat, opts.Format,
			logging.FieldOutput, opts.OutputPath,
		)
		return nil
	}

	if err := backup(ctx, opts); err != nil {
		return err
	}
	if err := fsutil.WriteAtomic(ctx, opts.OutputPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write %s output: %w", opts.Format, err)
	}

	logging.FromContext(ctx).Debug("Wrote report",
		logging.FieldFormat, opts.Format,
		logging.FieldOutput, opts.OutputPath,
		logging.FieldBytes, len(content),
	)
	return nil
}

func backup(ctx context.Context, opts Options) error {
	if !opts.Backup {
		return nil
	}

	saved, err := fsutil.BackupPrevious(ctx, opts.OutputPath)
	if err != nil {
		return fmt.Errorf("back up %s: %w", opts.OutputPath, err)
	}
	if saved {
		logging.FromContext(ctx).Debug("Backed up previous output",
			logging.FieldBackup, fsutil.BackupPath(opts.OutputPath))
	}
	return nil
}
