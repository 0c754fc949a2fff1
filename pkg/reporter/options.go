package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer receives text output when OutputPath is empty (typically os.Stdout).
	Writer io.Writer

	// OutputPath is the file to write. Text formats fall back to Writer when
	// it is empty; slides require it.
	OutputPath string

	// Format specifies the output format.
	Format Format

	// Backup keeps the previous contents of OutputPath in a ".bak" file.
	Backup bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
		Format: FormatMarkdown,
	}
}
