package cli

import (
	"errors"

	"github.com/yaklabco/dailyreport/internal/configloader"
	"github.com/yaklabco/dailyreport/pkg/fsutil"
	"github.com/yaklabco/dailyreport/pkg/report"
	"github.com/yaklabco/dailyreport/pkg/slides"
)

// Exit codes for dailyreport.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates an error with no more specific code.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates an unusable report, deck or configuration file.
	ExitDataError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrInvalidUsage marks errors caused by bad flags or arguments.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrInvalidReport marks a report that could not be decoded, or that
	// failed validation under --strict.
	ErrInvalidReport = errors.New("invalid report")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case isIOError(err):
		return ExitIOError
	case errors.Is(err, ErrInvalidReport),
		errors.Is(err, report.ErrUnknownInputFormat),
		errors.Is(err, slides.ErrNotPresentation),
		configloader.IsConfigError(err):
		return ExitDataError
	default:
		return ExitFailure
	}
}

func isIOError(err error) bool {
	return errors.Is(err, fsutil.ErrNotFound) ||
		errors.Is(err, fsutil.ErrPermissionDenied) ||
		errors.Is(err, fsutil.ErrIsDirectory) ||
		errors.Is(err, fsutil.ErrNotDirectory)
}
