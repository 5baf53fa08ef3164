package cli

import (
	"errors"

	"github.com/five82/logsift/internal/app"
	"github.com/five82/logsift/internal/batch"
	"github.com/five82/logsift/internal/scan"
)

// Process exit codes.
const (
	ExitOK         = 0 // Success, with or without errors found in the log
	ExitError      = 1 // General error (invalid arguments, runtime failure)
	ExitConfig     = 2 // Configuration error (bad config file, unusable paths)
	ExitUnreadable = 3 // The log source could not be read, or no logs matched
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, app.ErrConfig):
		return ExitConfig
	case errors.Is(err, scan.ErrSourceUnreadable), errors.Is(err, batch.ErrNoLogs):
		return ExitUnreadable
	default:
		return ExitError
	}
}
