package app

import "errors"

// Exit statuses of the command.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitConfig    = 3
	ExitLoad      = 4
	ExitSummarize = 5
)

// ExitCode maps an error returned by Run onto an exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrLoad):
		return ExitLoad
	case errors.Is(err, ErrSummarize):
		return ExitSummarize
	default:
		return ExitFailure
	}
}
