package loader

import (
	"context"
	"errors"
)

// Code is the failure class of a Load error, used for logs and exit statuses.
type Code string

const (
	CodeUnknown    Code = "unknown"
	CodeNotFound   Code = "not_found"
	CodeUnreadable Code = "unreadable"
	CodeAllocation Code = "allocation"
	CodeShortRead  Code = "short_read"
	CodeCancel     Code = "cancel"
)

// Classify maps err onto a failure class by its sentinel.
func Classify(err error) Code {
	switch {
	case err == nil:
		return CodeUnknown
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CodeCancel
	case errors.Is(err, ErrFileNotFound):
		return CodeNotFound
	case errors.Is(err, ErrAllocation):
		return CodeAllocation
	case errors.Is(err, ErrShortRead):
		return CodeShortRead
	case errors.Is(err, ErrFileUnreadable):
		return CodeUnreadable
	default:
		return CodeUnknown
	}
}
