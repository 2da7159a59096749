package models

import "errors"

// Classified errors of the resolution pipeline. Components wrap them with
// additional context, callers classify with errors.Is or KindOf.
var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrUnavailable      = errors.New("location unavailable")
	ErrUpstream         = errors.New("address service failed")
)

// ErrorKind is the classification of a pipeline error, used to pick a user-facing message.
type ErrorKind string

const (
	KindNone             ErrorKind = ""
	KindPermissionDenied ErrorKind = "permission_denied"
	KindUnavailable      ErrorKind = "unavailable"
	KindUpstream         ErrorKind = "upstream"
	KindUnknown          ErrorKind = "unknown"
)

// KindOf classifies err. A nil error has KindNone.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrPermissionDenied):
		return KindPermissionDenied
	case errors.Is(err, ErrUnavailable):
		return KindUnavailable
	case errors.Is(err, ErrUpstream):
		return KindUpstream
	default:
		return KindUnknown
	}
}
