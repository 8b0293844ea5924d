// Package apperr defines the failure taxonomy surfaced by the services.
// Callers branch on the Kind; transport maps kinds to HTTP statuses.
package apperr

import "errors"

type Kind int

const (
	KindInternal     Kind = iota // unexpected fault, detail withheld from clients
	KindValidation               // malformed or out-of-range input
	KindConflict                 // state already satisfies the request
	KindAuth                     // bad credentials or invalid/expired token
	KindNotFound                 // referenced entity absent
	KindPrecondition             // requires a prior state transition
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, if any
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error   { return &Error{Kind: KindValidation, Msg: msg} }
func Conflict(msg string) *Error     { return &Error{Kind: KindConflict, Msg: msg} }
func Auth(msg string) *Error         { return &Error{Kind: KindAuth, Msg: msg} }
func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Msg: msg} }
func Precondition(msg string) *Error { return &Error{Kind: KindPrecondition, Msg: msg} }

// Internal wraps an unexpected fault. The client-facing message is generic;
// the cause stays available for logging.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// KindOf extracts the Kind from err, defaulting to KindInternal for
// anything outside the taxonomy.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
