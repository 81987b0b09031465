// Package errors provides the error type surfaced by the client SDK.
// Every failure carries a Kind so callers can branch on the failure class
// while the message stays the single human-readable surface.
package errors

import "fmt"

// Kind identifies the class of a client failure.
type Kind int

const (
	// RequestFailed covers any non-2xx response outside the refresh cycle,
	// plus transport-level failures (DNS, timeout, connection reset).
	RequestFailed Kind = iota

	// AuthRefreshFailed means a 401 triggered a refresh cycle and the
	// refresh call itself failed.
	AuthRefreshFailed

	// NoRefreshToken means a refresh was attempted with no refresh token
	// stored.
	NoRefreshToken

	// InvalidRefreshResponse means the refresh call returned 2xx but no
	// access token.
	InvalidRefreshResponse

	// NoActiveSession means logout was attempted with no access token
	// stored.
	NoActiveSession

	// InsertFailed means an insert response had neither an inserted list
	// nor an object shape.
	InsertFailed
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case RequestFailed:
		return "RequestFailed"
	case AuthRefreshFailed:
		return "AuthRefreshFailed"
	case NoRefreshToken:
		return "NoRefreshToken"
	case InvalidRefreshResponse:
		return "InvalidRefreshResponse"
	case NoActiveSession:
		return "NoActiveSession"
	case InsertFailed:
		return "InsertFailed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is the sole error representation surfaced to SDK callers.
type Error struct {
	Kind       Kind
	StatusCode int // HTTP status code (0 for non-HTTP failures)
	Message    string
	Underlying error // the original error, if any
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Underlying }

// New constructs an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap constructs an Error of the given kind that wraps err.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Underlying: err}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// KindOf extracts the kind of err when it is an *Error.
func KindOf(err error) (Kind, bool) {
	e, ok := err.(*Error)
	if !ok {
		return 0, false
	}
	return e.Kind, true
}
