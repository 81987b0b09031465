package roble

import (
	roblerr "github.com/openlab-uniandes/roble-go/internal/errors"
)

// Error is the sole error type surfaced by the SDK. Its message is the
// human-readable surface; Kind distinguishes the failure class.
type Error = roblerr.Error

// ErrorKind identifies the class of a client failure.
type ErrorKind = roblerr.Kind

// Re-exported failure kinds so callers compare against a single symbol set.
const (
	KindRequestFailed          = roblerr.RequestFailed
	KindAuthRefreshFailed      = roblerr.AuthRefreshFailed
	KindNoRefreshToken         = roblerr.NoRefreshToken
	KindInvalidRefreshResponse = roblerr.InvalidRefreshResponse
	KindNoActiveSession        = roblerr.NoActiveSession
	KindInsertFailed           = roblerr.InsertFailed
)

// IsKind reports whether err is an SDK *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool { return roblerr.Is(err, kind) }

// IsNoActiveSession reports whether err means an operation required a
// session and none was stored.
func IsNoActiveSession(err error) bool { return roblerr.Is(err, roblerr.NoActiveSession) }

// IsAuthRefreshFailed reports whether err means a refresh cycle failed
// after a 401.
func IsAuthRefreshFailed(err error) bool { return roblerr.Is(err, roblerr.AuthRefreshFailed) }
