package errors

import "fmt"

// FromStatus builds a RequestFailed error for a non-2xx response. The
// message is taken from the body's "message" or "error" field when present,
// else synthesized from the status code.
func FromStatus(statusCode int, body any) *Error {
	return &Error{
		Kind:       RequestFailed,
		StatusCode: statusCode,
		Message:    messageFrom(statusCode, body),
	}
}

// FromTransport normalizes a transport-level failure (DNS, timeout,
// connection reset) into a RequestFailed error.
func FromTransport(err error) *Error {
	return &Error{
		Kind:       RequestFailed,
		Message:    err.Error(),
		Underlying: err,
	}
}

func messageFrom(statusCode int, body any) string {
	if obj, ok := body.(map[string]any); ok {
		if s, ok := obj["message"].(string); ok && s != "" {
			return s
		}
		if s, ok := obj["error"].(string); ok && s != "" {
			return s
		}
	}
	return fmt.Sprintf("HTTP %d", statusCode)
}
