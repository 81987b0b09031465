package types

// ------------------------------
// Core Domain Types
// ------------------------------

// Kind selects which API surface a request targets. It determines the
// default path prefix and which base headers apply.
type Kind string

const (
	// KindAuth targets identity operations (login, refresh, logout).
	KindAuth Kind = "auth"
	// KindDatabase targets CRUD operations on project tables.
	KindDatabase Kind = "database"
)

// PathBuilder maps (kind, endpoint, codeURL) to a concrete request path.
// Callers may supply their own to replace the default /auth and /database
// prefixes entirely.
type PathBuilder func(kind Kind, endpoint, codeURL string) string

// Record is a single row or JSON object as returned by the backend.
// The backend schema is project-defined, so values stay dynamically typed.
type Record map[string]any

// Column describes one column of a create-table request.
type Column struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required,omitempty"`
}
