package roble

import "github.com/openlab-uniandes/roble-go/internal/types"

// Public type aliases so SDK consumers can import only the roble package.
type (
	// Record is a single row or JSON object as returned by the backend.
	Record = types.Record
	// Column describes one column of a create-table request.
	Column = types.Column
	// Kind selects which API surface a request targets.
	Kind = types.Kind
	// PathBuilder maps (kind, endpoint, codeURL) to a request path.
	PathBuilder = types.PathBuilder
)

// Request kinds, used by custom path builders.
const (
	KindAuth     = types.KindAuth
	KindDatabase = types.KindDatabase
)
