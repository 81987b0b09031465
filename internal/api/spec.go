package api

import "github.com/openlab-uniandes/roble-go/internal/types"

// RequestSpec describes one logical call. It is created per call and
// discarded after response handling.
type RequestSpec struct {
	Kind     types.Kind
	Method   string
	Endpoint string

	// Body is JSON-serialized when non-nil.
	Body any

	// Query is attached as URL query parameters.
	Query map[string]string

	// Headers are caller-supplied extras, applied after the kind base
	// headers. The bearer token, when present, is applied last and wins
	// over any Authorization value set here.
	Headers map[string]string

	// IsAuthRequest marks identity operations; a 401 on such a request
	// never triggers a refresh cycle.
	IsAuthRequest bool
}
