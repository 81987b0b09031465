// Package api implements the request pipeline: path resolution, header
// assembly, JSON transport, response classification, and the single
// refresh-and-retry cycle on 401.
package api

import "net/http"

// HTTPClient is the transport dependency of the pipeline. *http.Client
// satisfies it; tests inject stubs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
