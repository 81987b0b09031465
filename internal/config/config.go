// Package config resolves user-supplied client configuration into an
// immutable effective configuration with defaults applied.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/openlab-uniandes/roble-go/internal/types"
)

// DefaultTimeout bounds the total time spent on a single HTTP request when
// the caller does not configure one.
const DefaultTimeout = 30 * time.Second

// Config is the user-facing configuration surface. BaseURL and CodeURL are
// required; everything else has a default.
type Config struct {
	BaseURL     string
	CodeURL     string
	AuthHeaders map[string]string
	DataHeaders map[string]string
	Timeout     time.Duration
	PathBuilder types.PathBuilder
}

// Effective is the resolved configuration. It is immutable after Resolve;
// the header maps are private copies of the caller's input.
type Effective struct {
	BaseURL     string // normalized, no trailing slash
	CodeURL     string
	AuthHeaders map[string]string
	DataHeaders map[string]string
	Timeout     time.Duration
	PathBuilder types.PathBuilder
}

// DefaultPathBuilder maps kind "auth" to /auth/{codeURL}/{endpoint} and
// kind "database" to /database/{codeURL}/{endpoint}.
func DefaultPathBuilder(kind types.Kind, endpoint, codeURL string) string {
	switch kind {
	case types.KindAuth:
		return "/auth/" + codeURL + "/" + endpoint
	default:
		return "/database/" + codeURL + "/" + endpoint
	}
}

// Resolve merges cfg with defaults and normalizes the base URL. It performs
// no network I/O; a malformed base URL is left for the transport to reject.
func Resolve(cfg Config) (*Effective, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("baseURL is required")
	}
	if cfg.CodeURL == "" {
		return nil, fmt.Errorf("codeURL is required")
	}

	eff := &Effective{
		BaseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		CodeURL:     cfg.CodeURL,
		AuthHeaders: copyHeaders(cfg.AuthHeaders),
		DataHeaders: copyHeaders(cfg.DataHeaders),
		Timeout:     cfg.Timeout,
		PathBuilder: cfg.PathBuilder,
	}
	if eff.Timeout <= 0 {
		eff.Timeout = DefaultTimeout
	}
	if eff.PathBuilder == nil {
		eff.PathBuilder = DefaultPathBuilder
	}
	return eff, nil
}

func copyHeaders(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
