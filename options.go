package roble

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the configuration is resolved, so they may
// still override defaults. Options must be deterministic and side-effect
// free.
type Option func(*Client) error

// WithHTTPTimeout bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, and reading the response). The
// default is 30 seconds. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.cfg.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client, e.g. to configure a
// proxy or connection pool. The client's own timeout is kept unless
// WithHTTPTimeout is also supplied.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		c.customHTTP = true
		return nil
	}
}

// WithAuthHeaders sets base headers attached to every auth-kind request.
func WithAuthHeaders(headers map[string]string) Option {
	return func(c *Client) error {
		c.cfg.AuthHeaders = headers
		return nil
	}
}

// WithDataHeaders sets base headers attached to every database-kind request.
func WithDataHeaders(headers map[string]string) Option {
	return func(c *Client) error {
		c.cfg.DataHeaders = headers
		return nil
	}
}

// WithPathBuilder replaces the default path mapping (/auth/{codeURL}/… and
// /database/{codeURL}/…) entirely.
func WithPathBuilder(pb PathBuilder) Option {
	return func(c *Client) error {
		if pb == nil {
			return fmt.Errorf("path builder must not be nil")
		}
		c.cfg.PathBuilder = pb
		return nil
	}
}

// WithTokenObserver registers the access-token-change observer at
// construction time. Equivalent to calling OnAccessTokenChange afterwards.
func WithTokenObserver(fn func(accessToken string)) Option {
	return func(c *Client) error {
		c.tokens.OnChange(fn)
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and may include headers and method/URL metadata in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
