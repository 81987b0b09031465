package roble

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// debugging client issues.
//
// Enable it with ROBLE_DEBUG=true (roble-specific) or DEBUG=true (general
// development flag), or explicitly via WithDebugLogging. Dumps include full
// request and response bodies, tokens included, so keep it out of
// production environments and secure any captured logs.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Both environment variables are supported: ROBLE_DEBUG for targeted SDK
// debugging, DEBUG for broader application debugging that includes HTTP
// traffic. Values are compared case-sensitively against "true".
func debugLoggingRequested() bool {
	return os.Getenv("ROBLE_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
