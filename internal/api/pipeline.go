package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/openlab-uniandes/roble-go/internal/config"
	roblerr "github.com/openlab-uniandes/roble-go/internal/errors"
	"github.com/openlab-uniandes/roble-go/internal/token"
	"github.com/openlab-uniandes/roble-go/internal/types"
)

// Pipeline executes RequestSpecs against the backend. It owns no state
// beyond its dependencies; the token store is the only mutable collaborator.
type Pipeline struct {
	http   HTTPClient
	cfg    *config.Effective
	tokens *token.Store
}

// NewPipeline constructs a Pipeline over the given transport, resolved
// configuration, and token store.
func NewPipeline(httpClient HTTPClient, cfg *config.Effective, tokens *token.Store) *Pipeline {
	return &Pipeline{http: httpClient, cfg: cfg, tokens: tokens}
}

// Do executes spec and returns the decoded response body on 2xx.
//
// On a 401 for a non-auth request with a stored refresh token it performs
// exactly one refresh-and-retry cycle; a failed refresh surfaces as
// AuthRefreshFailed, and a failed retry is classified like any other
// failure using the retry's status and body. Nothing else is retried.
func (p *Pipeline) Do(ctx context.Context, spec RequestSpec) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	status, body, err := p.send(ctx, spec)
	if err != nil {
		requestFailuresTotal.WithLabelValues(string(spec.Kind)).Inc()
		return nil, roblerr.FromTransport(err)
	}
	if is2xx(status) {
		return body, nil
	}

	if status == http.StatusUnauthorized && !spec.IsAuthRequest && p.tokens.Refresh() != "" {
		log.Debug().Str("endpoint", spec.Endpoint).Msg("access token rejected, starting refresh cycle")
		if err := p.RefreshAccessToken(ctx); err != nil {
			requestFailuresTotal.WithLabelValues(string(spec.Kind)).Inc()
			return nil, roblerr.Wrap(roblerr.AuthRefreshFailed,
				fmt.Sprintf("token refresh failed: %s", err.Error()), err)
		}
		status, body, err = p.send(ctx, spec)
		if err != nil {
			requestFailuresTotal.WithLabelValues(string(spec.Kind)).Inc()
			return nil, roblerr.FromTransport(err)
		}
		if is2xx(status) {
			return body, nil
		}
	}

	requestFailuresTotal.WithLabelValues(string(spec.Kind)).Inc()
	return nil, roblerr.FromStatus(status, body)
}

// RefreshAccessToken exchanges the stored refresh token for a new access
// token. Only the access token is rewritten; the refresh token is never
// cleared by a refresh, so a failed cycle leaves the store untouched.
func (p *Pipeline) RefreshAccessToken(ctx context.Context) error {
	refresh := p.tokens.Refresh()
	if refresh == "" {
		return roblerr.New(roblerr.NoRefreshToken, "no refresh token available")
	}

	status, body, err := p.send(ctx, RequestSpec{
		Kind:          types.KindAuth,
		Method:        http.MethodPost,
		Endpoint:      "refresh-token",
		Body:          types.RefreshRequest{RefreshToken: refresh},
		IsAuthRequest: true,
	})
	if err != nil {
		tokenRefreshTotal.WithLabelValues("failure").Inc()
		return roblerr.FromTransport(err)
	}
	if !is2xx(status) {
		tokenRefreshTotal.WithLabelValues("failure").Inc()
		return roblerr.FromStatus(status, body)
	}

	access, ok := types.StringField(body, "accessToken")
	if !ok {
		tokenRefreshTotal.WithLabelValues("failure").Inc()
		return roblerr.New(roblerr.InvalidRefreshResponse, "refresh response carried no access token")
	}

	p.tokens.SetAccess(access)
	tokenRefreshTotal.WithLabelValues("success").Inc()
	log.Debug().Msg("access token refreshed")
	return nil
}

// send issues one HTTP request and decodes the response body. It never
// fails on a non-2xx status; classification is the caller's job.
func (p *Pipeline) send(ctx context.Context, spec RequestSpec) (int, any, error) {
	path := p.cfg.PathBuilder(spec.Kind, spec.Endpoint, p.cfg.CodeURL)

	var reader io.Reader
	if spec.Body != nil {
		payload, err := json.Marshal(spec.Body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, p.cfg.BaseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}

	if len(spec.Query) > 0 {
		q := req.URL.Query()
		for k, v := range spec.Query {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	// Header precedence: defaults, then kind base headers, then caller
	// extras, then the bearer token last so it always wins.
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	base := p.cfg.DataHeaders
	if spec.Kind == types.KindAuth {
		base = p.cfg.AuthHeaders
	}
	for k, v := range base {
		req.Header.Set(k, v)
	}
	for k, v := range spec.Headers {
		req.Header.Set(k, v)
	}
	if access := p.tokens.Access(); access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	requestsTotal.WithLabelValues(string(spec.Kind), spec.Method).Inc()

	resp, err := p.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	var body any
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			if is2xx(resp.StatusCode) {
				return resp.StatusCode, nil, fmt.Errorf("decode response: %w", err)
			}
			// Non-JSON error bodies only feed message extraction; drop them.
			body = nil
		}
	}
	return resp.StatusCode, body, nil
}

func is2xx(status int) bool { return status >= 200 && status < 300 }
