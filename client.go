package roble

import (
	"context"
	"net/http"

	"github.com/openlab-uniandes/roble-go/internal/api"
	"github.com/openlab-uniandes/roble-go/internal/config"
	"github.com/openlab-uniandes/roble-go/internal/token"
	"github.com/openlab-uniandes/roble-go/internal/types"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is an authenticated HTTP client for one Roble project. It holds
// at most one access/refresh token pair; all public operations are thin
// calls into the request pipeline.
type Client struct {
	cfg        config.Config
	eff        *config.Effective
	http       *http.Client
	customHTTP bool
	tokens     *token.Store
	pipe       pipeline
}

// New constructs a Client for the project identified by codeURL at baseURL.
// Additional configuration is supplied via functional options.
func New(baseURL, codeURL string, opts ...Option) (*Client, error) {
	return newClient(config.Config{BaseURL: baseURL, CodeURL: codeURL}, opts...)
}

// NewFromEnv constructs a Client from ROBLE_-prefixed environment
// variables (ROBLE_BASE_URL, ROBLE_CODE_URL, ROBLE_TIMEOUT).
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return newClient(cfg, opts...)
}

func newClient(cfg config.Config, opts ...Option) (*Client, error) {
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{},
		tokens: token.NewStore(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	eff, err := config.Resolve(c.cfg)
	if err != nil {
		return nil, err
	}
	c.eff = eff

	// A caller-supplied http.Client keeps its own timeout unless one was
	// configured explicitly.
	if !c.customHTTP || c.cfg.Timeout > 0 {
		c.http.Timeout = eff.Timeout
	}

	if c.pipe == nil {
		c.pipe = api.NewPipeline(c.http, eff, c.tokens)
	}
	return c, nil
}

// --------------------------------------------------------------------
// Token accessors - delegated to internal/token
// --------------------------------------------------------------------

// SetTokens injects an access/refresh token pair, e.g. one restored from
// persistent storage. The token observer fires with the new access token.
func (c *Client) SetTokens(accessToken, refreshToken string) {
	c.tokens.SetPair(accessToken, refreshToken)
}

// ClearTokens drops both tokens without calling the backend.
func (c *Client) ClearTokens() {
	c.tokens.Clear()
}

// AccessToken returns the stored access token, or "" when logged out.
func (c *Client) AccessToken() string { return c.tokens.Access() }

// RefreshToken returns the stored refresh token, or "" when logged out.
func (c *Client) RefreshToken() string { return c.tokens.Refresh() }

// OnAccessTokenChange registers fn as the single observer invoked
// synchronously with the new access token on every change; an empty token
// means the session was cleared. Registering a new observer replaces the
// previous one.
func (c *Client) OnAccessTokenChange(fn func(accessToken string)) {
	c.tokens.OnChange(fn)
}

// do funnels every public operation through the pipeline.
func (c *Client) do(ctx context.Context, spec api.RequestSpec) (any, error) {
	return c.pipe.Do(ctx, spec)
}

// record narrows a decoded response to an object, or nil when it is not one.
func record(v any) Record {
	rec, _ := types.AsRecord(v)
	return rec
}
