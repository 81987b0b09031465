package roble

import (
	"context"
	"net/http"

	"github.com/openlab-uniandes/roble-go/internal/api"
	roblerr "github.com/openlab-uniandes/roble-go/internal/errors"
	"github.com/openlab-uniandes/roble-go/internal/types"
)

// --------------------------------------------------------------------
// Auth operations - thin callers of the request pipeline
// --------------------------------------------------------------------

// Register creates a new account via direct signup. It has no token side
// effects; call Login afterwards to start a session.
func (c *Client) Register(ctx context.Context, name, email, password string) (Record, error) {
	v, err := c.do(ctx, api.RequestSpec{
		Kind:          KindAuth,
		Method:        http.MethodPost,
		Endpoint:      "signup-direct",
		Body:          types.RegisterRequest{Name: name, Email: email, Password: password},
		IsAuthRequest: true,
	})
	if err != nil {
		return nil, err
	}
	return record(v), nil
}

// Login authenticates with email and password. When the response carries
// both an access and a refresh token they are stored and the token observer
// fires. The raw response is returned either way.
func (c *Client) Login(ctx context.Context, email, password string) (Record, error) {
	v, err := c.do(ctx, api.RequestSpec{
		Kind:          KindAuth,
		Method:        http.MethodPost,
		Endpoint:      "login",
		Body:          types.LoginRequest{Email: email, Password: password},
		IsAuthRequest: true,
	})
	if err != nil {
		return nil, err
	}

	access, okA := types.StringField(v, "accessToken")
	refresh, okR := types.StringField(v, "refreshToken")
	if okA && okR {
		c.tokens.SetPair(access, refresh)
	}
	return record(v), nil
}

// Logout ends the session on the backend and clears both tokens. It fails
// with NoActiveSession, without a network call, when no access token is
// stored. A failed logout leaves the tokens untouched.
func (c *Client) Logout(ctx context.Context) error {
	if c.tokens.Access() == "" {
		return roblerr.New(roblerr.NoActiveSession, "no active session")
	}

	// The bearer header carries identity; no body.
	_, err := c.do(ctx, api.RequestSpec{
		Kind:          KindAuth,
		Method:        http.MethodPost,
		Endpoint:      "logout",
		IsAuthRequest: true,
	})
	if err != nil {
		return err
	}

	c.tokens.Clear()
	return nil
}
