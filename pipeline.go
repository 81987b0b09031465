package roble

import (
	"context"

	"github.com/openlab-uniandes/roble-go/internal/api"
)

// pipeline abstracts the request pipeline used by all public operations.
type pipeline interface {
	Do(ctx context.Context, spec api.RequestSpec) (any, error)
	RefreshAccessToken(ctx context.Context) error
}
