package roble

import (
	"context"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// WaitUntilReady blocks until the Roble host answers an HTTP request or ctx
// is done, polling the base URL with exponential backoff. Any HTTP status
// counts as ready; only transport-level failures are retried. Useful when
// the embedding application starts alongside the backend.
func (c *Client) WaitUntilReady(ctx context.Context) error {
	probe := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.eff.BaseURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		_ = resp.Body.Close()
		return nil
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.MaxInterval = 5 * time.Second
	return backoff.Retry(probe, backoff.WithContext(exp, ctx))
}
