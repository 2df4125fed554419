package backend

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
)

// WaitReady polls the health endpoint with fibonacci backoff until the
// backend answers or maxWait elapses. Only startup uses this; operations
// are never retried.
func (c *Client) WaitReady(ctx context.Context, maxWait time.Duration) error {
	if maxWait <= 0 {
		return nil
	}
	b := retry.WithMaxDuration(maxWait, retry.NewFibonacci(250*time.Millisecond))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := c.Health(ctx); err != nil {
			slog.Warn("backend not ready, will retry", "base_url", c.baseURL, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}
