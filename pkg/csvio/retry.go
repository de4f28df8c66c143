package csvio

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

const (
	maxReadAttempts  = 3
	initialReadDelay = 100 * time.Millisecond
	maxReadDelay     = 2 * time.Second
)

// readWithRetry executes a filesystem read with exponential backoff and jitter.
// Input tables frequently live on network shares; a transient fault should not
// kill an otherwise valid run before it starts.
func readWithRetry(ctx context.Context, operation string, fn func() error) error {
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(maxReadAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.Delay(initialReadDelay),
		retry.MaxDelay(maxReadDelay),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("Retrying read", "operation", operation, "attempt", n+1, "max", maxReadAttempts, "error", err)
		}),
		retry.LastErrorOnly(true),
	)
}
