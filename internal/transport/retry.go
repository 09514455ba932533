package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/agentstation/ttscatalog/pkg/constants"
	"github.com/agentstation/ttscatalog/pkg/errors"
)

// RetryPolicy decides how often and how long to wait before repeating a
// failed call.
type RetryPolicy struct {
	// MaxAttempts counts the first try. Values below one mean a single try.
	MaxAttempts int

	// Backoff returns the delay after the given zero-based failed attempt.
	Backoff func(attempt int) time.Duration

	// Retryable reports whether an error is worth another attempt.
	Retryable func(err error) bool
}

// DefaultRetryPolicy retries network errors, rate limits and server errors
// four times with a 350ms linear backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: constants.MaxAttempts,
		Backoff:     LinearBackoff(constants.RetryBackoff),
		Retryable:   IsRetryable,
	}
}

// NoRetry performs exactly one attempt.
func NoRetry() RetryPolicy {
	return RetryPolicy{MaxAttempts: 1}
}

// LinearBackoff sleeps step*(attempt+1) after each failure.
func LinearBackoff(step time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return step * time.Duration(attempt+1)
	}
}

// IsRetryable treats 401/403/404 and other client errors as final. Network
// failures, malformed bodies, 429 and 5xx responses are retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *errors.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}

// Do runs fn until it succeeds, returns a non-retryable error, or the attempts
// run out. The last error is returned. Context cancellation interrupts the
// backoff wait.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if p.Retryable == nil || !p.Retryable(err) || attempt == attempts-1 {
			return err
		}
		if p.Backoff == nil {
			continue
		}
		timer := time.NewTimer(p.Backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
