package transport

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ttscatalog/pkg/errors"
)

func fastPolicy(attempts int) RetryPolicy {
	p := DefaultRetryPolicy()
	p.MaxAttempts = attempts
	p.Backoff = LinearBackoff(time.Millisecond)
	return p
}

func TestLinearBackoff(t *testing.T) {
	b := LinearBackoff(350 * time.Millisecond)
	assert.Equal(t, 350*time.Millisecond, b(0))
	assert.Equal(t, 700*time.Millisecond, b(1))
	assert.Equal(t, 1050*time.Millisecond, b(2))
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"forbidden", errors.NewAPIError("hub", http.StatusForbidden, "gated"), false},
		{"not found", errors.NewAPIError("hub", http.StatusNotFound, "missing"), false},
		{"bad request", errors.NewAPIError("hub", http.StatusBadRequest, "bad"), false},
		{"rate limited", errors.NewAPIError("hub", http.StatusTooManyRequests, "slow down"), true},
		{"server error", errors.NewAPIError("hub", http.StatusServiceUnavailable, "down"), true},
		{"malformed body", errors.WrapParse("json", "", errors.New("unexpected EOF")), true},
		{"canceled", context.Canceled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestRetryPolicyDo(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := fastPolicy(4).Do(context.Background(), func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.NewAPIError("hub", http.StatusBadGateway, "flaky")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops at max attempts", func(t *testing.T) {
		calls := 0
		err := fastPolicy(4).Do(context.Background(), func(context.Context) error {
			calls++
			return errors.NewAPIError("hub", http.StatusInternalServerError, "down")
		})
		require.Error(t, err)
		assert.Equal(t, 4, calls)
	})

	t.Run("permanent error is not retried", func(t *testing.T) {
		calls := 0
		err := fastPolicy(4).Do(context.Background(), func(context.Context) error {
			calls++
			return errors.NewAPIError("hub", http.StatusNotFound, "missing")
		})
		assert.True(t, errors.IsUnavailable(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("NoRetry tries once", func(t *testing.T) {
		calls := 0
		_ = NoRetry().Do(context.Background(), func(context.Context) error {
			calls++
			return errors.New("boom")
		})
		assert.Equal(t, 1, calls)
	})

	t.Run("cancellation interrupts backoff", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		p := DefaultRetryPolicy()
		p.Backoff = func(int) time.Duration { return time.Hour }

		calls := 0
		err := p.Do(ctx, func(context.Context) error {
			calls++
			cancel()
			return errors.New("transient")
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}
