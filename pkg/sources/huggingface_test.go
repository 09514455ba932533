package sources_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ttscatalog/internal/transport"
	"github.com/agentstation/ttscatalog/pkg/errors"
	"github.com/agentstation/ttscatalog/pkg/sources"
)

func quickRetry() transport.RetryPolicy {
	p := transport.DefaultRetryPolicy()
	p.Backoff = transport.LinearBackoff(time.Millisecond)
	return p
}

func newHub(t *testing.T, handler http.HandlerFunc) *sources.HuggingFace {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return sources.NewHuggingFace(
		sources.WithEndpoint(server.URL+"/"),
		sources.WithRetryPolicy(quickRetry()),
	)
}

func TestHuggingFaceListRepositories(t *testing.T) {
	hub := newHub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/models", r.URL.Path)
		assert.Equal(t, "csukuangfj", r.URL.Query().Get("author"))
		assert.Equal(t, "kokoro", r.URL.Query().Get("search"))
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[
			{"modelId": "csukuangfj/kokoro-en-v0_19"},
			{"modelId": "someone-else/kokoro-fork"},
			{"modelId": 42},
			{"id": "csukuangfj/no-model-id"},
			{"modelId": "csukuangfj/kokoro-multi-lang-v1_0"}
		]`))
	})

	ids, err := hub.ListRepositories(context.Background(), "csukuangfj", "kokoro", 1000)
	require.NoError(t, err)
	assert.Equal(t, []string{"csukuangfj/kokoro-en-v0_19", "csukuangfj/kokoro-multi-lang-v1_0"}, ids)
}

func TestHuggingFaceListRepositoriesNonArray(t *testing.T) {
	hub := newHub(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":"weird"}`))
	})
	ids, err := hub.ListRepositories(context.Background(), "csukuangfj", "vits", 10)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestHuggingFaceListFiles(t *testing.T) {
	t.Run("sorted and de-duplicated", func(t *testing.T) {
		hub := newHub(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/models/csukuangfj/vits-piper-en_US-amy-low", r.URL.Path)
			_, _ = w.Write([]byte(`{"siblings": [
				{"rfilename": "tokens.txt"},
				{"rfilename": "espeak-ng-data/phontab"},
				{"rfilename": "en_US-amy-low.onnx"},
				{"rfilename": "tokens.txt"},
				{"rfilename": ""},
				{"rfilename": 7}
			]}`))
		})

		files, err := hub.ListFiles(context.Background(), "csukuangfj/vits-piper-en_US-amy-low")
		require.NoError(t, err)
		assert.Equal(t, []string{"en_US-amy-low.onnx", "espeak-ng-data/phontab", "tokens.txt"}, files)
	})

	t.Run("missing siblings is an empty listing", func(t *testing.T) {
		hub := newHub(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id": "csukuangfj/empty"}`))
		})
		files, err := hub.ListFiles(context.Background(), "csukuangfj/empty")
		require.NoError(t, err)
		assert.NotNil(t, files)
		assert.Empty(t, files)
	})

	t.Run("gated repository is unavailable without retry", func(t *testing.T) {
		var calls atomic.Int32
		hub := newHub(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := hub.ListFiles(context.Background(), "csukuangfj/gated")
		require.Error(t, err)
		assert.True(t, errors.IsUnavailable(err))
		assert.Equal(t, int32(1), calls.Load())

		var unavailable *errors.UnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.True(t, unavailable.Permanent)
		assert.Equal(t, "csukuangfj/gated", unavailable.Repo)

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "huggingface", apiErr.Service)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	})

	t.Run("server errors are retried then unavailable", func(t *testing.T) {
		var calls atomic.Int32
		hub := newHub(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := hub.ListFiles(context.Background(), "csukuangfj/flaky")
		assert.True(t, errors.IsUnavailable(err))
		assert.Equal(t, int32(4), calls.Load())

		var unavailable *errors.UnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.False(t, unavailable.Permanent)
	})

	t.Run("malformed body is retried", func(t *testing.T) {
		var calls atomic.Int32
		hub := newHub(t, func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				_, _ = w.Write([]byte(`{"siblings": [`))
				return
			}
			_, _ = w.Write([]byte(`{"siblings": [{"rfilename": "model.onnx"}]}`))
		})

		files, err := hub.ListFiles(context.Background(), "csukuangfj/recovering")
		require.NoError(t, err)
		assert.Equal(t, []string{"model.onnx"}, files)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("canceled context is not unavailable", func(t *testing.T) {
		hub := newHub(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := hub.ListFiles(ctx, "csukuangfj/whatever")
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, errors.IsUnavailable(err))
	})
}
