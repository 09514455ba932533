package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ttscatalog/pkg/constants"
	"github.com/agentstation/ttscatalog/pkg/errors"
)

func TestClientGet(t *testing.T) {
	t.Run("sends headers and returns body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constants.UserAgent, r.Header.Get("User-Agent"))
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		c := New(&BearerAuth{}, WithToken("secret"), WithTimeout(time.Second))
		body, err := c.Get(context.Background(), server.URL)
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok":true}`, string(body))
	})

	t.Run("no token means no authorization header", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		_, err := New(&BearerAuth{}).Get(context.Background(), server.URL)
		require.NoError(t, err)
	})

	t.Run("non-200 becomes APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gated repo", http.StatusForbidden)
		}))
		defer server.Close()

		_, err := New(nil, WithService("hub")).Get(context.Background(), server.URL)
		require.Error(t, err)

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
		assert.Equal(t, "hub", apiErr.Service)
		assert.Equal(t, "gated repo", apiErr.Message)
		assert.True(t, errors.IsUnavailable(err))
	})

	t.Run("network failure carries no status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := New(nil).Get(context.Background(), url)
		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Zero(t, apiErr.StatusCode)
		assert.True(t, IsRetryable(err))
	})
}
