// Package transport provides the authenticated HTTP client and retry policy
// used to talk to the model hub.
package transport

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/agentstation/ttscatalog/pkg/constants"
	"github.com/agentstation/ttscatalog/pkg/errors"
)

// Client provides HTTP client functionality with authentication.
type Client struct {
	http      *http.Client
	auth      Authenticator
	token     string
	userAgent string
	service   string
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the credential handed to the authenticator.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithService names the remote service in API errors.
func WithService(name string) Option {
	return func(c *Client) { c.service = name }
}

// New creates a new transport client with the specified authenticator.
func New(auth Authenticator, opts ...Option) *Client {
	if auth == nil {
		auth = &NoAuth{}
	}
	c := &Client{
		http:      &http.Client{Timeout: constants.DefaultHTTPTimeout},
		auth:      auth,
		userAgent: constants.UserAgent,
		service:   "http",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request and returns the body of a 200 response.
// Any other status is returned as an *errors.APIError carrying the code.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	if c.token != "" {
		c.auth.Apply(req, c.token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &errors.APIError{
			Service:  c.service,
			Endpoint: url,
			Message:  "request failed",
			Err:      err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &errors.APIError{
			Service:    c.service,
			Endpoint:   url,
			StatusCode: resp.StatusCode,
			Message:    statusMessage(resp, body),
		}
	}
	return body, nil
}

func statusMessage(resp *http.Response, body []byte) string {
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	if msg == "" {
		return resp.Status
	}
	return msg
}
