package sources

import (
	"net/http"
	"strings"
	"time"

	"github.com/agentstation/ttscatalog/internal/transport"
	"github.com/agentstation/ttscatalog/pkg/constants"
)

// Options configures the Hub source.
type Options struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
	Retry    transport.RetryPolicy

	httpClient *http.Client
}

// Option is a function that configures Options.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		Endpoint: constants.DefaultHubEndpoint,
		Timeout:  constants.DefaultHTTPTimeout,
		Retry:    transport.DefaultRetryPolicy(),
	}
}

// WithEndpoint points the source at another Hub deployment or a mirror.
func WithEndpoint(endpoint string) Option {
	return func(o *Options) {
		if endpoint != "" {
			o.Endpoint = strings.TrimRight(endpoint, "/")
		}
	}
}

// WithToken sets a Hub access token used as a bearer credential.
func WithToken(token string) Option {
	return func(o *Options) {
		o.Token = token
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Timeout = d
		}
	}
}

// WithRetryPolicy replaces the retry policy applied to every Hub call.
func WithRetryPolicy(p transport.RetryPolicy) Option {
	return func(o *Options) {
		o.Retry = p
	}
}

// WithHTTPClient supplies the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Options) {
		o.httpClient = hc
	}
}
