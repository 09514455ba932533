// Package app provides the application context and dependency management
// for the ttscatalog CLI. It centralizes configuration, logging and the
// construction of the Hub source and artifact store used by commands.
package app

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/ttscatalog/internal/cmd/application"
	"github.com/agentstation/ttscatalog/internal/store"
	"github.com/agentstation/ttscatalog/pkg/errors"
	"github.com/agentstation/ttscatalog/pkg/refresh"
	"github.com/agentstation/ttscatalog/pkg/sources"
)

var _ application.Application = (*App)(nil)

// App represents the ttscatalog application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Where command output goes. Defaults to os.Stdout.
	stdout io.Writer

	// Hub source (lazy-initialized unless injected)
	mu     sync.Mutex
	source sources.Source
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stdout:  os.Stdout,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Source returns the Hub source, creating it from the config on first use.
func (a *App) Source() sources.Source {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.source == nil {
		a.source = sources.NewHuggingFace(a.config.SourceOptions()...)
	}
	return a.source
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// OutputFormat returns the --format value.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Stdout returns where command output is written.
func (a *App) Stdout() io.Writer {
	return a.stdout
}

// RefreshOptions returns the refresh options described by the config.
func (a *App) RefreshOptions() []refresh.Option {
	return a.config.RefreshOptions()
}

// Revision returns the revision pinned in discovered entries.
func (a *App) Revision() string {
	return a.config.Revision
}

// CatalogPath returns the configured artifact path.
func (a *App) CatalogPath() string {
	return a.config.Output
}

// Publisher returns an S3 store built from the s3_* settings.
func (a *App) Publisher() (application.Publisher, error) {
	if !a.config.S3.Enabled() {
		return nil, errors.NewConfigError("store", "s3_endpoint and s3_bucket must be set to publish", nil)
	}
	s, err := store.NewS3Store(a.config.S3)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithSource sets the repository source (useful for testing).
func WithSource(src sources.Source) Option {
	return func(a *App) error {
		a.source = src
		return nil
	}
}

// WithStdout redirects command output.
func WithStdout(w io.Writer) Option {
	return func(a *App) error {
		a.stdout = w
		return nil
	}
}
