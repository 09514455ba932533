// Package application defines the contract between the ttscatalog App and
// its command implementations. Commands accept the Application interface
// so they can be tested with the Mock in this package.
package application

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/ttscatalog/internal/store"
	"github.com/agentstation/ttscatalog/pkg/refresh"
	"github.com/agentstation/ttscatalog/pkg/sources"
)

// Application provides what commands need from the App.
type Application interface {
	// Logger returns the configured logger.
	Logger() *zerolog.Logger

	// OutputFormat returns the requested output format ("" when unset).
	OutputFormat() string

	// Stdout is where command output is written.
	Stdout() io.Writer

	// Source returns the repository source used for discovery and listings.
	Source() sources.Source

	// RefreshOptions returns the configured refresh options.
	RefreshOptions() []refresh.Option

	// Revision is the git revision pinned in discovered entries.
	Revision() string

	// CatalogPath is the configured artifact path.
	CatalogPath() string

	// Publisher returns the configured artifact publisher.
	Publisher() (Publisher, error)

	// Version information
	Version() string
	Commit() string
	Date() string
	BuiltBy() string
}

// Publisher uploads a catalog artifact.
type Publisher interface {
	Publish(ctx context.Context, content []byte) (store.Location, error)
}
