package application

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/ttscatalog/internal/store"
	"github.com/agentstation/ttscatalog/pkg/constants"
	"github.com/agentstation/ttscatalog/pkg/errors"
	"github.com/agentstation/ttscatalog/pkg/refresh"
	"github.com/agentstation/ttscatalog/pkg/sources"
)

// Mock is a configurable Application for command tests. Unset funcs fall
// back to harmless defaults.
type Mock struct {
	LoggerFunc         func() *zerolog.Logger
	OutputFormatFunc   func() string
	SourceFunc         func() sources.Source
	RefreshOptionsFunc func() []refresh.Option
	CatalogPathFunc    func() string
	PublisherFunc      func() (Publisher, error)

	Out io.Writer
}

// Logger implements Application.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat implements Application.
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Stdout implements Application.
func (m *Mock) Stdout() io.Writer {
	if m.Out != nil {
		return m.Out
	}
	return io.Discard
}

// Source implements Application.
func (m *Mock) Source() sources.Source {
	if m.SourceFunc != nil {
		return m.SourceFunc()
	}
	return sources.NewStatic()
}

// RefreshOptions implements Application.
func (m *Mock) RefreshOptions() []refresh.Option {
	if m.RefreshOptionsFunc != nil {
		return m.RefreshOptionsFunc()
	}
	return nil
}

// Revision implements Application.
func (m *Mock) Revision() string {
	return constants.DefaultRevision
}

// CatalogPath implements Application.
func (m *Mock) CatalogPath() string {
	if m.CatalogPathFunc != nil {
		return m.CatalogPathFunc()
	}
	return constants.DefaultOutputPath
}

// Publisher implements Application.
func (m *Mock) Publisher() (Publisher, error) {
	if m.PublisherFunc != nil {
		return m.PublisherFunc()
	}
	return nil, errors.NewConfigError("store", "no publisher configured", nil)
}

// Version implements Application.
func (m *Mock) Version() string { return "dev" }

// Commit implements Application.
func (m *Mock) Commit() string { return "unknown" }

// Date implements Application.
func (m *Mock) Date() string { return "unknown" }

// BuiltBy implements Application.
func (m *Mock) BuiltBy() string { return "test" }

// PublishFunc adapts a function to the Publisher interface.
type PublishFunc func(ctx context.Context, content []byte) (store.Location, error)

// Publish implements Publisher.
func (f PublishFunc) Publish(ctx context.Context, content []byte) (store.Location, error) {
	return f(ctx, content)
}

var _ Application = (*Mock)(nil)
