package refresh

import (
	"time"

	"github.com/agentstation/ttscatalog/pkg/constants"
	"github.com/agentstation/ttscatalog/pkg/errors"
)

// Options controls a catalog refresh.
type Options struct {
	Author      string        // Hub account whose repositories are considered
	SearchTerms []string      // Keywords used for discovery
	Limit       int           // Page size per keyword
	Revision    string        // Git revision pinned in dynamic entries
	Seeds       []string      // Extra repository ids classified even if not discovered
	CacheSize   int           // Capacity of the per-run listing cache
	Timeout     time.Duration // Bound on the whole run; zero means none
}

// Defaults returns the default refresh options.
func Defaults() *Options {
	return &Options{
		Author:      constants.DefaultAuthor,
		SearchTerms: constants.DefaultSearchTerms(),
		Limit:       constants.DefaultSearchLimit,
		Revision:    constants.DefaultRevision,
		CacheSize:   constants.DefaultCacheSize,
	}
}

// Option is a function that configures refresh Options.
type Option func(*Options)

// Apply applies the given options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Validate checks if the options are usable.
func (o *Options) Validate() error {
	if o.Author == "" {
		return errors.NewValidationError("author", o.Author, "is required")
	}
	if len(o.SearchTerms) == 0 && len(o.Seeds) == 0 {
		return errors.NewValidationError("search_terms", o.SearchTerms, "at least one search term or seed repository is required")
	}
	if o.Limit <= 0 {
		return errors.NewValidationError("limit", o.Limit, "must be positive")
	}
	if o.CacheSize <= 0 {
		return errors.NewValidationError("cache_size", o.CacheSize, "must be positive")
	}
	if o.Timeout < 0 {
		return errors.NewValidationError("timeout", o.Timeout, "must be non-negative")
	}
	return nil
}

// WithAuthor sets the Hub account.
func WithAuthor(author string) Option {
	return func(o *Options) { o.Author = author }
}

// WithSearchTerms replaces the discovery keywords.
func WithSearchTerms(terms ...string) Option {
	return func(o *Options) { o.SearchTerms = terms }
}

// WithLimit sets the per-keyword page size.
func WithLimit(limit int) Option {
	return func(o *Options) { o.Limit = limit }
}

// WithRevision pins dynamic entries to a revision.
func WithRevision(rev string) Option {
	return func(o *Options) {
		if rev != "" {
			o.Revision = rev
		}
	}
}

// WithSeeds adds repository ids to classify regardless of discovery.
func WithSeeds(ids ...string) Option {
	return func(o *Options) { o.Seeds = append(o.Seeds, ids...) }
}

// WithCacheSize sets the listing cache capacity.
func WithCacheSize(n int) Option {
	return func(o *Options) { o.CacheSize = n }
}

// WithTimeout bounds the whole run.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}
