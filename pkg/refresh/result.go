package refresh

import (
	"fmt"
	"time"

	"github.com/agentstation/ttscatalog/pkg/catalog"
	"github.com/agentstation/ttscatalog/pkg/families"
)

// Result is the outcome of a refresh run.
type Result struct {
	Catalog catalog.Catalog

	// Discovery
	Discovered      int // Unique repository ids considered
	DiscoveryErrors int // Search terms whose listing failed

	// Per-repository outcomes
	Classified  int // Repositories that produced entries
	Skipped     int // Repositories with no family or missing files
	Ambiguous   int // Repositories that belong to several families
	Excluded    int // Repositories deliberately left out
	Unavailable int // Repositories whose file listing could not be fetched

	// Catalog composition
	Fixed      int      // Hand-authored entries
	Dynamic    int      // Discovered entries after de-duplication
	Collisions []string // Dynamic ids that shadow a fixed id

	// Listing cache
	CacheHits   int // ListFiles calls served from the cache
	CacheMisses int // ListFiles calls that reached the source

	Repos    []RepoResult // One record per repository, in processing order
	Duration time.Duration
}

// RepoResult records what happened to one repository.
type RepoResult struct {
	RepoID  string
	Outcome families.Outcome
	Family  families.Family
	Reason  string
	Entries int
}

// OutcomeUnavailable marks a RepoResult whose listing could not be fetched.
const OutcomeUnavailable families.Outcome = "unavailable"

// Total returns the number of catalog models.
func (r *Result) Total() int {
	return len(r.Catalog.Models)
}

// Summary returns a one-line human-readable summary.
func (r *Result) Summary() string {
	return fmt.Sprintf("models=%d, fixed=%d, dynamic=%d", r.Total(), r.Fixed, r.Dynamic)
}

// Counts returns the per-repository counters keyed by name, in display order.
func (r *Result) Counts() []Count {
	return []Count{
		{"discovered", r.Discovered},
		{"classified", r.Classified},
		{"skipped", r.Skipped},
		{"ambiguous", r.Ambiguous},
		{"excluded", r.Excluded},
		{"unavailable", r.Unavailable},
	}
}

// Count is a named counter.
type Count struct {
	Name  string
	Value int
}
