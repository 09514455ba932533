// Package refresh runs a full catalog refresh: discover candidate
// repositories, fetch their listings, classify them, and assemble the catalog
// behind the fixed entries.
//
// Repositories are processed one at a time in ascending id order. Failures
// tied to a single repository are counted and logged, never fatal; only
// context cancellation aborts a run.
package refresh

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/agentstation/ttscatalog/pkg/catalog"
	"github.com/agentstation/ttscatalog/pkg/errors"
	"github.com/agentstation/ttscatalog/pkg/families"
	"github.com/agentstation/ttscatalog/pkg/logging"
	"github.com/agentstation/ttscatalog/pkg/sources"
)

// Run performs a refresh against src.
func Run(ctx context.Context, src sources.Source, opts ...Option) (*Result, error) {
	o := Defaults().Apply(opts...)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	start := time.Now()
	ctx = logging.WithOperation(ctx, "refresh")
	logger := logging.FromContext(ctx)

	cached, err := newCachedSource(src, o.CacheSize)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	ids, err := discover(ctx, cached, o, result)
	if err != nil {
		return nil, err
	}
	result.Discovered = len(ids)
	logger.Info().
		Int("repos", len(ids)).
		Strs("search_terms", o.SearchTerms).
		Msg("Discovered candidate repositories")

	classifier := families.NewClassifier(o.Revision)
	var dynamic []catalog.Entry
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, canceled(err)
		}
		entries, err := processRepo(ctx, cached, classifier, id, result)
		if err != nil {
			return nil, err
		}
		dynamic = append(dynamic, entries...)
	}

	fixed := catalog.FixedEntries()
	result.Collisions = catalog.Collisions(fixed, dynamic)
	for _, id := range result.Collisions {
		logger.Warn().Str("id", id).Msg("Discovered entry shares its id with a fixed entry")
	}

	result.Catalog = catalog.Assemble(fixed, dynamic)
	result.Fixed = len(fixed)
	result.Dynamic = len(result.Catalog.Models) - len(fixed)
	result.Duration = time.Since(start)

	result.CacheHits, result.CacheMisses = cached.hits, cached.misses
	logger.Debug().
		Int("cache_hits", result.CacheHits).
		Int("cache_misses", result.CacheMisses).
		Msg("Listing cache")
	logger.Info().
		Int("classified", result.Classified).
		Int("skipped", result.Skipped).
		Int("ambiguous", result.Ambiguous).
		Int("excluded", result.Excluded).
		Int("unavailable", result.Unavailable).
		Dur("duration", result.Duration).
		Msg("Refresh complete")

	return result, nil
}

// discover returns the sorted union of repository ids found by each search
// term plus the seeds, warming the listing cache in term order. A failing
// term is logged and skipped. Listing errors are left for processRepo.
func discover(ctx context.Context, src *cachedSource, o *Options, result *Result) ([]string, error) {
	prefix := o.Author + "/"
	set := make(map[string]struct{})

	for _, term := range o.SearchTerms {
		found, err := src.ListRepositories(ctx, o.Author, term, o.Limit)
		if err != nil {
			if ctx.Err() != nil {
				return nil, canceled(ctx.Err())
			}
			result.DiscoveryErrors++
			logging.FromContext(ctx).Warn().Err(err).Str("search", term).Msg("Repository search failed")
			continue
		}
		for _, id := range found {
			if !strings.HasPrefix(id, prefix) {
				continue
			}
			set[id] = struct{}{}
			// Listings are fetched as each term's hits arrive; an id found by
			// several terms is served from the cache after the first.
			if _, err := src.ListFiles(ctx, id); err != nil && ctx.Err() != nil {
				return nil, canceled(ctx.Err())
			}
		}
	}
	for _, id := range o.Seeds {
		if id != "" {
			set[id] = struct{}{}
		}
	}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// processRepo fetches and classifies one repository and updates the counters.
func processRepo(ctx context.Context, src sources.Source, classifier *families.Classifier, repoID string, result *Result) ([]catalog.Entry, error) {
	ctx = logging.WithRepo(ctx, repoID)
	logger := logging.FromContext(ctx)

	files, err := src.ListFiles(ctx, repoID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, canceled(ctx.Err())
		}
		result.Unavailable++
		result.Repos = append(result.Repos, RepoResult{RepoID: repoID, Outcome: OutcomeUnavailable, Reason: err.Error()})

		var unavailable *errors.UnavailableError
		if errors.As(err, &unavailable) && unavailable.Permanent {
			logger.Debug().Err(err).Msg("Repository is gated, private or missing")
		} else {
			logger.Warn().Err(err).Msg("Repository listing failed after retries")
		}
		return nil, nil
	}

	c := classifier.Classify(repoID, sources.RepoName(repoID), files)
	result.Repos = append(result.Repos, RepoResult{
		RepoID:  repoID,
		Outcome: c.Outcome,
		Family:  c.Family,
		Reason:  c.Reason,
		Entries: len(c.Entries),
	})

	switch c.Outcome {
	case families.Matched:
		result.Classified++
		logger.Debug().Str("family", string(c.Family)).Int("entries", len(c.Entries)).Msg("Classified repository")
	case families.Ambiguous:
		result.Ambiguous++
		names := make([]string, len(c.Candidates))
		for i, f := range c.Candidates {
			names[i] = string(f)
		}
		logger.Warn().Strs("families", names).Msg("Repository belongs to several families")
	case families.Excluded:
		result.Excluded++
		logger.Debug().Str("family", string(c.Family)).Msg("Repository excluded")
	default:
		result.Skipped++
		logger.Debug().Str("reason", c.Reason).Msg("Repository skipped")
	}
	return c.Entries, nil
}

func canceled(err error) error {
	return errors.Join(errors.ErrCanceled, err)
}
