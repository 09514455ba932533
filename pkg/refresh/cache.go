package refresh

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/agentstation/ttscatalog/pkg/errors"
	"github.com/agentstation/ttscatalog/pkg/sources"
)

// listing is a memoized ListFiles outcome. Unavailability is cached too so a
// gated repository is not asked twice.
type listing struct {
	files []string
	err   error
}

// cachedSource memoizes ListFiles per repository id.
type cachedSource struct {
	sources.Source
	cache  *lru.Cache[string, listing]
	hits   int
	misses int
}

func newCachedSource(src sources.Source, size int) (*cachedSource, error) {
	cache, err := lru.New[string, listing](size)
	if err != nil {
		return nil, errors.NewValidationError("cache_size", size, err.Error())
	}
	return &cachedSource{Source: src, cache: cache}, nil
}

// ListFiles implements sources.Source. Context errors are never cached.
func (c *cachedSource) ListFiles(ctx context.Context, repoID string) ([]string, error) {
	if l, ok := c.cache.Get(repoID); ok {
		c.hits++
		return l.files, l.err
	}
	c.misses++
	files, err := c.Source.ListFiles(ctx, repoID)
	if err != nil && ctx.Err() != nil {
		return nil, err
	}
	c.cache.Add(repoID, listing{files: files, err: err})
	return files, err
}
