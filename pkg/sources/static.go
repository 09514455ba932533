package sources

import (
	"context"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/ttscatalog/pkg/errors"
)

// Static serves repository listings from memory. It backs offline runs from
// a snapshot file and is the network-free source used in tests.
type Static struct {
	// Repos maps repository id to its files.
	Repos map[string][]string `yaml:"repos"`

	// Unavailable lists repository ids that report as gated or missing.
	Unavailable []string `yaml:"unavailable,omitempty"`
}

var _ Source = (*Static)(nil)

// NewStatic builds a Static source from listings.
func NewStatic(listings ...Listing) *Static {
	s := &Static{Repos: make(map[string][]string, len(listings))}
	for _, l := range listings {
		s.Repos[l.RepoID] = l.Files
	}
	return s
}

// LoadStatic reads a YAML snapshot of the form
//
//	repos:
//	  csukuangfj/vits-piper-en_US-amy-low: [model.onnx, tokens.txt]
//	unavailable: [csukuangfj/some-gated-repo]
func LoadStatic(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	s := &Static{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	if s.Repos == nil {
		s.Repos = map[string][]string{}
	}
	return s, nil
}

// ListRepositories implements Source with a case-insensitive substring match
// on the repository name.
func (s *Static) ListRepositories(ctx context.Context, author, search string, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prefix := author + "/"
	needle := strings.ToLower(search)

	ids := []string{}
	for id := range s.Repos {
		if strings.HasPrefix(id, prefix) && strings.Contains(strings.ToLower(RepoName(id)), needle) {
			ids = append(ids, id)
		}
	}
	for _, id := range s.Unavailable {
		if strings.HasPrefix(id, prefix) && strings.Contains(strings.ToLower(RepoName(id)), needle) && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// ListFiles implements Source.
func (s *Static) ListFiles(ctx context.Context, repoID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if slices.Contains(s.Unavailable, repoID) {
		return nil, errors.NewUnavailableError(repoID, true, errors.NewNotFoundError("repository", repoID))
	}
	files, ok := s.Repos[repoID]
	if !ok {
		return nil, errors.NewUnavailableError(repoID, true, errors.NewNotFoundError("repository", repoID))
	}
	out := append([]string{}, files...)
	slices.Sort(out)
	return slices.Compact(out), nil
}
