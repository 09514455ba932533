// Package sources defines where repository listings come from. A Source
// discovers candidate repository ids by keyword and lists the files of a
// single repository. The Hub implementation talks HTTP; the static
// implementation serves a fixed snapshot for offline runs and tests.
//
// Example usage:
//
//	src := sources.NewHuggingFace(sources.WithToken(os.Getenv("HF_TOKEN")))
//	ids, err := src.ListRepositories(ctx, "csukuangfj", "vits", 1000)
//	files, err := src.ListFiles(ctx, ids[0])
//	if errors.IsUnavailable(err) {
//	    // gated, private, missing or retries exhausted
//	}
package sources

import (
	"context"
	"strings"
)

// Source lists repositories and their files.
type Source interface {
	// ListRepositories returns the ids of repositories owned by author that
	// match the search keyword. Order is unspecified.
	ListRepositories(ctx context.Context, author, search string, limit int) ([]string, error)

	// ListFiles returns the sorted, de-duplicated file paths of a repository.
	// An unavailable repository yields an error satisfying
	// errors.Is(err, errors.ErrUnavailable).
	ListFiles(ctx context.Context, repoID string) ([]string, error)
}

// Listing is a repository id together with its file paths.
type Listing struct {
	RepoID string
	Files  []string
}

// Name returns the repository name without the owner.
func (l Listing) Name() string {
	return RepoName(l.RepoID)
}

// RepoName strips the "owner/" part of a repository id.
func RepoName(repoID string) string {
	if i := strings.LastIndex(repoID, "/"); i >= 0 {
		return repoID[i+1:]
	}
	return repoID
}

// RootFiles filters paths down to those without a directory component.
func RootFiles(files []string) []string {
	root := make([]string, 0, len(files))
	for _, f := range files {
		if !strings.Contains(f, "/") {
			root = append(root, f)
		}
	}
	return root
}
