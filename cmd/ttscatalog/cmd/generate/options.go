package generate

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/ttscatalog/pkg/refresh"
)

// Flags holds generate command flags. Empty values defer to the config.
type Flags struct {
	Output      string
	Snapshot    string
	Author      string
	Revision    string
	SearchTerms []string
	Seeds       []string
	Limit       int
	DryRun      bool
	Publish     bool
	Report      bool
}

func addFlags(cmd *cobra.Command, f *Flags) {
	cmd.Flags().StringVar(&f.Output, "output", "", "catalog path (default from config)")
	cmd.Flags().StringVar(&f.Snapshot, "snapshot", "", "read repository listings from a YAML snapshot instead of the Hub")
	cmd.Flags().StringVar(&f.Author, "author", "", "Hub account whose repositories are considered")
	cmd.Flags().StringVar(&f.Revision, "revision", "", "git revision pinned in discovered entries")
	cmd.Flags().StringSliceVar(&f.SearchTerms, "search", nil, "discovery keywords (replaces the configured list)")
	cmd.Flags().StringSliceVar(&f.Seeds, "seed", nil, "extra repository ids to classify")
	cmd.Flags().IntVar(&f.Limit, "limit", 0, "maximum repositories per keyword")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false, "do not write the catalog")
	cmd.Flags().BoolVar(&f.Publish, "publish", false, "upload the catalog to S3-compatible storage")
	cmd.Flags().BoolVar(&f.Report, "report", false, "print the outcome of every repository")
}

// BuildRefreshOptions returns the options that override the configured ones.
func BuildRefreshOptions(f *Flags) []refresh.Option {
	var opts []refresh.Option
	if f.Author != "" {
		opts = append(opts, refresh.WithAuthor(f.Author))
	}
	if f.Revision != "" {
		opts = append(opts, refresh.WithRevision(f.Revision))
	}
	if len(f.SearchTerms) > 0 {
		opts = append(opts, refresh.WithSearchTerms(f.SearchTerms...))
	}
	if len(f.Seeds) > 0 {
		opts = append(opts, refresh.WithSeeds(f.Seeds...))
	}
	if f.Limit > 0 {
		opts = append(opts, refresh.WithLimit(f.Limit))
	}
	return opts
}
