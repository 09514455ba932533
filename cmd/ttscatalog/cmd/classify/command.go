// Package classify provides the classify command, which shows how a single
// repository is classified and which entries it yields.
package classify

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/ttscatalog/internal/cmd/application"
	"github.com/agentstation/ttscatalog/internal/cmd/output"
	"github.com/agentstation/ttscatalog/internal/cmd/table"
	"github.com/agentstation/ttscatalog/pkg/catalog"
	"github.com/agentstation/ttscatalog/pkg/errors"
	"github.com/agentstation/ttscatalog/pkg/families"
	"github.com/agentstation/ttscatalog/pkg/sources"
)

// Flags holds classify command flags.
type Flags struct {
	Files    []string
	Revision string
}

// NewCommand creates the classify command using app context.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "classify <repo-id>",
		GroupID: "core",
		Short:   "Classify one repository",
		Args:    cobra.ExactArgs(1),
		Long: `Classify lists a repository's files on the Hub and reports its family,
the outcome (matched, miss, ambiguous, excluded) and the entries it yields.

With --files the listing is taken from the flag and no request is made.`,
		Example: `  ttscatalog classify csukuangfj/kokoro-en-v0_19
  ttscatalog classify csukuangfj/matcha-icefall-en_US-ljspeech -o json
  ttscatalog classify me/kokoro-test --files model.onnx,tokens.txt,voices.bin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Execute(cmd.Context(), app, args[0], flags)
		},
	}

	cmd.Flags().StringSliceVar(&flags.Files, "files", nil, "classify this file listing instead of fetching it")
	cmd.Flags().StringVar(&flags.Revision, "revision", "", "git revision pinned in the entries (default from config)")

	return cmd
}

// Result is the structured output of classify.
type Result struct {
	RepoID     string          `json:"repo_id" yaml:"repo_id"`
	Outcome    string          `json:"outcome" yaml:"outcome"`
	Family     string          `json:"family,omitempty" yaml:"family,omitempty"`
	Candidates []string        `json:"candidates,omitempty" yaml:"candidates,omitempty"`
	Reason     string          `json:"reason,omitempty" yaml:"reason,omitempty"`
	Entries    []catalog.Entry `json:"entries" yaml:"entries"`
}

// NewResult converts a classification for output.
func NewResult(c families.Classification) Result {
	r := Result{
		RepoID:  c.RepoID,
		Outcome: string(c.Outcome),
		Family:  string(c.Family),
		Reason:  c.Reason,
		Entries: c.Entries,
	}
	for _, f := range c.Candidates {
		r.Candidates = append(r.Candidates, string(f))
	}
	if r.Entries == nil {
		r.Entries = []catalog.Entry{}
	}
	return r
}

// Execute classifies repoID and prints the verdict.
func Execute(ctx context.Context, app application.Application, repoID string, flags *Flags) error {
	repoID = strings.TrimSpace(repoID)
	if !strings.Contains(repoID, "/") {
		return errors.NewValidationError("repo-id", repoID, "must be of the form owner/name")
	}
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}

	files := flags.Files
	if files == nil {
		files, err = app.Source().ListFiles(ctx, repoID)
		if err != nil {
			return err
		}
	}

	revision := flags.Revision
	if revision == "" {
		revision = app.Revision()
	}
	c := families.NewClassifier(revision).Classify(repoID, sources.RepoName(repoID), files)
	app.Logger().Debug().
		Str("repo", repoID).
		Str("outcome", string(c.Outcome)).
		Int("files", len(files)).
		Msg("Classified repository")

	w := app.Stdout()
	if !format.IsTable() {
		return output.NewFormatter(format).Format(w, NewResult(c))
	}
	if err := output.NewFormatter(format).Format(w, table.ClassificationToTableData(c)); err != nil {
		return err
	}
	if format == output.FormatWide && len(c.Entries) > 0 {
		return output.NewFormatter(format).Format(w, table.EntriesToTableData(c.Entries, true))
	}
	return nil
}
