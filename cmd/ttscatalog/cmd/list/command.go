// Package list provides the list command, which reads a catalog artifact and
// prints its entries.
package list

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agentstation/ttscatalog/internal/cmd/application"
	"github.com/agentstation/ttscatalog/internal/cmd/filter"
	"github.com/agentstation/ttscatalog/internal/cmd/output"
	"github.com/agentstation/ttscatalog/internal/cmd/table"
	"github.com/agentstation/ttscatalog/pkg/catalog"
	"github.com/agentstation/ttscatalog/pkg/errors"
)

// Flags holds list command flags.
type Flags struct {
	Catalog string
	Filter  filter.EntryFilter
}

// NewCommand creates the list command using app context.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "list [id]",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "List catalog entries",
		Args:    cobra.MaximumNArgs(1),
		Long: `List reads a catalog artifact and prints its entries, or the details of
one entry when an id is given.

--where takes a boolean expression over the fields id, name, engine, type,
source_kind, repo, rev, files, prefixes, dependencies, languages,
description and fixed.`,
		Example: `  ttscatalog list
  ttscatalog list --type matcha -o wide
  ttscatalog list --where '"sherpa-vocos-22khz-univ" in dependencies'
  ttscatalog list --where 'source_kind == "hf" && !fixed' -o json
  ttscatalog list kokoro-en-v0-19`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return ExecuteDetails(cmd.Context(), app, flags, args[0])
			}
			return Execute(cmd.Context(), app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Catalog, "catalog", "", "catalog path (default from config)")
	cmd.Flags().StringVar(&flags.Filter.Engine, "engine", "", "filter by engine")
	cmd.Flags().StringVar(&flags.Filter.Type, "type", "", "filter by model type")
	cmd.Flags().StringVar(&flags.Filter.Language, "language", "", "filter by language")
	cmd.Flags().StringVar(&flags.Filter.Search, "search", "", "filter by id or name substring")
	cmd.Flags().StringVar(&flags.Filter.Where, "where", "", "filter by expression")

	return cmd
}

// Execute prints the entries that pass the filters.
func Execute(_ context.Context, app application.Application, flags *Flags) error {
	c, err := load(app, flags)
	if err != nil {
		return err
	}
	entries, err := flags.Filter.Apply(c.Models)
	if err != nil {
		return err
	}
	app.Logger().Debug().Int("total", len(c.Models)).Int("shown", len(entries)).Msg("Listing catalog entries")

	format := output.DetectFormat(app.OutputFormat())
	return output.Print(app.Stdout(), format, table.EntriesToTableData(entries, format == output.FormatWide), entries)
}

// ExecuteDetails prints one entry.
func ExecuteDetails(_ context.Context, app application.Application, flags *Flags, id string) error {
	c, err := load(app, flags)
	if err != nil {
		return err
	}
	e, ok := c.Find(id)
	if !ok {
		return errors.NewNotFoundError("entry", id)
	}
	format := output.DetectFormat(app.OutputFormat())
	return output.Print(app.Stdout(), format, table.EntryDetails(e), e)
}

func load(app application.Application, flags *Flags) (*catalog.Catalog, error) {
	path := flags.Catalog
	if path == "" {
		path = app.CatalogPath()
	}
	return catalog.Load(path)
}
