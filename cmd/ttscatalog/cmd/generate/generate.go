package generate

import (
	"context"

	"github.com/agentstation/ttscatalog/internal/cmd/application"
	"github.com/agentstation/ttscatalog/internal/cmd/output"
	"github.com/agentstation/ttscatalog/internal/store"
	"github.com/agentstation/ttscatalog/pkg/catalog"
	"github.com/agentstation/ttscatalog/pkg/errors"
	"github.com/agentstation/ttscatalog/pkg/logging"
	"github.com/agentstation/ttscatalog/pkg/refresh"
	"github.com/agentstation/ttscatalog/pkg/sources"
)

// Execute runs a refresh and writes, and optionally publishes, the catalog.
func Execute(ctx context.Context, app application.Application, flags *Flags) error {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}

	src := app.Source()
	if flags.Snapshot != "" {
		static, err := sources.LoadStatic(flags.Snapshot)
		if err != nil {
			return err
		}
		src = static
	}

	opts := append(app.RefreshOptions(), BuildRefreshOptions(flags)...)
	result, err := refresh.Run(ctx, src, opts...)
	if err != nil {
		return err
	}

	path := flags.Output
	if path == "" {
		path = app.CatalogPath()
	}
	if !flags.DryRun {
		if err := catalog.Write(path, result.Catalog); err != nil {
			return err
		}
		logging.Ctx(ctx).Info().Str("path", path).Str("summary", result.Summary()).Msg("Wrote catalog")
	}

	var published *store.Location
	if flags.Publish {
		loc, err := publish(ctx, app, result.Catalog)
		if err != nil {
			return err
		}
		published = &loc
	}

	summary := NewSummary(path, flags.DryRun, result, published)
	w := app.Stdout()
	if !format.IsTable() {
		return output.NewFormatter(format).Format(w, summary)
	}
	printSummary(w, summary)
	if flags.Report {
		return output.NewFormatter(format).Format(w, reportRows(result))
	}
	return nil
}

func publish(ctx context.Context, app application.Application, c catalog.Catalog) (store.Location, error) {
	pub, err := app.Publisher()
	if err != nil {
		return store.Location{}, err
	}
	data, err := catalog.Marshal(c)
	if err != nil {
		return store.Location{}, errors.WrapResource("encode", "catalog", "", err)
	}
	return pub.Publish(ctx, data)
}
