// Package publish provides the publish command, which uploads an existing
// catalog artifact to S3-compatible storage.
package publish

import (
	"bytes"
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agentstation/ttscatalog/internal/cmd/application"
	"github.com/agentstation/ttscatalog/internal/cmd/output"
	"github.com/agentstation/ttscatalog/pkg/catalog"
	"github.com/agentstation/ttscatalog/pkg/errors"
)

// Flags holds publish command flags.
type Flags struct {
	Catalog string
}

// NewCommand creates the publish command using app context.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "publish",
		GroupID: "management",
		Short:   "Upload the catalog to S3-compatible storage",
		Args:    cobra.NoArgs,
		Long: `Publish validates an existing catalog artifact and uploads it unchanged to
the bucket and key given by the s3_* settings (TTSCATALOG_S3_ENDPOINT,
TTSCATALOG_S3_BUCKET, TTSCATALOG_S3_ACCESS_KEY, TTSCATALOG_S3_SECRET_KEY,
TTSCATALOG_S3_KEY, TTSCATALOG_S3_REGION, TTSCATALOG_S3_USE_SSL).`,
		Example: `  ttscatalog publish
  ttscatalog publish --catalog build/model_catalog.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Execute(cmd.Context(), app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Catalog, "catalog", "", "catalog path (default from config)")
	return cmd
}

// Execute validates and uploads the artifact.
func Execute(ctx context.Context, app application.Application, flags *Flags) error {
	path := flags.Catalog
	if path == "" {
		path = app.CatalogPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewNotFoundError("catalog", path)
		}
		return errors.WrapIO("read", path, err)
	}
	c, err := catalog.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}

	pub, err := app.Publisher()
	if err != nil {
		return err
	}
	loc, err := pub.Publish(ctx, data)
	if err != nil {
		return err
	}

	w := app.Stdout()
	format := output.Format(app.OutputFormat())
	if !format.IsTable() {
		return output.NewFormatter(format).Format(w, loc)
	}
	_, _ = color.New(color.FgGreen, color.Bold).Fprint(w, "Published")
	_, err = color.New(color.Reset).Fprintf(w, " %s (%d models, %d bytes)\n", loc, len(c.Models), loc.Size)
	return err
}
