// Package generate provides the generate command, which refreshes the
// catalog from the Hub and writes the artifact.
package generate

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/ttscatalog/internal/cmd/application"
)

// NewCommand creates the generate command using app context.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "generate",
		GroupID: "core",
		Short:   "Discover models on the Hub and write the catalog",
		Args:    cobra.NoArgs,
		Long: `Generate rebuilds the model catalog:

• Search the Hub for the configured author's repositories by keyword
• List each repository's files and classify it (vits, matcha, kokoro, kitten)
• Build one entry per repository (two for Matcha: HiFiGAN and Vocos)
• Prepend the fixed entries and sort discovered entries by id
• Write the artifact atomically

Repositories that are gated, private or missing are counted and skipped.
An interrupted run fails without touching the existing artifact.`,
		Example: `  ttscatalog generate                                  # Refresh and write the default path
  ttscatalog generate --output model_catalog.json      # Write elsewhere
  ttscatalog generate --snapshot listings.yaml         # Offline, from a listing snapshot
  ttscatalog generate --seed csukuangfj/kitten-nano-en-v0_1-fp16
  ttscatalog generate --dry-run --report               # Show per-repository outcomes only
  ttscatalog generate --publish                        # Write, then upload to S3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Execute(cmd.Context(), app, flags)
		},
	}

	addFlags(cmd, flags)
	return cmd
}
