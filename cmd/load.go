package cmd

import (
	"fmt"
	"log/slog"

	"github.com/circuitbench/partkit/internal/export"
	"github.com/spf13/cobra"
)

func newLoadCmd() *cobra.Command {
	var repoPath string
	var output string
	var format string
	var limit int
	var concurrency int

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Build the catalog once and optionally export a snapshot",
		Long: `Walks the parts repository, builds the reconciled component catalog,
and logs a summary. With --output, the catalog is also written as a
snapshot file (jsonl, parquet, or yaml).`,
		Example: `  # Load and summarize
  partkit load --repo ./fritzing-parts

  # Export the catalog as JSONL
  partkit load --output catalog.jsonl --format jsonl

  # Deeper scan with more workers
  partkit load --limit 200 --concurrency 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogService := newCatalogService(repoPath)
			if limit > 0 {
				catalogService.Limit = limit
			}
			if concurrency > 0 {
				catalogService.Concurrency = concurrency
			}

			components, err := catalogService.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			positioned := 0
			connectors := 0
			for _, component := range components {
				for _, conn := range component.Connectors {
					connectors++
					if conn.X != 0 || conn.Y != 0 {
						positioned++
					}
				}
			}
			slog.Info("Catalog summary",
				"components", len(components),
				"connectors", connectors,
				"positioned", positioned)

			if output != "" {
				if err := export.Write(output, format, components); err != nil {
					return fmt.Errorf("failed to export snapshot: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&repoPath, "repo", "", "Path to the local parts checkout (default $PARTKIT_REPO)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Snapshot output path")
	cmd.Flags().StringVarP(&format, "format", "f", "jsonl", "Snapshot format: jsonl, parquet, or yaml")
	cmd.Flags().IntVar(&limit, "limit", 0, "Per-collection document cap (default 50)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Concurrent document workers (default 4)")

	return cmd
}
