package cmd

import (
	"os"

	"github.com/circuitbench/partkit/internal/assets"
	"github.com/circuitbench/partkit/internal/catalog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultBaseURL = "https://raw.githubusercontent.com/fritzing/fritzing-parts/develop"

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partkit",
		Short: "Electronic parts catalog builder with connector-position extraction",
		Long: `Partkit ingests a Fritzing-style parts repository and builds a catalog of
components whose connectors carry pixel positions extracted from the
matching breadboard SVG graphics.

It can serve the catalog over HTTP or export it as a snapshot file.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newLoadCmd())

	return cmd
}

// newCatalogService wires the catalog service from environment config.
func newCatalogService(repoPath string) *catalog.Service {
	if repoPath == "" {
		repoPath = os.Getenv("PARTKIT_REPO")
		if repoPath == "" {
			repoPath = "./fritzing-parts"
		}
	}

	baseURL := os.Getenv("PARTKIT_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	fetcher := assets.NewFetcher(repoPath, baseURL)
	return catalog.NewService(repoPath, baseURL, fetcher)
}
