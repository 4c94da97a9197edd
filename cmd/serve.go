package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/circuitbench/partkit/internal/handlers"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var repoPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the catalog API server",
		Long: `Starts the partkit catalog API on the specified port.

The API serves the reconciled component catalog as JSON along with the
raw SVG graphics for each component view.`,
		Example: `  # Start server on default port 8888
  partkit serve

  # Start server on custom port with an explicit parts checkout
  partkit serve --port 3000 --repo ./fritzing-parts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogService := newCatalogService(repoPath)
			handler := handlers.New(catalogService)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/components", handler.HandleComponents)
			mux.HandleFunc("/api/components/", handler.HandleComponentDetail)
			mux.HandleFunc("/api/reload", handler.HandleReload)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Partkit catalog API available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVar(&repoPath, "repo", "", "Path to the local parts checkout (default $PARTKIT_REPO)")

	return cmd
}
