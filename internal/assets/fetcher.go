// Package assets retrieves part graphics from a local parts checkout with
// a remote repository fallback.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotFound is returned when a graphic exists neither locally nor
// remotely. Network failures and timeouts map to ErrNotFound as well;
// a missing graphic is a degraded result, never a fatal one.
var ErrNotFound = errors.New("graphic not found")

// Fetcher retrieves SVG graphics for components.
type Fetcher struct {
	RepoPath   string
	BaseURL    string
	HTTPClient *http.Client
}

// NewFetcher creates a new graphic fetcher. repoPath is a local
// fritzing-parts checkout; baseURL is the raw-content root of the remote
// repository used when a graphic is missing locally.
func NewFetcher(repoPath, baseURL string) *Fetcher {
	return &Fetcher{
		RepoPath: repoPath,
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch returns the raw SVG text for a component view ("breadboard",
// "icon", ...). Local filename candidates are tried first, then the
// remote repository by constructed URL.
func (f *Fetcher) Fetch(ctx context.Context, collection, componentID, view string) (string, error) {
	candidates := []string{
		componentID + ".svg",
		componentID + "_" + view + ".svg",
		componentID + "_breadboard.svg",
	}

	dir := filepath.Join(f.RepoPath, "svg", collection, view)
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			slog.Debug("Found local graphic", "component", componentID, "path", path)
			return string(data), nil
		}
	}

	return f.fetchRemote(ctx, collection, componentID, view)
}

func (f *Fetcher) fetchRemote(ctx context.Context, collection, componentID, view string) (string, error) {
	url := fmt.Sprintf("%s/svg/%s/%s/%s.svg", f.BaseURL, collection, view, componentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Warn("Failed to build graphic request", "component", componentID, "err", err)
		return "", ErrNotFound
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		slog.Debug("Remote graphic fetch failed", "component", componentID, "url", url, "err", err)
		return "", ErrNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("Remote graphic unavailable", "component", componentID, "url", url, "status", resp.StatusCode)
		return "", ErrNotFound
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Warn("Failed to read graphic response", "component", componentID, "err", err)
		return "", ErrNotFound
	}

	slog.Debug("Fetched remote graphic", "component", componentID, "url", url, "bytes", len(data))
	return string(data), nil
}
