// Package catalog assembles and caches the in-memory parts catalog.
package catalog

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/circuitbench/partkit/internal/assets"
	"github.com/circuitbench/partkit/internal/category"
	"github.com/circuitbench/partkit/internal/fzp"
	"github.com/circuitbench/partkit/internal/models"
	"github.com/circuitbench/partkit/internal/reconcile"
	"github.com/circuitbench/partkit/internal/svg"
)

// DefaultLimit caps how many description documents are processed per
// sub-collection so a full parts checkout doesn't overwhelm a load.
const DefaultLimit = 50

// Collections are the sub-repositories scanned, in catalog order.
var Collections = []string{"core", "contrib", "user"}

// GraphicFetcher retrieves raw SVG text for a component view. A missing
// graphic is signalled with assets.ErrNotFound.
type GraphicFetcher interface {
	Fetch(ctx context.Context, collection, componentID, view string) (string, error)
}

// Service loads component description documents from a parts repository,
// reconciles their connectors against breadboard graphics, and caches the
// resulting catalog for the life of the process.
type Service struct {
	repoPath string
	parser   *fzp.Parser
	fetcher  GraphicFetcher

	// Limit is the per-collection document cap.
	Limit int
	// Concurrency bounds how many documents are processed at once.
	Concurrency int
	// MatchOptions tunes connector matching.
	MatchOptions reconcile.Options

	mu         sync.RWMutex
	loaded     bool
	components []models.Component
}

// NewService creates a catalog service over a local parts checkout.
func NewService(repoPath, baseURL string, fetcher GraphicFetcher) *Service {
	return &Service{
		repoPath:    repoPath,
		parser:      fzp.NewParser(baseURL),
		fetcher:     fetcher,
		Limit:       DefaultLimit,
		Concurrency: 4,
	}
}

// Load returns the catalog, building it on first call and serving the
// cached result afterwards. The catalog order is stable: discovery order
// within each collection, collections in Collections order. Load only
// fails when the context is cancelled; per-document failures are logged
// and skipped.
func (s *Service) Load(ctx context.Context) ([]models.Component, error) {
	s.mu.RLock()
	if s.loaded {
		components := s.components
		s.mu.RUnlock()
		return components, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.components, nil
	}

	components, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	s.components = components
	s.loaded = true
	slog.Info("Loaded parts catalog", "components", len(components))
	return components, nil
}

// Invalidate drops the cached catalog so the next Load rebuilds it.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.components = nil
	slog.Info("Invalidated parts catalog cache")
}

// GetGraphic returns the raw SVG for a component view, trying each
// collection in order.
func (s *Service) GetGraphic(ctx context.Context, componentID, view string) (string, error) {
	for _, collection := range Collections {
		content, err := s.fetcher.Fetch(ctx, collection, componentID, view)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, assets.ErrNotFound) {
			return "", err
		}
	}
	return "", assets.ErrNotFound
}

func (s *Service) loadAll(ctx context.Context) ([]models.Component, error) {
	var components []models.Component

	for _, collection := range Collections {
		dir := filepath.Join(s.repoPath, collection)
		if _, err := os.Stat(dir); err != nil {
			slog.Debug("Skipping missing collection", "collection", collection)
			continue
		}

		files, err := findDescriptionFiles(dir, s.Limit)
		if err != nil {
			slog.Error("Failed to scan collection", "collection", collection, "err", err)
			continue
		}

		slog.Info("Processing collection", "collection", collection, "documents", len(files))
		loaded := s.processCollection(ctx, collection, files)
		components = append(components, loaded...)

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return components, nil
}

// processCollection runs the parse/fetch/reconcile pipeline over a
// collection's documents with bounded concurrency. Results are collected
// by discovery index so the catalog order stays stable.
func (s *Service) processCollection(ctx context.Context, collection string, files []string) []models.Component {
	concurrency := s.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]*models.Component, len(files))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, concurrency)

	for i, file := range files {
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			results[idx] = s.processDocument(ctx, collection, path)
		}(i, file)
	}
	wg.Wait()

	components := make([]models.Component, 0, len(files))
	for _, component := range results {
		if component != nil {
			components = append(components, *component)
		}
	}
	return components
}

// processDocument runs one description document through the pipeline.
// Any failure is logged here and the document is dropped; nothing escapes
// to the caller.
func (s *Service) processDocument(ctx context.Context, collection, path string) *models.Component {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("Failed to read description document", "path", path, "err", err)
		return nil
	}

	componentID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	component, err := s.parser.Parse(data, componentID, collection)
	if err != nil {
		slog.Error("Failed to parse description document", "path", path, "err", err)
		return nil
	}
	component.Category = category.Classify(componentID)

	extraction := s.extractGraphic(ctx, collection, componentID)
	return reconcile.Reconcile(component, extraction, s.MatchOptions)
}

// extractGraphic fetches and scans the breadboard graphic. A missing or
// unparsable graphic yields nil, which reconciliation treats as "no
// positions, fallback dimensions".
func (s *Service) extractGraphic(ctx context.Context, collection, componentID string) *svg.Extraction {
	content, err := s.fetcher.Fetch(ctx, collection, componentID, "breadboard")
	if err != nil {
		slog.Debug("No breadboard graphic", "component", componentID, "err", err)
		return nil
	}

	extraction, err := svg.Extract(content)
	if err != nil {
		slog.Warn("Failed to parse breadboard graphic", "component", componentID, "err", err)
		return nil
	}
	return extraction
}

// findDescriptionFiles walks a collection recursively collecting .fzp
// documents in traversal order, stopping the walk once limit is reached.
func findDescriptionFiles(dir string, limit int) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".fzp") {
			return nil
		}
		files = append(files, path)
		if limit > 0 && len(files) >= limit {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
