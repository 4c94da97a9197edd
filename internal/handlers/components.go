// Package handlers exposes the parts catalog over HTTP.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/circuitbench/partkit/internal/assets"
	"github.com/circuitbench/partkit/internal/catalog"
)

type Handler struct {
	catalogService *catalog.Service
}

func New(catalogService *catalog.Service) *Handler {
	return &Handler{catalogService: catalogService}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// HandleComponents serves the full catalog.
func (h *Handler) HandleComponents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	components, err := h.catalogService.Load(r.Context())
	if err != nil {
		h.writeError(w, "Failed to load catalog", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, components)
}

// HandleComponentDetail serves one component by id, or its SVG when the
// path ends in /svg (view selected with ?view=, default breadboard).
func (h *Handler) HandleComponentDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/components/")
	componentID, wantSVG := strings.CutSuffix(rest, "/svg")
	componentID = strings.Trim(componentID, "/")
	if componentID == "" {
		h.writeError(w, "Component id required", http.StatusBadRequest)
		return
	}

	if wantSVG {
		h.serveSVG(w, r, componentID)
		return
	}

	components, err := h.catalogService.Load(r.Context())
	if err != nil {
		h.writeError(w, "Failed to load catalog", http.StatusInternalServerError)
		return
	}

	for _, component := range components {
		if component.ID == componentID {
			h.writeJSON(w, component)
			return
		}
	}
	h.writeError(w, "Component not found", http.StatusNotFound)
}

func (h *Handler) serveSVG(w http.ResponseWriter, r *http.Request, componentID string) {
	view := r.URL.Query().Get("view")
	if view == "" {
		view = "breadboard"
	}

	content, err := h.catalogService.GetGraphic(r.Context(), componentID, view)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			h.writeError(w, "Graphic not found", http.StatusNotFound)
			return
		}
		h.writeError(w, "Failed to fetch graphic", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := w.Write([]byte(content)); err != nil {
		slog.Error("Unable to write SVG response", "err", err)
	}
}

// HandleReload invalidates the catalog cache so the next request rebuilds it.
func (h *Handler) HandleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.catalogService.Invalidate()
	h.writeJSON(w, map[string]string{"status": "reloading"})
}
