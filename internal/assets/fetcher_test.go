package assets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
}

func TestFetchLocalCandidates(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"plain id", "led_1.svg"},
		{"id with view suffix", "led_1_breadboard.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := t.TempDir()
			writeFile(t, filepath.Join(repo, "svg", "core", "breadboard", tt.filename), "<svg/>")

			fetcher := NewFetcher(repo, "https://example.invalid")
			content, err := fetcher.Fetch(context.Background(), "core", "led_1", "breadboard")
			if err != nil {
				t.Fatalf("Fetch() returned error: %v", err)
			}
			if content != "<svg/>" {
				t.Errorf("Expected <svg/>, got %q", content)
			}
		})
	}
}

func TestFetchRemoteFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/svg/core/breadboard/led_1.svg" {
			http.NotFound(w, r)
			return
		}
		if _, err := w.Write([]byte("<svg>remote</svg>")); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	fetcher := NewFetcher(t.TempDir(), server.URL)
	content, err := fetcher.Fetch(context.Background(), "core", "led_1", "breadboard")
	if err != nil {
		t.Fatalf("Fetch() returned error: %v", err)
	}
	if content != "<svg>remote</svg>" {
		t.Errorf("Expected remote content, got %q", content)
	}
}

func TestFetchNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := NewFetcher(t.TempDir(), server.URL)
	if _, err := fetcher.Fetch(context.Background(), "core", "missing", "breadboard"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestFetchNetworkFailureMapsToNotFound(t *testing.T) {
	// Closed server: connection refused must degrade to not-found.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	fetcher := NewFetcher(t.TempDir(), server.URL)
	if _, err := fetcher.Fetch(context.Background(), "core", "led_1", "breadboard"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestFetchLocalWinsOverRemote(t *testing.T) {
	remoteCalled := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remoteCalled = true
	}))
	defer server.Close()

	repo := t.TempDir()
	writeFile(t, filepath.Join(repo, "svg", "core", "breadboard", "led_1.svg"), "<svg>local</svg>")

	fetcher := NewFetcher(repo, server.URL)
	content, err := fetcher.Fetch(context.Background(), "core", "led_1", "breadboard")
	if err != nil {
		t.Fatalf("Fetch() returned error: %v", err)
	}
	if content != "<svg>local</svg>" {
		t.Errorf("Expected local content, got %q", content)
	}
	if remoteCalled {
		t.Error("Expected remote fetch to be skipped when a local graphic exists")
	}
}
