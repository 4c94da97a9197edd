// Package export writes catalog snapshots to disk.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/circuitbench/partkit/internal/models"
	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

// Write dispatches on format ("jsonl", "parquet", "yaml") and writes the
// catalog to path.
func Write(path, format string, components []models.Component) error {
	switch format {
	case "jsonl":
		return WriteJSONL(path, components)
	case "parquet":
		return WriteParquet(path, components)
	case "yaml":
		return WriteYAML(path, components)
	default:
		return fmt.Errorf("unsupported snapshot format: %s (supported: jsonl, parquet, yaml)", format)
	}
}

// WriteJSONL writes one JSON-encoded component per line.
func WriteJSONL(path string, components []models.Component) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	for _, component := range components {
		if err := encoder.Encode(component); err != nil {
			return fmt.Errorf("failed to encode component %s: %w", component.ID, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}

	slog.Info("Wrote JSONL snapshot", "path", path, "components", len(components))
	return nil
}

// snapshotRow is the flattened Parquet representation of a component.
// Connectors keep their full shape as a JSON column; Parquet consumers
// mostly want the scalar metadata.
type snapshotRow struct {
	ID             string   `parquet:"id"`
	Title          string   `parquet:"title"`
	Description    string   `parquet:"description"`
	Category       string   `parquet:"category"`
	Tags           []string `parquet:"tags,list"`
	IconURL        string   `parquet:"icon_url"`
	BreadboardURL  string   `parquet:"breadboard_url"`
	ConnectorCount int32    `parquet:"connector_count"`
	ConnectorsJSON string   `parquet:"connectors_json"`
}

// WriteParquet writes the catalog as a Parquet file.
func WriteParquet(path string, components []models.Component) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer file.Close()

	rows := make([]snapshotRow, 0, len(components))
	for _, component := range components {
		connectors, err := json.Marshal(component.Connectors)
		if err != nil {
			return fmt.Errorf("failed to encode connectors for %s: %w", component.ID, err)
		}
		rows = append(rows, snapshotRow{
			ID:             component.ID,
			Title:          component.Title,
			Description:    component.Description,
			Category:       component.Category,
			Tags:           component.Tags,
			IconURL:        component.IconURL,
			BreadboardURL:  component.BreadboardURL,
			ConnectorCount: int32(len(component.Connectors)),
			ConnectorsJSON: string(connectors),
		})
	}

	writer := parquet.NewGenericWriter[snapshotRow](file)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	slog.Info("Wrote Parquet snapshot", "path", path, "components", len(components))
	return nil
}

// snapshotSpec is the YAML snapshot layout: a small header block followed
// by the component records.
type snapshotSpec struct {
	Generated  string             `yaml:"generated"`
	Count      int                `yaml:"count"`
	Components []models.Component `yaml:"components"`
}

// WriteYAML writes the catalog as a single YAML document with a header.
func WriteYAML(path string, components []models.Component) error {
	spec := snapshotSpec{
		Generated:  time.Now().Format(time.RFC3339),
		Count:      len(components),
		Components: components,
	}

	data, err := yaml.Marshal(&spec)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}

	slog.Info("Wrote YAML snapshot", "path", path, "components", len(components))
	return nil
}
