package models

// Component represents one part from a Fritzing-style parts repository,
// enriched with connector positions from its breadboard graphic.
type Component struct {
	ID            string            `json:"id" yaml:"id"`
	Title         string            `json:"title" yaml:"title"`
	Description   string            `json:"description" yaml:"description"`
	Category      string            `json:"category" yaml:"category"`
	Tags          []string          `json:"tags" yaml:"tags"`
	IconURL       string            `json:"iconUrl" yaml:"iconUrl"`
	BreadboardURL string            `json:"breadboardUrl" yaml:"breadboardUrl"`
	Connectors    []Connector       `json:"connectors" yaml:"connectors"`
	Properties    map[string]string `json:"properties" yaml:"properties"`
}

// Connector represents a single declared pin or pad on a component.
// X/Y stay (0,0) until reconciliation finds a matching element in the
// component's breadboard SVG; an unmatched connector keeps (0,0) but
// still carries the SVG dimensions so consumers know its coordinate space.
type Connector struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Type        string  `json:"type" yaml:"type"`
	SVGID       string  `json:"svgId" yaml:"svgId"`
	X           float64 `json:"x" yaml:"x"`
	Y           float64 `json:"y" yaml:"y"`
	SVGWidth    float64 `json:"svgWidth" yaml:"svgWidth"`
	SVGHeight   float64 `json:"svgHeight" yaml:"svgHeight"`
}
