// Package reconcile merges a component's declared connectors with the
// positions extracted from its breadboard graphic.
package reconcile

import (
	"strings"

	"github.com/circuitbench/partkit/internal/models"
	"github.com/circuitbench/partkit/internal/svg"
)

// Rule identifies which matching rule bound a connector to a point.
// Rules are tried in declaration order; the first point satisfying the
// active rule wins, so earlier points shadow later ones with the same id.
type Rule int

const (
	// RuleNone means no point matched the connector.
	RuleNone Rule = iota
	// RuleSVGID: the connector's declared svgId equals the point's id.
	RuleSVGID
	// RuleExactID: the point's id equals the connector's id.
	RuleExactID
	// RulePointInID: the point's id is a substring of the connector's id.
	RulePointInID
	// RuleIDInPoint: the connector's id is a substring of the point's id.
	RuleIDInPoint
)

func (r Rule) String() string {
	switch r {
	case RuleSVGID:
		return "svg-id"
	case RuleExactID:
		return "exact-id"
	case RulePointInID:
		return "point-in-id"
	case RuleIDInPoint:
		return "id-in-point"
	default:
		return "none"
	}
}

// Options tunes the matcher.
type Options struct {
	// MinSubstringLen is the shortest id the substring rules will accept
	// as the contained side of a match. Zero disables the threshold and
	// matches the historical Fritzing behavior. Empty ids never match.
	MinSubstringLen int
}

// Reconcile returns a copy of the component with every connector carrying
// its best-effort position and the graphic's dimensions. A nil extraction
// means no graphic was available: all connectors keep (0,0) and receive
// the fallback dimensions. The input component is never mutated.
func Reconcile(component *models.Component, extraction *svg.Extraction, opts Options) *models.Component {
	dims := svg.Dimensions{Width: svg.DefaultWidth, Height: svg.DefaultHeight}
	var points []svg.Point
	if extraction != nil {
		dims = extraction.Dims
		points = extraction.Points
	}

	out := *component
	out.Connectors = make([]models.Connector, len(component.Connectors))
	for i, conn := range component.Connectors {
		updated := conn
		if point, rule := Match(conn, points, opts); rule != RuleNone {
			updated.X = point.X
			updated.Y = point.Y
		}
		updated.SVGWidth = dims.Width
		updated.SVGHeight = dims.Height
		out.Connectors[i] = updated
	}
	return &out
}

// Match finds the point for a declared connector. Rules are applied in
// priority order and each rule scans the points in extraction order, so
// the first point satisfying the highest-priority applicable rule wins.
func Match(conn models.Connector, points []svg.Point, opts Options) (svg.Point, Rule) {
	rules := []struct {
		rule Rule
		ok   func(p svg.Point) bool
	}{
		{RuleSVGID, func(p svg.Point) bool {
			return conn.SVGID != "" && p.ID == conn.SVGID
		}},
		{RuleExactID, func(p svg.Point) bool {
			return conn.ID != "" && p.ID == conn.ID
		}},
		{RulePointInID, func(p svg.Point) bool {
			return substringOK(p.ID, opts) && strings.Contains(conn.ID, p.ID)
		}},
		{RuleIDInPoint, func(p svg.Point) bool {
			return substringOK(conn.ID, opts) && strings.Contains(p.ID, conn.ID)
		}},
	}

	for _, r := range rules {
		for _, p := range points {
			if r.ok(p) {
				return p, r.rule
			}
		}
	}
	return svg.Point{}, RuleNone
}

func substringOK(contained string, opts Options) bool {
	return contained != "" && len(contained) >= opts.MinSubstringLen
}
