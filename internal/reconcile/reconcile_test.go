package reconcile

import (
	"testing"

	"github.com/circuitbench/partkit/internal/models"
	"github.com/circuitbench/partkit/internal/svg"
)

func TestMatchPriority(t *testing.T) {
	tests := []struct {
		name     string
		conn     models.Connector
		points   []svg.Point
		wantRule Rule
		wantX    float64
	}{
		{
			name: "svgId exact match wins over id rules",
			conn: models.Connector{ID: "pin3", SVGID: "connector3pin"},
			points: []svg.Point{
				{ID: "connector3", X: 1},
				{ID: "pin3", X: 2},
				{ID: "connector3pin", X: 3},
			},
			wantRule: RuleSVGID,
			wantX:    3,
		},
		{
			name: "exact id beats substring rules",
			conn: models.Connector{ID: "pin3", SVGID: "connector3pin"},
			points: []svg.Point{
				{ID: "connector3", X: 1},
				{ID: "pin3", X: 2},
			},
			wantRule: RuleExactID,
			wantX:    2,
		},
		{
			name: "point id contained in connector id",
			conn: models.Connector{ID: "connector12pin"},
			points: []svg.Point{
				{ID: "connector12", X: 4},
			},
			wantRule: RulePointInID,
			wantX:    4,
		},
		{
			name: "connector id contained in point id",
			conn: models.Connector{ID: "connector5"},
			points: []svg.Point{
				{ID: "other", X: 1},
				{ID: "connector5terminal", X: 6},
			},
			wantRule: RuleIDInPoint,
			wantX:    6,
		},
		{
			name:     "no candidates",
			conn:     models.Connector{ID: "connector0"},
			points:   nil,
			wantRule: RuleNone,
		},
		{
			name: "empty connector id never substring-matches",
			conn: models.Connector{ID: ""},
			points: []svg.Point{
				{ID: "connector0", X: 5},
			},
			wantRule: RuleNone,
		},
		{
			name: "first point satisfying the active rule wins",
			conn: models.Connector{ID: "connector7"},
			points: []svg.Point{
				{ID: "connector7", X: 10},
				{ID: "connector7", X: 99},
			},
			wantRule: RuleExactID,
			wantX:    10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, rule := Match(tt.conn, tt.points, Options{})
			if rule != tt.wantRule {
				t.Fatalf("Expected rule %v, got %v", tt.wantRule, rule)
			}
			if rule != RuleNone && point.X != tt.wantX {
				t.Errorf("Expected point with x=%v, got x=%v", tt.wantX, point.X)
			}
		})
	}
}

func TestMatchMinSubstringLen(t *testing.T) {
	conn := models.Connector{ID: "1"}
	points := []svg.Point{{ID: "connector1", X: 5}}

	if _, rule := Match(conn, points, Options{}); rule != RuleIDInPoint {
		t.Errorf("Expected short id to match with no threshold, got rule %v", rule)
	}
	if _, rule := Match(conn, points, Options{MinSubstringLen: 3}); rule != RuleNone {
		t.Errorf("Expected short id to be rejected with threshold, got rule %v", rule)
	}
}

func testComponent() *models.Component {
	return &models.Component{
		ID:    "dip8",
		Title: "DIP-8 socket",
		Connectors: []models.Connector{
			{ID: "connector0", Name: "p0", SVGID: "connector0pin"},
			{ID: "connector1", Name: "p1"},
			{ID: "connector2", Name: "p2"},
		},
	}
}

func TestReconcile(t *testing.T) {
	extraction := &svg.Extraction{
		Points: []svg.Point{
			{ID: "connector0", X: 10, Y: 11},
			{ID: "connector1", X: 20, Y: 21},
		},
		Dims: svg.Dimensions{Width: 36, Height: 79.2},
	}

	component := testComponent()
	result := Reconcile(component, extraction, Options{})

	if len(result.Connectors) != 3 {
		t.Fatalf("Expected 3 connectors, got %d", len(result.Connectors))
	}

	// connector0 matches via svgId normalization, connector1 via exact id.
	if result.Connectors[0].X != 10 || result.Connectors[0].Y != 11 {
		t.Errorf("Expected connector0 at (10, 11), got (%v, %v)",
			result.Connectors[0].X, result.Connectors[0].Y)
	}
	if result.Connectors[1].X != 20 || result.Connectors[1].Y != 21 {
		t.Errorf("Expected connector1 at (20, 21), got (%v, %v)",
			result.Connectors[1].X, result.Connectors[1].Y)
	}
	// connector2 has no candidate: keeps origin but carries dimensions.
	if result.Connectors[2].X != 0 || result.Connectors[2].Y != 0 {
		t.Errorf("Expected connector2 at origin, got (%v, %v)",
			result.Connectors[2].X, result.Connectors[2].Y)
	}

	for i, conn := range result.Connectors {
		if conn.SVGWidth != 36 || conn.SVGHeight != 79.2 {
			t.Errorf("Connector %d: expected dimensions 36x79.2, got %vx%v",
				i, conn.SVGWidth, conn.SVGHeight)
		}
	}
}

func TestReconcileOrderAndCountPreserved(t *testing.T) {
	component := testComponent()
	result := Reconcile(component, &svg.Extraction{
		Points: []svg.Point{{ID: "connector2", X: 1, Y: 1}},
		Dims:   svg.Dimensions{Width: 72, Height: 93.6},
	}, Options{})

	if len(result.Connectors) != len(component.Connectors) {
		t.Fatalf("Expected %d connectors, got %d", len(component.Connectors), len(result.Connectors))
	}
	for i := range component.Connectors {
		if result.Connectors[i].ID != component.Connectors[i].ID {
			t.Errorf("Connector %d reordered: expected %s, got %s",
				i, component.Connectors[i].ID, result.Connectors[i].ID)
		}
	}
}

func TestReconcileWithoutGraphic(t *testing.T) {
	component := testComponent()
	result := Reconcile(component, nil, Options{})

	for i, conn := range result.Connectors {
		if conn.X != 0 || conn.Y != 0 {
			t.Errorf("Connector %d: expected origin, got (%v, %v)", i, conn.X, conn.Y)
		}
		if conn.SVGWidth != svg.DefaultWidth || conn.SVGHeight != svg.DefaultHeight {
			t.Errorf("Connector %d: expected fallback dimensions, got %vx%v",
				i, conn.SVGWidth, conn.SVGHeight)
		}
	}
}

func TestReconcileDoesNotMutateInput(t *testing.T) {
	component := testComponent()
	Reconcile(component, &svg.Extraction{
		Points: []svg.Point{{ID: "connector0", X: 5, Y: 5}},
		Dims:   svg.Dimensions{Width: 10, Height: 10},
	}, Options{})

	for i, conn := range component.Connectors {
		if conn.X != 0 || conn.Y != 0 || conn.SVGWidth != 0 || conn.SVGHeight != 0 {
			t.Errorf("Connector %d of input mutated: %+v", i, conn)
		}
	}
}
