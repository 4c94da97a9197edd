// Package svg extracts connector positions and document dimensions from
// Fritzing part SVG graphics.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Default dimensions for a breadboard SVG whose size cannot be determined.
const (
	DefaultWidth  = 72.0
	DefaultHeight = 93.6
)

// Point is one connector position found in a graphic. ID is the element's
// id attribute with the literal "pin" and "pad" markers stripped.
type Point struct {
	ID string
	X  float64
	Y  float64
}

// Dimensions is the overall size of a graphic in pixel units.
type Dimensions struct {
	Width  float64
	Height float64
}

// Extraction is the result of scanning one SVG document.
//
// Points preserves document traversal order. Two elements may normalize to
// the same ID; both are kept, and matching takes the first one seen.
type Extraction struct {
	Points []Point
	Dims   Dimensions
}

var (
	// First move-to command of a path, e.g. "M 12.5,7" or "M12.5 7".
	pathMoveRe = regexp.MustCompile(`M\s*([\d.-]+)\s*,?\s*([\d.-]+)`)
	// First numeric run of a width/height attribute, e.g. "0.9in" -> "0.9".
	numberRe = regexp.MustCompile(`[\d.]+`)
)

// Extract scans an SVG document for connector elements and the document's
// dimensions. An element is a connector candidate when its id contains
// "connector" and either "pin" or "pad" (case-insensitive). A candidate
// with no recognizable geometry still yields a point at (0,0).
func Extract(content string) (*Extraction, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	result := &Extraction{
		Dims: Dimensions{Width: DefaultWidth, Height: DefaultHeight},
	}

	root := true
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse svg document: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		attrs := make(map[string]string, len(start.Attr))
		for _, attr := range start.Attr {
			attrs[attr.Name.Local] = attr.Value
		}

		if root {
			root = false
			result.Dims = dimensions(attrs)
		}

		id := attrs["id"]
		if !isConnectorID(id) {
			continue
		}

		x, y := position(attrs)
		result.Points = append(result.Points, Point{
			ID: strings.ReplaceAll(strings.ReplaceAll(id, "pin", ""), "pad", ""),
			X:  x,
			Y:  y,
		})
	}

	return result, nil
}

func isConnectorID(id string) bool {
	lower := strings.ToLower(id)
	return strings.Contains(lower, "connector") &&
		(strings.Contains(lower, "pin") || strings.Contains(lower, "pad"))
}

// position extracts an element's coordinate, preferring circle centers,
// then plain x/y, then line start points, then the first move-to of a
// path. Elements with none of these yield (0,0).
func position(attrs map[string]string) (float64, float64) {
	pairs := [][2]string{{"cx", "cy"}, {"x", "y"}, {"x1", "y1"}}
	for _, pair := range pairs {
		xs, okX := attrs[pair[0]]
		ys, okY := attrs[pair[1]]
		if okX && okY {
			return parseFloat(xs), parseFloat(ys)
		}
	}

	if d, ok := attrs["d"]; ok {
		if m := pathMoveRe.FindStringSubmatch(d); m != nil {
			return parseFloat(m[1]), parseFloat(m[2])
		}
	}

	return 0, 0
}

// dimensions resolves the document size: a four-number viewBox wins, then
// width/height attributes with inch values converted at 72 DPI, then the
// 72x93.6 fallback. A branch whose fields fail to parse as numbers falls
// through to the next; dimensions are never zero.
func dimensions(attrs map[string]string) Dimensions {
	if viewBox, ok := attrs["viewBox"]; ok {
		parts := strings.Fields(viewBox)
		if len(parts) == 4 {
			w, errW := strconv.ParseFloat(parts[2], 64)
			h, errH := strconv.ParseFloat(parts[3], 64)
			if errW == nil && errH == nil {
				return Dimensions{Width: w, Height: h}
			}
		}
	}

	width, ok := attrs["width"]
	if !ok {
		width = "72"
	}
	height, ok := attrs["height"]
	if !ok {
		height = "93.6"
	}

	w, errW := strconv.ParseFloat(numberRe.FindString(width), 64)
	h, errH := strconv.ParseFloat(numberRe.FindString(height), 64)
	if errW == nil && errH == nil {
		if strings.Contains(width, "in") {
			w *= 72
		}
		if strings.Contains(height, "in") {
			h *= 72
		}
		return Dimensions{Width: w, Height: h}
	}

	return Dimensions{Width: DefaultWidth, Height: DefaultHeight}
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
