// Package fzp parses Fritzing part description (.fzp) documents.
package fzp

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/circuitbench/partkit/internal/models"
)

// Parser parses .fzp documents into component records.
type Parser struct {
	// BaseURL is the root of the remote parts repository, used to build
	// icon and breadboard graphic URLs.
	BaseURL string
}

// NewParser creates a new .fzp parser.
func NewParser(baseURL string) *Parser {
	return &Parser{BaseURL: strings.TrimSuffix(baseURL, "/")}
}

// document mirrors the .fzp XML structure. Attribute pointers distinguish
// an absent attribute from an empty one.
type document struct {
	XMLName     xml.Name    `xml:"module"`
	Title       string      `xml:"title"`
	Description string      `xml:"description"`
	Tags        []string    `xml:"tags>tag"`
	Properties  []property  `xml:"properties>property"`
	Views       views       `xml:"views"`
	Connectors  []connector `xml:"connectors>connector"`
}

type property struct {
	Name  string  `xml:"name,attr"`
	Value *string `xml:"value,attr"`
	Text  string  `xml:",chardata"`
}

type views struct {
	Icon       view `xml:"iconView"`
	Breadboard view `xml:"breadboardView"`
}

type view struct {
	Layers []layer `xml:"layers>layer"`
}

type layer struct {
	Image string `xml:"image,attr"`
}

type connector struct {
	ID          string         `xml:"id,attr"`
	Name        string         `xml:"name,attr"`
	Type        *string        `xml:"type,attr"`
	Description string         `xml:"description"`
	Views       connectorViews `xml:"views"`
}

type connectorViews struct {
	Breadboard struct {
		P struct {
			SVGID string `xml:"svgId,attr"`
		} `xml:"p"`
	} `xml:"breadboardView"`
}

// Parse parses one .fzp document. componentID is the document's filename
// with the extension stripped; it doubles as the title fallback.
// collection names the sub-repository the document came from ("core",
// "contrib", "user") and feeds the constructed graphic URLs.
func (p *Parser) Parse(data []byte, componentID, collection string) (*models.Component, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse fzp document: %w", err)
	}

	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = componentID
	}

	tags := make([]string, 0, len(doc.Tags))
	for _, tag := range doc.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}

	properties := make(map[string]string, len(doc.Properties))
	for _, prop := range doc.Properties {
		if prop.Name == "" {
			continue
		}
		if prop.Value != nil {
			properties[prop.Name] = *prop.Value
		} else {
			properties[prop.Name] = strings.TrimSpace(prop.Text)
		}
	}

	connectors := make([]models.Connector, 0, len(doc.Connectors))
	for _, conn := range doc.Connectors {
		typ := "unknown"
		if conn.Type != nil {
			typ = *conn.Type
		}
		connectors = append(connectors, models.Connector{
			ID:          conn.ID,
			Name:        conn.Name,
			Description: strings.TrimSpace(conn.Description),
			Type:        typ,
			SVGID:       conn.Views.Breadboard.P.SVGID,
		})
	}

	return &models.Component{
		ID:            componentID,
		Title:         title,
		Description:   strings.TrimSpace(doc.Description),
		Tags:          tags,
		IconURL:       p.viewURL(doc.Views.Icon, componentID, collection, "icon"),
		BreadboardURL: p.viewURL(doc.Views.Breadboard, componentID, collection, "breadboard"),
		Connectors:    connectors,
		Properties:    properties,
	}, nil
}

// viewURL resolves the graphic URL for a view. When the document names an
// image path on the view's first layer, that path is used as-is (it already
// includes the view directory); otherwise the URL follows the repository's
// naming convention.
func (p *Parser) viewURL(v view, componentID, collection, viewName string) string {
	for _, l := range v.Layers {
		if l.Image != "" {
			return fmt.Sprintf("%s/svg/%s/%s", p.BaseURL, collection, l.Image)
		}
	}
	return fmt.Sprintf("%s/svg/%s/%s/%s.svg", p.BaseURL, collection, viewName, componentID)
}
