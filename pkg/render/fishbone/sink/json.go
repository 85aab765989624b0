package sink

import (
	"encoding/json"

	"github.com/rcakit/ishikawa/pkg/diagram"
	"github.com/rcakit/ishikawa/pkg/profile"
	"github.com/rcakit/ishikawa/pkg/render/fishbone/layout"
)

// Document is the JSON export of a rendered diagram: the normalized input,
// the flattened category/item table (the accessible text fallback), and
// the raw geometry for consumers that draw with something other than SVG.
type Document struct {
	Profile    string             `json:"profile"`
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	Effect     string             `json:"effect"`
	Categories []diagram.Category `json:"categories"`
	Table      []TableRow         `json:"table"`
	Geometry   layout.Geometry    `json:"geometry"`
}

// TableRow is one category/item pair of the accessible table.
type TableRow struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
}

// RenderJSON serializes the normalized input and its geometry. Field order
// and indentation are fixed, so output is deterministic.
func RenderJSON(in diagram.Input, g layout.Geometry, p profile.Profile) ([]byte, error) {
	doc := Document{
		Profile:    p.Name,
		Width:      p.CanvasWidth,
		Height:     p.CanvasHeight,
		Effect:     in.Effect,
		Categories: in.Categories,
		Geometry:   g,
	}
	for _, r := range in.Table() {
		doc.Table = append(doc.Table, TableRow{Category: r.Category, Item: r.Item})
	}
	return json.MarshalIndent(doc, "", "  ")
}
