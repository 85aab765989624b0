package sink

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rcakit/ishikawa/pkg/diagram"
	"github.com/rcakit/ishikawa/pkg/profile"
	"github.com/rcakit/ishikawa/pkg/render/fishbone/layout"
)

func TestRenderJSON(t *testing.T) {
	p := profile.Detailed()
	in := diagram.Input{
		Effect: "wrong medication",
		Categories: []diagram.Category{
			{Label: "people", Items: []string{"rushed", "handover gap"}},
			{Label: "method"},
		},
	}
	g := layout.Compute(in, p)

	data, err := RenderJSON(in, g, p)
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Profile != "detailed" || doc.Width != p.CanvasWidth || doc.Height != p.CanvasHeight {
		t.Errorf("header = %q %gx%g", doc.Profile, doc.Width, doc.Height)
	}
	if doc.Effect != "wrong medication" {
		t.Errorf("Effect = %q", doc.Effect)
	}
	if len(doc.Table) != 3 {
		t.Fatalf("table has %d rows, want 3", len(doc.Table))
	}
	if doc.Table[0].Category != "people" || doc.Table[0].Item != "rushed" {
		t.Errorf("table[0] = %+v", doc.Table[0])
	}
	if doc.Table[2].Category != "method" || doc.Table[2].Item != "" {
		t.Errorf("table[2] = %+v", doc.Table[2])
	}
	if len(doc.Geometry.Bones) != 2 {
		t.Errorf("geometry has %d bones, want 2", len(doc.Geometry.Bones))
	}
}

func TestRenderJSONDeterministic(t *testing.T) {
	p := profile.Executive()
	in := diagram.Input{Effect: "e", Categories: []diagram.Category{{Label: "c", Items: []string{"i"}}}}
	g := layout.Compute(in, p)

	a, err := RenderJSON(in, g, p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderJSON(in, g, p)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical inputs must serialize identically")
	}
}
