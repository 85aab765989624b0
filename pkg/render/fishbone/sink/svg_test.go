package sink

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/rcakit/ishikawa/pkg/diagram"
	"github.com/rcakit/ishikawa/pkg/profile"
	"github.com/rcakit/ishikawa/pkg/render/fishbone/layout"
)

func testGeometry(t *testing.T, in diagram.Input, p profile.Profile) layout.Geometry {
	t.Helper()
	return layout.Compute(in, p)
}

func TestRenderSVGStructure(t *testing.T) {
	p := profile.Detailed()
	in := diagram.Input{
		Effect: "ผู้ป่วยได้รับยาผิด",
		Categories: []diagram.Category{
			{Label: "คน", Items: []string{"พยาบาลเร่งรีบ", "สื่อสารคลาดเคลื่อน"}},
			{Label: "วิธีการ", Items: []string{"ไม่ตรวจสอบซ้ำ"}},
		},
	}
	svg := string(RenderSVG(testGeometry(t, in, p), p))

	wantViewBox := fmt.Sprintf(`viewBox="0 0 %.1f %.1f"`, p.CanvasWidth, p.CanvasHeight)
	if !strings.Contains(svg, wantViewBox) {
		t.Errorf("missing %s", wantViewBox)
	}
	if got := strings.Count(svg, `class="bone"`); got != 2 {
		t.Errorf("got %d bones, want 2", got)
	}
	if got := strings.Count(svg, `class="rib"`); got != 3 {
		t.Errorf("got %d ribs, want 3", got)
	}
	if !strings.Contains(svg, `marker-end="url(#arrowHead)"`) {
		t.Error("spine missing arrow marker reference")
	}
	if !strings.Contains(svg, `<marker id="arrowHead"`) {
		t.Error("output must inline its marker definition")
	}
	if !strings.Contains(svg, `class="head-box"`) {
		t.Error("missing head box")
	}
	if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("output is not a self-contained svg element")
	}
}

func TestRenderSVGDrawOrder(t *testing.T) {
	// Lines are emitted before any box so ribs never overlap label borders.
	p := profile.Detailed()
	in := diagram.Input{Effect: "e", Categories: []diagram.Category{{Label: "c", Items: []string{"i"}}}}
	svg := string(RenderSVG(testGeometry(t, in, p), p))

	lastLine := strings.LastIndex(svg, `<line`)
	firstBox := strings.Index(svg, `<rect class="head-box"`)
	if firstBox < lastLine {
		t.Error("boxes must be drawn after all lines")
	}
}

func TestRenderSVGEscapesText(t *testing.T) {
	p := profile.Detailed()
	in := diagram.Input{
		Effect:     `<script>&"attack"`,
		Categories: []diagram.Category{{Label: "a<b&c", Items: []string{`x "quoted" & <tag>`}}},
	}
	svg := string(RenderSVG(testGeometry(t, in, p), p))

	for _, raw := range []string{"<script>", "a<b", "<tag>"} {
		if strings.Contains(svg, raw) {
			t.Errorf("output contains unescaped %q", raw)
		}
	}
	if !strings.Contains(svg, "&lt;") || !strings.Contains(svg, "&amp;") {
		t.Error("output should contain escaped forms of < and &")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	p := profile.Executive()
	in := diagram.Input{
		Effect:     "effect",
		Categories: []diagram.Category{{Label: "c", Items: []string{"a", "b"}}},
	}
	g := testGeometry(t, in, p)

	first := RenderSVG(g, p)
	second := RenderSVG(g, p)
	if !bytes.Equal(first, second) {
		t.Error("identical geometry must render byte-identical SVG")
	}
}

func TestRenderSVGBackgroundOption(t *testing.T) {
	p := profile.Detailed()
	g := testGeometry(t, diagram.Input{Effect: "e"}, p)

	svg := string(RenderSVG(g, p, WithBackground("#123456")))
	if !strings.Contains(svg, `fill="#123456"`) {
		t.Error("WithBackground not applied")
	}
}

func TestRenderSVGFontFamilyEmbedded(t *testing.T) {
	p := profile.Detailed()
	in := diagram.Input{Effect: "e", Categories: []diagram.Category{{Label: "c", Items: []string{"i"}}}}
	svg := string(RenderSVG(testGeometry(t, in, p), p))

	if !strings.Contains(svg, `font-family="Sarabun`) {
		t.Error("text elements must embed the font-family fallback list")
	}
}
