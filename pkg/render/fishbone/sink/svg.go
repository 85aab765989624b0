// Package sink serializes fishbone geometry into output formats.
//
// The SVG sink is the primary output: a self-contained markup string with
// inline marker definitions and no external references, declaring a fixed
// viewBox so the diagram scales responsively without re-layout. JSON, PNG,
// and PDF sinks cover non-visual consumers and document embedding.
package sink

import (
	"bytes"
	"fmt"

	"github.com/rcakit/ishikawa/pkg/profile"
	"github.com/rcakit/ishikawa/pkg/render/fishbone/layout"
	"github.com/rcakit/ishikawa/pkg/render/fishbone/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background string
}

// WithBackground overrides the background fill color.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// RenderSVG serializes the geometry into SVG markup. Draw order is fixed:
// background, then all lines (spine, bones, ribs), then all boxes and
// text, so no line ever sits on top of a text box. All free text is
// XML-escaped; the output is byte-for-byte deterministic for a given
// geometry and profile.
func RenderSVG(g layout.Geometry, p profile.Profile, opts ...SVGOption) []byte {
	r := svgRenderer{background: styles.ColorBackground}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		g.Canvas.W, g.Canvas.H, g.Canvas.W, g.Canvas.H)

	renderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect class="background" x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		g.Canvas.W, g.Canvas.H, r.background)

	renderSpine(&buf, g)
	for _, b := range g.Bones {
		renderLine(&buf, "bone", b.Line, styles.ColorBone, styles.BoneStrokeWidth)
	}
	for _, b := range g.Bones {
		for _, rib := range b.Ribs {
			renderLine(&buf, "rib", rib.Line, styles.ColorRib, styles.RibStrokeWidth)
		}
	}

	renderHead(&buf, g.Head, p)
	for _, b := range g.Bones {
		renderBox(&buf, "label-box", b.Label.Box, styles.ColorBoxStroke, styles.BoxStrokeWidth, 10)
		renderTextBlock(&buf, "label-text", b.Label, p.LabelFontSize, p.LabelFontSize+4, "700")
		for _, rib := range b.Ribs {
			renderBox(&buf, "item-box", rib.Text.Box, styles.ColorBoxStroke, 1, 6)
			renderTextBlock(&buf, "item-text", rib.Text, p.ItemFontSize, p.ItemLineH, "400")
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, `    <marker id="arrowHead" markerWidth="12" markerHeight="12" refX="10" refY="6" orient="auto">`+"\n")
	fmt.Fprintf(buf, `      <path d="M0,0 L12,6 L0,12 Z" fill="%s"/>`+"\n", styles.ColorArrow)
	buf.WriteString("    </marker>\n  </defs>\n")
}

func renderSpine(buf *bytes.Buffer, g layout.Geometry) {
	fmt.Fprintf(buf, `  <circle class="spine-start" cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
		g.SpineStart.X, g.SpineStart.Y, styles.SpineCircleRadius, styles.ColorSpineCircle)
	fmt.Fprintf(buf, `  <line class="spine" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" marker-end="url(#arrowHead)"/>`+"\n",
		g.Spine.From.X, g.Spine.From.Y, g.Spine.To.X, g.Spine.To.Y, styles.ColorSpine, styles.SpineStrokeWidth)
}

func renderHead(buf *bytes.Buffer, head layout.TextBlock, p profile.Profile) {
	renderBox(buf, "head-box", head.Box, styles.ColorHeadStroke, styles.HeadStrokeWidth, 16)
	renderTextBlock(buf, "head-text", head, p.HeadFontSize, p.EffectLineH, "700")
}

func renderLine(buf *bytes.Buffer, class string, l layout.Line, color string, width float64) {
	fmt.Fprintf(buf, `  <line class="%s" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		class, l.From.X, l.From.Y, l.To.X, l.To.Y, color, width)
}

func renderBox(buf *bytes.Buffer, class string, b layout.Box, stroke string, strokeWidth, radius float64) {
	fmt.Fprintf(buf, `  <rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
		class, b.X, b.Y, b.W, b.H, radius, styles.ColorBoxFill, stroke, strokeWidth)
}

// renderTextBlock writes the block's lines as centered tspans, vertically
// centered within the box.
func renderTextBlock(buf *bytes.Buffer, class string, tb layout.TextBlock, fontSize, lineH float64, weight string) {
	if len(tb.Lines) == 0 {
		return
	}
	cx := tb.Box.CenterX()
	startY := tb.Box.Y + (tb.Box.H-lineH*float64(len(tb.Lines)))/2 + fontSize

	fmt.Fprintf(buf, `  <text class="%s" x="%.1f" y="%.1f" text-anchor="middle" font-size="%.1f" font-weight="%s" font-family="%s" fill="%s">`,
		class, cx, startY, fontSize, weight, styles.FontFamily, styles.ColorText)
	for i, line := range tb.Lines {
		dy := 0.0
		if i > 0 {
			dy = lineH
		}
		fmt.Fprintf(buf, `<tspan x="%.1f" dy="%.1f">%s</tspan>`, cx, dy, styles.EscapeXML(line))
	}
	buf.WriteString("</text>\n")
}
