// Package layout computes fishbone diagram geometry.
//
// Compute is a pure function from (input, profile) to Geometry: a spine, a
// head box with the wrapped effect text, one bone per accepted category
// assigned to its pre-registered anchor, and one rib per accepted item at a
// fixed fraction along the bone. Overlap avoidance relies entirely on the
// profile's tuned offsets and the top/bottom anchor alternation; there is
// no collision detection.
//
// Compute never fails. Inputs beyond capacity are silently truncated, blank
// labels get a placeholder, and degenerate bone geometry falls back to a
// fixed unit direction instead of dividing by zero.
package layout

import (
	"math"
	"strings"

	"github.com/rcakit/ishikawa/pkg/diagram"
	"github.com/rcakit/ishikawa/pkg/profile"
)

// PlaceholderLabel replaces blank category labels during normalization so
// a mislabeled category keeps its slot and its items.
const PlaceholderLabel = "unspecified"

const eps = 1e-9

// Compute lays out the diagram on the profile's canvas. The input is
// normalized first: at most MaxCategories categories, at most
// MaxItemsPerCategory items each, blank labels replaced. Anchor slots
// beyond the accepted category count are omitted, not padded.
func Compute(in diagram.Input, p profile.Profile) Geometry {
	cats := normalize(in.Categories, p)

	g := Geometry{
		Canvas:     Box{W: p.CanvasWidth, H: p.CanvasHeight},
		SpineStart: Point{X: p.SpineStartX, Y: p.SpineY},
		Spine: Line{
			From: Point{X: p.SpineStartX, Y: p.SpineY},
			To:   Point{X: p.Head.X, Y: p.SpineY},
		},
		Head: TextBlock{
			Box:   Box{X: p.Head.X, Y: p.Head.Y, W: p.Head.W, H: p.Head.H},
			Lines: Wrap(in.Effect, p.EffectMaxChars, p.EffectMaxLines),
		},
	}

	for i, c := range cats {
		g.Bones = append(g.Bones, bone(c, p.Anchors[i], p))
	}
	return g
}

// normalize applies the capacity caps and the blank-label policy. It never
// pads: fewer categories than anchors simply leaves anchors unused.
func normalize(cats []diagram.Category, p profile.Profile) []diagram.Category {
	if len(cats) > p.MaxCategories {
		cats = cats[:p.MaxCategories]
	}
	out := make([]diagram.Category, 0, len(cats))
	for _, c := range cats {
		if strings.TrimSpace(c.Label) == "" {
			c.Label = PlaceholderLabel
		}
		if len(c.Items) > p.MaxItemsPerCategory {
			c.Items = c.Items[:p.MaxItemsPerCategory]
		}
		out = append(out, c)
	}
	return out
}

func bone(c diagram.Category, a profile.Anchor, p profile.Profile) Bone {
	start := Point{X: a.X, Y: p.SpineY}
	end := clampPoint(Point{X: a.X - p.EndDX, Y: a.EndY}, p)

	dx, dy := end.X-start.X, end.Y-start.Y
	ln := math.Hypot(dx, dy)
	var ux, uy float64
	if ln < eps {
		// Degenerate bone: start and end coincide. Fall back to a unit
		// direction so the perpendicular below stays finite.
		ux, uy = -1, 0
	} else {
		ux, uy = dx/ln, dy/ln
	}

	// Rib direction is the bone direction rotated 90 degrees, with the
	// sign flipped for top-side bones to match the bone's vertical sense.
	px, py := -uy, ux
	if a.IsTop {
		px, py = -px, -py
	}

	b := Bone{Line: Line{From: start, To: end}, IsTop: a.IsTop}

	lb := Box{X: end.X - 8, W: p.LabelBoxW, H: p.LabelBoxH}
	if a.IsTop {
		lb.Y = end.Y - p.LabelBoxH - p.LabelGap
	} else {
		lb.Y = end.Y + p.LabelGap
	}
	b.Label = TextBlock{Box: clampBox(lb, p), Lines: Wrap(c.Label, p.LabelMaxChars, 1)}

	for j, item := range c.Items {
		f := p.RibFractions[min(j, len(p.RibFractions)-1)]
		s := Point{X: start.X + dx*f, Y: start.Y + dy*f}
		e := clampPoint(Point{X: s.X + px*p.RibLength, Y: s.Y + py*p.RibLength}, p)

		lines := Wrap(item, p.ItemMaxChars, p.ItemMaxLines)
		bh := float64(max(len(lines), 1))*p.ItemLineH + 8
		ib := Box{X: e.X + px*p.RibTextGap - p.ItemBoxW/2, W: p.ItemBoxW, H: bh}
		if a.IsTop {
			ib.Y = e.Y - bh - 4
		} else {
			ib.Y = e.Y + 4
		}

		b.Ribs = append(b.Ribs, Rib{
			Line: Line{From: s, To: e},
			Text: TextBlock{Box: clampBox(ib, p), Lines: lines},
		})
	}
	return b
}

// clampPoint keeps a point inside the canvas.
func clampPoint(pt Point, p profile.Profile) Point {
	pt.X = math.Max(0, math.Min(pt.X, p.CanvasWidth))
	pt.Y = math.Max(0, math.Min(pt.Y, p.CanvasHeight))
	return pt
}

// clampBox shifts a box so it lies inside the canvas.
func clampBox(b Box, p profile.Profile) Box {
	b.X = math.Max(0, math.Min(b.X, p.CanvasWidth-b.W))
	b.Y = math.Max(0, math.Min(b.Y, p.CanvasHeight-b.H))
	return b
}
