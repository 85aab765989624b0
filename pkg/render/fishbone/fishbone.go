// Package fishbone builds cause-and-effect (Ishikawa) diagrams.
//
// Build is the single entry point for callers: give it an effect statement
// and an ordered list of categories and it returns self-contained SVG
// markup plus the declared canvas size. Input is normalized first (blank
// effect and empty category lists become placeholders, capacity limits are
// enforced), then laid out by the [layout] package and serialized by the
// [sink] package.
//
// Build is pure and deterministic: no state survives a call, identical
// arguments yield byte-identical output, and no input can make it fail.
// Concurrent calls need no synchronization.
//
// [layout]: github.com/rcakit/ishikawa/pkg/render/fishbone/layout
// [sink]: github.com/rcakit/ishikawa/pkg/render/fishbone/sink
package fishbone

import (
	"strings"

	"github.com/rcakit/ishikawa/pkg/diagram"
	"github.com/rcakit/ishikawa/pkg/profile"
	"github.com/rcakit/ishikawa/pkg/render/fishbone/layout"
	"github.com/rcakit/ishikawa/pkg/render/fishbone/sink"
)

// Placeholders substituted for missing input, so a diagram is always
// renderable.
const (
	PlaceholderEffect   = "event / outcome"
	PlaceholderCategory = "no data"
)

// RenderedDiagram is the final markup plus its declared canvas size. Width
// and Height describe the logical viewBox; the on-screen display size is
// the embedding surface's concern.
type RenderedDiagram struct {
	SVG    []byte
	Width  float64
	Height float64
}

// Option configures a Build call.
type Option func(*builder)

type builder struct {
	profile profile.Profile
	svgOpts []sink.SVGOption
}

// WithProfile selects the capacity/canvas profile. Defaults to
// [profile.Detailed]. The profile must be valid; see [profile.Profile.Validate].
func WithProfile(p profile.Profile) Option {
	return func(b *builder) { b.profile = p }
}

// WithSVGOptions passes options through to the SVG sink.
func WithSVGOptions(opts ...sink.SVGOption) Option {
	return func(b *builder) { b.svgOpts = opts }
}

// Build renders a fishbone diagram for the given effect and categories.
// It never fails: missing or oversized input degrades into placeholders
// and silent truncation.
func Build(effect string, categories []diagram.Category, opts ...Option) RenderedDiagram {
	b := builder{profile: profile.Detailed()}
	for _, opt := range opts {
		opt(&b)
	}

	in := Normalize(effect, categories)
	g := layout.Compute(in, b.profile)
	return RenderedDiagram{
		SVG:    sink.RenderSVG(g, b.profile, b.svgOpts...),
		Width:  b.profile.CanvasWidth,
		Height: b.profile.CanvasHeight,
	}
}

// BuildDocument renders the JSON document form of the diagram: normalized
// input, accessible table, and raw geometry.
func BuildDocument(effect string, categories []diagram.Category, opts ...Option) ([]byte, error) {
	b := builder{profile: profile.Detailed()}
	for _, opt := range opts {
		opt(&b)
	}

	in := Normalize(effect, categories)
	g := layout.Compute(in, b.profile)
	return sink.RenderJSON(in, g, b.profile)
}

// Normalize applies the placeholder policy: a blank effect becomes
// [PlaceholderEffect] and an empty category list becomes a single
// [PlaceholderCategory] with no items. Capacity truncation happens later,
// in the layout engine.
func Normalize(effect string, categories []diagram.Category) diagram.Input {
	if strings.TrimSpace(effect) == "" {
		effect = PlaceholderEffect
	}
	if len(categories) == 0 {
		categories = []diagram.Category{{Label: PlaceholderCategory}}
	}
	return diagram.Input{Effect: effect, Categories: categories}
}
