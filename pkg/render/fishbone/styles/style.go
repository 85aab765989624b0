// Package styles holds the visual constants and text helpers shared by the
// fishbone sinks.
package styles

// FontFamily is the fallback list embedded on every text element. Sarabun
// and Noto Sans Thai cover the Thai glyphs common in incident reports;
// sans-serif is the terminal fallback.
const FontFamily = "Sarabun, 'Noto Sans Thai', sans-serif"

// Slate palette, matching the report theme the diagrams embed into.
const (
	ColorBackground  = "#f8fafc"
	ColorSpine       = "#0f172a"
	ColorBone        = "#334155"
	ColorRib         = "#475569"
	ColorBoxFill     = "#ffffff"
	ColorBoxStroke   = "#94a3b8"
	ColorHeadStroke  = "#0f172a"
	ColorText        = "#0f172a"
	ColorArrow       = "#0ea5e9"
	ColorSpineCircle = "#0f172a"
)

// Stroke widths in canvas units.
const (
	SpineStrokeWidth = 6.0
	BoneStrokeWidth  = 3.0
	RibStrokeWidth   = 2.0
	BoxStrokeWidth   = 2.0
	HeadStrokeWidth  = 3.0
)

// SpineCircleRadius is the radius of the spine's start terminus marker.
const SpineCircleRadius = 10.0
