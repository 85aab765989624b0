// Package pkg provides the core libraries for rendering cause-and-effect
// (Ishikawa / fishbone) diagrams.
//
// # Overview
//
// A diagram is produced from an effect statement plus an ordered list of
// categorized contributing factors. The pkg directory is organized into:
//
//  1. [diagram] - Input model and lenient JSON decoding
//  2. [profile] - Layout profiles (capacities, canvas, anchors, wrap limits)
//  3. [render] - Visualization rendering (fishbone and nodelink views)
//  4. [cache] - Artifact caching (file, Redis, null backends)
//  5. [errors] - Structured errors with stable codes
//  6. [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow:
//
//	JSON payload
//	     ↓
//	[diagram] package (decode + coerce)
//	     ↓
//	[render/fishbone] package (normalize → layout → sink)
//	     ↓
//	SVG/JSON/PNG/PDF/DOT output
//
// # Quick Start
//
// Render a diagram to SVG:
//
//	import (
//	    "github.com/rcakit/ishikawa/pkg/diagram"
//	    "github.com/rcakit/ishikawa/pkg/render/fishbone"
//	)
//
//	d := fishbone.Build("patient received wrong medication", []diagram.Category{
//	    {Label: "people", Items: []string{"rushed handover"}},
//	    {Label: "process", Items: []string{"no double check"}},
//	})
//	os.WriteFile("diagram.svg", d.SVG, 0644)
//
// # Main Packages
//
// [diagram] - Input model. Decoding is lenient: non-string labels and
// items are coerced to strings rather than rejected.
//
// [profile] - Capacity and canvas profiles. Two builtins (detailed,
// executive) plus TOML-defined custom profiles.
//
// [render/fishbone] - The fishbone rendering pipeline: normalize →
// [render/fishbone/layout] (geometry) → [render/fishbone/sink] (SVG,
// JSON, PNG, PDF). Rendering is pure and deterministic.
//
// [render/nodelink] - Alternative cause-graph view using Graphviz.
//
// [render] - Top-level utilities for format conversion (SVG to PDF/PNG).
//
// [cache] - Artifact cache keyed by payload hash, profile, and format.
// FileCache for the CLI, RedisCache for the HTTP service, NullCache for
// tests and opt-out.
//
// [diagram]: https://pkg.go.dev/github.com/rcakit/ishikawa/pkg/diagram
// [profile]: https://pkg.go.dev/github.com/rcakit/ishikawa/pkg/profile
// [render]: https://pkg.go.dev/github.com/rcakit/ishikawa/pkg/render
// [render/fishbone]: https://pkg.go.dev/github.com/rcakit/ishikawa/pkg/render/fishbone
// [render/fishbone/layout]: https://pkg.go.dev/github.com/rcakit/ishikawa/pkg/render/fishbone/layout
// [render/fishbone/sink]: https://pkg.go.dev/github.com/rcakit/ishikawa/pkg/render/fishbone/sink
// [render/nodelink]: https://pkg.go.dev/github.com/rcakit/ishikawa/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/rcakit/ishikawa/pkg/cache
// [errors]: https://pkg.go.dev/github.com/rcakit/ishikawa/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/rcakit/ishikawa/pkg/buildinfo
package pkg
