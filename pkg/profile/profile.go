// Package profile defines capacity and canvas configuration for fishbone
// diagram rendering.
//
// A Profile fixes everything about a diagram that is not data-dependent:
// how many categories and items are accepted, the canvas size, where the
// spine and head box sit, the pre-registered anchor slot for each category
// bone, and the text wrapping limits. Two deployment profiles ship built
// in: Detailed (6 categories x 4 items on a 1200x620 canvas) and Executive
// (4 categories x 2 items on a larger canvas with larger fonts). Custom
// profiles can be loaded from TOML files.
//
// Profiles are plain configuration data passed explicitly into the layout
// engine; they carry no state and are validated once at construction time.
package profile

import (
	"sort"

	"github.com/rcakit/ishikawa/pkg/errors"
)

// Anchor is a pre-registered geometric slot for a category bone. The bone
// leaves the spine at X and terminates at (X - EndDX, EndY). IsTop decides
// whether the bone points above or below the spine, and flips the sign of
// the rib perpendicular so ribs match the bone's vertical sense.
type Anchor struct {
	X     float64 `toml:"x" json:"x"`
	EndY  float64 `toml:"end_y" json:"end_y"`
	IsTop bool    `toml:"is_top" json:"is_top"`
}

// Box is an axis-aligned rectangle in canvas coordinates.
type Box struct {
	X float64 `toml:"x" json:"x"`
	Y float64 `toml:"y" json:"y"`
	W float64 `toml:"w" json:"w"`
	H float64 `toml:"h" json:"h"`
}

// Profile is the full capacity and canvas configuration for one deployment.
type Profile struct {
	Name string `toml:"name" json:"name"`

	// Capacity limits, enforced regardless of what the producer promised.
	MaxCategories       int `toml:"max_categories" json:"max_categories"`
	MaxItemsPerCategory int `toml:"max_items_per_category" json:"max_items_per_category"`

	// Canvas and spine geometry.
	CanvasWidth  float64 `toml:"canvas_width" json:"canvas_width"`
	CanvasHeight float64 `toml:"canvas_height" json:"canvas_height"`
	SpineStartX  float64 `toml:"spine_start_x" json:"spine_start_x"`
	SpineY       float64 `toml:"spine_y" json:"spine_y"`
	Head         Box     `toml:"head" json:"head"`

	// Bone geometry. EndDX is the fixed horizontal run from an anchor's
	// spine point back to the bone terminus.
	EndDX   float64  `toml:"end_dx" json:"end_dx"`
	Anchors []Anchor `toml:"anchors" json:"anchors"`

	// Rib geometry. Each item slot j uses RibFractions[j] along the bone;
	// slots beyond the list reuse the last fraction.
	RibFractions []float64 `toml:"rib_fractions" json:"rib_fractions"`
	RibLength    float64   `toml:"rib_length" json:"rib_length"`
	RibTextGap   float64   `toml:"rib_text_gap" json:"rib_text_gap"`

	// Category label box.
	LabelBoxW     float64 `toml:"label_box_w" json:"label_box_w"`
	LabelBoxH     float64 `toml:"label_box_h" json:"label_box_h"`
	LabelGap      float64 `toml:"label_gap" json:"label_gap"`
	LabelMaxChars int     `toml:"label_max_chars" json:"label_max_chars"`

	// Item text box, sized per wrapped line.
	ItemMaxChars int     `toml:"item_max_chars" json:"item_max_chars"`
	ItemMaxLines int     `toml:"item_max_lines" json:"item_max_lines"`
	ItemBoxW     float64 `toml:"item_box_w" json:"item_box_w"`
	ItemLineH    float64 `toml:"item_line_h" json:"item_line_h"`

	// Effect text in the head box.
	EffectMaxChars int     `toml:"effect_max_chars" json:"effect_max_chars"`
	EffectMaxLines int     `toml:"effect_max_lines" json:"effect_max_lines"`
	EffectLineH    float64 `toml:"effect_line_h" json:"effect_line_h"`

	// Font sizes in canvas units.
	ItemFontSize  float64 `toml:"item_font_size" json:"item_font_size"`
	LabelFontSize float64 `toml:"label_font_size" json:"label_font_size"`
	HeadFontSize  float64 `toml:"head_font_size" json:"head_font_size"`
}

// Detailed returns the high-capacity profile: 6 categories of up to 4 items
// on a 1200x620 canvas. This matches the diagram embedded in analysis
// reports, where many small causes are expected.
func Detailed() Profile {
	return Profile{
		Name:                "detailed",
		MaxCategories:       6,
		MaxItemsPerCategory: 4,
		CanvasWidth:         1200,
		CanvasHeight:        620,
		SpineStartX:         120,
		SpineY:              310,
		Head:                Box{X: 905, Y: 240, W: 260, H: 140},
		EndDX:               170,
		Anchors: []Anchor{
			{X: 320, EndY: 110, IsTop: true},
			{X: 428, EndY: 510, IsTop: false},
			{X: 536, EndY: 110, IsTop: true},
			{X: 644, EndY: 510, IsTop: false},
			{X: 752, EndY: 110, IsTop: true},
			{X: 860, EndY: 510, IsTop: false},
		},
		RibFractions:   []float64{0.35, 0.55, 0.75, 0.9},
		RibLength:      46,
		RibTextGap:     12,
		LabelBoxW:      240,
		LabelBoxH:      34,
		LabelGap:       12,
		LabelMaxChars:  18,
		ItemMaxChars:   22,
		ItemMaxLines:   2,
		ItemBoxW:       150,
		ItemLineH:      14,
		EffectMaxChars: 18,
		EffectMaxLines: 4,
		EffectLineH:    18,
		ItemFontSize:   12,
		LabelFontSize:  14,
		HeadFontSize:   14,
	}
}

// Executive returns the low-capacity profile: 4 categories of up to 2 items
// on a larger canvas with larger fonts, for slide decks and printed
// summaries.
func Executive() Profile {
	return Profile{
		Name:                "executive",
		MaxCategories:       4,
		MaxItemsPerCategory: 2,
		CanvasWidth:         1400,
		CanvasHeight:        760,
		SpineStartX:         140,
		SpineY:              380,
		Head:                Box{X: 1060, Y: 290, W: 300, H: 180},
		EndDX:               190,
		Anchors: []Anchor{
			{X: 400, EndY: 140, IsTop: true},
			{X: 600, EndY: 620, IsTop: false},
			{X: 800, EndY: 140, IsTop: true},
			{X: 1000, EndY: 620, IsTop: false},
		},
		RibFractions:   []float64{0.45, 0.75},
		RibLength:      60,
		RibTextGap:     14,
		LabelBoxW:      280,
		LabelBoxH:      42,
		LabelGap:       14,
		LabelMaxChars:  20,
		ItemMaxChars:   24,
		ItemMaxLines:   2,
		ItemBoxW:       220,
		ItemLineH:      20,
		EffectMaxChars: 16,
		EffectMaxLines: 4,
		EffectLineH:    24,
		ItemFontSize:   16,
		LabelFontSize:  18,
		HeadFontSize:   18,
	}
}

// builtins maps profile names to constructors. Constructors rather than
// values so callers always get an independent copy.
var builtins = map[string]func() Profile{
	"detailed":  Detailed,
	"executive": Executive,
}

// ByName returns a built-in profile by name.
func ByName(name string) (Profile, error) {
	ctor, ok := builtins[name]
	if !ok {
		return Profile{}, errors.New(errors.ErrCodeInvalidProfile, "unknown profile: %q (must be one of: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns the sorted names of the built-in profiles.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the profile's internal invariants. A profile that fails
// validation must be rejected before any layout or render call; the engine
// itself assumes a valid profile and never re-checks.
func (p Profile) Validate() error {
	if p.MaxCategories < 1 {
		return errors.New(errors.ErrCodeInvalidProfile, "max_categories must be at least 1, got %d", p.MaxCategories)
	}
	if p.MaxCategories > len(p.Anchors) {
		return errors.New(errors.ErrCodeInvalidProfile, "max_categories (%d) exceeds registered anchors (%d)", p.MaxCategories, len(p.Anchors))
	}
	if p.MaxItemsPerCategory < 1 {
		return errors.New(errors.ErrCodeInvalidProfile, "max_items_per_category must be at least 1, got %d", p.MaxItemsPerCategory)
	}
	if p.CanvasWidth <= 0 || p.CanvasHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidProfile, "canvas must have positive size, got %gx%g", p.CanvasWidth, p.CanvasHeight)
	}
	if p.SpineY < 0 || p.SpineY > p.CanvasHeight {
		return errors.New(errors.ErrCodeInvalidProfile, "spine_y %g outside canvas height %g", p.SpineY, p.CanvasHeight)
	}
	if len(p.RibFractions) == 0 {
		return errors.New(errors.ErrCodeInvalidProfile, "rib_fractions must not be empty")
	}
	for i, f := range p.RibFractions {
		if f <= 0 || f >= 1 {
			return errors.New(errors.ErrCodeInvalidProfile, "rib_fractions[%d] = %g outside (0,1)", i, f)
		}
	}
	for i, a := range p.Anchors {
		if a.X < 0 || a.X > p.CanvasWidth || a.EndY < 0 || a.EndY > p.CanvasHeight {
			return errors.New(errors.ErrCodeInvalidProfile, "anchors[%d] (%g,%g) outside canvas", i, a.X, a.EndY)
		}
	}
	if p.LabelMaxChars < 1 || p.ItemMaxChars < 1 || p.EffectMaxChars < 1 {
		return errors.New(errors.ErrCodeInvalidProfile, "wrap limits must be at least 1 character")
	}
	if p.ItemMaxLines < 1 || p.EffectMaxLines < 1 {
		return errors.New(errors.ErrCodeInvalidProfile, "line limits must be at least 1")
	}
	return nil
}
