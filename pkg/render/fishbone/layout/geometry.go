package layout

// Point is a position in canvas coordinates. The origin is the top-left
// corner with Y increasing downward, matching SVG.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Line is a straight segment between two points.
type Line struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Box is an axis-aligned rectangle.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// TextBlock is a box with the wrapped text lines drawn inside it.
type TextBlock struct {
	Box   Box      `json:"box"`
	Lines []string `json:"lines,omitempty"`
}

// Rib is a single cause: a short line perpendicular to its bone plus the
// item's text block at the far end.
type Rib struct {
	Line Line      `json:"line"`
	Text TextBlock `json:"text"`
}

// Bone is one category: a diagonal line off the spine, its label box, and
// its ribs in item order.
type Bone struct {
	Line  Line      `json:"line"`
	IsTop bool      `json:"is_top"`
	Label TextBlock `json:"label"`
	Ribs  []Rib     `json:"ribs,omitempty"`
}

// Geometry is every primitive needed to draw a fishbone diagram. It is a
// pure value: computing it has no side effects and identical inputs yield
// identical geometry.
type Geometry struct {
	Canvas     Box       `json:"canvas"`
	SpineStart Point     `json:"spine_start"`
	Spine      Line      `json:"spine"`
	Head       TextBlock `json:"head"`
	Bones      []Bone    `json:"bones,omitempty"`
}
