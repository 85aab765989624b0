// Package diagram defines the input model for cause-and-effect diagrams.
//
// A diagram input is an effect statement plus an ordered list of cause
// categories, each holding an ordered list of short cause items. The order
// is meaningful: it drives the left-to-right placement of bones along the
// spine and the placement of ribs along each bone.
//
// Inputs typically arrive as JSON produced by a text-generation service.
// That producer is asked for at most 6 categories and 5 items each, but the
// limits are not guaranteed, so consumers must enforce their own capacity
// (see the layout package).
package diagram

// Category groups related causes under a single labeled bone.
type Category struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

// Input is the effect/categories pair the rendering engine consumes.
type Input struct {
	Effect     string     `json:"effect"`
	Categories []Category `json:"categories"`
}

// Row is one entry of the flattened category/item table.
type Row struct {
	Category string
	Item     string
}

// Table flattens the input into ordered category/item rows. Categories
// without items contribute a single row with an empty Item. This is the
// accessible text fallback for non-visual consumers.
func (in Input) Table() []Row {
	var rows []Row
	for _, c := range in.Categories {
		if len(c.Items) == 0 {
			rows = append(rows, Row{Category: c.Label})
			continue
		}
		for _, item := range c.Items {
			rows = append(rows, Row{Category: c.Label, Item: item})
		}
	}
	return rows
}
