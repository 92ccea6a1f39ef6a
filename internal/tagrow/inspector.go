package tagrow

import "github.com/mattn/go-runewidth"

// Inspector reports where each tag lands along the inline axis once the
// renderer has flowed the row. Offsets are inline-start coordinates in
// whatever unit the renderer uses; only their relative ordering matters to
// the engine.
type Inspector interface {
	Offsets(tags []string, width float64) []float64
	RTL() bool
}

// CellInspector flows tags the way the terminal renderer does: each tag
// occupies its display cell width plus chip padding, tags are separated by
// Gap cells, and a tag that would cross the container edge wraps to the
// next row. Display widths come from runewidth, so wide runes and emoji
// measure correctly.
type CellInspector struct {
	Gap         int // cells between adjacent tags
	Pad         int // cells of padding on each side of a tag
	RightToLeft bool
}

func (c CellInspector) RTL() bool { return c.RightToLeft }

// Offsets returns the inline-start cell offset of every tag after flowing
// them into a container width cells wide. A tag wider than the container
// still gets a row of its own rather than being dropped.
func (c CellInspector) Offsets(tags []string, width float64) []float64 {
	offsets := make([]float64, len(tags))
	x := 0.0
	for i, tag := range tags {
		w := float64(runewidth.StringWidth(tag) + 2*c.Pad)
		if x > 0 && x+w > width {
			x = 0
		}
		offsets[i] = x
		if c.RightToLeft {
			offsets[i] = width - x - w
		}
		x += w + float64(c.Gap)
	}
	return offsets
}
