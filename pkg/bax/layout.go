package bax

import "strconv"

// Page geometry in PDF points (72 points = 1 inch), US Letter.
const (
	PageWidth  = 612.0
	PageHeight = 792.0

	boxWidth  = 252.0 // 3.5in
	boxHeight = 108.0 // 1.5in
	margin    = 36.0  // 0.5in on all sides
	boxGap    = 10.0  // vertical gap between stacked boxes
)

// Rect is a PDF-coordinate bounding box: origin bottom-left, Y increasing
// upward.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

func (r Rect) array() []float64 {
	return []float64{r.X1, r.Y1, r.X2, r.Y2}
}

// Placement locates one annotation box on a zero-based page.
type Placement struct {
	Page int
	Rect Rect
}

// layoutBoxes assigns a rectangle to each of n annotation boxes, stacking
// top-to-bottom in a column, overflowing into a second column when vertical
// space runs out, and continuing on a fresh page when the second column
// fills. Paginating keeps every rectangle inside the page bounds instead of
// letting boxes sink below the bottom margin once two columns are full.
func layoutBoxes(n int) []Placement {
	placements := make([]Placement, 0, n)

	page := 0
	column := 0
	left := margin
	top := PageHeight - margin

	for i := 0; i < n; i++ {
		bottom := top - boxHeight
		if bottom < margin {
			if column == 0 {
				column = 1
				left = margin + boxWidth + margin
			} else {
				page++
				column = 0
				left = margin
			}
			top = PageHeight - margin
			bottom = top - boxHeight
		}

		placements = append(placements, Placement{
			Page: page,
			Rect: Rect{X1: left, Y1: bottom, X2: left + boxWidth, Y2: top},
		})
		top = bottom - boxGap
	}

	return placements
}

// formatPoints renders a coordinate with no exponent and no trailing zeros.
func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
