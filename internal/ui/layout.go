package ui

// ArrangementKind selects how a container places its panes.
type ArrangementKind int

const (
	// KindHorizontal places panes side by side, separated by vertical dividers.
	KindHorizontal ArrangementKind = iota
	// KindVertical stacks panes top to bottom, separated by horizontal dividers.
	KindVertical
	// KindGrid fills a rows x cols grid left-to-right, top-to-bottom.
	KindGrid
	// KindCustom delegates placement to a function.
	KindCustom
)

func (k ArrangementKind) String() string {
	switch k {
	case KindHorizontal:
		return "horizontal"
	case KindVertical:
		return "vertical"
	case KindGrid:
		return "grid"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Arrangement is a container's layout descriptor.
type Arrangement struct {
	Kind ArrangementKind

	// Percents are the initial pane sizes for horizontal/vertical
	// arrangements. Missing entries are split evenly.
	Percents []int

	Rows, Cols int

	Custom func(area Rect) []Rect
}

// Horizontal arranges panes side by side with the given size percentages.
func Horizontal(percents ...int) Arrangement {
	return Arrangement{Kind: KindHorizontal, Percents: percents}
}

// Vertical stacks panes with the given size percentages.
func Vertical(percents ...int) Arrangement {
	return Arrangement{Kind: KindVertical, Percents: percents}
}

// Grid arranges panes in a fixed grid. Panes beyond rows*cols get no area.
func Grid(rows, cols int) Arrangement {
	return Arrangement{Kind: KindGrid, Rows: rows, Cols: cols}
}

// CustomArrangement places panes with fn; extra rectangles are ignored.
func CustomArrangement(fn func(area Rect) []Rect) Arrangement {
	return Arrangement{Kind: KindCustom, Custom: fn}
}

// Resizable reports whether the arrangement owns dividers.
func (a Arrangement) Resizable() bool {
	return a.Kind == KindHorizontal || a.Kind == KindVertical
}

// orientation is the divider orientation of a resizable arrangement.
func (a Arrangement) orientation() Orientation {
	if a.Kind == KindVertical {
		return DividerHorizontal
	}
	return DividerVertical
}

// boundaries returns the n-1 cumulative divider percentages for n panes.
func (a Arrangement) boundaries(n int) []int {
	if n < 2 {
		return nil
	}
	out := make([]int, 0, n-1)
	sum := 0
	for i := 0; i < n-1; i++ {
		if i < len(a.Percents) {
			sum += a.Percents[i]
			out = append(out, sum)
			continue
		}
		out = append(out, (i+1)*100/n)
	}
	return out
}

// Areas computes pane rectangles for the non-resizable kinds.
func (a Arrangement) Areas(area Rect, n int) []Rect {
	switch a.Kind {
	case KindGrid:
		return gridAreas(area, a.Rows, a.Cols, n)
	case KindCustom:
		if a.Custom == nil {
			return nil
		}
		areas := a.Custom(area)
		if len(areas) > n {
			areas = areas[:n]
		}
		return areas
	}
	if n == 1 {
		return []Rect{area}
	}
	return nil
}

func gridAreas(area Rect, rows, cols, n int) []Rect {
	rows, cols = max(rows, 1), max(cols, 1)
	cellW, cellH := area.W/cols, area.H/rows
	var out []Rect
	for i := 0; i < n; i++ {
		row, col := i/cols, i%cols
		if row >= rows {
			break
		}
		r := Rect{X: area.X + col*cellW, Y: area.Y + row*cellH, W: cellW, H: cellH}
		// The last column and row absorb the remainder.
		if col == cols-1 {
			r.W = area.W - col*cellW
		}
		if row == rows-1 {
			r.H = area.H - row*cellH
		}
		out = append(out, r)
	}
	return out
}
