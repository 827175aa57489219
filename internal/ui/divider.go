package ui

// Orientation is the direction a divider runs.
type Orientation int

const (
	// DividerVertical is a column separating side-by-side panes.
	DividerVertical Orientation = iota
	// DividerHorizontal is a row separating stacked panes.
	DividerHorizontal
)

func (o Orientation) String() string {
	switch o {
	case DividerVertical:
		return "vertical"
	case DividerHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Default clamp range for divider percentages.
const (
	DefaultMinPercent = 10
	DefaultMaxPercent = 90
)

// hitSlop is how many cells either side of a divider still count as a hit.
const hitSlop = 1

// Divider is a draggable boundary inside a container. Percent is measured
// from the container's leading edge, so the dividers of one container hold
// cumulative boundaries. Pos is recomputed on every layout pass.
type Divider struct {
	Percent     int
	MinPercent  int
	MaxPercent  int
	Orientation Orientation
	Pos         int

	dragging bool
	hovering bool
}

// NewDivider returns a divider at percent, clamped to the default range.
func NewDivider(percent int, o Orientation) *Divider {
	d := &Divider{
		MinPercent:  DefaultMinPercent,
		MaxPercent:  DefaultMaxPercent,
		Orientation: o,
	}
	d.Percent = d.clamp(percent)
	return d
}

// SetBounds changes the clamp range. Both ends are clamped to [0,100] and
// swapped if given in the wrong order; Percent is re-clamped.
func (d *Divider) SetBounds(minPercent, maxPercent int) {
	minPercent = clampInt(minPercent, 0, 100)
	maxPercent = clampInt(maxPercent, 0, 100)
	if minPercent > maxPercent {
		minPercent, maxPercent = maxPercent, minPercent
	}
	d.MinPercent, d.MaxPercent = minPercent, maxPercent
	d.Percent = d.clamp(d.Percent)
}

func (d *Divider) clamp(p int) int {
	return clampInt(p, d.MinPercent, d.MaxPercent)
}

// UpdatePosition recomputes the absolute coordinate of the boundary.
func (d *Divider) UpdatePosition(area Rect) {
	if d.Orientation == DividerVertical {
		d.Pos = area.X + area.W*d.Percent/100
		return
	}
	d.Pos = area.Y + area.H*d.Percent/100
}

// HitTest reports whether (x, y) is within one cell of the divider. The
// pointer must also be inside the container along the divider's length.
func (d *Divider) HitTest(x, y int, area Rect) bool {
	if d.Orientation == DividerVertical {
		if y < area.Y || y >= area.Bottom() {
			return false
		}
		end := min(d.Pos+hitSlop, area.Right()-1)
		return x >= d.Pos-hitSlop && x <= end
	}
	if x < area.X || x >= area.Right() {
		return false
	}
	end := min(d.Pos+hitSlop, area.Bottom()-1)
	return y >= d.Pos-hitSlop && y <= end
}

// StartDrag arms the divider.
func (d *Divider) StartDrag() { d.dragging = true }

// StopDrag disarms the divider.
func (d *Divider) StopDrag() { d.dragging = false }

// Dragging reports whether the divider is armed.
func (d *Divider) Dragging() bool { return d.dragging }

// Hovering reports whether the pointer was last seen over the divider.
func (d *Divider) Hovering() bool { return d.hovering }

// SetHovering sets the hover flag.
func (d *Divider) SetHovering(v bool) { d.hovering = v }

// DragTo moves an armed divider to the pointer. The new percent is the
// rounded pointer offset relative to the container extent, clamped to the
// divider's range. Unarmed dividers and empty containers are left alone.
func (d *Divider) DragTo(x, y int, area Rect) {
	if !d.dragging {
		return
	}
	offset, extent := x-area.X, area.W
	if d.Orientation == DividerHorizontal {
		offset, extent = y-area.Y, area.H
	}
	if extent <= 0 {
		return
	}
	offset = max(offset, 0)
	d.Percent = d.clamp((200*offset + extent) / (2 * extent))
}

// Nudge shifts the divider by delta percent, clamped.
func (d *Divider) Nudge(delta int) {
	d.Percent = d.clamp(d.Percent + delta)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
