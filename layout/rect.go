package layout

import "fmt"

// Rect is an axis aligned rectangle in screen coordinates: X grows to the
// right, Y grows downward and (X,Y) is the top left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge of r.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge of r.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Area of r.
func (r Rect) Area() float64 { return r.Width * r.Height }

// Inset shrinks r by the given amounts. Width and height never drop
// below zero.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	r.X += left
	r.Y += top
	r.Width -= left + right
	r.Height -= top + bottom
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

// Intersects reports whether r and s share a region of positive area.
func (r Rect) Intersects(s Rect) bool {
	const eps = 1e-9
	return r.X < s.Right()-eps && s.X < r.Right()-eps &&
		r.Y < s.Bottom()-eps && s.Y < r.Bottom()-eps
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.2f,%.2f %.2fx%.2f]", r.X, r.Y, r.Width, r.Height)
}

// Margin is the space kept free on each side of a rectangle.
type Margin struct {
	Left, Right, Top, Bottom float64
}

// LegendPosition selects where a master pane reserves room for its legend.
type LegendPosition int

const (
	LegendNone LegendPosition = iota
	LegendTop
	LegendBottom
	LegendLeft
	LegendRight
)

// LegendArea is the room taken by a legend. Measuring the legend itself
// is left to the renderer, the layout only subtracts Size.
type LegendArea struct {
	Position LegendPosition
	Size     float64
}

// reserve removes the legend area from r.
func (l LegendArea) reserve(r Rect) Rect {
	switch l.Position {
	case LegendTop:
		return r.Inset(0, l.Size, 0, 0)
	case LegendBottom:
		return r.Inset(0, 0, 0, l.Size)
	case LegendLeft:
		return r.Inset(l.Size, 0, 0, 0)
	case LegendRight:
		return r.Inset(0, 0, l.Size, 0)
	}
	return r
}
