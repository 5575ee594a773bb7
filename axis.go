package panechart

import "fmt"

// ----------------------------------------------------------------------------
// Axis

// An Axis binds a Scale to one side of a pane and collects the data range
// the scale is picked from.
type Axis struct {
	// Title is drawn next to the tick labels.
	Title string

	// IsVisible controls drawing of the axis line, ticks and labels.
	IsVisible bool

	// ShowGrid and ShowMinorGrid draw grid lines at the major and
	// minor ticks across the chart.
	ShowGrid      bool
	ShowMinorGrid bool

	Scale *Scale

	data Interval
}

// NewAxis returns a visible axis with a fresh scale of the given kind.
func NewAxis(o Orientation, kind Kind) *Axis {
	return &Axis{
		IsVisible: true,
		Scale:     NewScale(kind, o),
		data:      UnsetInterval(),
	}
}

// ResetData forgets the collected data range.
func (a *Axis) ResetData() { a.data = UnsetInterval() }

// UpdateData grows the collected data range to include min and max.
// Missing, NaN and infinite values are ignored.
func (a *Axis) UpdateData(min, max float64) { a.data.Update(min, max) }

// DataRange returns the collected data range. Unset edges are NaN.
func (a *Axis) DataRange() Interval { return a.data }

// PickScale feeds the collected data range into the scale. Unset edges
// count as zero.
func (a *Axis) PickScale() {
	a.Scale.PickScale(a.data.Min, a.data.Max)
}

// FullTitle returns the title with the magnitude of the labels appended.
func (a *Axis) FullTitle() string {
	mag := a.Scale.Magnitude()
	if mag == 0 {
		return a.Title
	}
	if a.Title == "" {
		return fmt.Sprintf("(10^%d)", mag)
	}
	return fmt.Sprintf("%s (10^%d)", a.Title, mag)
}
