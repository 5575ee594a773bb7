// Package layout partitions the area of a master pane into the rectangles
// of its sub-panes.
//
// The partitioning is described by a proportion tree: a list of rows
// (or columns), each with a relative weight and optional relative weights
// of its cells. Zero weights denote splitters, thin bars of constant
// thickness between panes which can be dragged to change the proportions
// of their neighbours.
//
// Without explicit proportions one of the canned layouts is used; it is
// derived from the number of content panes.
package layout

import (
	"github.com/vdobler/panechart/internal/logging"
)

// A Slot is anything the master pane can lay out.
type Slot interface {
	// IsSplitter reports whether the slot is a fixed size splitter.
	IsSplitter() bool

	// SetRect assigns the computed rectangle.
	SetRect(Rect)
}

// Splitter is a plain splitter slot.
type Splitter struct {
	Rect Rect
}

func (s *Splitter) IsSplitter() bool { return true }
func (s *Splitter) SetRect(r Rect)   { s.Rect = r }

// ----------------------------------------------------------------------------
// MasterPane

// MasterPane owns an ordered list of slots and assigns each of them a
// rectangle inside Rect.
type MasterPane struct {
	Rect Rect

	// Margin is kept free around the content area.
	Margin Margin

	// TitleHeight is reserved at the top of the content area.
	TitleHeight float64

	// Legend is reserved inside the margins.
	Legend LegendArea

	// InnerGap separates adjacent content panes.
	InnerGap float64

	// SplitterSize is the thickness of splitter slots.
	SplitterSize float64

	slots  []Slot
	canned Canned
	prop   *Proportions // explicit layout, nil means canned
}

// NewMasterPane returns an empty master pane covering r with the default
// margins and gaps.
func NewMasterPane(r Rect) *MasterPane {
	return &MasterPane{
		Rect:         r,
		Margin:       Margin{Left: 10, Right: 10, Top: 10, Bottom: 10},
		InnerGap:     10,
		SplitterSize: 6,
		canned:       SquareColPreferred,
	}
}

// Add appends s. An explicit layout set by SetLayout is dropped.
func (m *MasterPane) Add(s ...Slot) {
	m.slots = append(m.slots, s...)
	m.prop = nil
}

// Remove deletes s and reports whether it was found. An explicit layout
// set by SetLayout is dropped.
func (m *MasterPane) Remove(s Slot) bool {
	for i, t := range m.slots {
		if t == s {
			m.slots = append(m.slots[:i], m.slots[i+1:]...)
			m.prop = nil
			return true
		}
	}
	return false
}

// Slots returns the slots in layout order.
func (m *MasterPane) Slots() []Slot { return m.slots }

// Proportions returns the proportions used by the next layout pass.
func (m *MasterPane) Proportions() Proportions {
	if m.prop != nil {
		return *m.prop
	}
	content, _ := countSlots(m.slots)
	return Derive(m.canned, content)
}

// SetCanned switches to the canned layout c and lays out the slots.
func (m *MasterPane) SetCanned(c Canned) {
	m.canned = c
	m.prop = nil
	m.layoutCanned()
}

// SetGrid lays out the content panes in a rows x cols grid.
func (m *MasterPane) SetGrid(rows, cols int) error {
	return m.SetLayout(Grid(rows, cols))
}

// SetCounts lays out the panes in entries of counts[i] cells each with
// the given relative entry weights (nil for equal weights).
func (m *MasterPane) SetCounts(columnMajor bool, counts []int, weights []float64) error {
	return m.SetLayout(Counts(columnMajor, counts, weights))
}

// SetLayout validates p against the slots, stores it and lays out the
// slots. An invalid p leaves m unchanged and returns an *Error.
func (m *MasterPane) SetLayout(p Proportions) error {
	if err := Validate(p, m.slots); err != nil {
		return err
	}
	p = clone(p)
	m.prop = &p
	return m.DoLayout()
}

// Resize changes the outer rectangle and lays out the slots.
func (m *MasterPane) Resize(r Rect) error {
	m.Rect = r
	return m.DoLayout()
}

// ContentRect is the rectangle shared by all slots: Rect minus margins,
// title and legend.
func (m *MasterPane) ContentRect() Rect {
	r := m.Rect.Inset(m.Margin.Left, m.Margin.Top, m.Margin.Right, m.Margin.Bottom)
	r = r.Inset(0, m.TitleHeight, 0, 0)
	return m.Legend.reserve(r)
}

// DoLayout assigns a rectangle to every slot.
func (m *MasterPane) DoLayout() error {
	if m.prop == nil {
		m.layoutCanned()
		return nil
	}
	if err := Validate(*m.prop, m.slots); err != nil {
		return err
	}
	rects := Compute(*m.prop, m.ContentRect(), m.InnerGap, m.SplitterSize)
	for i, s := range m.slots {
		s.SetRect(rects[i])
	}
	logging.L().Debug("layout", "proportions", m.prop.String(), "slots", len(m.slots))
	return nil
}

// layoutCanned lays out the content slots only. Splitters take space in
// explicit layouts only and get an empty rectangle here; content slots
// beyond the cells of the layout keep their rectangle.
func (m *MasterPane) layoutCanned() {
	p := m.Proportions()
	rects := Compute(p, m.ContentRect(), m.InnerGap, m.SplitterSize)
	k := 0
	for _, s := range m.slots {
		if s.IsSplitter() {
			s.SetRect(Rect{})
			continue
		}
		if k >= len(rects) {
			break
		}
		s.SetRect(rects[k])
		k++
	}
	logging.L().Debug("layout", "canned", m.canned.String(), "proportions", p.String(), "slots", len(m.slots))
}

// SetProportion moves splitter so that it divides the combined weight of
// its two neighbouring panes into fraction and 1-fraction, then lays out
// the slots again. Invalid input is silently ignored: fraction outside
// (0,1), a slot which is no splitter of the current explicit layout, or a
// splitter without content neighbours on both sides.
func (m *MasterPane) SetProportion(splitter Slot, fraction float64) {
	if m.prop == nil || !(fraction > 0 && fraction < 1) {
		return
	}
	k := -1
	for i, s := range m.slots {
		if s == splitter {
			k = i
			break
		}
	}
	cells := m.prop.cells()
	if k < 0 || k >= len(cells) || !cells[k].splitter {
		return
	}

	c := cells[k]
	var a, b *float64
	if c.index < 0 {
		if c.entry == 0 || c.entry == len(m.prop.Entries)-1 {
			return
		}
		a, b = &m.prop.Entries[c.entry-1].Weight, &m.prop.Entries[c.entry+1].Weight
	} else {
		ws := m.prop.Entries[c.entry].Cells
		if c.index == 0 || c.index == len(ws)-1 {
			return
		}
		a, b = &ws[c.index-1], &ws[c.index+1]
	}
	if *a == 0 || *b == 0 {
		return
	}
	total := *a + *b
	*a, *b = fraction*total, (1-fraction)*total

	if err := m.DoLayout(); err != nil {
		logging.L().Warn("layout after splitter move failed", "err", err)
	}
}

func clone(p Proportions) Proportions {
	c := Proportions{ColumnMajor: p.ColumnMajor, Entries: make([]Entry, len(p.Entries))}
	for i, e := range p.Entries {
		c.Entries[i] = e
		if e.Cells != nil {
			c.Entries[i].Cells = append([]float64(nil), e.Cells...)
		}
	}
	return c
}

// ----------------------------------------------------------------------------
// Geometry

// Compute returns the rectangles of all cells of p, in slot order, when
// laid out in content with the given gap between adjacent content cells
// and the given splitter thickness. p must pass Validate's structural
// checks.
func Compute(p Proportions, content Rect, gap, splitterSize float64) []Rect {
	n := Normalize(p)
	primary := make([]float64, len(n.Entries))
	for i, e := range n.Entries {
		primary[i] = e.Weight
	}

	start, extent := content.Y, content.Height
	crossStart, crossExtent := content.X, content.Width
	if n.ColumnMajor {
		start, extent = content.X, content.Width
		crossStart, crossExtent = content.Y, content.Height
	}

	offsets, sizes := split(start, extent, primary, gap, splitterSize)
	var rects []Rect
	for i, e := range n.Entries {
		if e.Weight == 0 {
			rects = append(rects, place(n.ColumnMajor, offsets[i], sizes[i], crossStart, crossExtent))
			continue
		}
		co, cs := split(crossStart, crossExtent, e.Cells, gap, splitterSize)
		for j := range e.Cells {
			rects = append(rects, place(n.ColumnMajor, offsets[i], sizes[i], co[j], cs[j]))
		}
	}
	return rects
}

// place builds the rectangle of a cell from its primary and cross
// axis intervals.
func place(columnMajor bool, off, size, crossOff, crossSize float64) Rect {
	if columnMajor {
		return Rect{X: off, Y: crossOff, Width: size, Height: crossSize}
	}
	return Rect{X: crossOff, Y: off, Width: crossSize, Height: size}
}

// split divides [start, start+extent] along one axis. Zero weights get
// splitterSize, the others share what is left after the splitters and
// the gaps between adjacent non-splitter cells in proportion to their
// (normalized) weights.
func split(start, extent float64, weights []float64, gap, splitterSize float64) (offsets, sizes []float64) {
	splitters, gaps := 0, 0
	for i, w := range weights {
		if w == 0 {
			splitters++
		} else if i > 0 && weights[i-1] != 0 {
			gaps++
		}
	}
	avail := extent - float64(splitters)*splitterSize - float64(gaps)*gap
	if avail < 0 {
		avail = 0
	}

	offsets = make([]float64, len(weights))
	sizes = make([]float64, len(weights))
	pos := start
	for i, w := range weights {
		if i > 0 && w != 0 && weights[i-1] != 0 {
			pos += gap
		}
		offsets[i] = pos
		if w == 0 {
			sizes[i] = splitterSize
		} else {
			sizes[i] = w * avail
		}
		pos += sizes[i]
	}
	return offsets, sizes
}
