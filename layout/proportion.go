package layout

import (
	"fmt"
	"math"
	"strings"
)

// ----------------------------------------------------------------------------
// Proportion tree

// An Entry describes one row of a layout (or one column if the
// Proportions are column major).
//
// A Weight of zero turns the whole entry into a single splitter slot
// which spans the full width (height) and has a fixed thickness.
// Otherwise the entry holds cells side by side: Cells gives their
// relative widths, a zero cell weight is a splitter slot. If Cells is
// nil the entry holds Count cells of equal width (at least one).
type Entry struct {
	Weight float64
	Count  int
	Cells  []float64
}

// Proportions is the declarative description of a master pane layout.
// Entries are stacked from top to bottom, or from left to right if
// ColumnMajor is set.
type Proportions struct {
	ColumnMajor bool
	Entries     []Entry
}

// Grid returns the proportions of a regular rows x cols grid.
func Grid(rows, cols int) Proportions {
	return Counts(false, repeat(max(rows, 1), max(cols, 1)), nil)
}

// Counts builds proportions from a list of cell counts per entry and
// optional entry weights. A nil weights slice means equal weights.
// Missing weights default to 1.
func Counts(columnMajor bool, counts []int, weights []float64) Proportions {
	p := Proportions{ColumnMajor: columnMajor, Entries: make([]Entry, len(counts))}
	for i, n := range counts {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		p.Entries[i] = Entry{Weight: w, Count: max(n, 1)}
	}
	return p
}

func repeat(n, v int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = v
	}
	return r
}

func (e Entry) isSplitter() bool { return e.Weight == 0 }

// cellWeights returns the cross axis weights of e, expanding Count.
func (e Entry) cellWeights() []float64 {
	if e.Cells != nil {
		return e.Cells
	}
	w := make([]float64, max(e.Count, 1))
	for i := range w {
		w[i] = 1
	}
	return w
}

// cell is one slot position in a proportion tree.
type cell struct {
	entry    int
	index    int // index into the entry's cells, -1 for a splitter entry
	splitter bool
}

// cells enumerates the slot positions of p in slot order.
func (p Proportions) cells() []cell {
	var cs []cell
	for i, e := range p.Entries {
		if e.isSplitter() {
			cs = append(cs, cell{entry: i, index: -1, splitter: true})
			continue
		}
		for j, w := range e.cellWeights() {
			cs = append(cs, cell{entry: i, index: j, splitter: w == 0})
		}
	}
	return cs
}

// NumCells returns the number of content and splitter cells in p.
func (p Proportions) NumCells() (content, splitters int) {
	for _, c := range p.cells() {
		if c.splitter {
			splitters++
		} else {
			content++
		}
	}
	return content, splitters
}

func (p Proportions) String() string {
	parts := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		if e.Cells != nil {
			parts[i] = fmt.Sprintf("%g%v", e.Weight, e.Cells)
		} else {
			parts[i] = fmt.Sprintf("%gx%d", e.Weight, max(e.Count, 1))
		}
	}
	dir := "rows"
	if p.ColumnMajor {
		dir = "cols"
	}
	return dir + "{" + strings.Join(parts, " ") + "}"
}

// check reports structural problems of p independent of any slots.
func (p Proportions) check() error {
	for i, e := range p.Entries {
		if !validWeight(e.Weight) {
			return newError(ErrCodeInvalidProportion, "entry %d has weight %g", i, e.Weight)
		}
		if e.isSplitter() {
			if len(e.Cells) > 0 || e.Count > 1 {
				return newError(ErrCodeInvalidProportion, "splitter entry %d must not hold cells", i)
			}
			continue
		}
		if e.Cells == nil {
			continue
		}
		sum := 0.0
		for j, w := range e.Cells {
			if !validWeight(w) {
				return newError(ErrCodeInvalidProportion, "cell %d of entry %d has weight %g", j, i, w)
			}
			sum += w
		}
		if sum == 0 {
			return newError(ErrCodeInvalidProportion, "entry %d holds no content cell", i)
		}
	}
	return nil
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

// Normalize returns a copy of p where the entry weights sum to 1 and the
// cell weights of every entry sum to 1. Count based entries are expanded
// into explicit Cells. Splitter weights stay zero.
func Normalize(p Proportions) Proportions {
	n := Proportions{ColumnMajor: p.ColumnMajor, Entries: make([]Entry, len(p.Entries))}
	total := 0.0
	for _, e := range p.Entries {
		total += e.Weight
	}
	for i, e := range p.Entries {
		if e.isSplitter() {
			continue
		}
		n.Entries[i].Weight = e.Weight / total
		cw := e.cellWeights()
		sum := 0.0
		for _, w := range cw {
			sum += w
		}
		n.Entries[i].Cells = make([]float64, len(cw))
		for j, w := range cw {
			n.Entries[i].Cells[j] = w / sum
		}
	}
	return n
}

// Validate checks p against the slots it is going to lay out: The
// content cells must match the content slots and the splitter cells must
// match the splitter slots, position by position.
func Validate(p Proportions, slots []Slot) error {
	if err := p.check(); err != nil {
		return err
	}
	content, splitters := p.NumCells()
	nc, ns := countSlots(slots)
	if content != nc {
		return newError(ErrCodePaneCount,
			"proportions hold %d content cells but there are %d panes", content, nc)
	}
	if splitters != ns {
		return newError(ErrCodeSplitterCount,
			"proportions hold %d splitter cells but there are %d splitters", splitters, ns)
	}
	for k, c := range p.cells() {
		if c.splitter != slots[k].IsSplitter() {
			want := "pane"
			if c.splitter {
				want = "splitter"
			}
			return newError(ErrCodeSlotKind, "slot %d must be a %s", k, want)
		}
	}
	return nil
}

func countSlots(slots []Slot) (content, splitters int) {
	for _, s := range slots {
		if s.IsSplitter() {
			splitters++
		} else {
			content++
		}
	}
	return content, splitters
}

// ----------------------------------------------------------------------------
// Canned layouts

// Canned selects one of the predefined layouts used when no explicit
// proportions are set.
type Canned int

const (
	// SquareColPreferred is a square-ish grid which prefers an extra
	// column over an extra row.
	SquareColPreferred Canned = iota
	// SquareRowPreferred is a square-ish grid which prefers an extra row.
	SquareRowPreferred
	// ForceSquare uses as many rows as columns even if cells stay empty.
	ForceSquare
	SingleRow
	SingleColumn
	// ExplicitColXY has two rows with X panes in the first and Y panes
	// in the second row.
	ExplicitCol12
	ExplicitCol21
	ExplicitCol23
	ExplicitCol32
	// ExplicitRowXY has two columns with X panes in the first and Y
	// panes in the second column.
	ExplicitRow12
	ExplicitRow21
	ExplicitRow23
	ExplicitRow32
	numCanned
)

var cannedNames = [numCanned]string{
	"square-col", "square-row", "force-square", "single-row", "single-column",
	"explicit-col-12", "explicit-col-21", "explicit-col-23", "explicit-col-32",
	"explicit-row-12", "explicit-row-21", "explicit-row-23", "explicit-row-32",
}

// String returns the name of c as accepted by ParseCanned.
func (c Canned) String() string {
	if c < 0 || c >= numCanned {
		return fmt.Sprintf("Canned(%d)", int(c))
	}
	return cannedNames[c]
}

// ParseCanned is the inverse of Canned.String.
func ParseCanned(s string) (Canned, error) {
	for i, n := range cannedNames {
		if n == s {
			return Canned(i), nil
		}
	}
	return 0, fmt.Errorf("unknown layout %q", s)
}

var explicitCounts = map[Canned][]int{
	ExplicitCol12: {1, 2}, ExplicitCol21: {2, 1},
	ExplicitCol23: {2, 3}, ExplicitCol32: {3, 2},
	ExplicitRow12: {1, 2}, ExplicitRow21: {2, 1},
	ExplicitRow23: {2, 3}, ExplicitRow32: {3, 2},
}

// Derive computes the proportions of the canned layout c for paneCount
// content panes.
func Derive(c Canned, paneCount int) Proportions {
	if counts, ok := explicitCounts[c]; ok {
		return Counts(c >= ExplicitRow12, counts, nil)
	}
	if paneCount <= 0 {
		return Proportions{}
	}

	root := int(math.Ceil(math.Sqrt(float64(paneCount))))
	rows, cols := root, root
	switch c {
	case ForceSquare:
	case SingleRow:
		rows, cols = 1, paneCount
	case SingleColumn:
		rows, cols = paneCount, 1
	case SquareRowPreferred:
		if paneCount <= root*(root-1) {
			cols--
		}
	default:
		if paneCount <= root*(root-1) {
			rows--
		}
	}
	return Grid(rows, cols)
}
