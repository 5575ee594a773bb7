package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pane struct {
	rect Rect
	set  bool
}

func (p *pane) IsSplitter() bool { return false }
func (p *pane) SetRect(r Rect)   { p.rect, p.set = r, true }

func newPanes(n int) []*pane {
	ps := make([]*pane, n)
	for i := range ps {
		ps[i] = &pane{}
	}
	return ps
}

func bare(r Rect) *MasterPane {
	m := NewMasterPane(r)
	m.Margin = Margin{}
	return m
}

const eps = 1e-9

func TestDeriveCanned(t *testing.T) {
	tests := []struct {
		name       string
		canned     Canned
		panes      int
		wantCounts []int
		colMajor   bool
	}{
		{"square col 4", SquareColPreferred, 4, []int{2, 2}, false},
		{"square col 2", SquareColPreferred, 2, []int{2}, false},
		{"square col 3", SquareColPreferred, 3, []int{2, 2}, false},
		{"square col 5", SquareColPreferred, 5, []int{3, 3}, false},
		{"square row 2", SquareRowPreferred, 2, []int{1, 1}, false},
		{"square row 7", SquareRowPreferred, 7, []int{3, 3, 3}, false},
		{"force square 5", ForceSquare, 5, []int{3, 3, 3}, false},
		{"single row", SingleRow, 3, []int{3}, false},
		{"single column", SingleColumn, 3, []int{1, 1, 1}, false},
		{"explicit col 23", ExplicitCol23, 5, []int{2, 3}, false},
		{"explicit row 12", ExplicitRow12, 3, []int{1, 2}, true},
		{"one pane", SquareColPreferred, 1, []int{1}, false},
		{"no panes", SquareColPreferred, 0, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Derive(tt.canned, tt.panes)
			var counts []int
			for _, e := range p.Entries {
				counts = append(counts, len(e.cellWeights()))
			}
			assert.Equal(t, tt.wantCounts, counts)
			assert.Equal(t, tt.colMajor, p.ColumnMajor)
		})
	}
}

func TestSquareColPreferredQuarters(t *testing.T) {
	assert := assert.New(t)

	m := bare(Rect{0, 0, 410, 310})
	ps := newPanes(4)
	for _, p := range ps {
		m.Add(p)
	}
	m.SetCanned(SquareColPreferred)

	w, h := (410-10)/2.0, (310-10)/2.0
	want := []Rect{{0, 0, w, h}, {w + 10, 0, w, h}, {0, h + 10, w, h}, {w + 10, h + 10, w, h}}
	for i, p := range ps {
		assert.InDelta(want[i].X, p.rect.X, eps, "pane %d", i)
		assert.InDelta(want[i].Y, p.rect.Y, eps, "pane %d", i)
		assert.InDelta(want[i].Width, p.rect.Width, eps, "pane %d", i)
		assert.InDelta(want[i].Height, p.rect.Height, eps, "pane %d", i)
	}
}

func TestSplitterInSingleRow(t *testing.T) {
	assert := assert.New(t)

	m := bare(Rect{0, 0, 306, 100})
	left, right := &pane{}, &pane{}
	split := &Splitter{}
	m.Add(left, split, right)

	err := m.SetLayout(Proportions{Entries: []Entry{{Weight: 1, Cells: []float64{2, 0, 1}}}})
	assert.NoError(err)

	assert.InDelta(200, left.rect.Width, eps)
	assert.InDelta(200, split.Rect.X, eps)
	assert.InDelta(6, split.Rect.Width, eps)
	assert.InDelta(206, right.rect.X, eps)
	assert.InDelta(100, right.rect.Width, eps)
	assert.InDelta(100, split.Rect.Height, eps)
}

func TestSplitterInCannedLayout(t *testing.T) {
	assert := assert.New(t)

	m := bare(Rect{0, 0, 306, 100})
	left, right := &pane{}, &pane{}
	split := &Splitter{}
	m.Add(left, split, right)
	assert.NoError(m.SetLayout(Proportions{Entries: []Entry{{Weight: 1, Cells: []float64{2, 0, 1}}}}))
	assert.True(split.Rect.Area() > 0)

	m.SetCanned(SingleRow)
	assert.NoError(m.DoLayout())
	assert.Equal(Rect{}, split.Rect)
	assert.InDelta(0, left.rect.X, eps)
	assert.False(left.rect.Intersects(right.rect))
}

func TestSetLayoutErrors(t *testing.T) {
	tests := []struct {
		name  string
		slots []bool // true is a splitter
		prop  Proportions
		code  Code
	}{
		{"too few cells", []bool{false, false, false},
			Grid(1, 2), ErrCodePaneCount},
		{"missing splitter", []bool{false, true, false},
			Grid(1, 2), ErrCodeSplitterCount},
		{"extra splitter", []bool{false, false},
			Proportions{Entries: []Entry{{Weight: 1, Cells: []float64{1, 0, 1}}}}, ErrCodeSplitterCount},
		{"wrong order", []bool{true, false, false},
			Proportions{Entries: []Entry{{Weight: 1, Cells: []float64{1, 0, 1}}}}, ErrCodeSlotKind},
		{"negative weight", []bool{false},
			Proportions{Entries: []Entry{{Weight: -1}}}, ErrCodeInvalidProportion},
		{"splitter with cells", []bool{true},
			Proportions{Entries: []Entry{{Weight: 0, Cells: []float64{1}}}}, ErrCodeInvalidProportion},
		{"only splitter cells", []bool{true},
			Proportions{Entries: []Entry{{Weight: 1, Cells: []float64{0}}}}, ErrCodeInvalidProportion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := bare(Rect{0, 0, 100, 100})
			for _, s := range tt.slots {
				if s {
					m.Add(&Splitter{})
				} else {
					m.Add(&pane{})
				}
			}
			err := m.SetLayout(tt.prop)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLayout))
			assert.Equal(t, tt.code, CodeOf(err))
			assert.Nil(t, m.prop, "failed SetLayout must not store proportions")
		})
	}
}

// A valid layout tiles the content rectangle: The areas of all slots plus
// the gaps add up to the content area and no two slots overlap.
func TestTiling(t *testing.T) {
	m := bare(Rect{5, 7, 500, 400})
	m.InnerGap = 4
	m.SplitterSize = 3

	// rows: [a | s | b], horizontal splitter, [c d e]
	a, b, c, d, e := &pane{}, &pane{}, &pane{}, &pane{}, &pane{}
	s1, s2 := &Splitter{}, &Splitter{}
	m.Add(a, s1, b, s2, c, d, e)
	prop := Proportions{Entries: []Entry{
		{Weight: 3, Cells: []float64{1, 0, 2}},
		{Weight: 0},
		{Weight: 1, Count: 3},
	}}
	require.NoError(t, m.SetLayout(prop))

	rects := []Rect{a.rect, s1.Rect, b.rect, s2.Rect, c.rect, d.rect, e.rect}
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			assert.False(t, rects[i].Intersects(rects[j]), "slots %d and %d overlap", i, j)
		}
	}

	content := m.ContentRect()
	area := 0.0
	for _, r := range rects {
		area += r.Area()
		assert.True(t, r.X >= content.X-eps && r.Right() <= content.Right()+eps)
		assert.True(t, r.Y >= content.Y-eps && r.Bottom() <= content.Bottom()+eps)
	}
	// Gaps: two between c, d and e along their row.
	gapArea := 2 * 4 * c.rect.Height
	assert.InDelta(t, content.Area(), area+gapArea, 1e-6)

	// Row heights: 3:1 of what is left after the splitter.
	avail := content.Height - 3
	assert.InDelta(t, 0.75*avail, a.rect.Height, eps)
	assert.InDelta(t, 0.25*avail, c.rect.Height, eps)
	assert.InDelta(t, content.Bottom(), e.rect.Bottom(), eps)
}

func TestColumnMajor(t *testing.T) {
	assert := assert.New(t)

	m := bare(Rect{0, 0, 210, 310})
	ps := newPanes(3)
	for _, p := range ps {
		m.Add(p)
	}
	assert.NoError(m.SetCounts(true, []int{1, 2}, []float64{1, 1}))

	assert.InDelta(100, ps[0].rect.Width, eps)
	assert.InDelta(310, ps[0].rect.Height, eps)
	assert.InDelta(110, ps[1].rect.X, eps)
	assert.InDelta(150, ps[1].rect.Height, eps)
	assert.InDelta(160, ps[2].rect.Y, eps)
}

func TestCannedLeavesExtraPanes(t *testing.T) {
	assert := assert.New(t)

	m := bare(Rect{0, 0, 100, 100})
	ps := newPanes(4)
	for _, p := range ps {
		m.Add(p)
	}
	m.SetCanned(ExplicitCol12)
	assert.True(ps[2].set)
	assert.False(ps[3].set, "pane beyond the canned cells must stay untouched")
}

func TestAddDropsExplicitLayout(t *testing.T) {
	m := bare(Rect{0, 0, 100, 100})
	m.Add(&pane{}, &pane{})
	assert.NoError(t, m.SetGrid(2, 1))
	assert.NotNil(t, m.prop)

	m.Add(&pane{})
	assert.Nil(t, m.prop)
	assert.NoError(t, m.DoLayout())
}

func TestSetProportion(t *testing.T) {
	assert := assert.New(t)

	m := bare(Rect{0, 0, 306, 100})
	left, right := &pane{}, &pane{}
	split := &Splitter{}
	m.Add(left, split, right)
	assert.NoError(m.SetLayout(Proportions{Entries: []Entry{{Weight: 1, Cells: []float64{2, 0, 1}}}}))

	m.SetProportion(split, 0.25)
	assert.InDelta(75, left.rect.Width, eps)
	assert.InDelta(225, right.rect.Width, eps)
	assert.InDelta(81, right.rect.X, eps)

	// Silent no-ops.
	before := clone(*m.prop)
	for _, f := range []float64{0, 1, -0.5, 2, math.NaN()} {
		m.SetProportion(split, f)
	}
	m.SetProportion(left, 0.5)
	m.SetProportion(&Splitter{}, 0.5)
	assert.Equal(before.Entries[0].Cells, m.prop.Entries[0].Cells)
}

func TestSetProportionEntrySplitter(t *testing.T) {
	assert := assert.New(t)

	m := bare(Rect{0, 0, 100, 206})
	top, bottom := &pane{}, &pane{}
	split := &Splitter{}
	m.Add(top, split, bottom)
	assert.NoError(m.SetLayout(Proportions{Entries: []Entry{{Weight: 1}, {Weight: 0}, {Weight: 1}}}))
	assert.InDelta(100, top.rect.Height, eps)
	assert.InDelta(100, split.Rect.Width, eps)

	m.SetProportion(split, 0.6)
	assert.InDelta(120, top.rect.Height, eps)
	assert.InDelta(126, bottom.rect.Y, eps)
	assert.InDelta(80, bottom.rect.Height, eps)
}

func TestContentRect(t *testing.T) {
	m := NewMasterPane(Rect{0, 0, 200, 100})
	m.TitleHeight = 20
	m.Legend = LegendArea{Position: LegendRight, Size: 30}
	assert.Equal(t, Rect{10, 30, 150, 60}, m.ContentRect())
}

func TestParseCanned(t *testing.T) {
	for c := Canned(0); c < numCanned; c++ {
		got, err := ParseCanned(c.String())
		assert.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseCanned("diagonal")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	n := Normalize(Proportions{Entries: []Entry{{Weight: 2, Cells: []float64{1, 3}}, {Weight: 0}, {Weight: 6, Count: 2}}})
	assert.InDelta(t, 0.25, n.Entries[0].Weight, eps)
	assert.InDelta(t, 0.75, n.Entries[0].Cells[1], eps)
	assert.Equal(t, 0.0, n.Entries[1].Weight)
	assert.Equal(t, []float64{0.5, 0.5}, n.Entries[2].Cells)
}
