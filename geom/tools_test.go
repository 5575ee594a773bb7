package geom

import (
	"strconv"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func TestCopyAesthetics(t *testing.T) {
	h := HLine{
		Alpha: func(i int) float64 { return float64(2 * i) },
	}
	v := VLine{}

	double := func(n int) int { return 2 * n }
	addone := func(n int) int { return n + 1 }

	for i, tc := range []struct {
		index func(int) int
		want  float64
	}{
		{nil, 6},
		{double, 12},
		{addone, 8},
	} {
		CopyAesthetics(&v, &h, tc.index)
		if got := v.Alpha(3); got != tc.want {
			t.Errorf("%d: Alpha(3) = %g, want %g", i, got, tc.want)
		}
	}
	if v.Color != nil || v.Size != nil {
		t.Errorf("nil aesthetics became non-nil")
	}
}

func TestBarGroups(t *testing.T) {
	g := NewBarGroups("dodge", 0.2, 0, true)
	g.Record(1, 0)
	g.Record(3, 1)
	g.Record(3, 2)
	g.Record(4, 3)

	if got := g.MinDelta(); got != 1 {
		t.Errorf("MinDelta() = %g, want 1", got)
	}
	if got := g.MaxGroupSize(); got != 2 {
		t.Errorf("MaxGroupSize() = %d, want 2", got)
	}

	for i, tc := range []struct {
		x         float64
		i         int
		center, w float64
	}{
		{1, 0, 1, 0.2},
		{3, 1, 2.8, 0.2},
		{3, 2, 3.2, 0.2},
		{3, 7, 3, 0}, // unknown point
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c, w := g.Width(tc.x, tc.i)
			if !near(c, tc.center) || !near(w, tc.w) {
				t.Errorf("Width(%g,%d) = %g,%g, want %g,%g", tc.x, tc.i, c, w, tc.center, tc.w)
			}
		})
	}

	single := NewBarGroups("stack", 0, 0, true)
	single.Record(5, 0)
	if c, w := single.Width(5, 0); c != 5 || !near(w, 0.4) {
		t.Errorf("single bar Width = %g,%g", c, w)
	}
}

func TestClipRect(t *testing.T) {
	c := draw.Canvas{Rectangle: vg.Rectangle{Max: vg.Point{X: 100, Y: 50}}}
	for i, tc := range []struct {
		in, want vg.Rectangle
	}{
		{
			vg.Rectangle{Min: vg.Point{X: 10, Y: 10}, Max: vg.Point{X: 20, Y: 20}},
			vg.Rectangle{Min: vg.Point{X: 10, Y: 10}, Max: vg.Point{X: 20, Y: 20}},
		},
		{
			vg.Rectangle{Min: vg.Point{X: 90, Y: 60}, Max: vg.Point{X: -10, Y: 40}},
			vg.Rectangle{Min: vg.Point{X: 0, Y: 40}, Max: vg.Point{X: 90, Y: 50}},
		},
		{
			vg.Rectangle{Min: vg.Point{X: 200, Y: 10}, Max: vg.Point{X: 300, Y: 20}},
			vg.Rectangle{Min: vg.Point{X: 200, Y: 10}, Max: vg.Point{X: 200, Y: 20}},
		},
	} {
		if got := clipRect(tc.in, c); got != tc.want {
			t.Errorf("%d: clipRect(%v) = %v, want %v", i, tc.in, got, tc.want)
		}
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
