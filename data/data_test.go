package data

import (
	"math"
	"strconv"
	"testing"

	"gonum.org/v1/plot/plotter"
)

var nan = math.NaN()

var xyRangeTests = []struct {
	xy                     plotter.XYs
	opts                   RangeOptions
	xmin, xmax, ymin, ymax float64
}{
	{
		plotter.XYs{{X: 1, Y: 5}, {X: 3, Y: -2}, {X: 2, Y: 7}},
		RangeOptions{},
		1, 3, -2, 7,
	},
	{
		plotter.XYs{{X: 1, Y: 5}, {X: Missing, Y: 9}, {X: 2, Y: 7}},
		RangeOptions{},
		1, 2, 5, 9,
	},
	{
		plotter.XYs{{X: 1, Y: 5}, {X: Missing, Y: 9}, {X: 2, Y: nan}},
		RangeOptions{IgnoreMissing: true},
		1, 1, 5, 5,
	},
	{
		plotter.XYs{{X: 1, Y: 5}, {X: 4, Y: 9}, {X: 2, Y: 7}, {X: 8, Y: -3}},
		RangeOptions{Bounded: true, XMin: 1.5, XMax: 4},
		1, 8, 7, 9,
	},
}

func TestXYRange(t *testing.T) {
	for i, tc := range xyRangeTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			xmin, xmax, ymin, ymax := XYRange(tc.xy, tc.opts)
			if xmin != tc.xmin || xmax != tc.xmax || ymin != tc.ymin || ymax != tc.ymax {
				t.Errorf("XYRange = [%g,%g]x[%g,%g], want [%g,%g]x[%g,%g]",
					xmin, xmax, ymin, ymax, tc.xmin, tc.xmax, tc.ymin, tc.ymax)
			}
		})
	}
}

func TestXYRangeEmpty(t *testing.T) {
	xmin, xmax, _, _ := XYRange(plotter.XYs{}, RangeOptions{})
	if !math.IsInf(xmin, 1) || !math.IsInf(xmax, -1) {
		t.Errorf("empty range = [%g,%g], want [+Inf,-Inf]", xmin, xmax)
	}
}

func TestIsMissing(t *testing.T) {
	for _, v := range []float64{Missing, nan, math.Inf(1), math.Inf(-1)} {
		if !IsMissing(v) {
			t.Errorf("IsMissing(%g) = false", v)
		}
	}
	if IsMissing(0) || IsMissing(-1e300) {
		t.Errorf("regular values reported missing")
	}
}

func TestValueRange(t *testing.T) {
	min, max := ValueRange(plotter.Values{3, Missing, -1, 8, nan})
	if min != -1 || max != 8 {
		t.Errorf("ValueRange = [%g,%g], want [-1,8]", min, max)
	}
}

func TestXYUVRange(t *testing.T) {
	d := XYUVs{{1, 2, 3, 4}, {-1, 5, Missing, 0}}
	xmin, xmax, ymin, ymax, umin, umax, vmin, vmax := XYUVRange(d)
	got := []float64{xmin, xmax, ymin, ymax, umin, umax, vmin, vmax}
	want := []float64{-1, 1, 2, 5, 3, 3, 0, 4}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("XYUVRange[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}
