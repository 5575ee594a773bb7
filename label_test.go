package panechart

import (
	"math"
	"strconv"
	"testing"
)

var formatNumberTests = []struct {
	pattern string
	v       float64
	want    string
}{
	{"#,###.", 1234567, "1,234,567"},
	{"#,###.##", 0.25, "0.25"},
	{"#,###.#", -2.5, "-2.5"},
	{"#,###.", 0, "0"},
	{"#,###.", 1e16, "1e+16"},
	{"x#,#", 3, "3"}, // broken pattern
}

func TestFormatNumber(t *testing.T) {
	for i, tc := range formatNumberTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := formatNumber(tc.pattern, tc.v); got != tc.want {
				t.Errorf("formatNumber(%q, %g) = %q, want %q", tc.pattern, tc.v, got, tc.want)
			}
		})
	}
}

func TestPosition(t *testing.T) {
	for i, tc := range []struct {
		v    float64
		n    int
		want int
	}{
		{1, 3, 0},
		{3.4, 3, 2},
		{3.6, 3, -1},
		{0.4, 3, -1},
		{math.NaN(), 3, -1},
		{math.Inf(1), 3, -1},
	} {
		if got := position(tc.v, tc.n); got != tc.want {
			t.Errorf("%d: position(%g,%d) = %d, want %d", i, tc.v, tc.n, got, tc.want)
		}
	}
}

func TestAxisFullTitle(t *testing.T) {
	a := NewAxis(YAxis, Linear)
	a.Title = "Load"
	a.UpdateData(0, 12000)
	a.PickScale()
	if got := a.FullTitle(); got != "Load (10^3)" {
		t.Errorf("FullTitle() = %q", got)
	}
	a.ResetData()
	if a.DataRange().IsSet() {
		t.Errorf("data range still set after ResetData")
	}
	a.PickScale()
	if got := a.FullTitle(); got != "Load" {
		t.Errorf("FullTitle() = %q after picking an empty range", got)
	}
}
