package panechart

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval [NaN,NaN].
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN and missing values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) || v == math.MaxFloat64 {
			continue
		}
		if !(i.Min <= v) {
			i.Min = v
		}
		if !(i.Max >= v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges; two unset edges
// are equal.
func (i Interval) Equal(j Interval) bool {
	eq := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return eq(i.Min, j.Min) && eq(i.Max, j.Max)
}

// IsSet reports whether both edges of i are known.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Span returns Max-Min or NaN if i is not set.
func (i Interval) Span() float64 {
	return i.Max - i.Min
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}
