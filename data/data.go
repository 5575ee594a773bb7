// Package data contains the point containers used by panechart and the
// range aggregation which feeds the automatic axis scaling.
package data

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// Missing marks a data value which is not available. Points with a
// missing coordinate are never drawn and never contribute to a data range.
const Missing = math.MaxFloat64

// IsMissing reports whether v cannot be used as a data value:
// It is Missing, NaN or infinite.
func IsMissing(v float64) bool {
	return v == Missing || math.IsNaN(v) || math.IsInf(v, 0)
}

// RangeOptions controls how the range of a data set is determined.
type RangeOptions struct {
	// IgnoreMissing excludes a point completely if one of its
	// coordinates is missing. Otherwise the valid coordinate still
	// counts for its own axis.
	IgnoreMissing bool

	// Bounded restricts the y range to points whose x value lies
	// in [XMin, XMax].
	Bounded    bool
	XMin, XMax float64
}

// XYRange returns the minimum and maximum x and y values of xys.
// Unset results are reported as +Inf for the minima and -Inf for the
// maxima, like gonum's plotter.XYRange.
func XYRange(xys plotter.XYer, o RangeOptions) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for i := 0; i < xys.Len(); i++ {
		x, y := xys.XY(i)
		xok, yok := !IsMissing(x), !IsMissing(y)
		if o.IgnoreMissing && !(xok && yok) {
			continue
		}
		if xok {
			xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		}
		if !yok {
			continue
		}
		if o.Bounded && (!xok || x < o.XMin || x > o.XMax) {
			continue
		}
		ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
	}
	return xmin, xmax, ymin, ymax
}

// ValueRange returns the minimum and maximum of the non-missing values.
func ValueRange(vs plotter.Valuer) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for i := 0; i < vs.Len(); i++ {
		v := vs.Value(i)
		if IsMissing(v) {
			continue
		}
		min, max = math.Min(min, v), math.Max(max, v)
	}
	return min, max
}

// XYUVer wraps the Len and XYUV methods.
type XYUVer interface {
	// Len returns the number of x, y, u, v quadruples.
	Len() int

	// XYUV returns an x, y, u, v quadruple.
	XYUV(int) (x, y, u, v float64)
}

// XYUVRange returns the minimum and maximum x, y, u and v values.
// Missing values are skipped.
func XYUVRange(xyuvs XYUVer) (xmin, xmax, ymin, ymax, umin, umax, vmin, vmax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	umin, umax = math.Inf(1), math.Inf(-1)
	vmin, vmax = math.Inf(1), math.Inf(-1)
	grow := func(min, max *float64, v float64) {
		if IsMissing(v) {
			return
		}
		*min, *max = math.Min(*min, v), math.Max(*max, v)
	}
	for i := 0; i < xyuvs.Len(); i++ {
		x, y, u, v := xyuvs.XYUV(i)
		grow(&xmin, &xmax, x)
		grow(&ymin, &ymax, y)
		grow(&umin, &umax, u)
		grow(&vmin, &vmax, v)
	}
	return xmin, xmax, ymin, ymax, umin, umax, vmin, vmax
}

// XYUVs implements the XYUVer interface.
type XYUVs []struct{ X, Y, U, V float64 }

func (d XYUVs) Len() int                        { return len(d) }
func (d XYUVs) XYUV(i int) (x, y, u, v float64) { return d[i].X, d[i].Y, d[i].U, d[i].V }
