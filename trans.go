// Scale Transformations
//
// All pixel interpolation happens on linearized values so that pixel
// spacing is uniform in linear space whatever the kind of the scale.
package panechart

import (
	"math"
)

// A Transformation bundles the monotonic map of user values into linear
// space together with its inverse.
type Transformation struct {
	Name        string
	Linearize   func(x float64) float64
	DeLinearize func(y float64) float64
}

// LinearTrans does not transform at all. It is used by the linear,
// date and all ordinal kinds.
var LinearTrans = Transformation{
	Name:        "Linear",
	Linearize:   func(x float64) float64 { return x },
	DeLinearize: func(y float64) float64 { return y },
}

// Log10Trans maps x to log10(x). Non-positive values map to 0.
var Log10Trans = Transformation{
	Name:        "Log10",
	Linearize:   SafeLog,
	DeLinearize: func(y float64) float64 { return math.Pow(10, y) },
}

// ExponentTrans raises values to the power e, keeping their sign so that
// negative values survive the round trip.
func ExponentTrans(e float64) Transformation {
	if e == 0 || math.IsNaN(e) || math.IsInf(e, 0) {
		e = 1
	}
	return Transformation{
		Name:        "Exponent",
		Linearize:   func(x float64) float64 { return SafeExp(x, e) },
		DeLinearize: func(y float64) float64 { return SafeExp(y, 1/e) },
	}
}

// SafeLog returns log10(x) or 0 for non-positive x.
func SafeLog(x float64) float64 {
	if x <= 0 || math.IsNaN(x) {
		return 0
	}
	return math.Log10(x)
}

// SafeExp returns sign(x)*|x|^e. It returns 0 instead of NaN or an
// infinity.
func SafeExp(x, e float64) float64 {
	r := math.Copysign(math.Pow(math.Abs(x), e), x)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}
