package panechart

import "fmt"

// ----------------------------------------------------------------------------
// Kind

// Kind selects one of the known scale variants.
type Kind int

const (
	Linear Kind = iota
	Log
	Exponent
	Ordinal
	Text
	Date
	DateAsOrdinal
	LinearAsOrdinal
	numKinds
)

var kindNames = [numKinds]string{
	"linear", "log", "exponent", "ordinal", "text", "date",
	"date-as-ordinal", "linear-as-ordinal",
}

// String returns the name of k as accepted by ParseKind.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return Linear, fmt.Errorf("unknown scale kind %q", s)
}

// IsOrdinal reports whether k places its values at integer positions
// 1, 2, 3, ... instead of at their data value.
func (k Kind) IsOrdinal() bool {
	switch k {
	case Ordinal, Text, DateAsOrdinal, LinearAsOrdinal:
		return true
	}
	return false
}

// IsDate reports whether the values of k are day numbers.
func (k Kind) IsDate() bool { return k == Date }

// ----------------------------------------------------------------------------
// Orientation

// Orientation tells a scale which side of the chart it serves.
type Orientation int

const (
	XAxis  Orientation = iota // independent axis
	YAxis                     // dependent axis
	Y2Axis                    // secondary dependent axis
)

// String returns the type of o.
func (o Orientation) String() string {
	switch o {
	case XAxis:
		return "x"
	case YAxis:
		return "y"
	case Y2Axis:
		return "y2"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// IsIndependent reports whether o is the independent (x) axis.
func (o Orientation) IsIndependent() bool { return o == XAxis }

// ----------------------------------------------------------------------------
// DateUnit

// DateUnit is the calendar unit of the steps of a Date scale.
type DateUnit int

const (
	Year DateUnit = iota
	Month
	Day
	Hour
	Minute
	Second
	Millisecond
)

// String returns the name of u.
func (u DateUnit) String() string {
	return []string{"year", "month", "day", "hour", "minute", "second", "millisecond"}[int(u)]
}

// Days returns the nominal length of u in days.
func (u DateUnit) Days() float64 {
	switch u {
	case Year:
		return 365
	case Month:
		return 30
	case Day:
		return 1
	case Hour:
		return 1.0 / 24
	case Minute:
		return 1.0 / (24 * 60)
	case Second:
		return 1.0 / (24 * 60 * 60)
	}
	return 1.0 / (24 * 60 * 60 * 1000)
}

// ----------------------------------------------------------------------------
// Behavior table

// behavior bundles the numeric behavior of one scale kind.
type behavior struct {
	trans func(s *Scale) Transformation

	// pick computes the step sizes, magnitude and format after the
	// common range selection has been done.
	pick func(s *Scale, rangeMin, rangeMax float64)

	baseTic  func(s *Scale) float64
	majorTic func(s *Scale, base float64, i int) float64
	numTics  func(s *Scale) int

	majorUnitMultiplier func(s *Scale) float64
	minorUnitMultiplier func(s *Scale) float64

	label func(s *Scale, v float64) string
}

// behaviors is filled in init as its functions refer back to it.
var behaviors [numKinds]behavior

func init() {
	unit := func(*Scale) float64 { return 1 }
	linear := func(*Scale) Transformation { return LinearTrans }

	numeric := behavior{
		trans:               linear,
		pick:                pickNumeric,
		baseTic:             linearBaseTic,
		majorTic:            linearMajorTic,
		numTics:             linearNumTics,
		majorUnitMultiplier: unit,
		minorUnitMultiplier: unit,
		label:               numericLabel,
	}

	ordinal := behavior{
		trans:               linear,
		pick:                pickOrdinal,
		baseTic:             ordinalBaseTic,
		majorTic:            linearMajorTic,
		numTics:             linearNumTics,
		majorUnitMultiplier: unit,
		minorUnitMultiplier: unit,
		label:               ordinalLabel,
	}

	behaviors[Linear] = numeric

	behaviors[Exponent] = numeric
	behaviors[Exponent].trans = func(s *Scale) Transformation { return ExponentTrans(s.Exponent) }

	behaviors[Log] = behavior{
		trans:               func(*Scale) Transformation { return Log10Trans },
		pick:                pickLog,
		baseTic:             logBaseTic,
		majorTic:            logMajorTic,
		numTics:             logNumTics,
		majorUnitMultiplier: unit,
		minorUnitMultiplier: unit,
		label:               logLabel,
	}

	behaviors[Date] = behavior{
		trans:               linear,
		pick:                pickDate,
		baseTic:             dateBaseTic,
		majorTic:            dateMajorTic,
		numTics:             dateNumTics,
		majorUnitMultiplier: func(s *Scale) float64 { return s.majorUnit.Days() },
		minorUnitMultiplier: func(s *Scale) float64 { return s.minorUnit.Days() },
		label:               dateLabel,
	}

	behaviors[Ordinal] = ordinal
	behaviors[Text] = ordinal
	behaviors[Text].label = textLabel
	behaviors[DateAsOrdinal] = ordinal
	behaviors[DateAsOrdinal].label = dateOrdinalLabel
	behaviors[LinearAsOrdinal] = ordinal
	behaviors[LinearAsOrdinal].label = linearOrdinalLabel
}
