package panechart

import (
	"fmt"
	"math"

	"github.com/vdobler/panechart/data"
	"github.com/vdobler/panechart/internal/logging"
)

// Defaults of a new Scale.
const (
	DefaultGrace            = 0.01
	DefaultTargetSteps      = 20
	DefaultTargetMinorSteps = 5
	DefaultMaxLabels        = 12
	DefaultExponent         = 2
)

// maxTics caps the number of ticks of any scale.
const maxTics = 1000

// ----------------------------------------------------------------------------
// Scale

// Scale maps the user values of one axis onto pixels and selects the
// range and the ticks of that axis.
//
// Min, max, the steps, the magnitude and the label format are either
// computed by PickScale or pinned by the caller: every setter pins its
// value and turns the matching automatic flag off. ResetAuto returns all
// of them to automatic.
type Scale struct {
	// MinGrace and MaxGrace are the fractions of the data range added
	// below and above the data before auto-ranging.
	MinGrace, MaxGrace float64

	// IsReverse flips the direction of the axis.
	IsReverse bool

	// Exponent is the power of an Exponent scale.
	Exponent float64

	// TextLabels are the labels of a Text scale, one per position.
	TextLabels []string

	// OrdinalValues are the underlying values of the positions of a
	// DateAsOrdinal or LinearAsOrdinal scale.
	OrdinalValues []float64

	// MaxLabels caps the number of major ticks of ordinal scales.
	MaxLabels int

	// TargetSteps and TargetMinorSteps are the nominal number of major
	// steps per axis and minor steps per major step.
	TargetSteps, TargetMinorSteps float64

	// Data is the last range passed to PickScale.
	Data Interval

	kind        Kind
	orientation Orientation

	min, max             float64
	majorStep, minorStep float64
	mag                  int
	decimals             int
	format               string
	baseTic              float64 // NaN means automatic
	majorUnit, minorUnit DateUnit

	minAuto, maxAuto             bool
	majorStepAuto, minorStepAuto bool
	magAuto, formatAuto          bool

	minPix, maxPix float64
	linMin, linMax float64
}

// NewScale returns a scale of the given kind for the given side of a
// chart. Everything is automatic.
func NewScale(kind Kind, o Orientation) *Scale {
	s := &Scale{
		MinGrace:         DefaultGrace,
		MaxGrace:         DefaultGrace,
		Exponent:         DefaultExponent,
		MaxLabels:        DefaultMaxLabels,
		TargetSteps:      DefaultTargetSteps,
		TargetMinorSteps: DefaultTargetMinorSteps,
		Data:             UnsetInterval(),
		kind:             kind,
		orientation:      o,
		min:              0,
		max:              1,
		majorStep:        0.1,
		minorStep:        0.02,
		majorUnit:        Day,
		minorUnit:        Day,
		maxPix:           1,
	}
	s.ResetAuto()
	s.updateLinear()
	return s
}

// ResetAuto makes min, max, steps, magnitude and format automatic again
// and forgets a pinned base tic.
func (s *Scale) ResetAuto() {
	s.minAuto, s.maxAuto = true, true
	s.majorStepAuto, s.minorStepAuto = true, true
	s.magAuto, s.formatAuto = true, true
	s.baseTic = math.NaN()
}

// SetKind switches s to kind k. Range and steps are kept until the next
// PickScale.
func (s *Scale) SetKind(k Kind) {
	s.kind = k
	s.updateLinear()
}

// SetMin pins the minimum to v and turns off automatic min.
func (s *Scale) SetMin(v float64) {
	s.min, s.minAuto = v, false
	s.updateLinear()
}

// SetMax pins the maximum to v and turns off automatic max.
func (s *Scale) SetMax(v float64) {
	s.max, s.maxAuto = v, false
	s.updateLinear()
}

// SetMajorStep pins the major step (in major units for dates) and turns
// off automatic major steps.
func (s *Scale) SetMajorStep(v float64) { s.majorStep, s.majorStepAuto = v, false }

// SetMinorStep pins the minor step (in minor units for dates) and turns
// off automatic minor steps.
func (s *Scale) SetMinorStep(v float64) { s.minorStep, s.minorStepAuto = v, false }

// SetMagnitude pins the power of ten labels are divided by and turns off
// the automatic magnitude.
func (s *Scale) SetMagnitude(m int) { s.mag, s.magAuto = m, false }

// SetFormat pins the label format and turns off automatic formats. The
// format is a strftime pattern for Date and DateAsOrdinal scales and a
// go-humanize FormatFloat pattern like "#,###.##" otherwise.
func (s *Scale) SetFormat(f string) { s.format, s.formatAuto = f, false }

// SetBaseTic pins the value of the first major tick.
func (s *Scale) SetBaseTic(v float64) { s.baseTic = v }

// SetDateUnits sets the units of pinned date steps.
func (s *Scale) SetDateUnits(major, minor DateUnit) { s.majorUnit, s.minorUnit = major, minor }

func (s *Scale) Kind() Kind               { return s.kind }
func (s *Scale) Orientation() Orientation { return s.orientation }
func (s *Scale) Min() float64             { return s.min }
func (s *Scale) Max() float64             { return s.max }
func (s *Scale) MajorStep() float64       { return s.majorStep }
func (s *Scale) MinorStep() float64       { return s.minorStep }
func (s *Scale) Magnitude() int           { return s.mag }
func (s *Scale) Decimals() int            { return s.decimals }
func (s *Scale) Format() string           { return s.format }
func (s *Scale) BaseTic() float64         { return s.baseTic }
func (s *Scale) MajorUnit() DateUnit      { return s.majorUnit }
func (s *Scale) MinorUnit() DateUnit      { return s.minorUnit }
func (s *Scale) MinAuto() bool            { return s.minAuto }
func (s *Scale) MaxAuto() bool            { return s.maxAuto }
func (s *Scale) MajorStepAuto() bool      { return s.majorStepAuto }
func (s *Scale) MinorStepAuto() bool      { return s.minorStepAuto }
func (s *Scale) MagAuto() bool            { return s.magAuto }
func (s *Scale) FormatAuto() bool         { return s.formatAuto }

// PixelRange returns the pixel positions set by SetPixelRange.
func (s *Scale) PixelRange() (min, max float64) { return s.minPix, s.maxPix }

// Interval returns [Min,Max].
func (s *Scale) Interval() Interval { return Interval{s.min, s.max} }

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s Range=[%g:%g] Step=%g/%g Mag=%d Data=%s",
		s.orientation, s.kind, s.min, s.max, s.majorStep, s.minorStep, s.mag, s.Data)
}

func (s *Scale) behavior() *behavior {
	if s.kind < 0 || s.kind >= numKinds {
		return &behaviors[Linear]
	}
	return &behaviors[s.kind]
}

func (s *Scale) targetSteps() float64 {
	if s.TargetSteps > 0 {
		return s.TargetSteps
	}
	return DefaultTargetSteps
}

func (s *Scale) targetMinorSteps() float64 {
	if s.TargetMinorSteps > 0 {
		return s.TargetMinorSteps
	}
	return DefaultTargetMinorSteps
}

func (s *Scale) maxLabels() float64 {
	if s.MaxLabels > 0 {
		return float64(s.MaxLabels)
	}
	return DefaultMaxLabels
}

// ----------------------------------------------------------------------------
// Auto ranging

// PickScale selects min, max, steps, magnitude and label format from
// the aggregated data range [rangeMin, rangeMax]. Missing, NaN and
// infinite edges count as 0. Pinned values are kept. Afterwards Max() is
// larger than Min().
func (s *Scale) PickScale(rangeMin, rangeMax float64) {
	rangeMin, rangeMax = sanitize(rangeMin), sanitize(rangeMax)
	if rangeMin > rangeMax {
		rangeMin, rangeMax = rangeMax, rangeMin
	}
	s.Data = Interval{rangeMin, rangeMax}

	s.behavior().pick(s, rangeMin, rangeMax)
	s.updateLinear()

	logging.L().Debug("pick scale",
		"axis", s.orientation.String(), "kind", s.kind.String(),
		"min", s.min, "max", s.max,
		"major", s.majorStep, "minor", s.minorStep, "mag", s.mag)
}

func sanitize(v float64) float64 {
	if data.IsMissing(v) {
		return 0
	}
	return v
}

// pickRange applies grace and repairs degenerate ranges.
func (s *Scale) pickRange(rangeMin, rangeMax float64) {
	lo, hi := rangeMin, rangeMax
	if !s.minAuto {
		lo = s.min
	}
	if !s.maxAuto {
		hi = s.max
	}
	rng := hi - lo

	// Grace must not push all non-negative data of a dependent axis
	// below zero, nor all non-positive data above zero. Ordinal
	// positions have no meaningful zero.
	free := s.orientation.IsIndependent() || s.kind.IsOrdinal()
	if s.minAuto {
		s.min = rangeMin
		if g := s.MinGrace * rng; free || !(rangeMin >= 0 && rangeMin-g < 0) {
			s.min = rangeMin - g
		}
	}
	if s.maxAuto {
		s.max = rangeMax
		if g := s.MaxGrace * rng; free || !(rangeMax <= 0 && rangeMax+g > 0) {
			s.max = rangeMax + g
		}
	}

	if s.minAuto && s.maxAuto && math.Abs(s.max-s.min) < 1e-100 {
		if math.Abs(s.max) > 1e-100 {
			if s.max < 0 {
				s.max *= 0.95
				s.min *= 1.05
			} else {
				s.max *= 1.05
				s.min *= 0.95
			}
		} else {
			s.min, s.max = -1, 1
		}
	}

	if s.max <= s.min {
		switch {
		case s.maxAuto:
			s.max = s.min + 1
		case s.minAuto:
			s.min = s.max - 1
		default:
			s.max = s.min + 1
		}
	}
}

// pickNumeric serves the Linear and Exponent kinds.
func pickNumeric(s *Scale, rangeMin, rangeMax float64) {
	s.pickRange(rangeMin, rangeMax)

	if s.majorStepAuto {
		s.majorStep = CalcStepSize(s.max-s.min, s.targetSteps())
	}
	if s.minorStepAuto {
		s.minorStep = CalcStepSize(s.majorStep, s.targetMinorSteps())
	}
	if s.magAuto {
		s.mag = calcMagnitude(s.min, s.max)
	}
	if s.formatAuto {
		s.decimals = calcDecimals(s.majorStep, s.mag)
		s.format = numberPattern(s.decimals)
	}
}

func pickLog(s *Scale, rangeMin, rangeMax float64) {
	switch {
	case rangeMin <= 0 && rangeMax <= 0:
		rangeMin, rangeMax = 1, 10
	case rangeMin <= 0:
		rangeMin = rangeMax / 10
	case rangeMax <= 0:
		rangeMax = rangeMin * 10
	}
	if !s.minAuto && s.min <= 0 {
		s.min = rangeMin
	}
	if !s.maxAuto && s.max <= 0 {
		s.max = rangeMax
	}

	lo, hi := math.Log10(rangeMin), math.Log10(rangeMax)
	if !s.minAuto {
		lo = math.Log10(s.min)
	}
	if !s.maxAuto {
		hi = math.Log10(s.max)
	}
	rng := hi - lo
	if s.minAuto {
		s.min = math.Pow(10, math.Log10(rangeMin)-s.MinGrace*rng)
	}
	if s.maxAuto {
		s.max = math.Pow(10, math.Log10(rangeMax)+s.MaxGrace*rng)
	}

	if s.minAuto && s.maxAuto && s.max/s.min < 1+1e-10 {
		s.max *= 2
		s.min /= 2
	}
	if s.max <= s.min {
		if s.minAuto && !s.maxAuto {
			s.min = s.max / 10
		} else {
			s.max = s.min * 10
		}
	}

	if s.majorStepAuto {
		s.majorStep = 1
	}
	if s.minorStepAuto {
		s.minorStep = 1
	}
	if s.magAuto {
		s.mag = 0
	}
	if s.formatAuto {
		s.decimals = 0
		s.format = ""
	}
}

// pickOrdinal serves all ordinal kinds: integer positions, integer steps
// and at most MaxLabels major ticks.
func pickOrdinal(s *Scale, rangeMin, rangeMax float64) {
	if s.kind == Text && len(s.TextLabels) > 0 {
		rangeMin, rangeMax = 1, float64(len(s.TextLabels))
	}
	s.pickRange(rangeMin, rangeMax)
	if s.minAuto {
		s.min = math.Floor(s.min)
	}
	if s.maxAuto {
		s.max = math.Ceil(s.max)
	}

	rng := s.max - s.min
	if s.majorStepAuto {
		step := CalcStepSize(rng, s.targetSteps())
		if rng/step > s.maxLabels() {
			step = CalcBoundedStepSize(rng, s.maxLabels())
		}
		step = math.Max(1, math.Ceil(step))
		if rng/step > s.maxLabels() {
			step = math.Ceil(rng / s.maxLabels())
		}
		s.majorStep = step
	}
	if s.minorStepAuto {
		minor := math.Max(1, math.Floor(CalcStepSize(s.majorStep, s.targetMinorSteps())))
		s.minorStep = math.Min(minor, math.Max(1, s.majorStep))
	}
	if s.magAuto {
		s.mag = 0
	}
	if !s.formatAuto {
		return
	}
	s.decimals = 0
	s.format = numberPattern(0)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range s.OrdinalValues {
		if !data.IsMissing(v) {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if lo > hi {
		return
	}
	switch s.kind {
	case DateAsOrdinal:
		r := dateRungFor(hi - lo)
		s.format, s.majorUnit = r.format, r.major
	case LinearAsOrdinal:
		span := hi - lo
		if span == 0 {
			span = math.Abs(hi)
		}
		if span > 0 {
			s.decimals = calcDecimals(CalcStepSize(span, s.targetSteps()), 0)
		}
		s.format = numberPattern(s.decimals)
	}
}

// ----------------------------------------------------------------------------
// Ticks

// CalcBaseTic returns the value of the first major tick: the pinned base
// tic if there is one, else the default of the scale kind.
func (s *Scale) CalcBaseTic() float64 {
	if !math.IsNaN(s.baseTic) {
		return s.baseTic
	}
	return s.behavior().baseTic(s)
}

// CalcNumTics returns the number of major ticks, in [1,1000].
func (s *Scale) CalcNumTics() int {
	return s.behavior().numTics(s)
}

// CalcMajorTicValue returns the value of the i'th major tick counted
// from base.
func (s *Scale) CalcMajorTicValue(base float64, i int) float64 {
	return s.behavior().majorTic(s, base, i)
}

// MajorUnitMultiplier returns the length of a major step unit in user
// units: days for dates, 1 otherwise.
func (s *Scale) MajorUnitMultiplier() float64 { return s.behavior().majorUnitMultiplier(s) }

// MinorUnitMultiplier is the MajorUnitMultiplier of minor steps.
func (s *Scale) MinorUnitMultiplier() float64 { return s.behavior().minorUnitMultiplier(s) }

func clampTics(n float64) int {
	if math.IsNaN(n) || n < 1 {
		return 1
	}
	if n > maxTics {
		return maxTics
	}
	return int(n)
}

func linearBaseTic(s *Scale) float64 {
	if !(s.majorStep > 0) {
		return s.min
	}
	return math.Ceil(s.min/s.majorStep-1e-8) * s.majorStep
}

func ordinalBaseTic(*Scale) float64 { return 1 }

func linearMajorTic(s *Scale, base float64, i int) float64 {
	return base + float64(i)*s.majorStep
}

func linearNumTics(s *Scale) int {
	if !(s.majorStep > 0) {
		return 1
	}
	return clampTics(math.Floor((s.max-s.min)/s.majorStep+0.01) + 1)
}

func logBaseTic(s *Scale) float64 {
	return math.Pow(10, math.Ceil(SafeLog(s.min)-1e-8))
}

func logMajorTic(s *Scale, base float64, i int) float64 {
	return math.Pow(10, SafeLog(base)+float64(i)*s.majorStep)
}

func logNumTics(s *Scale) int {
	if !(s.majorStep > 0) {
		return 1
	}
	n := math.Floor((SafeLog(s.max)-SafeLog(s.CalcBaseTic()))/s.majorStep+1e-8) + 1
	return clampTics(n)
}

// firstTicIndex returns the index of the first major tick at or above
// min when counting from base.
func (s *Scale) firstTicIndex(base float64) int {
	if !(s.majorStep > 0) || base >= s.min {
		return 0
	}
	var k float64
	switch s.kind {
	case Log:
		k = math.Ceil((SafeLog(s.min)-SafeLog(base))/s.majorStep - 1e-8)
	case Date:
		units := unitsBetween(XDateTime(base), XDateTime(s.min), s.majorUnit)
		k = math.Max(0, math.Floor(units/s.majorStep)-1)
		for n := 0; n < 3 && s.CalcMajorTicValue(base, int(k)) < s.min; n++ {
			k++
		}
	default:
		k = math.Ceil((s.min-base)/s.majorStep - 1e-8)
	}
	if k < 0 || math.IsNaN(k) {
		return 0
	}
	return int(math.Min(k, 1e9))
}

// MajorTicks returns the values of the major ticks inside [Min,Max].
func (s *Scale) MajorTicks() []float64 {
	base := s.CalcBaseTic()
	n := s.CalcNumTics()
	tol := 1e-9 * (s.max - s.min)

	first := s.firstTicIndex(base)
	var ticks []float64
	for i := first; i < first+n+1 && len(ticks) < n; i++ {
		v := s.CalcMajorTicValue(base, i)
		if v > s.max+tol {
			break
		}
		if v >= s.min-tol {
			ticks = append(ticks, v)
		}
	}
	return ticks
}

// MinorTicks returns the values of the minor ticks inside [Min,Max]
// which do not coincide with a major tick. Log scales get minor ticks at
// 2..9 times the powers of ten.
func (s *Scale) MinorTicks() []float64 {
	major := s.MajorTicks()
	tol := 1e-9 * (s.max - s.min)

	var cand []float64
	switch s.kind {
	case Log:
		lo, hi := math.Floor(SafeLog(s.min)), math.Ceil(SafeLog(s.max))
		for k := lo; k <= hi && len(cand) < maxTics; k++ {
			for m := 2.0; m <= 9; m++ {
				if v := m * math.Pow(10, k); v >= s.min-tol && v <= s.max+tol {
					cand = append(cand, v)
				}
			}
		}
	case Date:
		cand = s.dateMinorTicks(tol)
	default:
		step := s.minorStep * s.MinorUnitMultiplier()
		if !(step > 0) {
			return nil
		}
		base := s.CalcBaseTic()
		v0 := base + math.Ceil((s.min-base)/step-1e-8)*step
		for i := 0; i < maxTics; i++ {
			v := v0 + float64(i)*step
			if v > s.max+tol {
				break
			}
			cand = append(cand, v)
		}
	}

	eps := 1e-6 * s.tickUnit()
	var minor []float64
	j := 0
	for _, v := range cand {
		for j < len(major) && major[j] < v-eps {
			j++
		}
		if j < len(major) && math.Abs(major[j]-v) <= eps {
			continue
		}
		minor = append(minor, v)
	}
	return minor
}

// dateMinorTicks steps through [Min,Max] in calendar minor units counted
// from the base tick, so minor ticks stay aligned with the major ones.
func (s *Scale) dateMinorTicks(tol float64) []float64 {
	if !(s.minorStep > 0) {
		return nil
	}
	base := XDateTime(s.CalcBaseTic())
	k := math.Floor(unitsBetween(base, XDateTime(s.min), s.minorUnit)/s.minorStep) - 1
	tick := func(k float64) float64 { return XDate(addDate(base, s.minorUnit, k*s.minorStep)) }
	for n := 0; n < 3 && tick(k) < s.min-tol; n++ {
		k++
	}
	for n := 0; n < 3 && tick(k-1) >= s.min-tol; n++ {
		k--
	}

	var cand []float64
	for i := 0; i < maxTics; i++ {
		v := tick(k + float64(i))
		if v > s.max+tol {
			break
		}
		if v >= s.min-tol {
			cand = append(cand, v)
		}
	}
	return cand
}

// tickUnit is the unit of the tolerance used to compare tick values.
func (s *Scale) tickUnit() float64 {
	if s.kind == Log {
		return math.Max(s.min, 1e-300)
	}
	return math.Max(s.minorStep*s.MinorUnitMultiplier(), 1e-300)
}

// ----------------------------------------------------------------------------
// Transform

// Linearize maps v into the linear space of the scale kind.
func (s *Scale) Linearize(v float64) float64 { return s.behavior().trans(s).Linearize(v) }

// DeLinearize is the inverse of Linearize.
func (s *Scale) DeLinearize(v float64) float64 { return s.behavior().trans(s).DeLinearize(v) }

// SetPixelRange sets the pixel positions of the two ends of the axis.
// For a vertical axis in screen coordinates minPix is the top.
func (s *Scale) SetPixelRange(minPix, maxPix float64) {
	s.minPix, s.maxPix = minPix, maxPix
	s.updateLinear()
}

func (s *Scale) updateLinear() {
	t := s.behavior().trans(s)
	s.linMin, s.linMax = t.Linearize(s.min), t.Linearize(s.max)
}

// flipped reports whether value min sits at maxPix. This holds for an
// unreversed dependent axis, whose pixels grow downwards, and for a
// reversed independent axis.
func (s *Scale) flipped() bool {
	return s.IsReverse == s.orientation.IsIndependent()
}

// Transform maps the user value v to a pixel position. A degenerate
// scale maps everything to ratio 0.
func (s *Scale) Transform(v float64) float64 {
	ratio := 0.0
	if d := s.linMax - s.linMin; math.Abs(d) > 1e-100 {
		ratio = (s.Linearize(v) - s.linMin) / d
	}
	if s.flipped() {
		return s.maxPix - (s.maxPix-s.minPix)*ratio
	}
	return s.minPix + (s.maxPix-s.minPix)*ratio
}

// ReverseTransform maps the pixel position pix back to a user value.
func (s *Scale) ReverseTransform(pix float64) float64 {
	ratio := 0.0
	if span := s.maxPix - s.minPix; span != 0 {
		if s.flipped() {
			ratio = (s.maxPix - pix) / span
		} else {
			ratio = (pix - s.minPix) / span
		}
	}
	return s.DeLinearize(s.linMin + ratio*(s.linMax-s.linMin))
}

// TransformPoint maps the i'th data point with value v. Ordinal scales
// place the point at position i+1 unless useValue is set.
func (s *Scale) TransformPoint(useValue bool, i int, v float64) float64 {
	if s.kind.IsOrdinal() && !useValue {
		return s.Transform(float64(i + 1))
	}
	return s.Transform(v)
}
