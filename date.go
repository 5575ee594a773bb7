package panechart

import (
	"fmt"
	"math"
	"time"

	"github.com/lestrrat/go-strftime"
)

// ----------------------------------------------------------------------------
// Day numbers

// xdateEpoch is 1899-12-30T00:00:00Z in Unix seconds, day 0 of the day
// number system used by Date scales.
const xdateEpoch = -2209161600

const msPerDay = 24 * 60 * 60 * 1000

// XDate converts t into a day number: days (and fractions of days) since
// 1899-12-30 UTC, with millisecond resolution.
func XDate(t time.Time) float64 {
	return float64(t.UnixMilli()-xdateEpoch*1000) / msPerDay
}

// XDateTime converts the day number d back into a UTC time. d is rounded
// to the nearest millisecond.
func XDateTime(d float64) time.Time {
	ms := math.Round(d*msPerDay) + xdateEpoch*1000
	return time.UnixMilli(int64(ms)).UTC()
}

// truncateDate rounds t down to a multiple of u.
func truncateDate(t time.Time, u DateUnit) time.Time {
	switch u {
	case Year:
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	case Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case Day:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return t.Truncate(unitDuration(u))
}

func unitDuration(u DateUnit) time.Duration {
	switch u {
	case Hour:
		return time.Hour
	case Minute:
		return time.Minute
	case Second:
		return time.Second
	}
	return time.Millisecond
}

// addDate adds n units u to t. Whole calendar units follow the calendar;
// a fractional year continues in months, a fractional month in days and
// a fractional day in hours.
func addDate(t time.Time, u DateUnit, n float64) time.Time {
	if r := math.Round(n); math.Abs(n-r) < 1e-9 {
		n = r
	}
	whole := math.Floor(n)
	frac := n - whole
	k := int(whole)
	switch u {
	case Year:
		t = t.AddDate(k, 0, 0)
		if frac != 0 {
			t = addDate(t, Month, frac*12)
		}
		return t
	case Month:
		t = t.AddDate(0, k, 0)
		if frac != 0 {
			t = addDate(t, Day, frac*30)
		}
		return t
	case Day:
		t = t.AddDate(0, 0, k)
		if frac != 0 {
			t = t.Add(time.Duration(frac * float64(24*time.Hour)))
		}
		return t
	}
	return t.Add(time.Duration(n * float64(unitDuration(u))))
}

// unitsBetween counts the units u from t1 to t2. Years and months are
// counted on the calendar, ignoring the position inside the unit.
func unitsBetween(t1, t2 time.Time, u DateUnit) float64 {
	switch u {
	case Year:
		return float64(t2.Year() - t1.Year())
	case Month:
		return float64(int(t2.Month())-int(t1.Month())) + 12*float64(t2.Year()-t1.Year())
	}
	return (XDate(t2) - XDate(t1)) / u.Days()
}

// ----------------------------------------------------------------------------
// Step ladder

// A dateRung fixes the units, steps and label format used for date
// ranges spanning more than span days.
type dateRung struct {
	span         float64
	major, minor DateUnit
	format       string

	// majorStep converts the raw step in days into major units.
	majorStep func(tempStep float64) float64
	// minorStep returns the minor step in minor units.
	minorStep func(major, rng, target float64) float64
}

func snapUp(v float64, steps ...float64) float64 {
	for _, s := range steps {
		if v <= s {
			return s
		}
	}
	return v
}

func fixedStep(v float64) func(major, rng, target float64) float64 {
	return func(float64, float64, float64) float64 { return v }
}

var dateLadder = []dateRung{
	{1825, Year, Year, "%Y",
		func(t float64) float64 { return math.Max(1, math.Ceil(CalcStepSize(t/365, 1))) },
		func(major, _, target float64) float64 {
			if major == 1 {
				return 0.25
			}
			return CalcStepSize(major, target)
		}},
	{730, Year, Month, "%b-%Y",
		func(t float64) float64 { return math.Max(1, math.Ceil(t/365)) },
		func(_, rng, target float64) float64 {
			return snapUp(math.Ceil(rng/(target*3)/30), 1, 2, 3, 6, 12)
		}},
	{300, Month, Month, "%b-%Y",
		func(t float64) float64 { return snapUp(math.Ceil(t/30), 1, 2, 3, 6, 12) },
		fixedStep(1)},
	{10, Day, Day, "%d-%b",
		func(t float64) float64 { return math.Max(1, math.Ceil(t)) },
		fixedStep(1)},
	{3, Day, Hour, "%d-%b %H:%M",
		func(t float64) float64 { return math.Max(1, math.Ceil(t)) },
		fixedStep(6)},
	{0.4167, Hour, Hour, "%H:%M",
		func(t float64) float64 { return snapUp(math.Ceil(t*24), 1, 2, 3, 4, 6, 12, 24) },
		fixedStep(1)},
	{0.125, Hour, Minute, "%H:%M",
		func(t float64) float64 { return snapUp(math.Ceil(t*24), 1, 2, 3, 4, 6, 12, 24) },
		fixedStep(15)},
	{0.00694, Minute, Minute, "%H:%M",
		func(t float64) float64 { return snapUp(math.Ceil(t*24*60), 1, 2, 5, 10, 15, 30, 60) },
		fixedStep(1)},
	{0.0020833, Minute, Second, "%M:%S",
		func(t float64) float64 { return snapUp(math.Ceil(t*24*60), 1, 2, 5, 10, 15, 30, 60) },
		fixedStep(15)},
	{3.472e-5, Second, Second, "%M:%S",
		func(t float64) float64 { return snapUp(math.Ceil(t*24*60*60), 1, 2, 5, 10, 15, 30, 60) },
		fixedStep(1)},
}

// millisecondRung handles everything below the last rung of dateLadder.
var millisecondRung = dateRung{
	0, Millisecond, Millisecond, "%M:%S",
	func(t float64) float64 { return CalcStepSize(t*msPerDay, 1) },
	func(major, _, target float64) float64 { return CalcStepSize(major, target) },
}

// dateRungFor returns the first rung of the ladder whose span is
// exceeded by rng (in days).
func dateRungFor(rng float64) dateRung {
	for _, r := range dateLadder {
		if rng > r.span {
			return r
		}
	}
	return millisecondRung
}

// calcDateStepSize selects units, steps and format for a date range of
// rng days, honoring pinned values.
func (s *Scale) calcDateStepSize(rng float64) {
	r := dateRungFor(rng)
	if s.formatAuto {
		s.format = r.format
	}
	if !s.majorStepAuto {
		return
	}
	s.majorUnit = r.major
	s.majorStep = r.majorStep(rng / s.targetSteps())
	if s.minorStepAuto {
		s.minorUnit = r.minor
		s.minorStep = r.minorStep(s.majorStep, rng, s.targetMinorSteps())
	}
}

// CalcEvenStepDate snaps the day number date to a boundary of the major
// unit: downwards for direction < 0, upwards otherwise. Dates already on
// a boundary are returned unchanged.
func (s *Scale) CalcEvenStepDate(date float64, direction int) float64 {
	t := XDateTime(date)
	even := truncateDate(t, s.majorUnit)
	if direction > 0 && even.Before(t) {
		even = addDate(even, s.majorUnit, 1)
	}
	return XDate(even)
}

// ----------------------------------------------------------------------------
// Date kind behavior

func pickDate(s *Scale, rangeMin, rangeMax float64) {
	if s.minAuto && s.maxAuto && math.Abs(rangeMax-rangeMin) < 1e-20 {
		rangeMin -= 0.2
		rangeMax += 0.2
	}
	s.pickRange(rangeMin, rangeMax)

	s.calcDateStepSize(s.max - s.min)

	if s.minAuto {
		s.min = s.CalcEvenStepDate(s.min, -1)
	}
	if s.maxAuto {
		s.max = s.CalcEvenStepDate(s.max, 1)
	}
	if s.magAuto {
		s.mag = 0
	}
	s.decimals = 0
}

func dateBaseTic(s *Scale) float64 {
	return s.CalcEvenStepDate(s.min, 1)
}

func dateMajorTic(s *Scale, base float64, i int) float64 {
	return XDate(addDate(XDateTime(base), s.majorUnit, float64(i)*s.majorStep))
}

func dateNumTics(s *Scale) int {
	if !(s.majorStep > 0) {
		return 1
	}
	units := unitsBetween(XDateTime(s.min), XDateTime(s.max), s.majorUnit)
	return clampTics(units/s.majorStep + 1.001)
}

func dateLabel(s *Scale, v float64) string {
	return formatDate(s.format, s.majorUnit, XDateTime(v))
}

// formatDate renders t with the strftime pattern. Millisecond steps
// append the milliseconds as strftime has no directive for them.
func formatDate(pattern string, unit DateUnit, t time.Time) string {
	label, err := strftime.Format(pattern, t)
	if err != nil {
		return t.Format(time.RFC3339)
	}
	if unit == Millisecond {
		label += fmt.Sprintf(".%03d", t.Nanosecond()/int(time.Millisecond))
	}
	return label
}
