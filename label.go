package panechart

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// MakeLabel returns the tick label of the user value v. Numbers are
// divided by 10^Magnitude() first; ordinal kinds label the position
// nearest to v.
func (s *Scale) MakeLabel(v float64) string {
	return s.behavior().label(s, v)
}

// MagnitudePrefix returns the SI prefix ("k", "M", "m", ...) of the
// current magnitude or "" if labels are not scaled.
func (s *Scale) MagnitudePrefix() string {
	if s.mag == 0 {
		return ""
	}
	_, prefix := humanize.ComputeSI(math.Pow10(s.mag))
	return prefix
}

// numberPattern returns the FormatFloat pattern with the given number of
// decimals and a thousands separator.
func numberPattern(decimals int) string {
	return "#,###." + strings.Repeat("#", decimals)
}

// formatNumber renders v with a FormatFloat pattern. FormatFloat panics
// on malformed patterns and overflows beyond int64; both fall back to
// strconv.
func formatNumber(pattern string, v float64) (label string) {
	if math.Abs(v) >= 1e15 {
		return strconv.FormatFloat(v, 'g', 6, 64)
	}
	defer func() {
		if recover() != nil {
			label = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}()
	return humanize.FormatFloat(pattern, v)
}

func numericLabel(s *Scale, v float64) string {
	return formatNumber(s.format, v/math.Pow10(s.mag))
}

func logLabel(s *Scale, v float64) string {
	if !s.formatAuto {
		return formatNumber(s.format, v)
	}
	if v < 1e-9 {
		return strconv.FormatFloat(v, 'g', 4, 64)
	}
	dec := 0
	if v < 1 {
		dec = int(math.Ceil(-math.Log10(v) - 1e-9))
	}
	return formatNumber(numberPattern(dec), v)
}

// position returns the 0-based index of the ordinal position nearest
// to v, or -1 if there is no such position among n.
func position(v float64, n int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return -1
	}
	i := int(math.Round(v)) - 1
	if i < 0 || i >= n {
		return -1
	}
	return i
}

func ordinalLabel(s *Scale, v float64) string {
	return formatNumber(numberPattern(0), math.Round(v))
}

func textLabel(s *Scale, v float64) string {
	if i := position(v, len(s.TextLabels)); i >= 0 {
		return s.TextLabels[i]
	}
	return ""
}

func dateOrdinalLabel(s *Scale, v float64) string {
	if i := position(v, len(s.OrdinalValues)); i >= 0 {
		return formatDate(s.format, s.majorUnit, XDateTime(s.OrdinalValues[i]))
	}
	return ""
}

func linearOrdinalLabel(s *Scale, v float64) string {
	if i := position(v, len(s.OrdinalValues)); i >= 0 {
		return formatNumber(s.format, s.OrdinalValues[i])
	}
	return ""
}
