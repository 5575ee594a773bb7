package panechart

import (
	"gonum.org/v1/plot"
)

// Ticker returns a plot.Ticker producing the major and minor ticks of s.
// This allows s to drive the axes of a plain gonum plot.Plot.
func (s *Scale) Ticker() plot.Ticker {
	return scaleTicker{s}
}

type scaleTicker struct {
	s *Scale
}

// Ticks implements plot.Ticker. Ticks outside [min,max] are dropped.
func (t scaleTicker) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for _, v := range t.s.MajorTicks() {
		if v >= min && v <= max {
			ticks = append(ticks, plot.Tick{Value: v, Label: t.s.MakeLabel(v)})
		}
	}
	for _, v := range t.s.MinorTicks() {
		if v >= min && v <= max {
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}
