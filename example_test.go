package panechart_test

import (
	"fmt"
	"io"
	"time"

	"github.com/vdobler/panechart"
	"github.com/vdobler/panechart/geom"
	"github.com/vdobler/panechart/layout"
	"gonum.org/v1/plot/plotter"
)

func ExampleScale_PickScale() {
	s := panechart.NewScale(panechart.Linear, panechart.YAxis)
	s.PickScale(0, 100)
	fmt.Println(s.Min(), s.Max(), s.MajorStep())

	l := panechart.NewScale(panechart.Log, panechart.YAxis)
	l.PickScale(1, 10000)
	fmt.Println(len(l.MajorTicks()), l.MakeLabel(10000))
	// Output:
	// 0 101 5
	// 5 10,000
}

func ExampleScale_date() {
	day := func(m time.Month, d int) float64 {
		return panechart.XDate(time.Date(2020, m, d, 0, 0, 0, 0, time.UTC))
	}
	s := panechart.NewScale(panechart.Date, panechart.XAxis)
	s.PickScale(day(time.January, 1), day(time.January, 31))
	ticks := s.MajorTicks()
	fmt.Println(s.MajorStep(), s.MajorUnit(), s.MakeLabel(ticks[0]), s.MakeLabel(ticks[len(ticks)-1]))
	// Output:
	// 2 day 31-Dec 01-Feb
}

func ExampleWritePNG() {
	m := layout.NewMasterPane(layout.Rect{Width: 800, Height: 400})

	load := panechart.NewPane("Load")
	load.YAxis.ShowGrid = true
	load.Add(geom.Line{XY: plotter.XYs{{X: 1, Y: 3}, {X: 2, Y: 5}, {X: 3, Y: 4}}})
	load.Add(geom.HLine{Y: plotter.Values{4.5}})

	jobs := panechart.NewPane("Jobs")
	jobs.XAxis.Scale.SetKind(panechart.Text)
	jobs.XAxis.Scale.TextLabels = []string{"mon", "tue", "wed"}
	jobs.Add(geom.Bar{XY: plotter.XYs{{X: 1, Y: 7}, {X: 2, Y: 2}, {X: 3, Y: 5}}})

	m.Add(load, jobs)
	m.SetCanned(layout.SingleRow)
	if err := panechart.WritePNG(io.Discard, m, "Overview", panechart.DefaultStyle(10)); err != nil {
		fmt.Println(err)
	}
}
