package panechart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a master pane and its panes are drawn.
type Style struct {
	Background color.Color

	Title draw.TextStyle

	Pane struct {
		Background color.Color
		Border     draw.LineStyle
		Title      draw.TextStyle
	}

	Chart struct {
		Background color.Color
		Border     draw.LineStyle
	}

	Splitter struct {
		Color color.Color
	}

	Grid struct {
		Major draw.LineStyle
		Minor draw.LineStyle
	}

	XAxis AxisStyle
	YAxis AxisStyle

	// GeomDefault is used by geoms which do not set their own style.
	GeomDefault struct {
		Color     color.Color
		LineWidth vg.Length
		Size      vg.Length
	}
}

// AxisStyle controls the look of one axis.
type AxisStyle struct {
	Title     draw.TextStyle
	Line      draw.LineStyle
	MajorTick struct {
		draw.LineStyle
		Length vg.Length
		Label  draw.TextStyle
	}
	MinorTick struct {
		draw.LineStyle
		Length vg.Length
	}
}

// DefaultStyle returns a Style with a white chart on light gray panes.
// The baseFontSize is the font size for axis titles, the titles are a
// bit bigger, tick labels a bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		panic(err)
	}
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}
	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White

	s.Title.Color = color.Black
	s.Title.Font = titleFont
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YTop

	s.Pane.Background = color.Gray16{0xf4f4}
	s.Pane.Title.Color = color.Black
	s.Pane.Title.Font = baseFont
	s.Pane.Title.XAlign = draw.XCenter
	s.Pane.Title.YAlign = draw.YTop

	s.Chart.Background = color.White
	s.Chart.Border.Color = color.Gray16{0x1111}
	s.Chart.Border.Width = vg.Length(1)

	s.Splitter.Color = color.Gray16{0xbbbb}

	s.Grid.Major.Color = color.Gray16{0xdddd}
	s.Grid.Major.Width = vg.Length(1)
	s.Grid.Minor.Color = color.Gray16{0xeeee}
	s.Grid.Minor.Width = vg.Length(0.5)

	axis := func(a *AxisStyle) {
		a.Title.Color = color.Black
		a.Title.Font = baseFont
		a.Line.Color = color.Gray16{0x1111}
		a.Line.Width = vg.Length(1)
		a.MajorTick.Color = color.Gray16{0x1111}
		a.MajorTick.Width = vg.Length(1)
		a.MajorTick.Length = vg.Length(5)
		a.MajorTick.Label.Color = color.Black
		a.MajorTick.Label.Font = tickFont
		a.MinorTick.Color = color.Gray16{0x1111}
		a.MinorTick.Width = vg.Length(0.5)
		a.MinorTick.Length = vg.Length(3)
	}

	axis(&s.XAxis)
	s.XAxis.Title.XAlign = draw.XCenter
	s.XAxis.Title.YAlign = draw.YAlignment(0.3)
	s.XAxis.MajorTick.Label.XAlign = draw.XCenter
	s.XAxis.MajorTick.Label.YAlign = draw.YTop

	axis(&s.YAxis)
	s.YAxis.Title.Rotation = math.Pi / 2
	s.YAxis.Title.XAlign = draw.XCenter
	s.YAxis.Title.YAlign = draw.YTop
	s.YAxis.MajorTick.Label.XAlign = draw.XRight
	s.YAxis.MajorTick.Label.YAlign = -0.3 // draw.YCenter

	s.GeomDefault.Color = color.RGBA{0x1f, 0x4e, 0x9c, 0xff}
	s.GeomDefault.LineWidth = vg.Length(1.5)
	s.GeomDefault.Size = vg.Length(3)

	return s
}
