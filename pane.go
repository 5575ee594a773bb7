package panechart

import (
	"image/color"
	"math"

	"github.com/vdobler/panechart/data"
	"github.com/vdobler/panechart/internal/logging"
	"github.com/vdobler/panechart/layout"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Geom is a curve drawn on a Pane.
type Geom interface {
	// Draw renders the geom onto c which is clipped to the chart
	// rectangle of p. If y2 is set the geom uses the Y2 axis.
	Draw(p *Pane, c draw.Canvas, y2 bool)

	// DataRange reports the range of the data honoring opts. Unset
	// minima are +Inf, unset maxima -Inf.
	DataRange(opts data.RangeOptions) (xmin, xmax, ymin, ymax float64)

	// Len is the number of data points.
	Len() int
}

// Space is the room reserved around the chart of a pane. Text extents
// are not measured, these constants stand in for them.
type Space struct {
	Title float64 // height of the pane title
	XAxis float64 // height of x tick labels and x axis title
	YAxis float64 // width of y tick labels and y axis title
	Pad   float64 // free border inside the pane rectangle
}

// DefaultSpace fits the fonts of DefaultStyle(12).
var DefaultSpace = Space{Title: 20, XAxis: 36, YAxis: 56, Pad: 6}

// ----------------------------------------------------------------------------
// Pane

// A Pane is a graph pane: a chart area with an x, a y and an optional
// second y axis. A Pane is a layout.Slot.
type Pane struct {
	Title string

	// Rect is assigned by the layout, Chart is derived from Rect.
	Rect  layout.Rect
	Chart layout.Rect

	XAxis, YAxis, Y2Axis *Axis

	// IgnoreMissing drops a point completely from range aggregation if
	// one of its coordinates is missing.
	IgnoreMissing bool

	// IsBoundedRanges restricts the y range to points whose x lies
	// inside the x scale.
	IsBoundedRanges bool

	Space Space

	geoms []Geom
	onY2  []bool
	style *Style
}

// NewPane returns a pane with linear axes. The Y2 axis is hidden.
func NewPane(title string) *Pane {
	p := &Pane{
		Title:  title,
		XAxis:  NewAxis(XAxis, Linear),
		YAxis:  NewAxis(YAxis, Linear),
		Y2Axis: NewAxis(Y2Axis, Linear),
		Space:  DefaultSpace,
	}
	p.Y2Axis.IsVisible = false
	return p
}

// IsSplitter implements layout.Slot.
func (p *Pane) IsSplitter() bool { return false }

// Add appends g plotted against the Y axis.
func (p *Pane) Add(g Geom) {
	p.geoms = append(p.geoms, g)
	p.onY2 = append(p.onY2, false)
}

// AddY2 appends g plotted against the Y2 axis.
func (p *Pane) AddY2(g Geom) {
	p.geoms = append(p.geoms, g)
	p.onY2 = append(p.onY2, true)
}

// Geoms returns the geoms in drawing order.
func (p *Pane) Geoms() []Geom { return p.geoms }

// Rescale aggregates the data ranges of all geoms and picks the scales.
// The x scale is picked first as bounded ranges depend on it. An ordinal
// x axis spans the point positions 1 to the longest geom.
func (p *Pane) Rescale() {
	p.XAxis.ResetData()
	p.YAxis.ResetData()
	p.Y2Axis.ResetData()

	opts := data.RangeOptions{IgnoreMissing: p.IgnoreMissing}
	ordinal := p.XAxis.Scale.Kind().IsOrdinal()
	maxLen := 0
	for _, g := range p.geoms {
		if n := g.Len(); n > maxLen {
			maxLen = n
		}
		if ordinal {
			continue
		}
		xmin, xmax, _, _ := g.DataRange(opts)
		p.XAxis.UpdateData(xmin, xmax)
	}
	if ordinal && maxLen > 0 {
		p.XAxis.UpdateData(1, float64(maxLen))
	}
	p.XAxis.PickScale()

	if p.IsBoundedRanges && !ordinal {
		opts.Bounded = true
		opts.XMin, opts.XMax = p.XAxis.Scale.Min(), p.XAxis.Scale.Max()
	}
	for i, g := range p.geoms {
		_, _, ymin, ymax := g.DataRange(opts)
		if p.onY2[i] {
			p.Y2Axis.UpdateData(ymin, ymax)
		} else {
			p.YAxis.UpdateData(ymin, ymax)
		}
	}
	p.YAxis.PickScale()
	p.Y2Axis.PickScale()

	logging.L().Debug("rescale pane", "title", p.Title, "geoms", len(p.geoms),
		"x", p.XAxis.Scale.Interval().String(),
		"y", p.YAxis.Scale.Interval().String(),
		"y2", p.Y2Axis.Scale.Interval().String())
}

// SetRect implements layout.Slot. It derives the chart rectangle and
// the pixel ranges of the scales from r.
func (p *Pane) SetRect(r layout.Rect) {
	p.Rect = r
	sp := p.Space
	left, top, right, bottom := sp.Pad, sp.Pad, sp.Pad, sp.Pad
	if p.Title != "" {
		top += sp.Title
	}
	if p.XAxis.IsVisible {
		bottom += sp.XAxis
	}
	if p.YAxis.IsVisible {
		left += sp.YAxis
	}
	if p.Y2Axis.IsVisible {
		right += sp.YAxis
	}
	p.Chart = r.Inset(left, top, right, bottom)

	p.XAxis.Scale.SetPixelRange(p.Chart.X, p.Chart.Right())
	p.YAxis.Scale.SetPixelRange(p.Chart.Y, p.Chart.Bottom())
	p.Y2Axis.Scale.SetPixelRange(p.Chart.Y, p.Chart.Bottom())
}

// MapXY maps the i'th data point (x,y) to screen coordinates. Ordinal
// axes place the point at its position i+1.
func (p *Pane) MapXY(i int, x, y float64, y2 bool) (sx, sy float64) {
	return p.mapXY(false, i, x, y, y2)
}

// MapValueXY is MapXY for geoms whose values override the ordinal
// positions.
func (p *Pane) MapValueXY(x, y float64, y2 bool) (sx, sy float64) {
	return p.mapXY(true, 0, x, y, y2)
}

func (p *Pane) mapXY(useValue bool, i int, x, y float64, y2 bool) (sx, sy float64) {
	ya := p.YAxis
	if y2 {
		ya = p.Y2Axis
	}
	return p.XAxis.Scale.TransformPoint(useValue, i, x), ya.Scale.TransformPoint(useValue, i, y)
}

// Point is MapXY converted to a point on the chart canvas c as returned
// by ChartCanvas.
func (p *Pane) Point(c draw.Canvas, useValue bool, i int, x, y float64, y2 bool) vg.Point {
	sx, sy := p.mapXY(useValue, i, x, y, y2)
	return vg.Point{
		X: c.Min.X + vg.Length(sx-p.Chart.X),
		Y: c.Max.Y - vg.Length(sy-p.Chart.Y),
	}
}

// ChartCanvas returns c restricted to the chart rectangle.
func (p *Pane) ChartCanvas(c draw.Canvas) draw.Canvas {
	return draw.Canvas{Canvas: c.Canvas, Rectangle: CanvasRect(c, p.Chart)}
}

// ----------------------------------------------------------------------------
// Drawing

// GeomDefault returns the color, line width and glyph size used for geoms
// which do not set their own. It is valid during Draw.
func (p *Pane) GeomDefault() (col color.Color, width, size vg.Length) {
	col, width, size = color.Black, 1, 3
	if p.style == nil {
		return col, width, size
	}
	d := p.style.GeomDefault
	if d.Color != nil {
		col = d.Color
	}
	if d.LineWidth > 0 {
		width = d.LineWidth
	}
	if d.Size > 0 {
		size = d.Size
	}
	return col, width, size
}

// Draw renders the pane: backgrounds, grid, geoms, axes and the title.
func (p *Pane) Draw(c draw.Canvas, sty Style) {
	p.style = &sty
	fill(c, p.Rect, sty.Pane.Background)
	if sty.Pane.Border.Color != nil && sty.Pane.Border.Width > 0 {
		c.SetLineStyle(sty.Pane.Border)
		c.Stroke(CanvasRect(c, p.Rect).Path())
	}
	fill(c, p.Chart, sty.Chart.Background)

	p.drawGrid(c, sty)

	chart := p.ChartCanvas(c)
	for i, g := range p.geoms {
		g.Draw(p, chart, p.onY2[i])
	}

	if sty.Chart.Border.Color != nil {
		c.SetLineStyle(sty.Chart.Border)
		c.Stroke(CanvasRect(c, p.Chart).Path())
	}

	if p.XAxis.IsVisible {
		p.drawXAxis(c, sty.XAxis)
	}
	if p.YAxis.IsVisible {
		p.drawYAxis(c, sty.YAxis, p.YAxis, false)
	}
	if p.Y2Axis.IsVisible {
		y2 := sty.YAxis
		y2.MajorTick.Label.XAlign = draw.XLeft
		y2.Title.Rotation = -math.Pi / 2
		p.drawYAxis(c, y2, p.Y2Axis, true)
	}

	if p.Title != "" {
		at := CanvasPoint(c, p.Rect.X+p.Rect.Width/2, p.Rect.Y+p.Space.Pad)
		c.FillText(sty.Pane.Title, at, p.Title)
	}
}

func fill(c draw.Canvas, r layout.Rect, col color.Color) {
	if col == nil {
		return
	}
	c.SetColor(col)
	c.Fill(CanvasRect(c, r).Path())
}

func (p *Pane) drawGrid(c draw.Canvas, sty Style) {
	left, right := vg.Length(p.Chart.X), vg.Length(p.Chart.Right())
	top, bottom := c.Max.Y-vg.Length(p.Chart.Y), c.Max.Y-vg.Length(p.Chart.Bottom())

	vertical := func(ls draw.LineStyle, ticks []float64) {
		for _, v := range ticks {
			x := c.Min.X + vg.Length(p.XAxis.Scale.Transform(v))
			c.StrokeLine2(ls, x, bottom, x, top)
		}
	}
	horizontal := func(ls draw.LineStyle, s *Scale, ticks []float64) {
		for _, v := range ticks {
			y := c.Max.Y - vg.Length(s.Transform(v))
			c.StrokeLine2(ls, c.Min.X+left, y, c.Min.X+right, y)
		}
	}

	if p.XAxis.ShowMinorGrid {
		vertical(sty.Grid.Minor, p.XAxis.Scale.MinorTicks())
	}
	if p.XAxis.ShowGrid {
		vertical(sty.Grid.Major, p.XAxis.Scale.MajorTicks())
	}
	for _, a := range []*Axis{p.YAxis, p.Y2Axis} {
		if !a.IsVisible {
			continue
		}
		if a.ShowMinorGrid {
			horizontal(sty.Grid.Minor, a.Scale, a.Scale.MinorTicks())
		}
		if a.ShowGrid {
			horizontal(sty.Grid.Major, a.Scale, a.Scale.MajorTicks())
		}
	}
}

func (p *Pane) drawXAxis(c draw.Canvas, sty AxisStyle) {
	s := p.XAxis.Scale
	y0 := c.Max.Y - vg.Length(p.Chart.Bottom())
	c.StrokeLine2(sty.Line, c.Min.X+vg.Length(p.Chart.X), y0, c.Min.X+vg.Length(p.Chart.Right()), y0)

	for _, v := range s.MinorTicks() {
		x := c.Min.X + vg.Length(s.Transform(v))
		c.StrokeLine2(sty.MinorTick.LineStyle, x, y0, x, y0-sty.MinorTick.Length)
	}
	for _, v := range s.MajorTicks() {
		x := c.Min.X + vg.Length(s.Transform(v))
		c.StrokeLine2(sty.MajorTick.LineStyle, x, y0, x, y0-sty.MajorTick.Length)
		if label := s.MakeLabel(v); label != "" {
			c.FillText(sty.MajorTick.Label, vg.Point{X: x, Y: y0 - sty.MajorTick.Length - 2}, label)
		}
	}

	if title := p.XAxis.FullTitle(); title != "" {
		at := CanvasPoint(c, p.Chart.X+p.Chart.Width/2, p.Chart.Bottom()+p.Space.XAxis)
		c.FillText(sty.Title, at, title)
	}
}

func (p *Pane) drawYAxis(c draw.Canvas, sty AxisStyle, a *Axis, right bool) {
	s := a.Scale
	x0, dir := c.Min.X+vg.Length(p.Chart.X), vg.Length(-1)
	titleX := p.Chart.X - p.Space.YAxis
	if right {
		x0, dir = c.Min.X+vg.Length(p.Chart.Right()), 1
		titleX = p.Chart.Right() + p.Space.YAxis
	}
	top, bottom := c.Max.Y-vg.Length(p.Chart.Y), c.Max.Y-vg.Length(p.Chart.Bottom())
	c.StrokeLine2(sty.Line, x0, bottom, x0, top)

	for _, v := range s.MinorTicks() {
		y := c.Max.Y - vg.Length(s.Transform(v))
		c.StrokeLine2(sty.MinorTick.LineStyle, x0, y, x0+dir*sty.MinorTick.Length, y)
	}
	for _, v := range s.MajorTicks() {
		y := c.Max.Y - vg.Length(s.Transform(v))
		c.StrokeLine2(sty.MajorTick.LineStyle, x0, y, x0+dir*sty.MajorTick.Length, y)
		if label := s.MakeLabel(v); label != "" {
			c.FillText(sty.MajorTick.Label, vg.Point{X: x0 + dir*(sty.MajorTick.Length+2), Y: y}, label)
		}
	}

	if title := a.FullTitle(); title != "" {
		at := CanvasPoint(c, titleX, p.Chart.Y+p.Chart.Height/2)
		c.FillText(sty.Title, at, title)
	}
}
