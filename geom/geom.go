// Package geom provides the curves drawn on a panechart.Pane.
//
// Each geom has a required data field like XY and may map other
// aesthetics like color, dash pattern or size per data point through
// optional (Discrete)Aesthetic functions.
//
// On an ordinal x axis the i'th data point is drawn at position i+1
// unless OverrideOrdinal is set, then its x value is used as position.
// Points with a missing coordinate (see package data) are not drawn and
// break lines.
package geom

import (
	"math"
	"sort"

	"github.com/vdobler/panechart"
	"github.com/vdobler/panechart/data"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// mapped is a data point converted to a canvas point.
type mapped struct {
	i  int
	pt vg.Point
	ok bool // false for missing points
}

func mapPoints(p *panechart.Pane, c draw.Canvas, xy plotter.XYer, override, y2 bool) []mapped {
	pts := make([]mapped, xy.Len())
	for i := range pts {
		x, y := xy.XY(i)
		pts[i].i = i
		if data.IsMissing(y) || (data.IsMissing(x) && (override || !p.XAxis.Scale.Kind().IsOrdinal())) {
			continue
		}
		pts[i].pt = p.Point(c, override, i, x, y, y2)
		pts[i].ok = true
	}
	return pts
}

// lineStyler resolves the line style of segment i.
type lineStyler struct {
	Alpha  Aesthetic
	Color  DiscreteAesthetic
	Size   Aesthetic
	Stroke DiscreteAesthetic

	Default draw.LineStyle
}

func (ls lineStyler) style(p *panechart.Pane, i int) (draw.LineStyle, bool) {
	col, width, _ := p.GeomDefault()
	if ls.Default.Color != nil {
		col = ls.Default.Color
	}
	if ls.Default.Width > 0 {
		width = ls.Default.Width
	}
	col, ok := determineColor(col, i, ls.Color, ls.Alpha)
	if !ok {
		return draw.LineStyle{}, false
	}
	dashes := ls.Default.Dashes
	if ls.Stroke != nil {
		dashes = plotutil.Dashes(ls.Stroke(i))
	}
	if ls.Size != nil {
		width = vg.Length(ls.Size(i))
	}
	if width <= 0 {
		return draw.LineStyle{}, false
	}
	return draw.LineStyle{Color: col, Width: width, Dashes: dashes}, true
}

// strokePath draws the polyline through pts, one segment per pair of
// neighbours, styled after the first point of the pair.
func strokePath(p *panechart.Pane, c draw.Canvas, ls lineStyler, pts []mapped, corner func(a, b vg.Point) []vg.Point) {
	for k := 0; k+1 < len(pts); k++ {
		a, b := pts[k], pts[k+1]
		if !a.ok || !b.ok {
			continue
		}
		sty, ok := ls.style(p, a.i)
		if !ok {
			continue
		}
		line := []vg.Point{a.pt, b.pt}
		if corner != nil {
			line = append([]vg.Point{a.pt}, append(corner(a.pt, b.pt), b.pt)...)
		}
		c.StrokeLines(sty, c.ClipLinesXY(line)...)
	}
}

func xyRange(xy plotter.XYer, opts data.RangeOptions) (xmin, xmax, ymin, ymax float64) {
	return data.XYRange(xy, opts)
}

// ----------------------------------------------------------------------------
// Line

// Line connects the given points in data order through straight line
// segments. The aestetics map the individual line segments based on their
// first point.
type Line struct {
	XY plotter.XYer

	Alpha  Aesthetic
	Color  DiscreteAesthetic
	Size   Aesthetic
	Stroke DiscreteAesthetic

	// Sorted connects the points in order of their x values.
	Sorted bool

	OverrideOrdinal bool

	Default draw.LineStyle
}

func (l Line) styler() lineStyler {
	ls := lineStyler{Default: l.Default}
	CopyAesthetics(&ls, l, nil)
	return ls
}

// Draw implements panechart.Geom.
func (l Line) Draw(p *panechart.Pane, c draw.Canvas, y2 bool) {
	pts := mapPoints(p, c, l.XY, l.OverrideOrdinal, y2)
	if l.Sorted {
		sortByX(pts, l.XY)
	}
	strokePath(p, c, l.styler(), pts, nil)
}

// sortByX orders pts by the x values of the underlying data.
func sortByX(pts []mapped, xy plotter.XYer) {
	sort.SliceStable(pts, func(a, b int) bool {
		xa, _ := xy.XY(pts[a].i)
		xb, _ := xy.XY(pts[b].i)
		return xa < xb
	})
}

// DataRange implements panechart.Geom.
func (l Line) DataRange(opts data.RangeOptions) (xmin, xmax, ymin, ymax float64) {
	return xyRange(l.XY, opts)
}

// Len implements panechart.Geom.
func (l Line) Len() int { return l.XY.Len() }

// ----------------------------------------------------------------------------
// Step

// Step produces a stairstep plot of the given data in data order.
type Step struct {
	XY plotter.XYer

	Alpha  Aesthetic
	Color  DiscreteAesthetic
	Size   Aesthetic
	Stroke DiscreteAesthetic

	// Vertical changes the step to "vertical then horizontal".
	Vertical bool

	OverrideOrdinal bool

	Default draw.LineStyle
}

// Draw implements panechart.Geom.
func (s Step) Draw(p *panechart.Pane, c draw.Canvas, y2 bool) {
	ls := lineStyler{Default: s.Default}
	CopyAesthetics(&ls, s, nil)
	pts := mapPoints(p, c, s.XY, s.OverrideOrdinal, y2)
	strokePath(p, c, ls, pts, func(a, b vg.Point) []vg.Point {
		if s.Vertical {
			return []vg.Point{{X: a.X, Y: b.Y}}
		}
		return []vg.Point{{X: b.X, Y: a.Y}}
	})
}

// DataRange implements panechart.Geom. The corners of the steps lie
// inside the range of the data points.
func (s Step) DataRange(opts data.RangeOptions) (xmin, xmax, ymin, ymax float64) {
	return xyRange(s.XY, opts)
}

// Len implements panechart.Geom.
func (s Step) Len() int { return s.XY.Len() }

// ----------------------------------------------------------------------------
// Point

// Point draws points / symbols.
type Point struct {
	XY plotter.XYer

	Alpha Aesthetic
	Color DiscreteAesthetic
	Shape DiscreteAesthetic
	Size  Aesthetic

	OverrideOrdinal bool

	Default draw.GlyphStyle
}

// Draw implements panechart.Geom. Points outside c are dropped.
func (pt Point) Draw(p *panechart.Pane, c draw.Canvas, y2 bool) {
	baseColor, _, size := p.GeomDefault()
	if pt.Default.Color != nil {
		baseColor = pt.Default.Color
	}
	if pt.Default.Radius > 0 {
		size = pt.Default.Radius
	}

	shape := pt.Default.Shape
	if shape == nil {
		shape = draw.GlyphDrawer(draw.CircleGlyph{})
	}

	for _, m := range mapPoints(p, c, pt.XY, pt.OverrideOrdinal, y2) {
		if !m.ok || !c.Contains(m.pt) {
			continue
		}

		col, ok := determineColor(baseColor, m.i, pt.Color, pt.Alpha)
		if !ok {
			continue
		}

		if pt.Shape != nil {
			shape = plotutil.Shape(pt.Shape(m.i))
		}

		if pt.Size != nil {
			size = vg.Length(pt.Size(m.i))
			if size <= 0 {
				continue
			}
		}

		sty := draw.GlyphStyle{
			Color:  col,
			Radius: size,
			Shape:  shape,
		}
		c.DrawGlyph(sty, m.pt)
	}
}

// DataRange implements panechart.Geom.
func (pt Point) DataRange(opts data.RangeOptions) (xmin, xmax, ymin, ymax float64) {
	return xyRange(pt.XY, opts)
}

// Len implements panechart.Geom.
func (pt Point) Len() int { return pt.XY.Len() }

// ----------------------------------------------------------------------------
// Rectangle

// Rectangle draws rectangles with corners (X,Y) and (U,V) given in user
// values. If the border is drawn it is drawn inside the rectangle.
type Rectangle struct {
	XYUV data.XYUVer

	Alpha Aesthetic
	Color DiscreteAesthetic

	Default BoxStyle
}

// Draw implements panechart.Geom.
func (r Rectangle) Draw(p *panechart.Pane, c draw.Canvas, y2 bool) {
	fill := r.Default.Fill
	border := r.Default.Border
	if fill == nil && border.Color == nil {
		fill, _, _ = p.GeomDefault()
	}

	for i := 0; i < r.XYUV.Len(); i++ {
		x, y, u, v := r.XYUV.XYUV(i)
		if data.IsMissing(x) || data.IsMissing(y) || data.IsMissing(u) || data.IsMissing(v) {
			continue
		}
		min := p.Point(c, true, i, x, y, y2)
		max := p.Point(c, true, i, u, v, y2)
		rect := clipRect(vg.Rectangle{Min: min, Max: max}, c)
		if rect.Size().X <= 0 || rect.Size().Y <= 0 {
			continue
		}

		if fillCol, ok := determineColor(fill, i, r.Color, r.Alpha); ok {
			c.SetColor(fillCol)
			c.Fill(rect.Path())
		}
		if border.Width <= 0 || border.Color == nil {
			continue
		}
		if borderCol, ok := determineColor(border.Color, i, nil, r.Alpha); ok {
			w := 0.499 * border.Width
			rect.Min.X += w
			rect.Min.Y += w
			rect.Max.X -= w
			rect.Max.Y -= w
			c.SetColor(borderCol)
			c.SetLineWidth(border.Width)
			c.SetLineDash(border.Dashes, border.DashOffs)
			c.Stroke(rect.Path())
		}
	}
}

// DataRange implements panechart.Geom. A bounded range keeps the
// rectangles overlapping [XMin,XMax].
func (r Rectangle) DataRange(opts data.RangeOptions) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for i := 0; i < r.XYUV.Len(); i++ {
		x, y, u, v := r.XYUV.XYUV(i)
		if opts.IgnoreMissing && (data.IsMissing(x) || data.IsMissing(y) || data.IsMissing(u) || data.IsMissing(v)) {
			continue
		}
		for _, e := range []float64{x, u} {
			if !data.IsMissing(e) {
				xmin, xmax = math.Min(xmin, e), math.Max(xmax, e)
			}
		}
		if opts.Bounded && (math.Max(x, u) < opts.XMin || math.Min(x, u) > opts.XMax) {
			continue
		}
		for _, e := range []float64{y, v} {
			if !data.IsMissing(e) {
				ymin, ymax = math.Min(ymin, e), math.Max(ymax, e)
			}
		}
	}
	return xmin, xmax, ymin, ymax
}

// Len implements panechart.Geom.
func (r Rectangle) Len() int { return r.XYUV.Len() }

// ----------------------------------------------------------------------------
// Bar

// Bar draws rectangles standing on (or hanging from) Base.
type Bar struct {
	XY plotter.XYer

	Alpha Aesthetic
	Color DiscreteAesthetic

	// Base is the value the bars start from.
	Base float64

	Position string  // "dodge" (default) or "stack"
	GGap     float64 // Gap between groups as fraction of sample distance.
	BGap     float64 // Gap inside a group as fraction of sample distance.

	OverrideOrdinal bool

	Default BoxStyle
}

// Draw implements panechart.Geom.
func (b Bar) Draw(p *panechart.Pane, c draw.Canvas, y2 bool) {
	ordinal := p.XAxis.Scale.Kind().IsOrdinal() && !b.OverrideOrdinal
	rect := b.rects(ordinal)
	rect.Default = b.Default
	rect.Draw(p, c, y2)
}

// DataRange implements panechart.Geom.
func (b Bar) DataRange(opts data.RangeOptions) (xmin, xmax, ymin, ymax float64) {
	return b.rects(false).DataRange(opts)
}

// Len implements panechart.Geom.
func (b Bar) Len() int { return b.XY.Len() }

// rects converts the bars to rectangles. Ordinal bars are placed at the
// positions 1, 2, 3, ...
func (b Bar) rects(ordinal bool) Rectangle {
	xOf := func(i int) float64 {
		if ordinal {
			return float64(i + 1)
		}
		x, _ := b.XY.XY(i)
		return x
	}

	XYUV := make(data.XYUVs, b.XY.Len())
	for i := range XYUV {
		XYUV[i].X, XYUV[i].Y, XYUV[i].U, XYUV[i].V = data.Missing, data.Missing, data.Missing, data.Missing
	}

	g := b.groups(xOf)
	for _, x := range g.Xs() {
		is := g.Group[x] // indices of all bars to draw at x
		ymin, ymax := b.Base, b.Base
		for _, i := range is {
			center, halfwidth := g.Width(x, i)
			_, y := b.XY.XY(i)
			Y, V := b.Base, y
			if g.Position == "stack" {
				if y < b.Base {
					Y, V = ymin, ymin-(b.Base-y)
					ymin = V
				} else {
					Y, V = ymax, ymax+(y-b.Base)
					ymax = V
				}
			}
			XYUV[i].X, XYUV[i].Y = center-halfwidth, Y
			XYUV[i].U, XYUV[i].V = center+halfwidth, V
		}
	}

	rect := Rectangle{XYUV: XYUV}
	CopyAesthetics(&rect, b, nil)
	return rect
}

func (b Bar) groups(xOf func(int) float64) *BarGroups {
	position := b.Position
	if position == "" {
		position = "dodge"
	}
	g := NewBarGroups(position, b.GGap, b.BGap, true)
	for i := 0; i < b.XY.Len(); i++ {
		if _, y := b.XY.XY(i); data.IsMissing(y) {
			continue
		}
		x := xOf(i)
		if data.IsMissing(x) {
			continue
		}
		g.Record(x, i)
	}
	return g
}

// ----------------------------------------------------------------------------
// Segment

// Segment draws line segments between two points (X,Y) and (U,V) given
// in user values.
type Segment struct {
	XYUV data.XYUVer

	Alpha  Aesthetic
	Color  DiscreteAesthetic
	Size   Aesthetic
	Stroke DiscreteAesthetic

	Default draw.LineStyle
}

// Draw implements panechart.Geom.
func (s Segment) Draw(p *panechart.Pane, c draw.Canvas, y2 bool) {
	ls := lineStyler{Default: s.Default}
	CopyAesthetics(&ls, s, nil)
	for i := 0; i < s.XYUV.Len(); i++ {
		x, y, u, v := s.XYUV.XYUV(i)
		if data.IsMissing(x) || data.IsMissing(y) || data.IsMissing(u) || data.IsMissing(v) {
			continue
		}
		sty, ok := ls.style(p, i)
		if !ok {
			continue
		}
		a := p.Point(c, true, i, x, y, y2)
		b := p.Point(c, true, i, u, v, y2)
		c.StrokeLines(sty, c.ClipLinesXY([]vg.Point{a, b})...)
	}
}

// DataRange implements panechart.Geom.
func (s Segment) DataRange(opts data.RangeOptions) (xmin, xmax, ymin, ymax float64) {
	return Rectangle{XYUV: s.XYUV}.DataRange(opts)
}

// Len implements panechart.Geom.
func (s Segment) Len() int { return s.XYUV.Len() }

// ----------------------------------------------------------------------------
// HLine

// HLine draws horizontal reference (or rule) lines at the given Y values
// across the whole chart.
type HLine struct {
	Y plotter.Valuer

	Alpha  Aesthetic
	Color  DiscreteAesthetic
	Size   Aesthetic
	Stroke DiscreteAesthetic

	Default draw.LineStyle
}

// Draw implements panechart.Geom.
func (h HLine) Draw(p *panechart.Pane, c draw.Canvas, y2 bool) {
	N := h.Y.Len()
	xyuv := make(data.XYUVs, N)
	xscale := p.XAxis.Scale
	xmin, xmax := xscale.Min(), xscale.Max()
	for i := 0; i < N; i++ {
		y := h.Y.Value(i)
		xyuv[i].X, xyuv[i].Y, xyuv[i].U, xyuv[i].V = xmin, y, xmax, y
	}
	segment := Segment{XYUV: xyuv, Default: h.Default}
	CopyAesthetics(&segment, h, nil)
	segment.Draw(p, c, y2)
}

// DataRange implements panechart.Geom. Reference lines have no x extent.
func (h HLine) DataRange(opts data.RangeOptions) (xmin, xmax, ymin, ymax float64) {
	ymin, ymax = data.ValueRange(h.Y)
	return math.Inf(1), math.Inf(-1), ymin, ymax
}

// Len implements panechart.Geom. Reference lines do not occupy ordinal
// positions.
func (h HLine) Len() int { return 0 }

// ----------------------------------------------------------------------------
// VLine

// VLine draws vertical reference (or rule) lines at the given X values
// across the whole chart.
type VLine struct {
	X plotter.Valuer

	Alpha  Aesthetic
	Color  DiscreteAesthetic
	Size   Aesthetic
	Stroke DiscreteAesthetic

	Default draw.LineStyle
}

// Draw implements panechart.Geom.
func (v VLine) Draw(p *panechart.Pane, c draw.Canvas, y2 bool) {
	N := v.X.Len()
	xyuv := make(data.XYUVs, N)
	yscale := p.YAxis.Scale
	if y2 {
		yscale = p.Y2Axis.Scale
	}
	ymin, ymax := yscale.Min(), yscale.Max()
	for i := 0; i < N; i++ {
		x := v.X.Value(i)
		xyuv[i].X, xyuv[i].Y, xyuv[i].U, xyuv[i].V = x, ymin, x, ymax
	}
	segment := Segment{XYUV: xyuv, Default: v.Default}
	CopyAesthetics(&segment, v, nil)
	segment.Draw(p, c, y2)
}

// DataRange implements panechart.Geom.
func (v VLine) DataRange(opts data.RangeOptions) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = data.ValueRange(v.X)
	return xmin, xmax, math.Inf(1), math.Inf(-1)
}

// Len implements panechart.Geom.
func (v VLine) Len() int { return 0 }
