package geom

import (
	"image/color"
	"math"
	"reflect"
	"sort"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Aesthetic maps data point i to a continuous aesthetic like an alpha
// value in [0,1] or a size in points.
type Aesthetic func(i int) float64

// DiscreteAesthetic maps data point i to a discrete aesthetic like a
// color, symbol or dash pattern from gonum's plotutil palettes.
type DiscreteAesthetic func(i int) int

// CopyAesthetics copies the non-nil aesthetics from src to dst.
// The destination must be a pointer to a struct, the source may be a struct
// or a pointer to one.
// The index function can be used to reindex the aestetics functions between
// src and dst.
func CopyAesthetics(dst, src interface{}, index func(int) int) {
	srcVal := reflect.ValueOf(src)
	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	dstVal := reflect.ValueOf(dst).Elem()

	for _, aes := range []string{"Alpha", "Color", "Shape", "Size", "Stroke"} {
		srcAes := srcVal.FieldByName(aes)
		if !srcAes.IsValid() {
			continue
		}
		dstAes := dstVal.FieldByName(aes)
		if !dstAes.IsValid() || dstAes.Type() != srcAes.Type() {
			continue
		}

		if index == nil || srcAes.IsNil() {
			dstAes.Set(srcAes)
			continue
		}

		f := reflect.MakeFunc(srcAes.Type(), func(in []reflect.Value) []reflect.Value {
			n := int(in[0].Int())
			return srcAes.Call([]reflect.Value{reflect.ValueOf(index(n))})
		})
		dstAes.Set(f)
	}
}

// BoxStyle combines a line style for the border with a fill color for
// the interior of a geom.
type BoxStyle struct {
	Fill   color.Color
	Border draw.LineStyle
}

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// clipRect clips rect to canvas. The returned rectangle is canonical and
// empty if rect lies completely outside.
func clipRect(rect vg.Rectangle, canvas draw.Canvas) vg.Rectangle {
	rect = CanonicRectangle(rect)
	limit := CanonicRectangle(canvas.Rectangle)

	if rect.Min.X < limit.Min.X {
		rect.Min.X = limit.Min.X
	}
	if rect.Min.Y < limit.Min.Y {
		rect.Min.Y = limit.Min.Y
	}
	if rect.Max.X > limit.Max.X {
		rect.Max.X = limit.Max.X
	}
	if rect.Max.Y > limit.Max.Y {
		rect.Max.Y = limit.Max.Y
	}
	if rect.Max.X < rect.Min.X {
		rect.Max.X = rect.Min.X
	}
	if rect.Max.Y < rect.Min.Y {
		rect.Max.Y = rect.Min.Y
	}
	return rect
}

// determineColor applies the color and alpha aesthetics of point i to
// col. It reports false if the point should not be drawn.
func determineColor(col color.Color, i int, colorF DiscreteAesthetic, alphaF Aesthetic) (color.Color, bool) {
	if colorF != nil {
		col = plotutil.Color(colorF(i))
	}

	if col == nil {
		return col, false
	}

	if alphaF != nil {
		alpha := alphaF(i)
		if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
			return col, false
		}
		r, g, b, a := col.RGBA()
		col = color.NRGBA64{
			uint16(r),
			uint16(g),
			uint16(b),
			uint16(float64(a) * alpha),
		}
	}

	return col, true
}

// ----------------------------------------------------------------------------
// BarGroups helps determing bar sizes for Bar

// BarGroups collects the points of a bar geom by x value.
type BarGroups struct {
	Group    map[float64][]int
	Position string  // "dodge" or "stack"
	Ggap     float64 // between groups
	Dgap     float64 // between bars inside a group if dodged
	Same     bool    // Same width for all bars?

	xs []float64
	md float64
	lg int
}

// NewBarGroups creates a BarGroups for dodged bar positioning with
// sensible gaps between bars.
func NewBarGroups(position string, groupGap, barGap float64, sameWidth bool) *BarGroups {
	if groupGap == 0 {
		groupGap = 0.2
	}
	return &BarGroups{
		Group:    make(map[float64][]int),
		Position: position,
		Ggap:     groupGap,
		Dgap:     barGap,
		Same:     sameWidth,
	}
}

// Record the point i with the given x coordinate.
func (bg *BarGroups) Record(x float64, i int) {
	bg.Group[x] = append(bg.Group[x], i)
	bg.xs = nil
}

// Width returns the center and the halfwidth for the bar i at x. Unknown
// bars get a zero width.
func (bg *BarGroups) Width(x float64, i int) (center float64, halfwidth float64) {
	minDelta := bg.MinDelta()
	nonGapWidth := minDelta * (1 - bg.Ggap)

	if bg.Position != "dodge" {
		return x, nonGapWidth / 2
	}

	n := len(bg.Group[x])
	if bg.Same {
		n = bg.MaxGroupSize()
	}
	if n == 0 {
		return x, 0
	}
	halfwidth = nonGapWidth / float64(2*n)

	g := -1
	for j, k := range bg.Group[x] {
		if k == i {
			g = j
			break
		}
	}
	if g == -1 {
		return x, 0
	}

	center = x
	m := len(bg.Group[x])
	center += float64(2*g-m+1) * halfwidth

	halfwidth -= minDelta * bg.Dgap
	if halfwidth < 0 {
		halfwidth = 0
	}

	return center, halfwidth
}

// Xs returns the sorted list of recorded x values.
func (bg *BarGroups) Xs() []float64 {
	bg.recalc()
	return bg.xs
}

// MinDelta returns the smallest difference between recorded x-values,
// 1 if there are fewer than two.
func (bg *BarGroups) MinDelta() float64 {
	bg.recalc()
	return bg.md
}

// MaxGroupSize determines the maximum number of values recorded per x-values.
func (bg *BarGroups) MaxGroupSize() int {
	bg.recalc()
	return bg.lg
}

func (bg *BarGroups) recalc() {
	if bg.xs != nil {
		return
	}

	// xs: all x-valuses in sorted order
	bg.xs = make([]float64, 0, len(bg.Group))
	for x := range bg.Group {
		bg.xs = append(bg.xs, x)
	}
	sort.Float64s(bg.xs)

	// md: minumum distance between two x-valuse
	bg.md = 1
	if len(bg.xs) > 1 {
		bg.md = bg.xs[1] - bg.xs[0]
		for i := 2; i < len(bg.xs); i++ {
			if m := bg.xs[i] - bg.xs[i-1]; m < bg.md {
				bg.md = m
			}
		}
	}

	// lg: largest groups size
	bg.lg = 0
	for _, is := range bg.Group {
		if len(is) > bg.lg {
			bg.lg = len(is)
		}
	}
}
