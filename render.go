package panechart

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/vdobler/panechart/internal/logging"
	"github.com/vdobler/panechart/layout"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// SetLogger installs l as the logger of all panechart packages. A nil l
// discards all output, which is the default.
func SetLogger(l *log.Logger) { logging.Set(l) }

// CanvasPoint converts the screen coordinates (x,y), y growing downward,
// into a point on c, y growing upward.
func CanvasPoint(c draw.Canvas, x, y float64) vg.Point {
	return vg.Point{X: c.Min.X + vg.Length(x), Y: c.Max.Y - vg.Length(y)}
}

// CanvasRect converts the screen rectangle r into a rectangle on c.
func CanvasRect(c draw.Canvas, r layout.Rect) vg.Rectangle {
	return vg.Rectangle{
		Min: CanvasPoint(c, r.X, r.Bottom()),
		Max: CanvasPoint(c, r.Right(), r.Y),
	}
}

// DrawMaster draws the background and title of m and every slot of m:
// panes through Pane.Draw and splitters as filled bars. Panes are
// rescaled before drawing. DrawMaster lays out m if needed.
func DrawMaster(c draw.Canvas, m *layout.MasterPane, title string, sty Style) error {
	if err := m.DoLayout(); err != nil {
		return err
	}

	fill(c, m.Rect, sty.Background)
	if title != "" {
		at := CanvasPoint(c, m.Rect.X+m.Rect.Width/2, m.Rect.Y+m.Margin.Top)
		c.FillText(sty.Title, at, title)
	}

	for _, slot := range m.Slots() {
		switch s := slot.(type) {
		case *Pane:
			s.Rescale()
			s.Draw(c, sty)
		case *layout.Splitter:
			if s.Rect.Area() > 0 {
				fill(c, s.Rect, sty.Splitter.Color)
			}
		}
	}
	return nil
}

// WritePNG renders m as a PNG image of the size of m.Rect to w.
func WritePNG(w io.Writer, m *layout.MasterPane, title string, sty Style) error {
	img := vgimg.New(vg.Length(m.Rect.Right()), vg.Length(m.Rect.Bottom()))
	dc := draw.New(img)
	if err := DrawMaster(dc, m, title, sty); err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}

// WriteSVG renders m as an SVG document of the size of m.Rect to w.
func WriteSVG(w io.Writer, m *layout.MasterPane, title string, sty Style) error {
	img := vgsvg.New(vg.Length(m.Rect.Right()), vg.Length(m.Rect.Bottom()))
	dc := draw.New(img)
	if err := DrawMaster(dc, m, title, sty); err != nil {
		return err
	}
	if _, err := img.WriteTo(w); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}
