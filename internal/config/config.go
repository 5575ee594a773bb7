// Package config reads chart definitions from TOML files and builds the
// master pane and graph panes they describe.
//
// A minimal definition:
//
//	title = "Load"
//	layout = "single-row"
//
//	[[pane]]
//	title = "CPU"
//	[pane.y]
//	kind = "log"
//	[[pane.series]]
//	type = "line"
//	x = [1, 2, 3]
//	y = [10, 200, nan]
//
// NaN and infinite values mark missing points.
package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/vdobler/panechart"
	"github.com/vdobler/panechart/geom"
	"github.com/vdobler/panechart/internal/logging"
	"github.com/vdobler/panechart/layout"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Defaults used for keys missing from a definition.
const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultFontSize = 10
	DefaultLayout   = "square-col"
)

// Config is a complete chart definition.
type Config struct {
	Title    string  `toml:"title"`
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	FontSize float64 `toml:"font_size"`

	// Layout names a canned layout. It is ignored if Rows are given.
	Layout      string  `toml:"layout"`
	ColumnMajor bool    `toml:"column_major"`
	Rows        []Row   `toml:"row"`
	Gap         float64 `toml:"gap"`

	Panes []Pane `toml:"pane"`
}

// Row is one entry of an explicit proportion tree.
type Row struct {
	Weight float64   `toml:"weight"`
	Count  int       `toml:"count"`
	Cells  []float64 `toml:"cells"`
}

// Pane describes one slot of the master pane. A splitter pane has no
// axes or series.
type Pane struct {
	Title         string `toml:"title"`
	Splitter      bool   `toml:"splitter"`
	IgnoreMissing bool   `toml:"ignore_missing"`
	Bounded       bool   `toml:"bounded"`

	X  Axis `toml:"x"`
	Y  Axis `toml:"y"`
	Y2 Axis `toml:"y2"`

	Series []Series `toml:"series"`
}

// Axis holds the settings of one axis. Unset pointer fields stay
// automatic.
type Axis struct {
	Title     string   `toml:"title"`
	Kind      string   `toml:"kind"`
	Min       *float64 `toml:"min"`
	Max       *float64 `toml:"max"`
	MajorStep *float64 `toml:"major_step"`
	MinorStep *float64 `toml:"minor_step"`
	Grace     *float64 `toml:"grace"`
	Exponent  float64  `toml:"exponent"`
	Reverse   bool     `toml:"reverse"`
	Labels    []string `toml:"labels"`
	MaxLabels int      `toml:"max_labels"`
	Format    string   `toml:"format"`
	Grid      bool     `toml:"grid"`
	Hidden    bool     `toml:"hidden"`
}

// Series is one curve. X defaults to 1, 2, 3... if neither X nor Dates
// are given.
type Series struct {
	Type     string      `toml:"type"` // line, step, points, bars or hline
	X        []float64   `toml:"x"`
	Dates    []time.Time `toml:"dates"`
	Y        []float64   `toml:"y"`
	Y2       bool        `toml:"y2"`
	Color    *int        `toml:"color"` // index into the plotutil palette
	Width    float64     `toml:"width"`
	Dashes   *int        `toml:"dashes"`
	Base     float64     `toml:"base"`
	Position string      `toml:"position"`
	Sorted   bool        `toml:"sorted"`
	Vertical bool        `toml:"vertical"`
}

// New returns a configuration holding the defaults only.
func New() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		FontSize: DefaultFontSize,
		Layout:   DefaultLayout,
		Gap:      10,
	}
}

// Load reads the definition in the TOML file path on top of the defaults.
func Load(path string) (*Config, error) {
	c := New()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	logging.L().Debug("loaded chart definition", "file", path, "panes", len(c.Panes))
	return c, nil
}

// Parse reads a definition from the TOML document data.
func Parse(data string) (*Config, error) {
	c := New()
	md, err := toml.Decode(data, c)
	if err != nil {
		return nil, err
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return c, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	sort.Strings(keys)
	return fmt.Errorf("unknown keys %s", strings.Join(keys, ", "))
}

// Style returns the drawing style for the configured font size.
func (c *Config) Style() panechart.Style {
	return panechart.DefaultStyle(vg.Length(c.FontSize))
}

// Build creates the master pane and its graph panes. Splitter panes are
// added to the master pane but not returned.
func (c *Config) Build() (*layout.MasterPane, []*panechart.Pane, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, nil, fmt.Errorf("invalid image size %gx%g", c.Width, c.Height)
	}

	m := layout.NewMasterPane(layout.Rect{Width: c.Width, Height: c.Height})
	m.InnerGap = c.Gap
	if c.Title != "" {
		m.TitleHeight = 1.5 * c.FontSize
	}

	var panes []*panechart.Pane
	for i, pc := range c.Panes {
		if pc.Splitter {
			m.Add(&layout.Splitter{})
			continue
		}
		p, err := pc.build()
		if err != nil {
			return nil, nil, fmt.Errorf("pane %d: %w", i+1, err)
		}
		m.Add(p)
		panes = append(panes, p)
	}

	if len(c.Rows) > 0 {
		prop := layout.Proportions{ColumnMajor: c.ColumnMajor}
		for _, r := range c.Rows {
			prop.Entries = append(prop.Entries, layout.Entry{Weight: r.Weight, Count: r.Count, Cells: r.Cells})
		}
		if err := m.SetLayout(prop); err != nil {
			return nil, nil, err
		}
		return m, panes, nil
	}

	canned, err := layout.ParseCanned(c.Layout)
	if err != nil {
		return nil, nil, err
	}
	m.SetCanned(canned)
	return m, panes, nil
}

func (pc Pane) build() (*panechart.Pane, error) {
	p := panechart.NewPane(pc.Title)
	p.IgnoreMissing = pc.IgnoreMissing
	p.IsBoundedRanges = pc.Bounded

	if err := pc.X.apply(p.XAxis); err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	if err := pc.Y.apply(p.YAxis); err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	y2Visible := false
	for _, s := range pc.Series {
		y2Visible = y2Visible || s.Y2
	}
	if err := pc.Y2.apply(p.Y2Axis); err != nil {
		return nil, fmt.Errorf("y2 axis: %w", err)
	}
	p.Y2Axis.IsVisible = y2Visible && !pc.Y2.Hidden

	for j, s := range pc.Series {
		g, err := s.geom()
		if err != nil {
			return nil, fmt.Errorf("series %d: %w", j+1, err)
		}
		if s.Y2 {
			p.AddY2(g)
		} else {
			p.Add(g)
		}
	}
	return p, nil
}

func (ac Axis) apply(a *panechart.Axis) error {
	a.Title = ac.Title
	a.ShowGrid = ac.Grid
	a.IsVisible = !ac.Hidden

	s := a.Scale
	if ac.Kind != "" {
		k, err := panechart.ParseKind(ac.Kind)
		if err != nil {
			return err
		}
		s.SetKind(k)
	}
	if ac.Min != nil {
		s.SetMin(*ac.Min)
	}
	if ac.Max != nil {
		s.SetMax(*ac.Max)
	}
	if ac.MajorStep != nil {
		s.SetMajorStep(*ac.MajorStep)
	}
	if ac.MinorStep != nil {
		s.SetMinorStep(*ac.MinorStep)
	}
	if ac.Grace != nil {
		if *ac.Grace < 0 {
			return fmt.Errorf("negative grace %g", *ac.Grace)
		}
		s.MinGrace, s.MaxGrace = *ac.Grace, *ac.Grace
	}
	if ac.Exponent != 0 {
		s.Exponent = ac.Exponent
	}
	if ac.Format != "" {
		s.SetFormat(ac.Format)
	}
	s.IsReverse = ac.Reverse
	s.TextLabels = ac.Labels
	s.MaxLabels = ac.MaxLabels
	return nil
}

func (s Series) xys() (plotter.XYs, error) {
	n := len(s.Y)
	switch {
	case len(s.X) > 0 && len(s.Dates) > 0:
		return nil, fmt.Errorf("both x and dates given")
	case len(s.X) > 0 && len(s.X) != n:
		return nil, fmt.Errorf("%d x values for %d y values", len(s.X), n)
	case len(s.Dates) > 0 && len(s.Dates) != n:
		return nil, fmt.Errorf("%d dates for %d y values", len(s.Dates), n)
	}

	xy := make(plotter.XYs, n)
	for i, y := range s.Y {
		xy[i].Y = y
		switch {
		case len(s.X) > 0:
			xy[i].X = s.X[i]
		case len(s.Dates) > 0:
			xy[i].X = panechart.XDate(s.Dates[i])
		default:
			xy[i].X = float64(i + 1)
		}
	}
	return xy, nil
}

func (s Series) geom() (panechart.Geom, error) {
	var color, dashes geom.DiscreteAesthetic
	if s.Color != nil {
		c := *s.Color
		color = func(int) int { return c }
	}
	if s.Dashes != nil {
		d := *s.Dashes
		dashes = func(int) int { return d }
	}
	width := vg.Length(s.Width)

	if s.Type == "hline" {
		h := geom.HLine{Y: plotter.Values(s.Y), Color: color, Stroke: dashes}
		h.Default.Width = width
		return h, nil
	}

	xy, err := s.xys()
	if err != nil {
		return nil, err
	}
	switch s.Type {
	case "", "line":
		g := geom.Line{XY: xy, Color: color, Stroke: dashes, Sorted: s.Sorted}
		g.Default.Width = width
		return g, nil
	case "step":
		g := geom.Step{XY: xy, Color: color, Stroke: dashes, Vertical: s.Vertical}
		g.Default.Width = width
		return g, nil
	case "points":
		g := geom.Point{XY: xy, Color: color}
		g.Default.Radius = width
		return g, nil
	case "bars":
		switch s.Position {
		case "", "dodge", "stack":
		default:
			return nil, fmt.Errorf("unknown bar position %q", s.Position)
		}
		return geom.Bar{XY: xy, Color: color, Base: s.Base, Position: s.Position}, nil
	}
	return nil, fmt.Errorf("unknown series type %q", s.Type)
}
