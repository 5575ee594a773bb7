package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vdobler/panechart"
	"github.com/vdobler/panechart/geom"
	"github.com/vdobler/panechart/layout"
)

const twoPanes = `
title = "Load"
width = 640
height = 480
layout = "single-row"

[[pane]]
title = "CPU"
ignore_missing = true
[pane.x]
title = "time"
[pane.y]
kind = "log"
min = 1.0
grid = true
[[pane.series]]
type = "line"
x = [1, 2, 3]
y = [10, 200, nan]
[[pane.series]]
type = "points"
y = [5, 6]
y2 = true
color = 2

[[pane]]
title = "Jobs"
[pane.x]
kind = "text"
labels = ["mon", "tue", "wed"]
[[pane.series]]
type = "bars"
y = [3, 1, 2]
position = "stack"
[[pane.series]]
type = "hline"
y = [2.5]
`

func TestParseDefaults(t *testing.T) {
	assert := assert.New(t)

	c, err := Parse(`title = "x"`)
	assert.NoError(err)
	assert.Equal("x", c.Title)
	assert.Equal(float64(DefaultWidth), c.Width)
	assert.Equal(float64(DefaultHeight), c.Height)
	assert.Equal(float64(DefaultFontSize), c.FontSize)
	assert.Equal(DefaultLayout, c.Layout)
	assert.Empty(c.Panes)
}

func TestParseUnknownKey(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("widht = 100\n[[pane]]\ncolour = 3\n")
	if assert.Error(err) {
		assert.Contains(err.Error(), "widht")
		assert.Contains(err.Error(), "pane.colour")
	}

	_, err = Parse("width = ")
	assert.Error(err)
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	c, err := Parse(twoPanes)
	if !assert.NoError(err) {
		return
	}
	m, panes, err := c.Build()
	if !assert.NoError(err) {
		return
	}
	assert.Len(panes, 2)
	assert.Len(m.Slots(), 2)
	assert.Equal(layout.Rect{Width: 640, Height: 480}, m.Rect)
	assert.Equal(15.0, m.TitleHeight)

	cpu := panes[0]
	assert.Equal("CPU", cpu.Title)
	assert.True(cpu.IgnoreMissing)
	assert.Equal("time", cpu.XAxis.Title)
	assert.Equal(panechart.Log, cpu.YAxis.Scale.Kind())
	assert.False(cpu.YAxis.Scale.MinAuto())
	assert.Equal(1.0, cpu.YAxis.Scale.Min())
	assert.True(cpu.YAxis.ShowGrid)
	assert.True(cpu.Y2Axis.IsVisible)
	assert.Len(cpu.Geoms(), 2)

	line, ok := cpu.Geoms()[0].(geom.Line)
	if assert.True(ok) {
		_, y := line.XY.XY(2)
		assert.True(math.IsNaN(y))
	}
	points, ok := cpu.Geoms()[1].(geom.Point)
	if assert.True(ok) {
		x, _ := points.XY.XY(1)
		assert.Equal(2.0, x)
		assert.Equal(2, points.Color(0))
	}

	jobs := panes[1]
	assert.Equal(panechart.Text, jobs.XAxis.Scale.Kind())
	assert.Equal([]string{"mon", "tue", "wed"}, jobs.XAxis.Scale.TextLabels)
	assert.False(jobs.Y2Axis.IsVisible)

	assert.NoError(m.DoLayout())
	assert.True(cpu.Rect.Right() <= jobs.Rect.X)
	assert.Equal(cpu.Rect.Y, jobs.Rect.Y)
}

func TestBuildExplicitRows(t *testing.T) {
	assert := assert.New(t)

	c, err := Parse(`
[[row]]
weight = 1
count = 1
[[row]]
weight = 0
[[row]]
weight = 2
cells = [1, 1]

[[pane]]
title = "top"
[[pane]]
splitter = true
[[pane]]
title = "left"
[[pane]]
title = "right"
`)
	if !assert.NoError(err) {
		return
	}
	m, panes, err := c.Build()
	if !assert.NoError(err) {
		return
	}
	assert.Len(panes, 3)
	assert.Len(m.Slots(), 4)
	assert.True(m.Slots()[1].IsSplitter())
	assert.Equal(panes[1].Rect.Y, panes[2].Rect.Y)
	assert.True(panes[0].Rect.Height < panes[1].Rect.Height)
}

func TestBuildErrors(t *testing.T) {
	assert := assert.New(t)

	for i, tc := range []struct {
		doc  string
		want string
	}{
		{"width = 0", "invalid image size"},
		{"layout = \"diagonal\"", "unknown layout"},
		{"[[pane]]\n[pane.y]\nkind = \"cubic\"", "y axis"},
		{"[[pane]]\n[pane.x]\ngrace = -1.0", "negative grace"},
		{"[[pane]]\n[[pane.series]]\ntype = \"pie\"\ny = [1]", "unknown series type"},
		{"[[pane]]\n[[pane.series]]\nx = [1, 2]\ny = [1]", "2 x values for 1 y values"},
		{"[[pane]]\n[[pane.series]]\ntype = \"bars\"\nposition = \"fill\"\ny = [1]", "unknown bar position"},
	} {
		c, err := Parse(tc.doc)
		if !assert.NoError(err, "case %d", i) {
			continue
		}
		_, _, err = c.Build()
		if assert.Error(err, "case %d", i) {
			assert.Contains(err.Error(), tc.want, "case %d", i)
		}
	}
}

func TestBuildInvalidRows(t *testing.T) {
	assert := assert.New(t)

	c, err := Parse("[[row]]\nweight = 1\ncount = 2\n[[pane]]\n")
	if !assert.NoError(err) {
		return
	}
	_, _, err = c.Build()
	assert.True(errors.Is(err, layout.ErrInvalidLayout))
	assert.Equal(layout.ErrCodePaneCount, layout.CodeOf(err))
}

func TestDates(t *testing.T) {
	assert := assert.New(t)

	c, err := Parse(`
[[pane]]
[pane.x]
kind = "date"
[[pane.series]]
dates = [2000-01-01T00:00:00Z, 2000-01-02T12:00:00Z]
y = [1, 2]
`)
	if !assert.NoError(err) {
		return
	}
	_, panes, err := c.Build()
	if !assert.NoError(err) {
		return
	}
	line := panes[0].Geoms()[0].(geom.Line)
	x0, _ := line.XY.XY(0)
	x1, _ := line.XY.XY(1)
	assert.Equal(36526.0, x0)
	assert.Equal(36527.5, x1)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "chart.toml")
	assert.NoError(os.WriteFile(path, []byte(twoPanes), 0o644))
	c, err := Load(path)
	if assert.NoError(err) {
		assert.Len(c.Panes, 2)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(err)
}
