package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const chart = `
title = "Demo"
width = 400
height = 300

[[row]]
weight = 1
count = 2
[[row]]
weight = 0
[[row]]
weight = 1

[[pane]]
title = "CPU"
[[pane.series]]
y = [1, 4, 2]
[[pane]]
title = "Memory"
[[pane.series]]
type = "bars"
y = [3, 1]
[[pane]]
splitter = true
[[pane]]
title = "Disk"
[pane.x]
kind = "date"
[[pane.series]]
type = "step"
dates = [2021-03-01T00:00:00Z, 2021-03-05T00:00:00Z]
y = [10, 20]
y2 = true
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeChart(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(path, []byte(chart), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScaleCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := execute(t, "scale", "0", "100")
	assert.NoError(err)
	assert.Contains(out, "linear")
	assert.Contains(out, "0 .. 101")
	assert.Regexp(`major step\s*│\s*5\s*│`, out)

	out, err = execute(t, "scale", "--kind", "log", "1", "10000")
	assert.NoError(err)
	assert.Contains(out, "10,000")

	out, err = execute(t, "scale", "--kind", "date", "--axis", "x", "2020-01-01", "2020-01-31")
	assert.NoError(err)
	assert.Contains(out, "2 day")
	assert.Contains(out, "02-Jan")

	out, err = execute(t, "scale", "--minor", "0", "10")
	assert.NoError(err)
	assert.Regexp(`│\s*minor\s*│\s*0\.1\s*│`, out)

	out, err = execute(t, "scale", "--max", "50", "0", "12000")
	assert.NoError(err)
	assert.Regexp(`│\s*0 \.\. 50\s*│`, out)
}

func TestScaleCommandErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := execute(t, "scale", "--kind", "cubic", "0", "1")
	assert.Error(err)
	_, err = execute(t, "scale", "--axis", "z", "0", "1")
	assert.Error(err)
	_, err = execute(t, "scale", "zero", "1")
	assert.Error(err)
	_, err = execute(t, "scale", "--kind", "date", "2020-13-45", "2021-01-01")
	assert.Error(err)
	_, err = execute(t, "scale", "1")
	assert.Error(err)
}

func TestParseValue(t *testing.T) {
	assert := assert.New(t)

	v, err := parseValue("2000-01-01", true)
	assert.NoError(err)
	assert.Equal(36526.0, v)

	v, err = parseValue("36526.5", true)
	assert.NoError(err)
	assert.Equal(36526.5, v)

	_, err = parseValue("2000-01-01", false)
	assert.Error(err)
}

func TestLayoutCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := execute(t, "layout", "--scales", writeChart(t))
	assert.NoError(err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(strings.HasPrefix(lines[0], "rows{"), "first line %q", lines[0])
	assert.Contains(out, "CPU")
	assert.Contains(out, "Memory")
	assert.Contains(out, "splitter")
	assert.Contains(out, "Y2")
	assert.Contains(out, "y2 linear")
	assert.Regexp(`│\s*4\s*│\s*pane\s*│\s*Disk\s*│`, out)

	_, err = execute(t, "layout", filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(err)
}

func TestRenderCommand(t *testing.T) {
	assert := assert.New(t)

	input := writeChart(t)
	dir := t.TempDir()

	png := filepath.Join(dir, "chart.png")
	_, err := execute(t, "render", input, "-o", png)
	if assert.NoError(err) {
		b, err := os.ReadFile(png)
		assert.NoError(err)
		assert.True(bytes.HasPrefix(b, []byte("\x89PNG")))
	}

	svg := filepath.Join(dir, "chart.svg")
	_, err = execute(t, "render", input, "--output", svg)
	if assert.NoError(err) {
		b, err := os.ReadFile(svg)
		assert.NoError(err)
		assert.Contains(string(b), "<svg")
	}

	_, err = execute(t, "render", input, "-o", filepath.Join(dir, "chart.gif"))
	if assert.Error(err) {
		assert.Contains(err.Error(), "unsupported image format")
	}
}

func TestRenderDefaultOutput(t *testing.T) {
	assert := assert.New(t)

	input := writeChart(t)
	_, err := execute(t, "render", input)
	assert.NoError(err)
	_, err = os.Stat(strings.TrimSuffix(input, ".toml") + ".png")
	assert.NoError(err)
}
