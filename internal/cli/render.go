package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vdobler/panechart"
	"github.com/vdobler/panechart/internal/config"
)

// renderCommand creates the render command drawing a chart definition.
func (c *CLI) renderCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [chart.toml]",
		Short: "Render a chart definition to PNG or SVG",
		Long: `Render a chart definition to PNG or SVG.

The image format follows the extension of the output file; the default
output is <input>.png.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.png)")

	return cmd
}

// runRender loads the definition, draws it and writes the image.
func (c *CLI) runRender(input, output string) error {
	start := time.Now()

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}
	write := panechart.WritePNG
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
	case ".svg":
		write = panechart.WriteSVG
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}

	cfg, err := config.Load(input)
	if err != nil {
		return err
	}
	m, panes, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build chart %s: %w", input, err)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f, m, cfg.Title, cfg.Style()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	size := "?"
	if fi, err := os.Stat(output); err == nil {
		size = humanize.Bytes(uint64(fi.Size()))
	}
	c.Logger.Info("rendered chart", "file", output, "panes", len(panes), "size", size, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
