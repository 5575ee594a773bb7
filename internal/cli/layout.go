package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vdobler/panechart"
	"github.com/vdobler/panechart/internal/config"
	"github.com/vdobler/panechart/layout"
)

// layoutCommand creates the layout command printing the pane rectangles
// of a chart definition.
func (c *CLI) layoutCommand() *cobra.Command {
	var rescale bool

	cmd := &cobra.Command{
		Use:   "layout [chart.toml]",
		Short: "Show the pane rectangles of a chart definition",
		Long: `Show the pane rectangles of a chart definition.

Prints the proportion tree in use and the rectangle of every slot. With
--scales the axis ranges picked for every pane are listed too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.OutOrStdout(), args[0], rescale)
		},
	}

	cmd.Flags().BoolVar(&rescale, "scales", false, "list the picked axis ranges")

	return cmd
}

func (c *CLI) runLayout(w io.Writer, input string, rescale bool) error {
	cfg, err := config.Load(input)
	if err != nil {
		return err
	}
	m, _, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build chart %s: %w", input, err)
	}
	if err := m.DoLayout(); err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	headers := []string{"#", "Slot", "Title", "Rect", "Chart"}
	if rescale {
		headers = append(headers, "X", "Y", "Y2")
	}
	t := newTable(headers...)
	for i, slot := range m.Slots() {
		switch s := slot.(type) {
		case *panechart.Pane:
			row := []string{strconv.Itoa(i + 1), "pane", s.Title, s.Rect.String(), s.Chart.String()}
			if rescale {
				s.Rescale()
				y2 := ""
				if s.Y2Axis.IsVisible {
					y2 = s.Y2Axis.Scale.String()
				}
				row = append(row, s.XAxis.Scale.String(), s.YAxis.Scale.String(), y2)
			}
			t.Row(row...)
		case *layout.Splitter:
			row := []string{strconv.Itoa(i + 1), "splitter", "", s.Rect.String(), ""}
			if rescale {
				row = append(row, "", "", "")
			}
			t.Row(row...)
		}
	}
	c.Logger.Debug("layout done", "slots", len(m.Slots()))

	_, err = fmt.Fprintf(w, "%s in %s\n%s\n", m.Proportions(), m.ContentRect(), t.Render())
	return err
}
