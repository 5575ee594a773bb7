package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vdobler/panechart"
)

type scaleOptions struct {
	kind     string
	axis     string
	min, max string
	reverse  bool
	labels   []string
	minor    bool
}

// scaleCommand creates the scale command printing the picked scale of a
// data range.
func (c *CLI) scaleCommand() *cobra.Command {
	opts := scaleOptions{kind: "linear", axis: "y"}

	cmd := &cobra.Command{
		Use:   "scale [min] [max]",
		Short: "Show the scale picked for a data range",
		Long: `Show the scale picked for a data range.

Prints the axis range, the step sizes, the magnitude and every major
tick with its label. Date scales accept dates (2006-01-02 or RFC 3339)
as well as day numbers.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScale(cmd.OutOrStdout(), args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", opts.kind, "scale kind: linear, log, exponent, ordinal, text, date, date-as-ordinal, linear-as-ordinal")
	cmd.Flags().StringVarP(&opts.axis, "axis", "a", opts.axis, "axis orientation: x or y")
	cmd.Flags().StringVar(&opts.min, "min", "", "pin the axis minimum")
	cmd.Flags().StringVar(&opts.max, "max", "", "pin the axis maximum")
	cmd.Flags().BoolVar(&opts.reverse, "reverse", false, "reverse the axis")
	cmd.Flags().StringSliceVar(&opts.labels, "labels", nil, "labels of a text scale")
	cmd.Flags().BoolVar(&opts.minor, "minor", false, "list minor ticks too")

	return cmd
}

func (c *CLI) runScale(w io.Writer, lo, hi string, opts scaleOptions) error {
	kind, err := panechart.ParseKind(opts.kind)
	if err != nil {
		return err
	}
	var o panechart.Orientation
	switch opts.axis {
	case "x":
		o = panechart.XAxis
	case "y":
		o = panechart.YAxis
	default:
		return fmt.Errorf("unknown axis %q", opts.axis)
	}

	s := panechart.NewScale(kind, o)
	s.IsReverse = opts.reverse
	s.TextLabels = opts.labels

	isDate := kind.IsDate() || kind == panechart.DateAsOrdinal
	parse := func(v string) (float64, error) { return parseValue(v, isDate) }
	if opts.min != "" {
		v, err := parse(opts.min)
		if err != nil {
			return err
		}
		s.SetMin(v)
	}
	if opts.max != "" {
		v, err := parse(opts.max)
		if err != nil {
			return err
		}
		s.SetMax(v)
	}

	rangeMin, err := parse(lo)
	if err != nil {
		return err
	}
	rangeMax, err := parse(hi)
	if err != nil {
		return err
	}
	s.PickScale(rangeMin, rangeMax)
	c.Logger.Debug("picked scale", "scale", s.String())

	props := newTable("Property", "Value").
		Row("kind", s.Kind().String()).
		Row("range", s.MakeLabel(s.Min())+" .. "+s.MakeLabel(s.Max()))
	if kind.IsDate() {
		props.Row("major step", fmt.Sprintf("%g %s", s.MajorStep(), s.MajorUnit()))
		props.Row("minor step", fmt.Sprintf("%g %s", s.MinorStep(), s.MinorUnit()))
	} else {
		props.Row("major step", fmt.Sprintf("%g", s.MajorStep()))
		props.Row("minor step", fmt.Sprintf("%g", s.MinorStep()))
	}
	if mag := s.Magnitude(); mag != 0 {
		props.Row("magnitude", fmt.Sprintf("10^%d (%s)", mag, s.MagnitudePrefix()))
	}

	ticks := newTable("Tick", "Value", "Label")
	for _, v := range s.MajorTicks() {
		ticks.Row("major", fmt.Sprintf("%g", v), s.MakeLabel(v))
	}
	if opts.minor {
		for _, v := range s.MinorTicks() {
			ticks.Row("minor", fmt.Sprintf("%g", v), "")
		}
	}

	_, err = fmt.Fprintf(w, "%s\n%s\n", props.Render(), ticks.Render())
	return err
}

// parseValue reads a number or, for date scales, a date.
func parseValue(v string, date bool) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err == nil || !date {
		if err != nil {
			return 0, fmt.Errorf("invalid value %q", v)
		}
		return f, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, v); err == nil {
			return panechart.XDate(t), nil
		}
	}
	return 0, fmt.Errorf("invalid date %q", v)
}
