// Package cli implements the panechart command-line interface.
//
// The commands are:
//   - render: draw the chart of a TOML definition into a PNG or SVG file
//   - scale: show the range, ticks and labels picked for a data range
//   - layout: show the rectangles assigned to the panes of a definition
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vdobler/panechart"
	"github.com/vdobler/panechart/internal/logging"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w. The logger is shared with
// the panechart packages.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: logging.New(w, level)}
	panechart.SetLogger(c.Logger)
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "panechart",
		Short:        "Panechart draws multi-pane charts",
		Long:         `Panechart renders charts with several graph panes, auto-scaled axes and date, log and text scales from TOML definitions.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.scaleCommand())
	root.AddCommand(c.layoutCommand())

	return root
}
