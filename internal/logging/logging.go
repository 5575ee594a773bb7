// Package logging holds the logger shared by the panechart packages.
package logging

import (
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var current atomic.Pointer[log.Logger]

func init() {
	current.Store(log.New(io.Discard))
}

// New creates a logger writing to w at the given level with the
// timestamp format used throughout the command line tools.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Set installs l as the shared logger. A nil l silences logging.
func Set(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	current.Store(l)
}

// L returns the shared logger.
func L() *log.Logger {
	return current.Load()
}
