// Package cli implements the logtrack command-line interface.
//
// # Commands
//
//   - list: show the built-in scenes, or export one as a TOML scene file
//   - render: write SVG, PNG, PDF, EPS or JSON artifacts
//   - view: interactive terminal preview with the rotation animation
//   - serve: run the HTTP API
//   - scenegraph: draw the primitive hierarchy with Graphviz
//   - cache: inspect and clear the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// registers log-backed observability hooks so cache hits and pipeline
// stages show up in the output.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered 3 files (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
