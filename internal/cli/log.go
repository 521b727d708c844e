// Package cli implements the skilltree command-line interface.
//
// Commands create trees from templates, add skills from the library, arrange
// skills by prerequisite level, render trees, print statistics, validate
// files, open an interactive terminal editor and serve share links. The CLI
// is built using cobra; output is styled with lipgloss and logging uses
// charmbracelet/log.
//
// # Commands
//
//   - new: Start a tree from a template (or empty)
//   - templates, library: Browse the built-in catalog
//   - add: Add a library skill, branch, section or custom skill
//   - arrange: Place skills in dependency-level columns
//   - render: Generate SVG, DOT, PDF or PNG
//   - stats, validate: Inspect a tree file
//   - edit: Interactive terminal editor
//   - serve: Read-only share viewer
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and editor, render and server events are
// logged through the observability hooks.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Arranged 12 skills (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
