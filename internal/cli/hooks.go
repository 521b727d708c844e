package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/skilltree/pkg/observability"
)

// logHooks reports editor, render and server events to the CLI logger.
// Successful events log at debug level so they only show with --verbose.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.EditorHooks = logHooks{}
	_ observability.RenderHooks = logHooks{}
	_ observability.ServerHooks = logHooks{}
)

func newLogHooks(l *log.Logger) logHooks {
	return logHooks{logger: l}
}

func (h logHooks) OnMutation(_ context.Context, op, id string, err error) {
	if err != nil {
		h.logger.Debug("edit rejected", "op", op, "id", id, "err", err)
		return
	}
	h.logger.Debug("edit", "op", op, "id", id)
}

func (h logHooks) OnArrange(_ context.Context, nodes int, dur time.Duration, err error) {
	if err != nil {
		h.logger.Warn("auto-arrange failed", "err", err)
		return
	}
	h.logger.Debug("auto-arrange", "nodes", nodes, "took", dur.Round(time.Microsecond))
}

func (h logHooks) OnDragStart(_ context.Context, id string) {
	h.logger.Debug("drag start", "id", id)
}

func (h logHooks) OnDragEnd(_ context.Context, id string) {
	h.logger.Debug("drag end", "id", id)
}

func (h logHooks) OnRenderStart(_ context.Context, format string, nodes int) {
	h.logger.Debug("render", "format", format, "nodes", nodes)
}

func (h logHooks) OnRenderComplete(_ context.Context, format string, size int, dur time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size, "took", dur.Round(time.Microsecond))
}

func (h logHooks) OnRequest(context.Context, string, string) {}

func (h logHooks) OnResponse(_ context.Context, method, path string, status int, dur time.Duration) {
	h.logger.Info("request", "method", method, "path", path, "status", status, "took", dur.Round(time.Microsecond))
}
