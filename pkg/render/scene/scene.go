package scene

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/matzehuels/skilltree/pkg/canvas"
	"github.com/matzehuels/skilltree/pkg/errors"
	"github.com/matzehuels/skilltree/pkg/layout"
	"github.com/matzehuels/skilltree/pkg/observability"
	"github.com/matzehuels/skilltree/pkg/tree"
)

// Style selects the drawing.
type Style string

const (
	StyleCards    Style = "cards"
	StyleHexagons Style = "hexagons"
)

// ParseStyle converts a flag value to a Style.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleCards, StyleHexagons:
		return Style(s), nil
	case "":
		return StyleCards, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown style %q (want cards or hexagons)", s)
}

// Options configures rendering.
type Options struct {
	Style    Style
	View     canvas.Viewport
	CardSize canvas.CardSize
	Branches layout.BranchOptions
	Margin   float64
}

// DefaultOptions returns card rendering at zoom 1.
func DefaultOptions() Options {
	return Options{
		Style:    StyleCards,
		View:     canvas.NewViewport(),
		CardSize: canvas.DefaultCardSize,
		Branches: layout.DefaultBranchOptions(),
		Margin:   40,
	}
}

// Render draws t and returns the SVG document. positions is only used by
// StyleCards; nodes without a position are not drawn.
func Render(ctx context.Context, t *tree.Tree, positions map[string]tree.Point, opts Options) ([]byte, error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, string(opts.Style), t.Len())
	start := time.Now()

	var buf bytes.Buffer
	err := Write(&buf, t, positions, opts)
	hooks.OnRenderComplete(ctx, string(opts.Style), buf.Len(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write draws t to w.
func Write(w io.Writer, t *tree.Tree, positions map[string]tree.Point, opts Options) error {
	switch opts.Style {
	case StyleCards, "":
		if opts.View.Zoom == 0 {
			opts.View = canvas.NewViewport()
		}
		if opts.CardSize == (canvas.CardSize{}) {
			opts.CardSize = canvas.DefaultCardSize
		}
		writeCards(w, t, positions, opts)
	case StyleHexagons:
		if opts.Branches == (layout.BranchOptions{}) {
			opts.Branches = layout.DefaultBranchOptions()
		}
		writeHexagons(w, t, opts.Branches)
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown style %q", opts.Style)
	}
	return nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "..."
}

func px(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func fnum(v float64) string {
	return fmt.Sprintf("%g", float64(px(v*100))/100)
}
