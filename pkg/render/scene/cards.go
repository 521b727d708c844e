package scene

import (
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/skilltree/pkg/canvas"
	"github.com/matzehuels/skilltree/pkg/tree"
)

// Card colors
const (
	colorCompleted  = "#22C55E"
	colorInProgress = "#EAB308"
	colorIdle       = "#9CA3AF"
	colorTrack      = "#E5E7EB"
	colorPrimary    = "#A53C37"
	colorSection    = "#FBF3F2"
	colorText       = "#2A2A2A"
	colorMuted      = "#6B7280"
)

func statusColor(s tree.Status) string {
	switch s {
	case tree.StatusCompleted:
		return colorCompleted
	case tree.StatusInProgress:
		return colorInProgress
	default:
		return colorIdle
	}
}

func writeCards(w io.Writer, t *tree.Tree, positions map[string]tree.Point, opts Options) {
	size := opts.CardSize
	view := opts.View

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range t.Nodes() {
		p, ok := positions[n.ID]
		if !ok {
			continue
		}
		a := view.Apply(p)
		b := view.Apply(p.Add(tree.Point{X: size.Width, Y: size.Height}))
		minX, minY = math.Min(minX, a.X), math.Min(minY, a.Y)
		maxX, maxY = math.Max(maxX, b.X), math.Max(maxY, b.Y)
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}
	m := opts.Margin
	width, height := px(maxX-minX+2*m), px(maxY-minY+2*m)

	c := svg.New(w)
	c.Startview(width, height, px(minX-m), px(minY-m), width, height)
	c.Title(t.Name)
	c.Gtransform(fmt.Sprintf("translate(%s,%s) scale(%s)", fnum(view.Pan.X), fnum(view.Pan.Y), fnum(view.Zoom)))

	c.Gid("connections")
	for _, conn := range canvas.Connections(t, positions, size) {
		c.Path(conn.Path, `fill="none"`, fmt.Sprintf("stroke=%q", colorPrimary),
			`stroke-width="2"`, `stroke-dasharray="5,5"`, `opacity="0.6"`)
	}
	c.Gend()

	c.Gid("nodes")
	for _, n := range t.Nodes() {
		p, ok := positions[n.ID]
		if !ok {
			continue
		}
		writeCard(c, t, n, p, size)
	}
	c.Gend()

	c.Gend()
	c.End()
}

func writeCard(c *svg.SVG, t *tree.Tree, n *tree.Node, p tree.Point, size canvas.CardSize) {
	x, y := px(p.X), px(p.Y)
	w, h := px(size.Width), px(size.Height)
	kids := len(t.Children(n.ID))

	c.Group(fmt.Sprintf("id=%q", "node-"+n.ID))
	if n.Description != "" {
		c.Title(n.Description)
	}
	if kids > 0 {
		c.Roundrect(x, y, w, h, 8, 8, fmt.Sprintf("fill=%q", colorSection), fmt.Sprintf("stroke=%q", colorPrimary), `stroke-width="2"`)
	} else {
		c.Roundrect(x, y, w, h, 8, 8, `fill="#FFFFFF"`, `stroke="#E5E7EB"`)
	}
	if n.Color != "" {
		c.Rect(x, y+8, 4, h-16, fmt.Sprintf("fill=%q", n.Color))
	}

	c.Circle(x+18, y+22, 5, fmt.Sprintf("fill=%q", statusColor(n.Status)))
	c.Text(x+30, y+27, truncate(n.Name, 24), fmt.Sprintf("fill=%q", colorText), `font-size="14"`, `font-weight="600"`, `font-family="sans-serif"`)
	if kids > 0 {
		c.Text(x+w-14, y+27, strconv.Itoa(kids), fmt.Sprintf("fill=%q", colorPrimary), `font-size="12"`, `text-anchor="end"`, `font-family="sans-serif"`)
	}
	if n.Description != "" {
		c.Text(x+16, y+46, truncate(n.Description, 36), fmt.Sprintf("fill=%q", colorMuted), `font-size="11"`, `font-family="sans-serif"`)
	}

	track := w - 32
	c.Rect(x+16, y+h-30, track, 6, fmt.Sprintf("fill=%q", colorTrack))
	if filled := track * n.Progress / 100; filled > 0 {
		c.Rect(x+16, y+h-30, filled, 6, fmt.Sprintf("fill=%q", statusColor(n.Status)))
	}
	c.Text(x+16, y+h-10, string(n.Status), fmt.Sprintf("fill=%q", colorMuted), `font-size="11"`, `font-family="sans-serif"`)
	c.Text(x+w-16, y+h-10, fmt.Sprintf("%d%%", n.Progress), fmt.Sprintf("fill=%q", colorText), `font-size="11"`, `font-weight="500"`, `text-anchor="end"`, `font-family="sans-serif"`)
	c.Gend()
}
