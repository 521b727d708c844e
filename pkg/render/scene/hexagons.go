package scene

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/skilltree/pkg/layout"
	"github.com/matzehuels/skilltree/pkg/tree"
)

// branchColors cycle over category columns.
var branchColors = []string{"#A53C37", "#3A3A3A", "#8C8C8C", "#C9B8A0"}

// hexagon returns the corner coordinates of a pointy-top hexagon.
func hexagon(cx, cy, r float64) (xs, ys []int) {
	for i := range 6 {
		a := math.Pi/3*float64(i) - math.Pi/6
		xs = append(xs, px(cx+r*math.Cos(a)))
		ys = append(ys, px(cy+r*math.Sin(a)))
	}
	return xs, ys
}

type hexStyle struct {
	radius float64
	fill   string
	stroke string
	width  int
}

func styleFor(a tree.Availability, color string) hexStyle {
	switch a {
	case tree.Completed:
		return hexStyle{35, color, color, 3}
	case tree.InProgress:
		return hexStyle{32, "#FFFFFF", color, 4}
	case tree.Available:
		return hexStyle{28, "#F5F5F5", color, 2}
	default:
		return hexStyle{24, "#E8E8E8", "#CCCCCC", 2}
	}
}

func linkColor(t *tree.Tree, e tree.Edge) (stroke, dash string) {
	to, _ := t.Availability(e.To)
	from, _ := t.Availability(e.From)
	switch {
	case to == tree.Locked:
		return "#D1D1D1", "5,5"
	case to == tree.Completed && from == tree.Completed:
		return "#A53C37", "0"
	default:
		return "#8C8C8C", "0"
	}
}

func writeHexagons(w io.Writer, t *tree.Tree, opts layout.BranchOptions) {
	bl := layout.Branches(t, opts)
	colors := make(map[string]string)
	for i, b := range bl.Branches {
		for _, id := range b.IDs {
			colors[id] = branchColors[i%len(branchColors)]
		}
	}

	width, height := px(opts.Width), px(opts.Height)
	c := svg.New(w)
	c.Startview(width, height, 0, 0, width, height)
	c.Title(t.Name)

	c.Gid("links")
	for _, e := range t.Links() {
		s, ok := bl.Positions[e.From]
		if !ok {
			continue
		}
		d, ok := bl.Positions[e.To]
		if !ok {
			continue
		}
		mid := (s.Y + d.Y) / 2
		stroke, dash := linkColor(t, e)
		c.Path(fmt.Sprintf("M %s %s L %s %s L %s %s L %s %s",
			fnum(s.X), fnum(s.Y), fnum(s.X), fnum(mid), fnum(d.X), fnum(mid), fnum(d.X), fnum(d.Y)),
			`fill="none"`, fmt.Sprintf("stroke=%q", stroke), `stroke-width="2"`,
			fmt.Sprintf("stroke-dasharray=%q", dash), `opacity="0.6"`)
	}
	c.Gend()

	for i, b := range bl.Branches {
		c.Text(px(b.X), 30, b.Category, fmt.Sprintf("fill=%q", branchColors[i%len(branchColors)]),
			`text-anchor="middle"`, `font-size="16"`, `font-weight="600"`, `font-family="sans-serif"`)
	}

	c.Gid("skills")
	for _, b := range bl.Branches {
		for _, id := range b.IDs {
			n, _ := t.Find(id)
			p := bl.Positions[id]
			a, _ := t.Availability(id)
			st := styleFor(a, colors[id])

			c.Group(fmt.Sprintf("id=%q", "skill-"+id))
			if a == tree.InProgress {
				xs, ys := hexagon(p.X, p.Y, st.radius+6)
				c.Polygon(xs, ys, fmt.Sprintf("fill=%q", st.stroke), `opacity="0.25"`)
			}
			xs, ys := hexagon(p.X, p.Y, st.radius)
			c.Polygon(xs, ys, fmt.Sprintf("fill=%q", st.fill), fmt.Sprintf("stroke=%q", st.stroke),
				fmt.Sprintf("stroke-width=\"%d\"", st.width))

			switch a {
			case tree.Completed:
				c.Text(px(p.X), px(p.Y)+7, "★", `fill="#FFFFFF"`, `text-anchor="middle"`, `font-size="20"`)
			case tree.Locked:
				c.Text(px(p.X), px(p.Y)+5, "🔒", `fill="#999999"`, `text-anchor="middle"`, `font-size="16"`)
			}

			label := "#2A2A2A"
			if a == tree.Locked {
				label = "#999999"
			}
			c.Text(px(p.X), px(p.Y)+50, truncate(n.Name, 15), fmt.Sprintf("fill=%q", label),
				`text-anchor="middle"`, `font-size="13"`, `font-weight="500"`, `font-family="sans-serif"`)
			c.Gend()
		}
	}
	c.Gend()
	c.End()
}
