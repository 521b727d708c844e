package canvas

import (
	"fmt"
	"math"

	"github.com/matzehuels/skilltree/pkg/tree"
)

// CardSize is the footprint of a node card in world units.
type CardSize struct {
	Width, Height float64
}

// DefaultCardSize matches the editor's card.
var DefaultCardSize = CardSize{Width: 250, Height: 100}

// Connection is one drawn dependency edge.
type Connection struct {
	From, To   string     // dependency, dependent
	Start, End tree.Point // anchors in world coordinates
	Path       string     // SVG path data
}

// minBend keeps short or backward connections visibly curved.
const minBend = 40

// Connections returns one connection per dependency edge of t whose ends
// both have a position. Edges are returned in link order. The start anchor
// is the right-middle of the dependency's card, the end anchor the
// left-middle of the dependent's card.
func Connections(t *tree.Tree, positions map[string]tree.Point, size CardSize) []Connection {
	var out []Connection
	for _, e := range t.Links() {
		from, ok := positions[e.From]
		if !ok {
			continue
		}
		to, ok := positions[e.To]
		if !ok {
			continue
		}
		start := tree.Point{X: from.X + size.Width, Y: from.Y + size.Height/2}
		end := tree.Point{X: to.X, Y: to.Y + size.Height/2}
		out = append(out, Connection{
			From:  e.From,
			To:    e.To,
			Start: start,
			End:   end,
			Path:  Curve(start, end),
		})
	}
	return out
}

// Curve returns a horizontal cubic Bézier from a to b as SVG path data.
func Curve(a, b tree.Point) string {
	bend := math.Max(math.Abs(b.X-a.X)/2, minBend)
	return fmt.Sprintf("M %s %s C %s %s, %s %s, %s %s",
		num(a.X), num(a.Y),
		num(a.X+bend), num(a.Y),
		num(b.X-bend), num(b.Y),
		num(b.X), num(b.Y))
}

func num(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*100)/100)
}
