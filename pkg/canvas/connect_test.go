package canvas

import (
	"testing"

	"github.com/matzehuels/skilltree/pkg/tree"
)

func TestConnections(t *testing.T) {
	tr, err := tree.Build("t", "T", "", []tree.Spec{
		{Node: tree.Node{ID: "html", Name: "HTML"}},
		{Node: tree.Node{ID: "css", Name: "CSS"}, Dependencies: []string{"html", "gone"}},
		{Node: tree.Node{ID: "js", Name: "JS"}, Dependencies: []string{"html", "css"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	positions := map[string]tree.Point{
		"html": {X: 100, Y: 100},
		"css":  {X: 400, Y: 100},
	}
	conns := Connections(tr, positions, DefaultCardSize)

	if len(conns) != 1 {
		t.Fatalf("got %d connections, want 1 (unpositioned and dangling ends skipped): %+v", len(conns), conns)
	}
	c := conns[0]
	if c.From != "html" || c.To != "css" {
		t.Errorf("connection = %s → %s", c.From, c.To)
	}
	if want := (tree.Point{X: 350, Y: 150}); c.Start != want {
		t.Errorf("Start = %v, want %v", c.Start, want)
	}
	if want := (tree.Point{X: 400, Y: 150}); c.End != want {
		t.Errorf("End = %v, want %v", c.End, want)
	}
	if want := "M 350 150 C 390 150, 360 150, 400 150"; c.Path != want {
		t.Errorf("Path = %q, want %q", c.Path, want)
	}
}

func TestCurve(t *testing.T) {
	got := Curve(tree.Point{X: 0, Y: 0}, tree.Point{X: 200, Y: 100})
	if want := "M 0 0 C 100 0, 100 100, 200 100"; got != want {
		t.Errorf("Curve = %q, want %q", got, want)
	}
}
