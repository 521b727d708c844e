package scene

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/skilltree/pkg/canvas"
	"github.com/matzehuels/skilltree/pkg/errors"
	"github.com/matzehuels/skilltree/pkg/tree"
)

func sample(t *testing.T) *tree.Tree {
	t.Helper()
	tr, err := tree.Build("frontend", "Frontend <Developer>", "", []tree.Spec{
		{Node: tree.Node{ID: "basics", Name: "Basics"}, Children: []tree.Spec{
			{Node: tree.Node{ID: "html", Name: "HTML & CSS", Progress: 100, Status: tree.StatusCompleted, Category: "frontend"}},
			{Node: tree.Node{ID: "js", Name: "JavaScript", Progress: 50, Status: tree.StatusInProgress, Category: "frontend"}, Dependencies: []string{"html"}},
		}},
		{Node: tree.Node{ID: "node", Name: "Node.js and the whole server ecosystem", Category: "backend", Description: "Runtime"}, Dependencies: []string{"js"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return tr.Recalc()
}

var positions = map[string]tree.Point{
	"basics": {X: 100, Y: 100},
	"html":   {X: 400, Y: 100},
	"js":     {X: 700, Y: 100},
	"node":   {X: 1000, Y: 100},
}

func TestRenderCards(t *testing.T) {
	out, err := Render(context.Background(), sample(t), positions, DefaultOptions())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	s := string(out)

	for _, want := range []string{
		"<svg",
		`<title>Frontend &lt;Developer&gt;</title>`,
		`id="connections"`,
		`id="node-html"`,
		"HTML &amp; CSS",
		"50%",
		"translate(0,0) scale(1)",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("cards output missing %q", want)
		}
	}
	if got := strings.Count(s, "stroke-dasharray"); got != 2 {
		t.Errorf("got %d connections, want 2", got)
	}
}

func TestRenderCardsViewport(t *testing.T) {
	opts := DefaultOptions()
	opts.View = canvas.NewViewport().ZoomIn().ZoomIn().ZoomIn().ZoomIn().ZoomIn().PanBy(tree.Point{X: 20, Y: -10})

	var buf bytes.Buffer
	if err := Write(&buf, sample(t), positions, opts); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "translate(20,-10) scale(1.5)") {
		t.Error("viewport transform not applied to the scene group")
	}
}

func TestRenderCardsSkipsUnplaced(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample(t), map[string]tree.Point{"html": {}}, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	if strings.Contains(s, `id="node-js"`) {
		t.Error("nodes without a position should not be drawn")
	}
	if !strings.Contains(s, `id="node-html"`) {
		t.Error("placed node missing")
	}
}

func TestRenderHexagons(t *testing.T) {
	opts := DefaultOptions()
	opts.Style = StyleHexagons
	out, err := Render(context.Background(), sample(t), nil, opts)
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)

	for _, want := range []string{
		`viewBox="0 0 1200 800"`,
		">frontend</text>",
		">backend</text>",
		`id="skill-html"`,
		"★",
		"🔒",
		"Node.js and the...",
		`stroke-dasharray="5,5"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("hexagon output missing %q", want)
		}
	}
	if strings.Contains(s, `id="skill-basics"`) {
		t.Error("sections are not drawn in the branch diagram")
	}
}

func TestParseStyle(t *testing.T) {
	if s, err := ParseStyle(""); err != nil || s != StyleCards {
		t.Errorf("ParseStyle(\"\") = %q, %v", s, err)
	}
	if s, err := ParseStyle("hexagons"); err != nil || s != StyleHexagons {
		t.Errorf("ParseStyle(hexagons) = %q, %v", s, err)
	}
	if _, err := ParseStyle("tower"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParseStyle(tower) error = %v", err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 15, "short"},
		{"exactly fifteen", 15, "exactly fifteen"},
		{"Kubernetes operators", 15, "Kubernetes oper..."},
		{"Базы данных и хранилища", 10, "Базы данны..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
