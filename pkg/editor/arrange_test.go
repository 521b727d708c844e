package editor

import (
	"context"
	"maps"
	"testing"

	"github.com/matzehuels/skilltree/pkg/errors"
	"github.com/matzehuels/skilltree/pkg/tree"
)

func TestAutoArrange(t *testing.T) {
	r := record(t)
	s := newStore(t)

	if err := s.AutoArrange(context.Background()); err != nil {
		t.Fatal(err)
	}
	if r.arranges != 1 {
		t.Errorf("OnArrange called %d times, want 1", r.arranges)
	}

	// levels: basics 0, html 0, css 1, js 2
	want := map[string]tree.Point{
		"basics": {X: 100, Y: 100},
		"html":   {X: 100, Y: 300},
		"css":    {X: 400, Y: 100},
		"js":     {X: 700, Y: 100},
	}
	if got := s.Positions(); !maps.Equal(got, want) {
		t.Errorf("Positions() = %v, want %v", got, want)
	}

	n, _ := s.Tree().Find("css")
	if n.Position == nil || *n.Position != want["css"] {
		t.Errorf("css.Position = %v, want %v", n.Position, want["css"])
	}
}

func TestAutoArrangeCycle(t *testing.T) {
	tr, err := tree.Build("c", "C", "", []tree.Spec{
		{Node: tree.Node{ID: "a", Name: "A"}, Dependencies: []string{"b"}},
		{Node: tree.Node{ID: "b", Name: "B"}, Dependencies: []string{"a"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	s := New(tr, Options{})
	before := s.Positions()

	if err := s.AutoArrange(context.Background()); !errors.Is(err, errors.ErrCodeCyclicDependency) {
		t.Errorf("AutoArrange() = %v, want CYCLIC_DEPENDENCY", err)
	}
	if !maps.Equal(before, s.Positions()) {
		t.Errorf("positions moved: %v -> %v", before, s.Positions())
	}
}

func TestConnections(t *testing.T) {
	s := newStore(t)
	conns := s.Connections()
	if len(conns) != 2 {
		t.Fatalf("Connections() = %d, want 2", len(conns))
	}
	if conns[0].From != "html" || conns[0].To != "css" {
		t.Errorf("first connection = %s -> %s, want html -> css", conns[0].From, conns[0].To)
	}

	if err := s.Delete(context.Background(), "html"); err != nil {
		t.Fatal(err)
	}
	if got := len(s.Connections()); got != 1 {
		t.Errorf("Connections() after delete = %d, want 1", got)
	}
}
