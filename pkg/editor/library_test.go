package editor

import (
	"context"
	"slices"
	"testing"

	"github.com/matzehuels/skilltree/pkg/errors"
	"github.com/matzehuels/skilltree/pkg/tree"
)

func TestAddFromLibrary(t *testing.T) {
	ctx := context.Background()
	s := New(tree.New("t", "T", ""), Options{})

	js, err := s.AddFromLibrary(ctx, "", "javascript", nil)
	if err != nil {
		t.Fatal(err)
	}

	for range 5 {
		s.ZoomIn()
	}
	drop := tree.Point{X: 300, Y: 450}
	react, err := s.AddFromLibrary(ctx, "", "react", &drop)
	if err != nil {
		t.Fatal(err)
	}

	n, ok := s.Tree().Find(react)
	if !ok {
		t.Fatalf("Find(%s) = false", react)
	}
	if n.Name != "React" || n.Color != "#61DAFB" {
		t.Errorf("react = %q %s", n.Name, n.Color)
	}
	// requirement on an existing skill is wired
	if deps := s.Tree().Dependencies(react); !slices.Equal(deps, []string{js}) {
		t.Errorf("Dependencies(react) = %v, want [%s]", deps, js)
	}

	// drop point is mapped through the 1.5 zoom
	if p, _ := s.Position(react); p != (tree.Point{X: 200, Y: 300}) {
		t.Errorf("react at %v, want (200, 300)", p)
	}

	if _, err := s.AddFromLibrary(ctx, "", "cobol", nil); !errors.Is(err, errors.ErrCodeLibrarySkillAbsent) {
		t.Errorf("AddFromLibrary(cobol) = %v, want LIBRARY_SKILL_NOT_FOUND", err)
	}
}

func TestAddBranchFromLibrary(t *testing.T) {
	ctx := context.Background()
	s := New(tree.New("t", "T", ""), Options{})
	sec, err := s.AddSection(ctx, "DevOps")
	if err != nil {
		t.Fatal(err)
	}

	ids, err := s.AddBranchFromLibrary(ctx, sec, "devops-start")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 5 {
		t.Fatalf("AddBranchFromLibrary() = %d ids, want 5", len(ids))
	}
	if got := len(s.Tree().Children(sec)); got != 5 {
		t.Errorf("Children(%s) = %d, want 5", sec, got)
	}

	// ci-cd requires git and docker from the same branch
	got := slices.Sorted(slices.Values(s.Tree().Dependencies(ids[4])))
	want := slices.Sorted(slices.Values([]string{ids[1], ids[2]}))
	if !slices.Equal(got, want) {
		t.Errorf("Dependencies(ci-cd) = %v, want %v", got, want)
	}

	if _, err := s.AddBranchFromLibrary(ctx, sec, "nope"); err == nil {
		t.Error("AddBranchFromLibrary(nope) = nil error")
	}

	before := s.Tree()
	ids, err = s.AddBranchFromLibrary(ctx, "ghost", "devops-start")
	if err != nil || len(ids) != 0 {
		t.Errorf("AddBranchFromLibrary(ghost) = %v, %v, want no ids and nil error", ids, err)
	}
	if s.Tree() != before {
		t.Error("tree changed")
	}
}
