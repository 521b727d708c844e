package tree

import (
	"reflect"
	"slices"
	"testing"

	"github.com/matzehuels/skilltree/pkg/errors"
)

func leaf(id string, progress int) Spec {
	return Spec{Node: Node{ID: id, Name: id, Progress: progress, Status: DeriveStatus(progress)}}
}

// sample builds:
//
//	P ─┬─ A (100)
//	   └─ B (50)
//	Q ─── C (0), C depends on A
//	R (leaf, 20)
func sample(t *testing.T) *Tree {
	t.Helper()
	c := leaf("C", 0)
	c.Dependencies = []string{"A"}
	tr, err := Build("t1", "Frontend", "", []Spec{
		{Node: Node{ID: "P", Name: "P"}, Children: []Spec{leaf("A", 100), leaf("B", 50)}},
		{Node: Node{ID: "Q", Name: "Q"}, Children: []Spec{c}},
		leaf("R", 20),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tr
}

func ids(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func TestBuildAndQueries(t *testing.T) {
	tr := sample(t)

	if tr.Len() != 6 {
		t.Errorf("Len() = %d, want 6", tr.Len())
	}
	listings := []struct {
		name string
		got  []string
		want []string
	}{
		{"Roots", ids(tr.Roots()), []string{"P", "Q", "R"}},
		{"Children(P)", ids(tr.Children("P")), []string{"A", "B"}},
		{"Nodes", ids(tr.Nodes()), []string{"P", "A", "B", "Q", "C", "R"}},
		{"Dependencies(C)", tr.Dependencies("C"), []string{"A"}},
		{"Dependents(A)", tr.Dependents("A"), []string{"C"}},
	}
	for _, l := range listings {
		if !slices.Equal(l.got, l.want) {
			t.Errorf("%s = %v, want %v", l.name, l.got, l.want)
		}
	}

	if p, ok := tr.Parent("B"); !ok || p != "P" {
		t.Errorf("Parent(B) = %q, %v, want P, true", p, ok)
	}
	if _, ok := tr.Parent("P"); ok {
		t.Error("Parent(P) reported a parent for a top-level node")
	}

	n, ok := tr.Find("B")
	if !ok || n.Progress != 50 {
		t.Errorf("Find(B) = %+v, %v", n, ok)
	}
	if _, ok := tr.Find("missing"); ok {
		t.Error("Find(missing) = true")
	}

	edges := tr.Edges()
	for _, want := range []Edge{
		{From: "P", To: "A", Kind: EdgeContains},
		{From: "A", To: "C", Kind: EdgeDependsOn},
	} {
		if !slices.Contains(edges, want) {
			t.Errorf("Edges() = %v, missing %v", edges, want)
		}
	}
}

func TestBuildDefaultsStatus(t *testing.T) {
	tr, err := Build("t", "t", "", []Spec{{Node: Node{ID: "x", Name: "x"}}})
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := tr.Find("x"); n.Status != StatusNotStarted {
		t.Errorf("Status = %q, want %q", n.Status, StatusNotStarted)
	}
}

func TestBuildRejectsDuplicateIDs(t *testing.T) {
	_, err := Build("t", "t", "", []Spec{leaf("a", 0), {Node: Node{ID: "p"}, Children: []Spec{leaf("a", 0)}}})
	if !errors.Is(err, errors.ErrCodeDuplicateID) {
		t.Errorf("Build(duplicate) = %v, want DUPLICATE_ID", err)
	}
}

func TestSpecRoundTrip(t *testing.T) {
	tr := sample(t)
	rebuilt, err := Build(tr.ID, tr.Name, tr.Description, tr.Specs())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tr.Specs(), rebuilt.Specs()) {
		t.Errorf("Specs() changed on rebuild:\n%+v\n%+v", tr.Specs(), rebuilt.Specs())
	}
	if !slices.Equal(tr.Links(), rebuilt.Links()) {
		t.Errorf("Links() = %v, want %v", rebuilt.Links(), tr.Links())
	}
}

func TestSubtree(t *testing.T) {
	tr := sample(t)
	if got := tr.Subtree("P"); !slices.Equal(got, []string{"P", "A", "B"}) {
		t.Errorf("Subtree(P) = %v, want [P A B]", got)
	}
	if got := tr.Subtree("missing"); got != nil {
		t.Errorf("Subtree(missing) = %v, want nil", got)
	}
}
