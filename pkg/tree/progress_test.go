package tree

import "testing"

func TestRecalc_ParentAverage(t *testing.T) {
	tr, err := Build("t", "t", "", []Spec{
		{Node: Node{ID: "P", Name: "P"}, Children: []Spec{leaf("A", 100), leaf("B", 50)}},
	})
	if err != nil {
		t.Fatal(err)
	}

	next := tr.Recalc()
	p, _ := next.Find("P")
	if p.Progress != 75 || p.Status != StatusInProgress {
		t.Errorf("P = %d/%s, want 75/%s", p.Progress, p.Status, StatusInProgress)
	}
	if next.Progress != 75 {
		t.Errorf("tree Progress = %d, want 75", next.Progress)
	}
}

func TestRecalc_TreeProgress(t *testing.T) {
	tr := sample(t).Recalc()
	// P = 75, Q = 0, R = 20 → mean 31.67 → 32
	if tr.Progress != 32 {
		t.Errorf("Progress = %d, want 32", tr.Progress)
	}
	if q, _ := tr.Find("Q"); q.Progress != 0 || q.Status != StatusNotStarted {
		t.Errorf("Q = %d/%s, want 0/%s", q.Progress, q.Status, StatusNotStarted)
	}
}

func TestRecalc_Empty(t *testing.T) {
	if tr := New("t", "empty", "").Recalc(); tr.Progress != 0 {
		t.Errorf("empty Progress = %d, want 0", tr.Progress)
	}
}

func TestRecalc_StatusInvariant(t *testing.T) {
	tests := []struct {
		a, b int
		want Status
	}{
		{100, 100, StatusCompleted},
		{0, 0, StatusNotStarted},
		{0, 1, StatusInProgress},   // 0.5 rounds up to 1
		{99, 100, StatusCompleted}, // 99.5 rounds up to 100
		{98, 100, StatusInProgress},
	}
	for _, tt := range tests {
		tr, err := Build("t", "t", "", []Spec{
			{Node: Node{ID: "P", Name: "P", Status: StatusCompleted, Progress: 100}, Children: []Spec{leaf("A", tt.a), leaf("B", tt.b)}},
		})
		if err != nil {
			t.Fatal(err)
		}
		p, _ := tr.Recalc().Find("P")
		if p.Status != tt.want {
			t.Errorf("children %d/%d: Status = %s, want %s", tt.a, tt.b, p.Status, tt.want)
		}
		if (p.Status == StatusCompleted) != (p.Progress == 100) || (p.Status == StatusNotStarted) != (p.Progress == 0) {
			t.Errorf("children %d/%d: status %s disagrees with progress %d", tt.a, tt.b, p.Status, p.Progress)
		}
	}
}

func TestRecalc_Nested(t *testing.T) {
	tr, err := Build("t", "t", "", []Spec{
		{Node: Node{ID: "root"}, Children: []Spec{
			{Node: Node{ID: "mid"}, Children: []Spec{leaf("x", 100), leaf("y", 0)}},
			leaf("z", 100),
		}},
	})
	if err != nil {
		t.Fatal(err)
	}

	next := tr.Recalc()
	mid, _ := next.Find("mid")
	root, _ := next.Find("root")
	if mid.Progress != 50 || root.Progress != 75 {
		t.Errorf("mid = %d, root = %d, want 50 and 75", mid.Progress, root.Progress)
	}
}

func TestRecalc_KeepsUnchangedNodes(t *testing.T) {
	tr := sample(t).Recalc()
	again := tr.Recalc()
	for _, n := range tr.Nodes() {
		if m, _ := again.Find(n.ID); m != n {
			t.Errorf("node %s was copied by a no-op Recalc", n.ID)
		}
	}
}

func TestMeanProgress(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{nil, 0},
		{[]int{100, 50}, 75},
		{[]int{33, 34}, 34},
		{[]int{100, 100, 0}, 67},
	}
	for _, tt := range tests {
		if got := MeanProgress(tt.in); got != tt.want {
			t.Errorf("MeanProgress(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
