package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/skilltree/pkg/editor"
	"github.com/matzehuels/skilltree/pkg/errors"
	"github.com/matzehuels/skilltree/pkg/library"
	"github.com/matzehuels/skilltree/pkg/tree"
)

func sampleTree(t *testing.T) *tree.Tree {
	t.Helper()
	tr, err := tree.Build("frontend", "Frontend", "", []tree.Spec{
		{Node: tree.Node{ID: "basics", Name: "Basics"}, Children: []tree.Spec{
			{Node: tree.Node{ID: "html", Name: "HTML", Progress: 100, Status: tree.StatusCompleted}},
			{Node: tree.Node{ID: "css", Name: "CSS", Progress: 50, Status: tree.StatusInProgress}, Dependencies: []string{"html"}},
		}},
		{Node: tree.Node{ID: "js", Name: "JavaScript"}, Dependencies: []string{"css"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return tr.Recalc()
}

type harness struct {
	t     *testing.T
	m     EditModel
	saved *tree.Tree
}

func newHarness(t *testing.T) *harness {
	h := &harness{t: t}
	s := editor.New(sampleTree(t), editor.Options{})
	h.m = NewEditModel(context.Background(), s, library.Default(), func(tr *tree.Tree) error {
		h.saved = tr
		return nil
	})
	return h
}

// press sends each key; plain strings are sent as runes.
func (h *harness) press(keys ...any) tea.Cmd {
	h.t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k := k.(type) {
		case tea.KeyType:
			msg = tea.KeyMsg{Type: k}
		case string:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var model tea.Model
		model, cmd = h.m.Update(msg)
		h.m = model.(EditModel)
	}
	return cmd
}

func (h *harness) node(id string) *tree.Node {
	h.t.Helper()
	n, ok := h.m.store.Tree().Find(id)
	if !ok {
		h.t.Fatalf("node %s missing", id)
	}
	return n
}

func TestEditNavigation(t *testing.T) {
	h := newHarness(t)
	if h.m.current() != "basics" {
		t.Fatalf("start = %s", h.m.current())
	}
	h.press("j", "j")
	if h.m.current() != "css" {
		t.Errorf("current = %s, want css", h.m.current())
	}
	if n, ok := h.m.store.Selected(); !ok || n.ID != "css" {
		t.Error("store selection does not follow the cursor")
	}
	h.press("j", "j", "j")
	if h.m.current() != "js" {
		t.Errorf("cursor moved past the end: %s", h.m.current())
	}
}

func TestEditProgress(t *testing.T) {
	h := newHarness(t)
	h.press("j", "j", "+", "+")
	css := h.node("css")
	if css.Progress != 70 || css.Status != tree.StatusInProgress {
		t.Errorf("css = %d %s", css.Progress, css.Status)
	}
	if h.node("basics").Progress != 85 {
		t.Errorf("basics = %d, want 85", h.node("basics").Progress)
	}

	h.press(tea.KeySpace)
	if h.node("css").Status != tree.StatusCompleted || h.node("css").Progress != 100 {
		t.Error("space should complete the skill")
	}
	h.press(tea.KeySpace)
	if h.node("css").Status != tree.StatusNotStarted {
		t.Error("space should reset a completed skill")
	}
	if !h.m.Dirty() {
		t.Error("model should be dirty")
	}
}

func TestEditSectionProgressIsDerived(t *testing.T) {
	h := newHarness(t)
	h.press("+")
	if h.node("basics").Progress != 75 {
		t.Error("section progress changed directly")
	}
	if h.m.Dirty() {
		t.Error("no edit happened")
	}
}

func TestEditRename(t *testing.T) {
	h := newHarness(t)
	h.press("j", "r")
	for range len("HTML") {
		h.press(tea.KeyBackspace)
	}
	h.press("HTML5", tea.KeySpace, "&", tea.KeyEnter)
	if got := h.node("html").Name; got != "HTML5 &" {
		t.Errorf("name = %q", got)
	}

	h.press("r", tea.KeyEsc)
	if h.m.mode != modeBrowse || h.node("html").Name != "HTML5 &" {
		t.Error("esc should cancel rename")
	}
}

func TestEditAddSkillAndSection(t *testing.T) {
	h := newHarness(t)
	h.press("j", "a")
	if h.m.mode != modeRename {
		t.Fatal("adding a skill should start rename")
	}
	h.press(tea.KeyEnter)
	kids := h.m.store.Tree().Children("basics")
	if len(kids) != 3 || kids[2].Name != editor.NewSkillName {
		t.Errorf("basics children = %d", len(kids))
	}

	h.press("s", "Tools", tea.KeyEnter)
	roots := h.m.store.Tree().Roots()
	if got := roots[len(roots)-1].Name; got != editor.NewSectionName+"Tools" {
		t.Errorf("section = %q", got)
	}
}

func TestEditLink(t *testing.T) {
	h := newHarness(t)
	// html -> js
	h.press("j", "l", "j", "j", tea.KeyEnter)
	if deps := h.m.store.Tree().Dependencies("js"); len(deps) != 2 {
		t.Errorf("js deps = %v", deps)
	}
	// same again removes it
	h.press("k", "k", "l", "j", "j", tea.KeyEnter)
	if deps := h.m.store.Tree().Dependencies("js"); len(deps) != 1 {
		t.Errorf("js deps after unlink = %v", deps)
	}
	// js -> html closes a cycle
	h.press("l", "k", "k", tea.KeyEnter)
	if !errors.Is(h.m.err, errors.ErrCodeCyclicDependency) {
		t.Errorf("err = %v, want cycle", h.m.err)
	}
}

func TestEditDeleteDuplicate(t *testing.T) {
	h := newHarness(t)
	h.press("j", "j", "D")
	if len(h.m.store.Tree().Children("basics")) != 3 {
		t.Error("duplicate did not add a sibling")
	}
	h.press("d")
	if len(h.m.store.Tree().Children("basics")) != 2 {
		t.Error("delete did not remove the copy")
	}
	if h.m.current() != "css" {
		t.Errorf("cursor = %s, want css", h.m.current())
	}
}

func TestEditLibrary(t *testing.T) {
	h := newHarness(t)
	h.press("j", "/", "react")
	if len(h.m.results) == 0 || h.m.results[0].ID != "react" {
		t.Fatalf("results = %v", h.m.results)
	}
	h.press(tea.KeyEnter)
	kids := h.m.store.Tree().Children("basics")
	if kids[len(kids)-1].Name != "React" {
		t.Errorf("last child = %q", kids[len(kids)-1].Name)
	}
}

func TestEditArrange(t *testing.T) {
	h := newHarness(t)
	h.press("A")
	if p := h.node("js").Position; p == nil || *p != (tree.Point{X: 700, Y: 100}) {
		t.Errorf("js position = %v", p)
	}
}

func TestEditSaveAndQuit(t *testing.T) {
	h := newHarness(t)
	h.press("j", "+")
	if cmd := h.press("q"); cmd != nil {
		t.Error("first q with unsaved changes should not quit")
	}
	h.press("w")
	if h.saved == nil || h.m.Dirty() {
		t.Fatal("w did not save")
	}
	if cmd := h.press("q"); cmd == nil {
		t.Error("q after save should quit")
	}
}

func TestEditView(t *testing.T) {
	h := newHarness(t)
	v := h.m.View()
	for _, want := range []string{"Frontend", "Basics", "JavaScript", "needs CSS", "75%"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
