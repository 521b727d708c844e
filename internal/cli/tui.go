package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/skilltree/pkg/editor"
	"github.com/matzehuels/skilltree/pkg/library"
	"github.com/matzehuels/skilltree/pkg/tree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	statusLineStyle   = lipgloss.NewStyle().Foreground(colorGray)
	errorLineStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

const progressStep = 10

type editMode int

const (
	modeBrowse editMode = iota
	modeRename
	modeLink
	modeLibrary
)

// row is one visible line of the tree outline.
type row struct {
	id    string
	depth int
}

// EditModel is the bubbletea model of the interactive editor. All changes go
// through an editor.Store; nothing is written until the user saves.
type EditModel struct {
	ctx   context.Context
	store *editor.Store
	cat   *library.Catalog
	save  func(*tree.Tree) error

	rows   []row
	cursor int
	offset int
	height int

	mode     editMode
	input    string
	linkFrom string
	results  []library.Skill
	pick     int

	dirty   bool
	quitArm bool
	message string
	err     error
}

// NewEditModel creates an editor over s. save is called by the "w" key.
func NewEditModel(ctx context.Context, s *editor.Store, cat *library.Catalog, save func(*tree.Tree) error) EditModel {
	m := EditModel{ctx: ctx, store: s, cat: cat, save: save, height: 20}
	m.refresh("")
	return m
}

// Dirty reports whether there are unsaved changes.
func (m EditModel) Dirty() bool { return m.dirty }

func (m EditModel) Init() tea.Cmd {
	return nil
}

// refresh rebuilds the outline and keeps the cursor on keep when it still
// exists.
func (m *EditModel) refresh(keep string) {
	m.rows = nil
	m.store.Tree().Walk(func(n *tree.Node, depth int) bool {
		m.rows = append(m.rows, row{id: n.ID, depth: depth})
		return true
	})
	if keep != "" {
		if i := slices.IndexFunc(m.rows, func(r row) bool { return r.id == keep }); i >= 0 {
			m.cursor = i
		}
	}
	m.cursor = max(0, min(m.cursor, len(m.rows)-1))
	m.scroll()
	if id := m.current(); id != "" {
		m.store.Select(id)
	}
}

func (m *EditModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m EditModel) current() string {
	if len(m.rows) == 0 {
		return ""
	}
	return m.rows[m.cursor].id
}

// done records the outcome of an edit.
func (m *EditModel) done(keep, msg string, err error) {
	m.err = err
	if err == nil {
		m.dirty = true
		m.message = msg
	}
	m.refresh(keep)
}

func (m EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(5, msg.Height-8)
		m.scroll()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeRename:
			return m.updateRename(msg)
		case modeLink:
			return m.updateLink(msg)
		case modeLibrary:
			return m.updateLibrary(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m EditModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "q" {
		m.quitArm = false
	}
	m.message, m.err = "", nil
	id := m.current()

	switch key {
	case "q", "esc":
		if m.dirty && !m.quitArm {
			m.quitArm = true
			m.message = "Unsaved changes. Press q again to quit, w to save."
			return m, nil
		}
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.refresh("")
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		m.refresh("")
	case "+", "=", "right":
		m.stepProgress(id, progressStep)
	case "-", "left":
		m.stepProgress(id, -progressStep)
	case " ":
		m.toggleDone(id)
	case "r":
		if n, ok := m.store.Tree().Find(id); ok {
			m.mode, m.input = modeRename, n.Name
		}
	case "s":
		nid, err := m.store.AddSection(m.ctx, "")
		m.done(nid, "Added section", err)
		if err == nil {
			m.mode, m.input = modeRename, editor.NewSectionName
		}
	case "a":
		nid, err := m.store.AddSkill(m.ctx, m.parentFor(id), "")
		m.done(nid, "Added skill", err)
		if err == nil && nid != "" {
			m.mode, m.input = modeRename, editor.NewSkillName
		}
	case "/":
		m.mode, m.input, m.pick = modeLibrary, "", 0
		m.results = m.cat.Search("")
	case "l":
		if id != "" {
			m.mode, m.linkFrom = modeLink, id
		}
	case "d":
		if id == "" {
			break
		}
		next := ""
		if m.cursor > 0 {
			next = m.rows[m.cursor-1].id
		}
		m.done(next, "Deleted", m.store.Delete(m.ctx, id))
	case "D":
		if id == "" {
			break
		}
		nid, err := m.store.Duplicate(m.ctx, id)
		m.done(nid, "Duplicated", err)
	case "A":
		m.done(id, "Arranged by prerequisite level", m.store.AutoArrange(m.ctx))
	case "w":
		if err := m.save(m.store.Tree()); err != nil {
			m.err = err
			return m, nil
		}
		m.dirty = false
		m.message = "Saved"
	}
	return m, nil
}

// parentFor returns where new skills go: under id when it is a section,
// next to it otherwise.
func (m EditModel) parentFor(id string) string {
	t := m.store.Tree()
	if id == "" {
		return ""
	}
	if t.HasChildren(id) {
		return id
	}
	if p, ok := t.Parent(id); ok {
		return p
	}
	return ""
}

func (m *EditModel) stepProgress(id string, delta int) {
	n, ok := m.store.Tree().Find(id)
	if !ok {
		return
	}
	if m.store.Tree().HasChildren(id) {
		m.message = "Section progress is derived from its skills"
		return
	}
	p := max(0, min(100, n.Progress+delta))
	st := tree.DeriveStatus(p)
	m.done(id, fmt.Sprintf("%s: %d%%", n.Name, p), m.store.Update(m.ctx, id, tree.Patch{Progress: &p, Status: &st}))
}

func (m *EditModel) toggleDone(id string) {
	n, ok := m.store.Tree().Find(id)
	if !ok || m.store.Tree().HasChildren(id) {
		return
	}
	p, st := 100, tree.StatusCompleted
	if n.Status == tree.StatusCompleted {
		p, st = 0, tree.StatusNotStarted
	}
	m.done(id, fmt.Sprintf("%s: %s", n.Name, st), m.store.Update(m.ctx, id, tree.Patch{Progress: &p, Status: &st}))
}

func (m EditModel) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
	case tea.KeyEnter:
		id, name := m.current(), strings.TrimSpace(m.input)
		m.mode = modeBrowse
		m.done(id, "Renamed", m.store.Update(m.ctx, id, tree.Patch{Name: &name}))
	case tea.KeyBackspace:
		m.input = dropLast(m.input)
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m EditModel) updateLink(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode, m.linkFrom = modeBrowse, ""
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.refresh("")
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		m.refresh("")
	case "enter":
		to := m.current()
		from := m.linkFrom
		m.mode, m.linkFrom = modeBrowse, ""
		if slices.Contains(m.store.Tree().Dependencies(to), from) {
			m.done(to, "Unlinked", m.store.Unlink(m.ctx, from, to))
		} else {
			m.done(to, "Linked", m.store.Link(m.ctx, from, to))
		}
	}
	return m, nil
}

func (m EditModel) updateLibrary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		return m, nil
	case tea.KeyUp:
		if m.pick > 0 {
			m.pick--
		}
		return m, nil
	case tea.KeyDown:
		if m.pick < len(m.results)-1 {
			m.pick++
		}
		return m, nil
	case tea.KeyEnter:
		m.mode = modeBrowse
		if len(m.results) == 0 {
			return m, nil
		}
		skill := m.results[m.pick]
		nid, err := m.store.AddFromLibrary(m.ctx, m.parentFor(m.current()), skill.ID, nil)
		m.done(nid, "Added "+skill.Name, err)
		return m, nil
	case tea.KeyBackspace:
		m.input = dropLast(m.input)
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	default:
		return m, nil
	}
	m.results = m.cat.Search(m.input)
	m.pick = 0
	return m, nil
}

func dropLast(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

func (m EditModel) View() string {
	var b strings.Builder
	t := m.store.Tree()

	title := t.Name
	if m.dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("  " + progressBar(t.Progress, 20) + " " + StyleNumber.Render(fmt.Sprintf("%d%%", t.Progress)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(m.help()))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(listDimStyle.Render("  Empty tree. Press s to add a section or / to search the library."))
		b.WriteString("\n")
	}
	end := min(m.offset+m.height, len(m.rows))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	if m.mode == modeLibrary {
		b.WriteString("\n" + StyleTitle.Render("Library") + " " + StyleValue.Render(m.input+"▏") + "\n")
		for i, s := range m.results[:min(len(m.results), 8)] {
			line := fmt.Sprintf("  %s %s", s.Name, listDimStyle.Render(s.Category))
			if i == m.pick {
				line = listSelectedStyle.Render("▸ " + s.Name + " " + s.Category)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errorLineStyle.Render(iconError + " " + m.err.Error()))
	case m.message != "":
		b.WriteString(statusLineStyle.Render(m.message))
	}
	return b.String()
}

func (m EditModel) renderRow(i int) string {
	t := m.store.Tree()
	r := m.rows[i]
	n, _ := t.Find(r.id)

	cursor := "  "
	if i == m.cursor {
		cursor = "▸ "
	}
	name := n.Name
	if i == m.cursor && m.mode == modeRename {
		name = m.input + "▏"
	}
	if r.id == m.linkFrom {
		name += " ⇢"
	}

	a, _ := t.Availability(r.id)
	st := statusStyle(a)
	if i == m.cursor {
		st = listSelectedStyle
	}
	line := fmt.Sprintf("%s%s%s %s %s %s", cursor, strings.Repeat("  ", r.depth),
		statusStyle(a).Render(statusIcon(a)), st.Render(name),
		progressBar(n.Progress, 10), StyleNumber.Render(fmt.Sprintf("%3d%%", n.Progress)))

	if deps := t.Dependencies(r.id); len(deps) > 0 {
		names := make([]string, 0, len(deps))
		for _, d := range deps {
			if dn, ok := t.Find(d); ok {
				names = append(names, dn.Name)
			}
		}
		if len(names) > 0 {
			line += listDimStyle.Render("  needs " + strings.Join(names, ", "))
		}
	}
	return line
}

func (m EditModel) help() string {
	switch m.mode {
	case modeRename:
		return "type a name  ⏎ save  esc cancel"
	case modeLink:
		return "pick the skill that needs it  ⏎ link/unlink  esc cancel"
	case modeLibrary:
		return "type to search  ↑/↓ choose  ⏎ add  esc cancel"
	}
	return "↑/↓ move  +/- progress  space done  r rename  a skill  s section  / library  l link  d delete  D duplicate  A arrange  w save  q quit"
}
