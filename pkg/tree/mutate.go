package tree

import (
	"slices"

	"github.com/matzehuels/skilltree/pkg/errors"
)

// Patch lists the fields to change on a node. Nil fields are left as they
// are. Dependencies replaces the node's dependency list and Children
// replaces its owned subtree.
type Patch struct {
	Name        *string
	Status      *Status
	Progress    *int
	Description *string
	Notes       *string
	Resources   *[]string
	Category    *string
	Difficulty  *Difficulty
	Color       *string
	Position    *Point

	Dependencies *[]string
	Children     *[]Spec
}

func (p Patch) validate() error {
	if p.Progress != nil {
		if err := errors.ValidateProgress(*p.Progress); err != nil {
			return err
		}
	}
	if p.Status != nil && !p.Status.Valid() {
		return errors.New(errors.ErrCodeInvalidInput, "unknown status %q", *p.Status)
	}
	if p.Difficulty != nil && !p.Difficulty.Valid() {
		return errors.New(errors.ErrCodeInvalidInput, "unknown difficulty %q", *p.Difficulty)
	}
	if p.Name != nil {
		if err := errors.ValidateName(*p.Name); err != nil {
			return err
		}
	}
	return nil
}

func (p Patch) apply(n *Node) {
	if p.Name != nil {
		n.Name = *p.Name
	}
	if p.Status != nil {
		n.Status = *p.Status
	}
	if p.Progress != nil {
		n.Progress = *p.Progress
	}
	if p.Description != nil {
		n.Description = *p.Description
	}
	if p.Notes != nil {
		n.Notes = *p.Notes
	}
	if p.Resources != nil {
		n.Resources = slices.Clone(*p.Resources)
	}
	if p.Category != nil {
		n.Category = *p.Category
	}
	if p.Difficulty != nil {
		n.Difficulty = *p.Difficulty
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
	if p.Position != nil {
		pos := *p.Position
		n.Position = &pos
	}
}

// Update merges p into the node id and returns the new tree.
//
// If id does not exist the receiver is returned unchanged together with a
// NOT_FOUND error. Progress outside [0, 100] yields INVALID_RANGE and no
// change. Dependencies must name existing nodes (NOT_FOUND) and must not
// close a cycle (CYCLIC_DEPENDENCY). Applying the same patch twice gives a tree deep-equal to applying
// it once.
func (t *Tree) Update(id string, p Patch) (*Tree, error) {
	n, ok := t.nodes[id]
	if !ok {
		return t, errors.NotFound("node", id)
	}
	if err := p.validate(); err != nil {
		return t, err
	}

	next := t.clone()
	updated := n.clone()
	p.apply(updated)
	next.nodes[id] = updated

	if p.Dependencies != nil {
		next.links = slices.DeleteFunc(next.links, func(e Edge) bool { return e.To == id })
		for _, d := range *p.Dependencies {
			if !t.Has(d) {
				return t, errors.NotFound("dependency", d)
			}
			if cycle := next.closes(d, id); cycle != nil {
				return t, errors.Cyclic(cycle)
			}
			next.addLink(d, id)
		}
	}

	if p.Children != nil {
		for _, c := range t.children[id] {
			next.removeSubtree(c)
		}
		delete(next.children, id)
		specs := *p.Children
		if err := next.insertAll(id, specs); err != nil {
			return t, err
		}
	}

	return next, nil
}

// Move records a canvas position for id. It is Update with only Position.
func (t *Tree) Move(id string, to Point) (*Tree, error) {
	return t.Update(id, Patch{Position: &to})
}

// AddChild inserts s (and its subtree) as the last child of parentID, or as
// the last top-level node when parentID is empty.
//
// An unknown parentID returns the receiver and a NOT_FOUND error; the node is
// not silently promoted to the top level. Ids already present in the tree
// yield DUPLICATE_ID.
func (t *Tree) AddChild(parentID string, s Spec) (*Tree, error) {
	if parentID != "" && !t.Has(parentID) {
		return t, errors.NotFound("parent", parentID)
	}
	next := t.clone()
	if err := next.insertAll(parentID, []Spec{s}); err != nil {
		return t, err
	}
	return next, nil
}

// Delete removes id, everything it owns, and every dependency edge that
// references any removed node.
func (t *Tree) Delete(id string) (*Tree, error) {
	if !t.Has(id) {
		return t, errors.NotFound("node", id)
	}
	next := t.clone()
	next.detach(id)
	next.removeSubtree(id)
	return next, nil
}

// Link adds the dependency edge from → to (to requires from). An edge that
// would close a cycle, including a self link, is a CYCLIC_DEPENDENCY carrying
// the cycle path. An existing link is left as is.
func (t *Tree) Link(from, to string) (*Tree, error) {
	if !t.Has(from) {
		return t, errors.NotFound("node", from)
	}
	if !t.Has(to) {
		return t, errors.NotFound("node", to)
	}
	if t.hasLink(from, to) {
		return t, nil
	}
	if cycle := t.closes(from, to); cycle != nil {
		return t, errors.Cyclic(cycle)
	}
	next := t.clone()
	next.addLink(from, to)
	return next, nil
}

// Unlink removes the dependency edge from → to.
func (t *Tree) Unlink(from, to string) (*Tree, error) {
	if !t.hasLink(from, to) {
		return t, errors.New(errors.ErrCodeNotFound, "link %s → %s not found", from, to)
	}
	next := t.clone()
	next.links = slices.DeleteFunc(next.links, func(e Edge) bool { return e.From == from && e.To == to })
	return next, nil
}

// Duplicate deep-copies id and its subtree with fresh ids and inserts the
// copy directly after the original. Dependencies between copied nodes are
// remapped to the copies; dependencies on outside nodes are kept.
// It returns the new tree and the id of the copy of id.
func (t *Tree) Duplicate(id string) (*Tree, string, error) {
	s, ok := t.Spec(id)
	if !ok {
		return t, "", errors.NotFound("node", id)
	}

	ids := make(map[string]string)
	var assign func(s *Spec)
	assign = func(s *Spec) {
		ids[s.ID] = NewID(s.Category)
		for i := range s.Children {
			assign(&s.Children[i])
		}
	}
	assign(&s)

	var remap func(s *Spec)
	remap = func(s *Spec) {
		s.ID = ids[s.ID]
		s.Position = nil
		for i, d := range s.Dependencies {
			if nd, ok := ids[d]; ok {
				s.Dependencies[i] = nd
			}
		}
		for i := range s.Children {
			remap(&s.Children[i])
		}
	}
	remap(&s)

	next := t.clone()
	parentID, _ := t.Parent(id)
	if err := next.insertAll(parentID, []Spec{s}); err != nil {
		return t, "", err
	}

	// insertAll appended the copy; move it next to the original.
	if parentID == "" {
		next.roots = placeAfter(next.roots, id, s.ID)
	} else {
		next.children[parentID] = placeAfter(next.children[parentID], id, s.ID)
	}
	return next, s.ID, nil
}

func placeAfter(ids []string, anchor, moved string) []string {
	out := slices.DeleteFunc(slices.Clone(ids), func(s string) bool { return s == moved })
	i := slices.Index(out, anchor)
	return slices.Insert(out, i+1, moved)
}

// insertAll inserts specs under parentID. It validates the whole batch
// before touching the receiver, which must be a fresh clone.
func (t *Tree) insertAll(parentID string, specs []Spec) error {
	seen := make(map[string]bool)
	var check func(s Spec) error
	check = func(s Spec) error {
		if err := errors.ValidateID(s.ID); err != nil {
			return err
		}
		if t.Has(s.ID) || seen[s.ID] {
			return errors.New(errors.ErrCodeDuplicateID, "node id %q already in use", s.ID)
		}
		seen[s.ID] = true
		if err := errors.ValidateProgress(s.Progress); err != nil {
			return err
		}
		if s.Status != "" && !s.Status.Valid() {
			return errors.New(errors.ErrCodeInvalidInput, "unknown status %q", s.Status)
		}
		if !s.Difficulty.Valid() {
			return errors.New(errors.ErrCodeInvalidInput, "unknown difficulty %q", s.Difficulty)
		}
		for _, c := range s.Children {
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}
	for _, s := range specs {
		if err := check(s); err != nil {
			return err
		}
	}

	var deps []Edge
	var insert func(parentID string, s Spec)
	insert = func(parentID string, s Spec) {
		n := s.Node.clone()
		if n.Status == "" {
			n.Status = StatusNotStarted
		}
		t.nodes[n.ID] = n
		if parentID == "" {
			t.roots = append(t.roots, n.ID)
		} else {
			t.children[parentID] = append(slices.Clone(t.children[parentID]), n.ID)
			t.parent[n.ID] = parentID
		}
		for _, d := range s.Dependencies {
			deps = append(deps, Edge{From: d, To: n.ID, Kind: EdgeDependsOn})
		}
		for _, c := range s.Children {
			insert(n.ID, c)
		}
	}
	for _, s := range specs {
		insert(parentID, s)
	}
	for _, e := range deps {
		t.addLink(e.From, e.To)
	}
	return nil
}

// detach removes id from its parent's child list or from the roots.
func (t *Tree) detach(id string) {
	drop := func(ids []string) []string {
		return slices.DeleteFunc(slices.Clone(ids), func(s string) bool { return s == id })
	}
	if p, ok := t.parent[id]; ok {
		t.children[p] = drop(t.children[p])
		if len(t.children[p]) == 0 {
			delete(t.children, p)
		}
		return
	}
	t.roots = drop(t.roots)
}

// removeSubtree deletes id and its descendants plus every dependency edge
// touching them. The caller detaches id from its parent first when needed.
func (t *Tree) removeSubtree(id string) {
	gone := make(map[string]bool)
	for _, n := range t.Subtree(id) {
		gone[n] = true
		delete(t.nodes, n)
		delete(t.children, n)
		delete(t.parent, n)
	}
	t.links = slices.DeleteFunc(t.links, func(e Edge) bool { return gone[e.From] || gone[e.To] })
}

func (t *Tree) hasLink(from, to string) bool {
	return slices.ContainsFunc(t.links, func(e Edge) bool { return e.From == from && e.To == to })
}

func (t *Tree) addLink(from, to string) {
	if t.hasLink(from, to) {
		return
	}
	t.links = append(t.links, Edge{From: from, To: to, Kind: EdgeDependsOn})
}
