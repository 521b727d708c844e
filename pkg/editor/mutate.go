package editor

import (
	"context"

	"github.com/matzehuels/skilltree/pkg/errors"
	"github.com/matzehuels/skilltree/pkg/tree"
)

// Default names for nodes created from the toolbar.
const (
	NewSectionName = "New section"
	NewSkillName   = "New skill"
)

// AddSection appends an empty top-level node and returns its id.
// An empty name uses NewSectionName.
func (s *Store) AddSection(ctx context.Context, name string) (string, error) {
	if name == "" {
		name = NewSectionName
	}
	n := tree.Node{ID: tree.NewID("section"), Name: name, Status: tree.StatusNotStarted}
	return s.add(ctx, "", tree.Spec{Node: n})
}

// AddSkill appends a new skill under parentID, or at the top level when
// parentID is empty. An empty name uses NewSkillName. An unknown parent
// adds nothing and returns "".
func (s *Store) AddSkill(ctx context.Context, parentID, name string) (string, error) {
	if name == "" {
		name = NewSkillName
	}
	n := tree.Node{ID: tree.NewID("skill"), Name: name, Status: tree.StatusNotStarted}
	return s.add(ctx, parentID, tree.Spec{Node: n})
}

// AddFromLibrary adds a copy of catalog skill skillID under parentID. When
// at is non-nil the node is placed there (a drop on the canvas, in screen
// coordinates). Requirements on skills already in the tree become
// dependencies.
func (s *Store) AddFromLibrary(ctx context.Context, parentID, skillID string, at *tree.Point) (string, error) {
	specs, err := s.opts.Catalog.Specs([]string{skillID}, s.opts.Catalog.Origins(s.tree))
	if err != nil {
		return "", s.reject(ctx, "add", skillID, err)
	}
	spec := specs[0]
	if at != nil {
		p := s.view.Invert(*at)
		spec.Position = &p
	}
	return s.add(ctx, parentID, spec)
}

// AddBranchFromLibrary adds every skill of a catalog branch under parentID
// and returns the new ids in branch order.
func (s *Store) AddBranchFromLibrary(ctx context.Context, parentID, branchID string) ([]string, error) {
	specs, err := s.opts.Catalog.BranchSpecs(branchID, s.opts.Catalog.Origins(s.tree))
	if err != nil {
		return nil, s.reject(ctx, "add-branch", branchID, err)
	}
	if parentID != "" && !s.tree.Has(parentID) {
		return nil, s.apply(ctx, "add-branch", parentID, nil, errors.NotFound("parent", parentID))
	}

	next := s.tree
	ids := make([]string, 0, len(specs))
	for _, spec := range specs {
		var err error
		next, err = next.AddChild(parentID, spec)
		if err != nil {
			return nil, s.apply(ctx, "add-branch", branchID, nil, err)
		}
		ids = append(ids, spec.ID)
	}
	if err := s.apply(ctx, "add-branch", branchID, next, nil); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *Store) add(ctx context.Context, parentID string, spec tree.Spec) (string, error) {
	next, err := s.tree.AddChild(parentID, spec)
	if err := s.apply(ctx, "add", spec.ID, next, err); err != nil {
		return "", err
	}
	if !s.tree.Has(spec.ID) {
		return "", nil
	}
	return spec.ID, nil
}

// Update merges p into node id.
func (s *Store) Update(ctx context.Context, id string, p tree.Patch) error {
	next, err := s.tree.Update(id, p)
	return s.apply(ctx, "update", id, next, err)
}

// Delete removes id, its subtree and every dependency on them.
func (s *Store) Delete(ctx context.Context, id string) error {
	next, err := s.tree.Delete(id)
	return s.apply(ctx, "delete", id, next, err)
}

// Duplicate copies id and its subtree next to the original and selects the
// copy. It returns the id of the copy, or "" when id does not exist.
func (s *Store) Duplicate(ctx context.Context, id string) (string, error) {
	next, copyID, err := s.tree.Duplicate(id)
	if err := s.apply(ctx, "duplicate", id, next, err); err != nil || copyID == "" {
		return "", err
	}
	if p, ok := s.positions[id]; ok {
		s.positions[copyID] = p.Add(tree.Point{X: 40, Y: 40})
	}
	s.selected = copyID
	return copyID, nil
}

// Link makes to depend on from. Links that would close a dependency cycle
// are rejected with CYCLIC_DEPENDENCY.
func (s *Store) Link(ctx context.Context, from, to string) error {
	next, err := s.tree.Link(from, to)
	return s.apply(ctx, "link", to, next, err)
}

// Unlink removes the dependency of to on from.
func (s *Store) Unlink(ctx context.Context, from, to string) error {
	next, err := s.tree.Unlink(from, to)
	return s.apply(ctx, "unlink", to, next, err)
}
