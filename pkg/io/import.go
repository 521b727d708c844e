package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/skilltree/pkg/errors"
	"github.com/matzehuels/skilltree/pkg/tree"
)

// ReadJSON decodes a skill tree from r.
//
// ReadJSON returns an error if:
//   - The JSON is malformed (INVALID_FORMAT)
//   - An id is missing, malformed, or used twice (INVALID_INPUT, DUPLICATE_ID)
//   - A status or difficulty is unknown (INVALID_INPUT)
//   - A dependency id does not name a node in the same tree (NOT_FOUND)
//   - A node depends on itself (CYCLIC_DEPENDENCY)
//
// Progress is clamped to [0, 100] and aggregates are recomputed. A missing
// tree id is replaced by a fresh one. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*tree.Tree, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode skill tree")
	}

	if doc.ID == "" {
		doc.ID = tree.NewID("tree")
	} else if err := errors.ValidateID(doc.ID); err != nil {
		return nil, fmt.Errorf("tree id: %w", err)
	}

	ids := make(map[string]bool)
	specs := make([]tree.Spec, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		s, err := toSpec(n, ids)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	if err := checkDependencies(specs, ids); err != nil {
		return nil, err
	}

	t, err := tree.Build(doc.ID, doc.Name, doc.Description, specs)
	if err != nil {
		return nil, err
	}
	return t.Recalc(), nil
}

// ImportJSON reads a skill tree from the JSON file at path.
func ImportJSON(path string) (*tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func toSpec(n node, ids map[string]bool) (tree.Spec, error) {
	if err := errors.ValidateID(n.ID); err != nil {
		return tree.Spec{}, fmt.Errorf("node %q: %w", n.Name, err)
	}
	if ids[n.ID] {
		return tree.Spec{}, errors.New(errors.ErrCodeDuplicateID, "node id %q appears more than once", n.ID)
	}
	ids[n.ID] = true

	status, err := tree.ParseStatus(n.Status)
	if err != nil {
		return tree.Spec{}, fmt.Errorf("node %s: %w", n.ID, err)
	}
	difficulty := tree.Difficulty(n.Difficulty)
	if !difficulty.Valid() {
		return tree.Spec{}, errors.New(errors.ErrCodeInvalidInput, "node %s: unknown difficulty %q", n.ID, n.Difficulty)
	}

	s := tree.Spec{
		Node: tree.Node{
			ID:          n.ID,
			Name:        n.Name,
			Status:      status,
			Progress:    errors.ClampProgress(n.Progress),
			Description: n.Description,
			Notes:       n.Notes,
			Resources:   n.Resources,
			Category:    n.Category,
			Difficulty:  difficulty,
			Color:       n.Color,
			Position:    n.Position,
		},
		Dependencies: n.Dependencies,
	}
	for _, c := range n.Children {
		cs, err := toSpec(c, ids)
		if err != nil {
			return tree.Spec{}, err
		}
		s.Children = append(s.Children, cs)
	}
	return s, nil
}

func checkDependencies(specs []tree.Spec, ids map[string]bool) error {
	for _, s := range specs {
		for _, d := range s.Dependencies {
			if d == s.ID {
				return errors.Cyclic([]string{d, d})
			}
			if !ids[d] {
				return errors.New(errors.ErrCodeNotFound, "node %s depends on unknown node %q", s.ID, d)
			}
		}
		if err := checkDependencies(s.Children, ids); err != nil {
			return err
		}
	}
	return nil
}
