package library

import (
	"github.com/matzehuels/skilltree/pkg/errors"
	"github.com/matzehuels/skilltree/pkg/tree"
)

// Node returns a fresh, not-started node for s with a new id.
func (s Skill) Node() tree.Node {
	return tree.Node{
		ID:          tree.NewID(s.Category),
		Name:        s.Name,
		Status:      tree.StatusNotStarted,
		Description: s.Description,
		Category:    s.Category,
		Difficulty:  tree.Difficulty(s.Difficulty),
		Color:       s.Color,
	}
}

// Specs returns one spec per catalog skill id, each with a fresh node id.
// A skill's requires become dependencies when the required skill is part of
// the same batch or, through existing, already in the target tree.
// existing maps catalog ids to node ids present in that tree; it may be nil.
func (c *Catalog) Specs(ids []string, existing map[string]string) ([]tree.Spec, error) {
	fresh := make(map[string]string, len(ids))
	specs := make([]tree.Spec, 0, len(ids))
	for _, id := range ids {
		s, ok := c.Skill(id)
		if !ok {
			return nil, errors.New(errors.ErrCodeLibrarySkillAbsent, "no library skill %q", id)
		}
		n := s.Node()
		fresh[id] = n.ID
		specs = append(specs, tree.Spec{Node: n})
	}
	for i, id := range ids {
		s, _ := c.Skill(id)
		for _, r := range s.Requires {
			if nid, ok := fresh[r]; ok {
				specs[i].Dependencies = append(specs[i].Dependencies, nid)
			} else if nid, ok := existing[r]; ok {
				specs[i].Dependencies = append(specs[i].Dependencies, nid)
			}
		}
	}
	return specs, nil
}

// BranchSpecs returns the skills of branch id as specs ready to insert.
func (c *Catalog) BranchSpecs(id string, existing map[string]string) ([]tree.Spec, error) {
	b, ok := c.Branch(id)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "branch %q not found", id)
	}
	return c.Specs(b.Skills, existing)
}

// Instantiate builds a new tree from template id. Each section becomes a
// top-level node owning its skills; requires resolve across sections.
func (c *Catalog) Instantiate(id string) (*tree.Tree, error) {
	tpl, ok := c.Template(id)
	if !ok {
		return nil, errors.New(errors.ErrCodeTemplateNotFound, "template %q not found", id)
	}

	var all []string
	for _, sec := range tpl.Sections {
		all = append(all, sec.Skills...)
	}
	skills, err := c.Specs(all, nil)
	if err != nil {
		return nil, err
	}

	specs := make([]tree.Spec, 0, len(tpl.Sections))
	next := 0
	for _, sec := range tpl.Sections {
		section := tree.Spec{Node: tree.Node{
			ID:     tree.NewID("section"),
			Name:   sec.Name,
			Status: tree.StatusNotStarted,
		}}
		section.Children = skills[next : next+len(sec.Skills)]
		next += len(sec.Skills)
		specs = append(specs, section)
	}

	t, err := tree.Build(tree.NewID(tpl.ID), tpl.Name, tpl.Description, specs)
	if err != nil {
		return nil, err
	}
	return t.Recalc(), nil
}

// Origins maps the catalog ids of skills already in t to their node ids.
// Nodes are matched by name and category, first occurrence wins.
func (c *Catalog) Origins(t *tree.Tree) map[string]string {
	out := make(map[string]string)
	for _, n := range t.Nodes() {
		for _, s := range c.Skills {
			if s.Name == n.Name && s.Category == n.Category {
				if _, seen := out[s.ID]; !seen {
					out[s.ID] = n.ID
				}
			}
		}
	}
	return out
}
