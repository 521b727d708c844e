package library

import "github.com/sahilm/fuzzy"

// Search returns the skills whose name fuzzily matches query, best match
// first. An empty query returns every skill in catalog order.
func (c *Catalog) Search(query string) []Skill {
	if query == "" {
		return append([]Skill(nil), c.Skills...)
	}
	names := make([]string, len(c.Skills))
	for i, s := range c.Skills {
		names[i] = s.Name
	}
	matches := fuzzy.Find(query, names)
	out := make([]Skill, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.Skills[m.Index])
	}
	return out
}

// SearchBranches matches query against branch names and descriptions.
func (c *Catalog) SearchBranches(query string) []Branch {
	if query == "" {
		return append([]Branch(nil), c.Branches...)
	}
	texts := make([]string, len(c.Branches))
	for i, b := range c.Branches {
		texts[i] = b.Name + " " + b.Description
	}
	matches := fuzzy.Find(query, texts)
	out := make([]Branch, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.Branches[m.Index])
	}
	return out
}
