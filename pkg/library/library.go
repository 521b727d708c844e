// Package library provides the built-in skill catalog: single skills that
// can be dropped onto a canvas, ready-made branches of related skills, and
// complete tree templates.
//
// The catalog is TOML. [Default] parses the copy embedded in the binary;
// [Load] reads a replacement from disk.
package library

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/skilltree/pkg/errors"
)

//go:embed catalog.toml
var embedded []byte

// Category groups skills in the library panel.
type Category struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// Skill is a catalog entry.
type Skill struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Category    string   `toml:"category"`
	Difficulty  string   `toml:"difficulty"`
	Color       string   `toml:"color"`
	Description string   `toml:"description"`
	Requires    []string `toml:"requires"`
}

// Branch is a named group of skills added together.
type Branch struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Skills      []string `toml:"skills"`
}

// Section is one top-level node of a template.
type Section struct {
	Name   string   `toml:"name"`
	Skills []string `toml:"skills"`
}

// Template is a complete starter tree.
type Template struct {
	ID          string    `toml:"id"`
	Name        string    `toml:"name"`
	Description string    `toml:"description"`
	Sections    []Section `toml:"section"`
}

// Size returns the number of skills in the template.
func (t Template) Size() int {
	n := 0
	for _, s := range t.Sections {
		n += len(s.Skills)
	}
	return n
}

// Catalog is a parsed library. It is read-only after Parse.
type Catalog struct {
	Categories []Category `toml:"category"`
	Skills     []Skill    `toml:"skill"`
	Branches   []Branch   `toml:"branch"`
	Templates  []Template `toml:"template"`

	skills map[string]int
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the embedded catalog. It panics if the embedded file is
// invalid, which the package tests rule out.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := Parse(embedded)
		if err != nil {
			panic(fmt.Sprintf("library: embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and checks a TOML catalog. Every reference (category,
// requires, branch and template members) must resolve and skill ids must be
// unique.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode catalog")
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) index() error {
	categories := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		categories[cat.ID] = true
	}

	c.skills = make(map[string]int, len(c.Skills))
	for i, s := range c.Skills {
		if err := errors.ValidateID(s.ID); err != nil {
			return fmt.Errorf("skill %q: %w", s.Name, err)
		}
		if _, dup := c.skills[s.ID]; dup {
			return errors.New(errors.ErrCodeDuplicateID, "skill %q defined twice", s.ID)
		}
		if s.Category != "" && !categories[s.Category] {
			return errors.New(errors.ErrCodeInvalidFormat, "skill %s: unknown category %q", s.ID, s.Category)
		}
		c.skills[s.ID] = i
	}

	check := func(owner string, ids []string) error {
		for _, id := range ids {
			if _, ok := c.skills[id]; !ok {
				return errors.New(errors.ErrCodeInvalidFormat, "%s: unknown skill %q", owner, id)
			}
		}
		return nil
	}
	for _, s := range c.Skills {
		if err := check("skill "+s.ID, s.Requires); err != nil {
			return err
		}
	}
	for _, b := range c.Branches {
		if err := check("branch "+b.ID, b.Skills); err != nil {
			return err
		}
	}
	for _, t := range c.Templates {
		for _, sec := range t.Sections {
			if err := check("template "+t.ID, sec.Skills); err != nil {
				return err
			}
		}
	}
	return nil
}

// Skill returns the catalog skill id.
func (c *Catalog) Skill(id string) (Skill, bool) {
	i, ok := c.skills[id]
	if !ok {
		return Skill{}, false
	}
	return c.Skills[i], true
}

// SkillsIn returns the skills of a category in catalog order.
func (c *Catalog) SkillsIn(category string) []Skill {
	var out []Skill
	for _, s := range c.Skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// Branch returns the branch id.
func (c *Catalog) Branch(id string) (Branch, bool) {
	for _, b := range c.Branches {
		if b.ID == id {
			return b, true
		}
	}
	return Branch{}, false
}

// Template returns the template id.
func (c *Catalog) Template(id string) (Template, bool) {
	for _, t := range c.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
