package library

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/skilltree/pkg/errors"
	"github.com/matzehuels/skilltree/pkg/layout"
	"github.com/matzehuels/skilltree/pkg/tree"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c == nil {
		t.Fatal("Default() = nil")
	}
	if len(c.Categories) == 0 || len(c.Branches) == 0 || len(c.Templates) == 0 {
		t.Errorf("embedded catalog is incomplete: %d categories, %d branches, %d templates",
			len(c.Categories), len(c.Branches), len(c.Templates))
	}

	react, ok := c.Skill("react")
	if !ok {
		t.Fatal("Skill(react) = false")
	}
	if react.Category != "frontend" || react.Color != "#61DAFB" {
		t.Errorf("react = %+v", react)
	}
	if !slices.Equal(react.Requires, []string{"javascript"}) {
		t.Errorf("react.Requires = %v, want [javascript]", react.Requires)
	}

	if _, ok := c.Skill("cobol"); ok {
		t.Error("Skill(cobol) = true")
	}
	if got := len(c.SkillsIn("devops")); got != 4 {
		t.Errorf("SkillsIn(devops) = %d skills, want 4", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"syntax", `[[skill]`, errors.ErrCodeInvalidFormat},
		{"duplicate", `
[[skill]]
id = "a"
[[skill]]
id = "a"`, errors.ErrCodeDuplicateID},
		{"unknown category", `
[[skill]]
id = "a"
category = "nope"`, errors.ErrCodeInvalidFormat},
		{"unknown requirement", `
[[skill]]
id = "a"
requires = ["b"]`, errors.ErrCodeInvalidFormat},
		{"unknown branch member", `
[[branch]]
id = "b"
skills = ["ghost"]`, errors.ErrCodeInvalidFormat},
		{"unknown template member", `
[[template]]
id = "t"
[[template.section]]
name = "S"
skills = ["ghost"]`, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if err == nil {
				t.Fatal("Parse() = nil error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Parse() code = %s, want %s (%v)", got, tt.code, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.toml")
	err := os.WriteFile(path, []byte(`
[[category]]
id = "lang"
name = "Languages"

[[skill]]
id = "zig"
name = "Zig"
category = "lang"
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if s, ok := c.Skill("zig"); !ok || s.Name != "Zig" {
		t.Errorf("Skill(zig) = %+v, %v", s, ok)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load(missing) = nil error")
	}
}

func TestSearch(t *testing.T) {
	c := Default()

	if got := c.Search(""); len(got) != len(c.Skills) {
		t.Errorf("Search(\"\") = %d skills, want all %d", len(got), len(c.Skills))
	}
	if got := c.Search("kube"); len(got) == 0 || got[0].ID != "kubernetes" {
		t.Errorf("Search(kube) = %v, want kubernetes first", got)
	}
	if got := c.Search("zzzzqqq"); len(got) != 0 {
		t.Errorf("Search(zzzzqqq) = %v, want none", got)
	}
	if got := c.SearchBranches("container"); len(got) == 0 || got[0].ID != "devops-start" {
		t.Errorf("SearchBranches(container) = %v, want devops-start first", got)
	}
}

func TestSpecs(t *testing.T) {
	c := Default()

	specs, err := c.Specs([]string{"react", "javascript"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(specs) != 2 {
		t.Fatalf("Specs() = %d specs, want 2", len(specs))
	}

	react, js := specs[0], specs[1]
	if !strings.HasPrefix(react.ID, "frontend-") {
		t.Errorf("react.ID = %q, want frontend- prefix", react.ID)
	}
	if react.Name != "React" || react.Status != tree.StatusNotStarted || react.Difficulty != tree.DifficultyMedium {
		t.Errorf("react = %+v", react.Node)
	}
	if !slices.Equal(react.Dependencies, []string{js.ID}) {
		t.Errorf("react.Dependencies = %v, want [%s]", react.Dependencies, js.ID)
	}
	if len(js.Dependencies) != 0 {
		t.Errorf("js.Dependencies = %v, html-css is not in the batch", js.Dependencies)
	}

	specs, err = c.Specs([]string{"typescript"}, map[string]string{"javascript": "my-js"})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(specs[0].Dependencies, []string{"my-js"}) {
		t.Errorf("typescript.Dependencies = %v, want [my-js]", specs[0].Dependencies)
	}

	if _, err := c.Specs([]string{"cobol"}, nil); !errors.Is(err, errors.ErrCodeLibrarySkillAbsent) {
		t.Errorf("Specs(cobol) = %v, want LIBRARY_SKILL_NOT_FOUND", err)
	}
}

func TestBranchSpecs(t *testing.T) {
	c := Default()
	specs, err := c.BranchSpecs("frontend-basics", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(specs) != 4 {
		t.Errorf("BranchSpecs(frontend-basics) = %d specs, want 4", len(specs))
	}
	if _, err := c.BranchSpecs("nope", nil); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("BranchSpecs(nope) = %v, want NOT_FOUND", err)
	}
}

func TestInstantiate(t *testing.T) {
	c := Default()
	tpl, ok := c.Template("frontend-developer")
	if !ok {
		t.Fatal("Template(frontend-developer) = false")
	}

	tr, err := c.Instantiate(tpl.ID)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Name != "Frontend Developer" || tr.Progress != 0 {
		t.Errorf("tree = %q at %d%%", tr.Name, tr.Progress)
	}
	if got := len(tr.Roots()); got != len(tpl.Sections) {
		t.Errorf("Roots() = %d, want one per section (%d)", got, len(tpl.Sections))
	}
	if want := tpl.Size() + len(tpl.Sections); tr.Len() != want {
		t.Errorf("Len() = %d, want %d", tr.Len(), want)
	}

	// requirements across sections are wired
	origins := c.Origins(tr)
	if !slices.Contains(tr.Dependencies(origins["react"]), origins["javascript"]) {
		t.Errorf("react does not depend on javascript: %v", tr.Dependencies(origins["react"]))
	}

	for _, tp := range c.Templates {
		tr, err := c.Instantiate(tp.ID)
		if err != nil {
			t.Errorf("Instantiate(%s) = %v", tp.ID, err)
			continue
		}
		if _, err := layout.Level(tr); err != nil {
			t.Errorf("template %s has a dependency cycle: %v", tp.ID, err)
		}
	}

	if _, err := c.Instantiate("astronaut"); !errors.Is(err, errors.ErrCodeTemplateNotFound) {
		t.Errorf("Instantiate(astronaut) = %v, want TEMPLATE_NOT_FOUND", err)
	}
}
