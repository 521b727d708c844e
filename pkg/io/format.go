package io

import (
	"slices"

	"github.com/matzehuels/skilltree/pkg/tree"
)

// document is the on-disk tree. Field order here is the key order on disk.
type document struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	Nodes       []node `json:"nodes"`
}

type node struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Status       string      `json:"status"`
	Progress     int         `json:"progress"`
	Description  string      `json:"description,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	Resources    []string    `json:"resources,omitempty"`
	Dependencies []string    `json:"dependencies,omitempty"`
	Category     string      `json:"category,omitempty"`
	Difficulty   string      `json:"difficulty,omitempty"`
	Color        string      `json:"color,omitempty"`
	Position     *tree.Point `json:"position,omitempty"`
	Children     []node      `json:"children,omitempty"`
}

// fromSpec converts s for export. Dependencies on ids that name no node in t
// are dropped so the document always re-imports.
func fromSpec(t *tree.Tree, s tree.Spec) node {
	deps := slices.DeleteFunc(slices.Clone(s.Dependencies), func(id string) bool { return !t.Has(id) })
	n := node{
		ID:           s.ID,
		Name:         s.Name,
		Status:       string(s.Status),
		Progress:     s.Progress,
		Description:  s.Description,
		Notes:        s.Notes,
		Resources:    s.Resources,
		Dependencies: deps,
		Category:     s.Category,
		Difficulty:   string(s.Difficulty),
		Color:        s.Color,
		Position:     s.Position,
	}
	for _, c := range s.Children {
		n.Children = append(n.Children, fromSpec(t, c))
	}
	return n
}

func fromTree(t *tree.Tree) document {
	doc := document{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Progress:    t.Progress,
		Nodes:       []node{},
	}
	for _, s := range t.Specs() {
		doc.Nodes = append(doc.Nodes, fromSpec(t, s))
	}
	return doc
}
