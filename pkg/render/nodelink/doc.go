// Package nodelink renders skill trees as Graphviz node-link diagrams.
//
// # Overview
//
// Skills appear as rounded boxes and dependencies as arrows pointing from a
// prerequisite to the skill that needs it. Sections become clusters that
// enclose their skills. The graph flows left to right, so each dependency
// level forms a column like the editor's auto-arrange.
//
// # Usage
//
//	dot := nodelink.ToDOT(t, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Styling
//
// Fill and outline follow each skill's availability (see
// [tree.Tree.Availability]): completed skills are filled with their color,
// skills in progress get a heavy outline, locked skills are greyed out and
// dashed. Arrows into locked skills are dashed as well.
//
// # Options
//
//   - Detailed: labels include progress, status and category
//   - Levels: when set, labels also show the dependency level
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
//
// [tree.Tree.Availability]: github.com/matzehuels/skilltree/pkg/tree.Tree.Availability
package nodelink
