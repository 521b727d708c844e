// Package pkg provides the core libraries for Skilltree.
//
// # Overview
//
// A skill tree is a hierarchy of learning goals. Sections own skills, skills
// may require other skills, and progress rolls up from the leaves. The pkg
// directory is organized by concern:
//
//  1. [tree] - The immutable tree model and every mutation on it
//  2. [dag] - Insertion-ordered graph and longest-path leveling
//  3. [layout] - Auto-arrange grid, initial seed layout, branch columns
//  4. [canvas] - Viewport, drag state machine, connection geometry
//  5. [editor] - The editor store that sequences mutations and view state
//  6. [library] - Built-in skill catalog, branches and templates
//  7. [io] - SkillTree JSON import and export
//  8. [render] - Card, hexagon and Graphviz renderers
//  9. [server] - Read-only share viewer
//
// # Architecture
//
//	template / JSON file / library skill
//	         ↓
//	    [tree] package (Build, AddChild, Update, Link, Recalc)
//	         ↓
//	    [editor] package (positions, selection, drag, zoom)
//	         ↓
//	    [layout] + [canvas] packages (geometry)
//	         ↓
//	    [render] packages → SVG/DOT/PDF/PNG, or [server] share links
//
// # Quick Start
//
//	t, _ := library.Default().Instantiate("frontend-developer")
//	s := editor.New(t, editor.DefaultOptions())
//	id, _ := s.AddFromLibrary(ctx, "", "docker", nil)
//	_ = s.AutoArrange(ctx)
//	svg, _ := scene.Render(ctx, s.Tree(), s.Positions(), scene.DefaultOptions())
//
// # Error Handling
//
// Operations return [errors.Error] values carrying a code (NOT_FOUND,
// CYCLIC_DEPENDENCY, INVALID_RANGE, ...). Use errors.Is(err, code) to branch.
//
// # Observability
//
// [observability] exposes hooks for editor, render and server events. The
// defaults do nothing; the CLI installs logging hooks.
package pkg
