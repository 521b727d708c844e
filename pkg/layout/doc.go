// Package layout computes canvas positions for skill trees.
//
// Three placements are provided:
//
//   - [Arrange] levels the dependency graph and lays levels out as columns.
//     It is what the editor's auto-arrange button runs.
//   - [Seed] is the deterministic first placement for trees that have never
//     been positioned: sections stacked vertically, their skills fanned out
//     to the right.
//   - [Branches] groups skills into one column per category, the layout of
//     the read-only progress diagram.
//
// # Levels
//
// [Level] assigns every node the length of the longest dependency chain
// leading to it, so that for every dependency D of a node N,
// level(D) < level(N). The result does not depend on the order nodes appear
// in the tree. Dependency ids that do not resolve are ignored.
//
// If the dependencies form a cycle, [Level] and [Arrange] return a
// CYCLIC_DEPENDENCY error carrying the cycle path and no layout.
//
// Containment does not affect levels: a section and its skills are leveled
// by their dependency edges alone.
package layout
