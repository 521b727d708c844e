// Package tree holds the skill tree model and the operations that change it.
//
// # Model
//
// A [Tree] is an arena of [Node] values plus two kinds of edges:
//
//   - [EdgeContains]: parent → child. A child has exactly one parent and is
//     owned by it; deleting the parent deletes the child.
//   - [EdgeDependsOn]: prerequisite → dependent. A plain reference; deleting
//     either end drops the edge.
//
// Containment may nest to any depth. The flat canvas builder's links are the
// DependsOn edges, so one model serves both the card editor and the graph
// builder.
//
// # Copy on write
//
// A *Tree is never modified after it is returned. Every mutating operation
// returns a new *Tree that shares every untouched *Node with its input, so
// callers can compare node pointers to see what changed:
//
//	next, err := t.Update("skill-5", tree.Patch{Progress: tree.Ptr(100)})
//	next = next.Recalc()
//
// Aggregates are not recomputed implicitly. Call [Tree.Recalc] after any
// structural or leaf-progress change; the editor store does this for you.
//
// # Errors
//
// Operations that reference unknown ids return the original tree together
// with a NOT_FOUND error from pkg/errors, leaving the decision to ignore or
// surface it to the caller. Out-of-range progress yields INVALID_RANGE.
package tree
