// Package editor is the single state object behind an editing session.
//
// A [Store] owns the current tree, the canvas position of every node, the
// viewport, the drag state and the selection. Views read from it and send
// user intents to it; they never change a tree themselves.
//
// Every change goes through the tree package and is followed by a progress
// recalculation, so aggregates are always current. Changes are reported to
// [observability.Editor] hooks.
//
// # Errors
//
// Operations on ids that do not exist (a stale selection, a node deleted by
// an earlier event) are logged at debug level and otherwise ignored.
// Rejected changes are returned: CYCLIC_DEPENDENCY for links that would
// close a cycle, INVALID_RANGE for progress outside [0, 100], and so on.
//
// A Store is not safe for concurrent use.
package editor
