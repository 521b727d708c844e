// Package transform provides the graph passes behind auto-arrange.
//
// [AssignLayers] is the leveler proper: a longest-path layering over the
// dependency graph computed in topological order, so that every
// prerequisite lands in a strictly lower row than the skills that need it.
// Cycles are reported instead of being silently flattened.
//
// [WouldCycle] is a reachability check used before linking two skills so
// that the editor can refuse a link that would make the graph unlevelable.
package transform
