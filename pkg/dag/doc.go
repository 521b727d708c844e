// Package dag provides a small insertion-ordered directed graph used to
// level skill dependencies.
//
// # Overview
//
// Skill trees carry dependency references between nodes ("Y requires X").
// The leveler turns those references into a graph where an edge X→Y means
// X must be placed in an earlier column than Y. This package holds that
// graph and the structural checks the leveler relies on.
//
// # Basic Usage
//
//	g := dag.New()
//	g.AddNode(dag.Node{ID: "html"})
//	g.AddNode(dag.Node{ID: "react"})
//	g.AddEdge(dag.Edge{From: "html", To: "react"})
//
// Query the structure with [DAG.Children], [DAG.InDegree] and
// [DAG.NodesInRow]. Row assignment itself lives in the transform package.
//
// # Ordering
//
// Unlike a plain map-backed graph, every listing method returns nodes in the
// order they were added. Layouts built on top of it are therefore stable for
// a given input order, which keeps exported coordinates diffable.
//
// # Cycles
//
// [DAG.FindCycle] returns the offending path so callers can show the user
// which dependencies to break. Layer assignment fails with [ErrGraphHasCycle].
package dag
