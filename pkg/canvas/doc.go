// Package canvas holds the geometry of the interactive editor surface:
// the zoom/pan [Viewport], the single-node [Drag] state machine, and the
// dependency [Connections] drawn between cards.
//
// Two coordinate spaces are involved. World coordinates are what the tree
// stores as node positions. Screen coordinates are what the pointer
// reports. [Viewport.Apply] maps world to screen and [Viewport.Invert] maps
// back; nodes and connections go through the same transform so they never
// drift apart.
package canvas
