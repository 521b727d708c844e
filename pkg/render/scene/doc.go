// Package scene renders skill trees as standalone SVG.
//
// Two styles are available:
//
//   - [StyleCards] draws the editor canvas: one card per node at its stored
//     position, dependency curves between cards, all under the viewport
//     transform so nodes and edges stay aligned at any zoom.
//   - [StyleHexagons] draws the progress diagram: skills as hexagons in one
//     column per category, sized and colored by availability, with
//     orthogonal connectors from prerequisites.
//
// Drawing uses [github.com/ajstarks/svgo]. All text is escaped by svgo.
package scene
