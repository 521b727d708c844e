// Package render turns skill trees into pictures.
//
// # Overview
//
// Two renderers are provided:
//
//   - [nodelink]: a Graphviz diagram of the dependency graph, sections drawn
//     as clusters around their skills
//   - [scene]: the editor canvas as SVG, cards at their stored positions,
//     or the hexagon branch diagram
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both renderers produce SVG
// first.
//
//	svg, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(t, nodelink.Options{}))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/matzehuels/skilltree/pkg/render/nodelink
// [scene]: github.com/matzehuels/skilltree/pkg/render/scene
package render
