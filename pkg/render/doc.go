// Package render turns assembled scenes into output documents.
//
// # Overview
//
// Scene assembly in [assemble] is pure: it produces a [scene.Scene] tree and
// never draws. Renderers walk that tree and translate each primitive for one
// backend:
//
//   - [sink]: SVG, JSON, PNG and PDF documents for a scene
//   - [nodelink]: a Graphviz diagram of the grid topology
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg). They are shared by both renderers.
//
//	svg := sink.RenderSVG(s)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [assemble]: github.com/matzehuels/spheregrid/pkg/assemble
// [scene.Scene]: github.com/matzehuels/spheregrid/pkg/scene.Scene
// [sink]: github.com/matzehuels/spheregrid/pkg/render/sink
// [nodelink]: github.com/matzehuels/spheregrid/pkg/render/nodelink
package render
