// Package sink provides output format renderers for assembled scenes.
//
// # Overview
//
// A "sink" walks a [scene.Scene] tree in paint order and transforms it into
// a final output format:
//
//   - SVG: standalone vector document with filter effects
//   - JSON: the scene tree itself, for external renderers
//   - PNG: in-process raster preview, or full fidelity via rsvg-convert
//   - PDF: print-ready output (requires rsvg-convert)
//
// Sinks never compute geometry. Everything they draw is already resolved in
// the tree: boxes, path segments, colors and effect descriptors.
//
// # SVG Output
//
// [RenderSVG] maps each primitive to one element. Drop shadows and layer
// blurs are collected into shared filter definitions, group transforms
// become translate/scale attributes, and path segments serialize through
// [PathData].
//
//	svg := sink.RenderSVG(s, sink.WithIDs())
//
// # PDF and PNG Output
//
// [RenderPDF] converts the SVG with rsvg-convert. [RenderPNG] rasterizes in
// process with gg unless [WithConverter] is given:
//
//	pdf, err := sink.RenderPDF(ctx, s)
//	png, err := sink.RenderPNG(ctx, s, sink.WithScale(2))
//
// [scene.Scene]: github.com/matzehuels/spheregrid/pkg/scene.Scene
package sink
