// Package nodelink renders the topology of a sphere grid as a traditional
// node-link diagram.
//
// # Overview
//
// Where the scene renderers draw the radial sphere grid, this package shows
// only its structure: nodes as shaped boxes colored by state, edges styled
// by path type, and one rank per tier with the CORE node on top.
//
// # Usage
//
// Convert a grid to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(cfg, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The pipeline exposes the rendered diagram as the "topology" format. The
// SVG can be converted further with render.ToPDF or render.ToPNG.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
