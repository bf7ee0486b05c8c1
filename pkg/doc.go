// Package pkg provides the core libraries for Spheregrid progression grids.
//
// # Overview
//
// Spheregrid turns a declarative grid (concentric tiers, angular domains,
// nodes and the paths between them) into a layered vector scene, then renders
// that scene as SVG, PNG, PDF, JSON or Graphviz DOT. The pkg directory is
// organized into four areas:
//
//  1. Model: [grid] configuration, validation and the built-in sample
//  2. Geometry: [geom], [color], [rng], [layout], [paths], [sector], [starfield]
//  3. Scene: [palette], [style], [scene], [catalog], [assemble]
//  4. Output and plumbing: [render], [pipeline], [cache], [observability]
//
// # Architecture
//
// The data flow through Spheregrid:
//
//	grid config (TOML / YAML / JSON)
//	         ↓
//	    [grid] package (decode + validate)
//	         ↓
//	    [layout] package (node anchors and sizes)
//	         ↓
//	    [assemble] package (layered scene tree)
//	         ↓
//	    [render/sink] and [render/nodelink]
//	         ↓
//	    SVG/PNG/PDF/JSON/DOT output
//
// Every stage before rendering is pure and deterministic: the same
// configuration and seed always give the same scene, down to the star field.
//
// # Quick Start
//
//	cfg, err := grid.Load("grid.toml")
//	if err != nil {
//	    return err
//	}
//	s, err := assemble.Generate(cfg, assemble.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(s)
//
// Or through the cached pipeline shared by the CLI and the HTTP server:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, cfg, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//
// # Main Packages
//
// ## Model
//
// [grid] - The configuration model. Loaders for TOML, YAML and JSON, a
// validator that collects every issue in one pass, and [grid.Default], the
// built-in sample grid.
//
// ## Geometry
//
// [geom] - Points, polar conversion, arcs and cubic Bézier curves.
//
// [layout] - Places each node on its tier ring at its angle and sizes it by
// importance.
//
// [paths] - Connector curves between nodes: straight, arc and Bézier, with a
// fallback for degenerate Bézier controls.
//
// [sector] - Domain wedges between two radii and two angles.
//
// [starfield] - Seeded procedural stars that keep clear of the grid.
//
// ## Scene
//
// [palette] - Node state to color bundle, all blended from fixed bases.
//
// [catalog] - Node shape templates (circle, hexagon, diamond, octagon).
//
// [assemble] - Builds the scene layers in paint order: background, stars,
// glow, vignette, sectors, rings, connectors, nodes, node info, legend, title.
//
// ## Output and Plumbing
//
// [render] - Scene renderers ([render/sink], [render/nodelink]) and the
// rsvg-convert bridge.
//
// [pipeline] - generate → render with caching, used by every entry point.
//
// [cache] - File, Redis, MongoDB and null cache backends with content-hash keys.
//
// [observability] - Hook registry for pipeline and cache metrics.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/assemble/...           # Specific package
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/grid
// [grid.Default]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/grid#Default
// [geom]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/geom
// [color]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/color
// [rng]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/rng
// [layout]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/layout
// [paths]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/paths
// [sector]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/sector
// [starfield]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/starfield
// [palette]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/palette
// [style]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/style
// [scene]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/scene
// [catalog]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/catalog
// [assemble]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/assemble
// [render]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/spheregrid/pkg/observability
package pkg
