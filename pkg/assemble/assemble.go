// Package assemble turns a grid configuration into a complete scene.
//
// [Generate] is the single entry point. It validates the configuration,
// resolves anchors, connector and sector geometry, builds the template
// catalog once, and emits the scene tree back to front:
//
//	Background → StarField → CenterGlow → Vignette → DomainSectors →
//	Rings → Connectors → Nodes → NodeInfo → Legend (→ Title)
//
// Every top-level group is always present, possibly empty, so consumers can
// rely on positions. Title is only appended when the configuration has a
// title or a gates box. Generation either returns a full scene or a coded
// error; it never returns a partial scene.
package assemble

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/spheregrid/pkg/catalog"
	"github.com/matzehuels/spheregrid/pkg/errors"
	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/layout"
	"github.com/matzehuels/spheregrid/pkg/rng"
	"github.com/matzehuels/spheregrid/pkg/scene"
)

// Top-level group names in paint order.
const (
	LayerBackground    = "Background"
	LayerStarField     = "StarField"
	LayerCenterGlow    = "CenterGlow"
	LayerVignette      = "Vignette"
	LayerDomainSectors = "DomainSectors"
	LayerRings         = "Rings"
	LayerConnectors    = "Connectors"
	LayerNodes         = "Nodes"
	LayerNodeInfo      = "NodeInfo"
	LayerLegend        = "Legend"
	LayerTitle         = "Title"
)

// Layers lists the mandatory top-level groups in paint order.
var Layers = []string{
	LayerBackground, LayerStarField, LayerCenterGlow, LayerVignette,
	LayerDomainSectors, LayerRings, LayerConnectors, LayerNodes,
	LayerNodeInfo, LayerLegend,
}

// Namespace seeds the deterministic scene IDs.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/spheregrid"))

// Option configures a generation pass.
type Option func(*generator)

// WithPolicy sets the validation policy. The default is strict.
func WithPolicy(p grid.Policy) Option {
	return func(g *generator) {
		g.policy = p
	}
}

// WithSeed overrides the seed from the configuration.
func WithSeed(seed uint32) Option {
	return func(g *generator) {
		g.seed = &seed
	}
}

// WithLogger sets the logger for warnings and progress.
func WithLogger(l *log.Logger) Option {
	return func(g *generator) {
		g.logger = l
	}
}

// WithCatalog replaces the built-in template catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(g *generator) {
		g.catalog = c
	}
}

type generator struct {
	cfg      *grid.Config
	policy   grid.Policy
	seed     *uint32
	logger   *log.Logger
	catalog  *catalog.Catalog
	report   *grid.Report
	layout   *layout.Layout
	warnings []string
}

func (g *generator) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	g.warnings = append(g.warnings, msg)
	g.logger.Warn(msg)
}

// Generate builds the scene for cfg.
func Generate(cfg *grid.Config, opts ...Option) (*scene.Scene, error) {
	g := &generator{cfg: cfg, policy: grid.PolicyStrict}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	g.report = grid.Validate(cfg, g.policy)
	if err := g.report.Err(); err != nil {
		return nil, err
	}
	for _, w := range g.report.Warnings {
		g.warn("%s", w)
	}

	seed := cfg.SeedValue()
	if g.seed != nil {
		seed = *g.seed
	}

	l, err := layout.Resolve(cfg)
	if err != nil {
		return nil, err
	}
	g.layout = l

	if g.catalog == nil {
		g.catalog = catalog.Build()
	}

	id, err := sceneID(cfg, seed)
	if err != nil {
		return nil, err
	}

	r := rng.New(seed)
	root := scene.Group(cfg.Name)
	root.Add(g.background())
	root.Add(g.starField(r))
	root.Add(g.centerGlow())
	root.Add(g.vignette())
	root.Add(g.domainSectors())
	root.Add(g.rings())
	root.Add(g.connectors())

	nodes, err := g.nodes()
	if err != nil {
		return nil, err
	}
	root.Add(nodes)
	root.Add(g.nodeInfo())

	legend, err := g.legend()
	if err != nil {
		return nil, err
	}
	root.Add(legend)
	if title, ok := g.title(); ok {
		root.Add(title)
	}

	g.logger.Debug("assembled scene",
		"nodes", len(cfg.Nodes),
		"edges", len(cfg.Edges)-len(g.report.Skipped),
		"primitives", countPrimitives(&root),
		"warnings", len(g.warnings))

	return &scene.Scene{
		ID:       id,
		Name:     cfg.Name,
		Width:    cfg.Canvas.Width,
		Height:   cfg.Canvas.Height,
		Seed:     seed,
		Root:     root,
		Warnings: g.warnings,
	}, nil
}

func sceneID(cfg *grid.Config, seed uint32) (string, error) {
	data, err := grid.Canonical(cfg)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "canonicalize config")
	}
	data = binary.BigEndian.AppendUint32(data, seed)
	return uuid.NewSHA1(Namespace, data).String(), nil
}

func countPrimitives(n *scene.Node) int {
	count := 0
	n.Walk(func(c *scene.Node, _ int) bool {
		if c.Kind != scene.KindGroup {
			count++
		}
		return true
	})
	return count
}
