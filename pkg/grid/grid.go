// Package grid defines the declarative description of a sphere grid: the
// concentric tiers, angular domains, nodes, edges and resource catalog that
// scene generation consumes.
//
// A [Config] is an immutable value for the duration of one generation pass.
// It can be built in code (see [Default]), or decoded from TOML, YAML or JSON
// with [Load] and [Decode]. [Validate] checks it before any layout happens
// and reports every structural problem at once.
package grid

import (
	"github.com/matzehuels/spheregrid/pkg/color"
	"github.com/matzehuels/spheregrid/pkg/rng"
)

// CoreTier is the tier sentinel that anchors a node at the canvas center.
const CoreTier = "CORE"

// CoreDomain is the domain that spans the full circle and owns the center.
const CoreDomain = "CORE"

// Config is the complete input of one generation pass.
type Config struct {
	Name       string         `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Canvas     Canvas         `json:"canvas" yaml:"canvas" toml:"canvas"`
	Seed       *uint32        `json:"seed,omitempty" yaml:"seed,omitempty" toml:"seed,omitempty"`
	Title      Title          `json:"title" yaml:"title" toml:"title"`
	Gates      Gates          `json:"gates" yaml:"gates" toml:"gates"`
	Tiers      []Tier         `json:"tiers" yaml:"tiers" toml:"tiers" validate:"required,min=1,dive"`
	Domains    []Domain       `json:"domains" yaml:"domains" toml:"domains" validate:"dive"`
	Nodes      []Node         `json:"nodes" yaml:"nodes" toml:"nodes" validate:"dive"`
	Edges      []Edge         `json:"edges" yaml:"edges" toml:"edges" validate:"dive"`
	Resources  []ResourceType `json:"resources" yaml:"resources" toml:"resources" validate:"dive"`
	Background Background     `json:"background" yaml:"background" toml:"background"`
	Legend     Legend         `json:"legend" yaml:"legend" toml:"legend"`
}

// SeedValue returns the configured seed, or rng.DefaultSeed.
func (c *Config) SeedValue() uint32 {
	if c.Seed != nil {
		return *c.Seed
	}
	return rng.DefaultSeed
}

// Canvas is the frame size in pixels.
type Canvas struct {
	Width  float64 `json:"width" yaml:"width" toml:"width" validate:"gt=0"`
	Height float64 `json:"height" yaml:"height" toml:"height" validate:"gt=0"`
}

// Title is the optional heading drawn in the top-left corner.
type Title struct {
	Text     string  `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Subtitle string  `json:"subtitle,omitempty" yaml:"subtitle,omitempty" toml:"subtitle,omitempty"`
	X        float64 `json:"x" yaml:"x" toml:"x"`
	Y        float64 `json:"y" yaml:"y" toml:"y"`
	FontSize float64 `json:"fontSize,omitempty" yaml:"fontSize,omitempty" toml:"fontSize,omitempty" validate:"gte=0"`
}

// Gates is the optional box listing the conditions that open the next tier.
type Gates struct {
	Title      string   `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Conditions []string `json:"conditions,omitempty" yaml:"conditions,omitempty" toml:"conditions,omitempty"`
	X          float64  `json:"x" yaml:"x" toml:"x"`
	Y          float64  `json:"y" yaml:"y" toml:"y"`
	Width      float64  `json:"width" yaml:"width" toml:"width" validate:"gte=0"`
	Height     float64  `json:"height" yaml:"height" toml:"height" validate:"gte=0"`
}

// Tier is one concentric ring.
type Tier struct {
	ID            string  `json:"id" yaml:"id" toml:"id" validate:"required"`
	Label         string  `json:"label" yaml:"label" toml:"label"`
	LabelEn       string  `json:"labelEn,omitempty" yaml:"labelEn,omitempty" toml:"labelEn,omitempty"`
	Radius        float64 `json:"radius" yaml:"radius" toml:"radius" validate:"gt=0"`
	GlowIntensity float64 `json:"glowIntensity" yaml:"glowIntensity" toml:"glowIntensity" validate:"gte=0,lte=1"`
	Threshold     int64   `json:"threshold" yaml:"threshold" toml:"threshold" validate:"gte=0"`
}

// Domain is an angular wedge that groups nodes thematically. Angles are in
// degrees, clockwise from east.
type Domain struct {
	ID         string    `json:"id" yaml:"id" toml:"id" validate:"required"`
	Label      string    `json:"label" yaml:"label" toml:"label"`
	LabelEn    string    `json:"labelEn,omitempty" yaml:"labelEn,omitempty" toml:"labelEn,omitempty"`
	Color      color.RGB `json:"color" yaml:"color" toml:"color"`
	Accent     color.RGB `json:"accent" yaml:"accent" toml:"accent"`
	StartAngle float64   `json:"startAngle" yaml:"startAngle" toml:"startAngle"`
	EndAngle   float64   `json:"endAngle" yaml:"endAngle" toml:"endAngle"`
}

// Span returns EndAngle - StartAngle. Domains run clockwise, so every
// domain other than CORE must have a span in (0, 360].
func (d Domain) Span() float64 { return d.EndAngle - d.StartAngle }

// Requirement is one resource a node needs to unlock.
type Requirement struct {
	Type  string `json:"type" yaml:"type" toml:"type" validate:"required"`
	Count int    `json:"count" yaml:"count" toml:"count" validate:"gte=1"`
}

// Node is one sphere of the grid.
type Node struct {
	ID             string        `json:"id" yaml:"id" toml:"id" validate:"required"`
	Label          string        `json:"label" yaml:"label" toml:"label"`
	Tier           string        `json:"tier" yaml:"tier" toml:"tier" validate:"required"`
	Angle          float64       `json:"angle" yaml:"angle" toml:"angle"`
	State          State         `json:"state" yaml:"state" toml:"state" validate:"required,oneof=LOCKED ELIGIBLE UNLOCKED MASTERED"`
	Domain         string        `json:"domain" yaml:"domain" toml:"domain" validate:"required"`
	Importance     Importance    `json:"importance,omitempty" yaml:"importance,omitempty" toml:"importance,omitempty" validate:"omitempty,oneof=MAJOR STANDARD MINOR"`
	Shape          Shape         `json:"shape,omitempty" yaml:"shape,omitempty" toml:"shape,omitempty" validate:"omitempty,oneof=CIRCLE HEXAGON DIAMOND OCTAGON"`
	SizeMultiplier *float64      `json:"sizeMultiplier,omitempty" yaml:"sizeMultiplier,omitempty" toml:"sizeMultiplier,omitempty" validate:"omitempty,gt=0"`
	Requirements   []Requirement `json:"requirements,omitempty" yaml:"requirements,omitempty" toml:"requirements,omitempty" validate:"dive"`
	Effect         string        `json:"effect,omitempty" yaml:"effect,omitempty" toml:"effect,omitempty"`
	Description    string        `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// IsCore reports whether the node is anchored at the center.
func (n Node) IsCore() bool { return n.Tier == CoreTier }

// Multiplier returns the size multiplier, defaulting to 1.
func (n Node) Multiplier() float64 {
	if n.SizeMultiplier == nil {
		return 1
	}
	return *n.SizeMultiplier
}

// EffectiveImportance returns the importance, defaulting to STANDARD.
func (n Node) EffectiveImportance() Importance {
	if n.Importance == "" {
		return ImportanceStandard
	}
	return n.Importance
}

// EffectiveShape returns the shape, defaulting to CIRCLE.
func (n Node) EffectiveShape() Shape {
	if n.Shape == "" {
		return ShapeCircle
	}
	return n.Shape
}

// Edge connects two nodes.
type Edge struct {
	From      string    `json:"from" yaml:"from" toml:"from" validate:"required"`
	To        string    `json:"to" yaml:"to" toml:"to" validate:"required"`
	Type      PathType  `json:"type" yaml:"type" toml:"type" validate:"required,oneof=MAIN OPTIONAL BLOCKED CROSS_DOMAIN"`
	Curve     CurveType `json:"curve,omitempty" yaml:"curve,omitempty" toml:"curve,omitempty" validate:"omitempty,oneof=STRAIGHT BEZIER"`
	Intensity *float64  `json:"intensity,omitempty" yaml:"intensity,omitempty" toml:"intensity,omitempty"`
}

// EffectiveCurve returns the curve type, defaulting to STRAIGHT.
func (e Edge) EffectiveCurve() CurveType {
	if e.Curve == "" {
		return CurveStraight
	}
	return e.Curve
}

// ResourceType is one entry of the resource catalog.
type ResourceType struct {
	Type        string    `json:"type" yaml:"type" toml:"type" validate:"required"`
	Label       string    `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Color       color.RGB `json:"color" yaml:"color" toml:"color"`
}

// Range is a closed numeric interval.
type Range struct {
	Min float64 `json:"min" yaml:"min" toml:"min"`
	Max float64 `json:"max" yaml:"max" toml:"max"`
}

// Lerp returns Min + t*(Max-Min).
func (r Range) Lerp(t float64) float64 { return r.Min + t*(r.Max-r.Min) }

// Background groups the decorative backdrop parameters.
type Background struct {
	Vignette   Vignette   `json:"vignette" yaml:"vignette" toml:"vignette"`
	CenterGlow CenterGlow `json:"centerGlow" yaml:"centerGlow" toml:"centerGlow"`
	StarField  StarField  `json:"starField" yaml:"starField" toml:"starField"`
}

// Vignette darkens the canvas edges. RadiusRatio scales the canvas diagonal.
type Vignette struct {
	Enabled     bool    `json:"enabled" yaml:"enabled" toml:"enabled"`
	Intensity   float64 `json:"intensity" yaml:"intensity" toml:"intensity" validate:"gte=0,lte=1"`
	RadiusRatio float64 `json:"radiusRatio" yaml:"radiusRatio" toml:"radiusRatio" validate:"gte=0"`
}

// CenterGlow is the soft light behind the core.
type CenterGlow struct {
	Enabled bool    `json:"enabled" yaml:"enabled" toml:"enabled"`
	Radius  float64 `json:"radius" yaml:"radius" toml:"radius" validate:"gte=0"`
	Opacity float64 `json:"opacity" yaml:"opacity" toml:"opacity" validate:"gte=0,lte=1"`
	Blur    float64 `json:"blur" yaml:"blur" toml:"blur" validate:"gte=0"`
}

// StarField configures the procedural star layers.
type StarField struct {
	Enabled     bool        `json:"enabled" yaml:"enabled" toml:"enabled"`
	AvoidRadius float64     `json:"avoidRadius" yaml:"avoidRadius" toml:"avoidRadius" validate:"gte=0"`
	Layers      []StarLayer `json:"layers" yaml:"layers" toml:"layers" validate:"dive"`
}

// StarLayer is one batch of stars sharing size and opacity ranges.
type StarLayer struct {
	Count   int   `json:"count" yaml:"count" toml:"count" validate:"gte=0"`
	Size    Range `json:"size" yaml:"size" toml:"size"`
	Opacity Range `json:"opacity" yaml:"opacity" toml:"opacity"`
}

// Legend places the key panel.
type Legend struct {
	Hidden bool         `json:"hidden,omitempty" yaml:"hidden,omitempty" toml:"hidden,omitempty"`
	X      float64      `json:"x" yaml:"x" toml:"x"`
	Y      float64      `json:"y" yaml:"y" toml:"y"`
	Width  float64      `json:"width" yaml:"width" toml:"width" validate:"gte=0"`
	Height float64      `json:"height" yaml:"height" toml:"height" validate:"gte=0"`
	Items  []LegendItem `json:"items" yaml:"items" toml:"items" validate:"dive"`
}

// LegendItem explains one node state.
type LegendItem struct {
	State       State  `json:"state" yaml:"state" toml:"state" validate:"required,oneof=LOCKED ELIGIBLE UNLOCKED MASTERED"`
	Label       string `json:"label" yaml:"label" toml:"label"`
	LabelEn     string `json:"labelEn,omitempty" yaml:"labelEn,omitempty" toml:"labelEn,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// Tier returns the tier with the given id.
func (c *Config) Tier(id string) (Tier, bool) {
	for _, t := range c.Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}

// Node returns the node with the given id.
func (c *Config) Node(id string) (Node, bool) {
	for _, n := range c.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Domain returns the domain with the given id.
func (c *Config) Domain(id string) (Domain, bool) {
	for _, d := range c.Domains {
		if d.ID == id {
			return d, true
		}
	}
	return Domain{}, false
}

// Resource returns the resource type with the given id.
func (c *Config) Resource(typ string) (ResourceType, bool) {
	for _, r := range c.Resources {
		if r.Type == typ {
			return r, true
		}
	}
	return ResourceType{}, false
}

// OuterRadius returns the largest tier radius, or 0 without tiers.
func (c *Config) OuterRadius() float64 {
	var r float64
	for _, t := range c.Tiers {
		if t.Radius > r {
			r = t.Radius
		}
	}
	return r
}
