// Package pipeline runs the generate → render pipeline shared by the CLI and
// the HTTP server.
//
// # Stages
//
//  1. Generate: validate the grid configuration and assemble the scene
//  2. Render: encode the scene in each requested format, concurrently
//
// Both stages are cached. Scenes are keyed by the content hash of the
// canonical configuration plus the generation options; artifacts are keyed
// by the hash of the scene they were drawn from plus the render options.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, cfg, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/spheregrid/pkg/cache"
	"github.com/matzehuels/spheregrid/pkg/errors"
	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/scene"
)

// DefaultScale is the PNG scale factor.
const DefaultScale = 2.0

// Output formats.
const (
	FormatSVG      = "svg"
	FormatPNG      = "png"
	FormatPDF      = "pdf"
	FormatJSON     = "json"
	FormatDOT      = "dot"
	FormatTopology = "topology"
)

// Formats lists the supported output formats in a stable order.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT, FormatTopology}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatPNG:      true,
	FormatPDF:      true,
	FormatJSON:     true,
	FormatDOT:      true,
	FormatTopology: true,
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:      "image/svg+xml",
	FormatPNG:      "image/png",
	FormatPDF:      "application/pdf",
	FormatJSON:     "application/json",
	FormatDOT:      "text/vnd.graphviz",
	FormatTopology: "image/svg+xml",
}

// Extension returns the file extension for format. The topology diagram is
// an SVG, so it gets a compound extension that keeps it apart from the scene.
func Extension(format string) string {
	if format == FormatTopology {
		return "topology.svg"
	}
	return format
}

// Options configures a pipeline run. The exported fields can be decoded
// from JSON for API requests.
type Options struct {
	// Generation
	Seed    *uint32 `json:"seed,omitempty"`    // overrides the config seed
	Lenient bool    `json:"lenient,omitempty"` // drop dangling edges instead of failing

	// Rendering
	Formats      []string `json:"formats,omitempty"`
	Scale        float64  `json:"scale,omitempty"`         // PNG only
	UseConverter bool     `json:"use_converter,omitempty"` // rasterize PNG through rsvg-convert
	Detailed     bool     `json:"detailed,omitempty"`      // DOT labels carry state and requirements

	// Refresh bypasses cached scenes and artifacts. Fresh results are
	// still written back.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result is the output of a pipeline run.
type Result struct {
	Scene *scene.Scene

	// ConfigHash is the content hash of the canonical configuration.
	ConfigHash string

	// SceneHash is the content hash of the serialized scene.
	SceneHash string

	// Artifacts holds the rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds sizes and timings of a run.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	Warnings     int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo records which stages were served from the cache.
type CacheInfo struct {
	SceneHit  bool
	RenderHit bool // every requested artifact was cached
}

// ValidateFormat checks that format is supported. Formats are case-sensitive.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: svg, png, pdf, json, dot, topology)", format)
	}
	return nil
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.Formats = dedupe(o.Formats)
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %g", o.Scale)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Policy returns the validation policy selected by Lenient.
func (o *Options) Policy() grid.Policy {
	if o.Lenient {
		return grid.PolicyLenient
	}
	return grid.PolicyStrict
}

// SceneKeyOpts returns the cache key options for the generate stage.
func (o *Options) SceneKeyOpts(cfg *grid.Config) cache.SceneKeyOpts {
	seed := cfg.SeedValue()
	if o.Seed != nil {
		seed = *o.Seed
	}
	return cache.SceneKeyOpts{Seed: seed, Lenient: o.Lenient}
}

// ArtifactKeyOpts returns the cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatPNG:
		k.Scale = o.Scale
		if o.UseConverter {
			k.Format = "png+rsvg"
		}
	case FormatDOT, FormatTopology:
		if o.Detailed {
			k.Format = format + "+detailed"
		}
	}
	return k
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
