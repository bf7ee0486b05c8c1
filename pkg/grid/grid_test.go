package grid

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/spheregrid/pkg/errors"
	"github.com/matzehuels/spheregrid/pkg/rng"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	rep := Validate(cfg, PolicyStrict)
	if err := rep.Err(); err != nil {
		t.Fatalf("Default() invalid: %v", err)
	}
	if len(rep.Warnings) != 0 {
		t.Errorf("Default() warnings: %v", rep.Warnings)
	}
	if len(cfg.Nodes) != 13 || len(cfg.Edges) != 13 {
		t.Errorf("nodes=%d edges=%d, want 13/13", len(cfg.Nodes), len(cfg.Edges))
	}
	if cfg.SeedValue() != rng.DefaultSeed {
		t.Errorf("SeedValue() = %d, want %d", cfg.SeedValue(), rng.DefaultSeed)
	}
	if cfg.OuterRadius() != 500 {
		t.Errorf("OuterRadius() = %v, want 500", cfg.OuterRadius())
	}
}

func TestValidateIssues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		code   errors.Code
		path   string
	}{
		{
			name:   "unknown tier",
			mutate: func(c *Config) { c.Nodes[1].Tier = "R999" },
			code:   errors.ErrCodeUnknownTier,
			path:   "nodes[1].tier",
		},
		{
			name:   "unknown edge endpoint",
			mutate: func(c *Config) { c.Edges[0].To = "GHOST" },
			code:   errors.ErrCodeUnknownNode,
			path:   "edges[0].to",
		},
		{
			name:   "duplicate node",
			mutate: func(c *Config) { c.Nodes[2].ID = c.Nodes[1].ID },
			code:   errors.ErrCodeDuplicateID,
			path:   "nodes[2].id",
		},
		{
			name:   "duplicate tier",
			mutate: func(c *Config) { c.Tiers[1].ID = "R30" },
			code:   errors.ErrCodeDuplicateID,
			path:   "tiers[1].id",
		},
		{
			name:   "radii not increasing",
			mutate: func(c *Config) { c.Tiers[2].Radius = 300 },
			code:   errors.ErrCodeInvalidConfig,
			path:   "tiers[2].radius",
		},
		{
			name:   "unknown domain",
			mutate: func(c *Config) { c.Nodes[3].Domain = "MARKETING" },
			code:   errors.ErrCodeUnknownDomain,
			path:   "nodes[3].domain",
		},
		{
			name:   "counterclockwise domain",
			mutate: func(c *Config) { c.Domains[0].StartAngle, c.Domains[0].EndAngle = -18, -90 },
			code:   errors.ErrCodeInvalidConfig,
			path:   "domains[0]",
		},
		{
			name:   "empty domain",
			mutate: func(c *Config) { c.Domains[0].EndAngle = c.Domains[0].StartAngle },
			code:   errors.ErrCodeInvalidConfig,
			path:   "domains[0]",
		},
		{
			name:   "bad state",
			mutate: func(c *Config) { c.Nodes[0].State = "SLEEPING" },
			code:   errors.ErrCodeInvalidConfig,
			path:   "nodes[0].state",
		},
		{
			name:   "bad shape",
			mutate: func(c *Config) { c.Nodes[0].Shape = "STAR" },
			code:   errors.ErrCodeInvalidConfig,
			path:   "nodes[0].shape",
		},
		{
			name:   "glow out of range",
			mutate: func(c *Config) { c.Tiers[0].GlowIntensity = 1.5 },
			code:   errors.ErrCodeInvalidConfig,
			path:   "tiers[0].glowIntensity",
		},
		{
			name:   "zero canvas",
			mutate: func(c *Config) { c.Canvas.Width = 0 },
			code:   errors.ErrCodeInvalidConfig,
			path:   "canvas.width",
		},
		{
			name:   "reserved tier id",
			mutate: func(c *Config) { c.Tiers[0].ID = CoreTier },
			code:   errors.ErrCodeInvalidConfig,
			path:   "tiers[0].id",
		},
		{
			name:   "inverted star size range",
			mutate: func(c *Config) { c.Background.StarField.Layers[0].Size = Range{3, 1} },
			code:   errors.ErrCodeInvalidConfig,
			path:   "background.starField.layers[0].size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			rep := Validate(cfg, PolicyStrict)
			err := rep.Err()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Fatalf("Validate() = %v, want code %s", err, tt.code)
			}
			found := false
			for _, is := range rep.Issues {
				if is.Code == tt.code && is.Path == tt.path {
					found = true
				}
			}
			if !found {
				t.Errorf("no %s issue at %s in %v", tt.code, tt.path, rep.Issues)
			}
		})
	}
}

func TestValidateCollectsAllIssues(t *testing.T) {
	cfg := Default()
	cfg.Nodes[1].Tier = "NOPE"
	cfg.Edges[0].To = "GHOST"
	cfg.Edges[1].From = "PHANTOM"

	rep := Validate(cfg, PolicyStrict)
	if got := len(rep.Issues); got != 3 {
		t.Fatalf("issues = %d, want 3: %v", got, rep.Issues)
	}
}

func TestLenientPolicySkipsDanglingEdges(t *testing.T) {
	cfg := Default()
	cfg.Edges[4].To = "GHOST"

	rep := Validate(cfg, PolicyLenient)
	if err := rep.Err(); err != nil {
		t.Fatalf("lenient Validate() = %v, want nil", err)
	}
	if !rep.SkipEdge(4) {
		t.Error("edge 4 not marked skipped")
	}
	if rep.SkipEdge(3) {
		t.Error("edge 3 marked skipped")
	}
	if len(rep.Warnings) != 1 || rep.Warnings[0].Code != errors.ErrCodeUnknownNode {
		t.Errorf("warnings = %v", rep.Warnings)
	}

	// Unknown tiers stay fatal regardless of policy.
	cfg.Nodes[1].Tier = "NOPE"
	if err := Validate(cfg, PolicyLenient).Err(); !errors.Is(err, errors.ErrCodeUnknownTier) {
		t.Errorf("lenient unknown tier = %v, want UNKNOWN_TIER", err)
	}
}

func TestUnknownResourceIsWarning(t *testing.T) {
	cfg := Default()
	cfg.Nodes[1].Requirements = append(cfg.Nodes[1].Requirements, Requirement{Type: "魔力", Count: 1})
	rep := Validate(cfg, PolicyStrict)
	if !rep.OK() {
		t.Fatalf("unexpected issues: %v", rep.Issues)
	}
	if len(rep.Warnings) != 1 || rep.Warnings[0].Code != errors.ErrCodeUnknownResource {
		t.Errorf("warnings = %v", rep.Warnings)
	}
}

func TestValidateNil(t *testing.T) {
	if Validate(nil, PolicyStrict).OK() {
		t.Error("nil config validated")
	}
}

func TestNodeDefaults(t *testing.T) {
	n := Node{}
	if n.Multiplier() != 1 {
		t.Errorf("Multiplier() = %v, want 1", n.Multiplier())
	}
	if n.EffectiveImportance() != ImportanceStandard {
		t.Errorf("EffectiveImportance() = %v", n.EffectiveImportance())
	}
	if n.EffectiveShape() != ShapeCircle {
		t.Errorf("EffectiveShape() = %v", n.EffectiveShape())
	}
	if (Edge{}).EffectiveCurve() != CurveStraight {
		t.Error("EffectiveCurve() default is not STRAIGHT")
	}
}

func TestShapeSides(t *testing.T) {
	tests := map[Shape]int{
		ShapeCircle:  0,
		ShapeDiamond: 4,
		ShapeHexagon: 6,
		ShapeOctagon: 8,
		"STAR":       -1,
	}
	for s, want := range tests {
		if got := s.Sides(); got != want {
			t.Errorf("%s.Sides() = %d, want %d", s, got, want)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, Default(), format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			cfg, err := Decode(&buf, format)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if err := Validate(cfg, PolicyStrict).Err(); err != nil {
				t.Fatalf("decoded config invalid: %v", err)
			}
			if len(cfg.Nodes) != 13 || cfg.Nodes[12].ID != "LEAD_DEV" {
				t.Errorf("nodes not preserved: %d", len(cfg.Nodes))
			}
			if cfg.Edges[12].Intensity == nil || *cfg.Edges[12].Intensity != 0.25 {
				t.Error("edge intensity override lost")
			}
			if cfg.Domains[0].Color.Hex() != "#3399e6" {
				t.Errorf("domain color = %s", cfg.Domains[0].Color.Hex())
			}
		})
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		format Format
		doc    string
	}{
		{FormatJSON, `{"canvas":{"width":10,"height":10},"bogus":1}`},
		{FormatYAML, "canvas:\n  width: 10\n  height: 10\nbogus: 1\n"},
		{FormatTOML, "bogus = 1\n[canvas]\nwidth = 10.0\nheight = 10.0\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			_, err := DecodeBytes([]byte(tt.doc), tt.format)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Decode() = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadYAML(t *testing.T) {
	doc := `
name: tiny
canvas: {width: 800, height: 600}
tiers:
  - {id: T1, label: inner, radius: 150, glowIntensity: 0.8, threshold: 1}
domains:
  - {id: D, label: dom, color: "#3399e6", accent: "#4db3ff", startAngle: -90, endAngle: 90}
nodes:
  - {id: A, label: a, tier: CORE, state: MASTERED, domain: CORE, importance: MAJOR, shape: OCTAGON}
  - {id: B, label: b, tier: T1, angle: -45, state: ELIGIBLE, domain: D}
edges:
  - {from: A, to: B, type: MAIN, curve: BEZIER}
`
	path := filepath.Join(t.TempDir(), "grid.yml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := Validate(cfg, PolicyStrict).Err(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Nodes[1].EffectiveShape() != ShapeCircle {
		t.Errorf("shape default = %v", cfg.Nodes[1].EffectiveShape())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("grid.ini"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Load(.ini) = %v, want INVALID_FORMAT", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Load(missing) = %v, want NOT_FOUND", err)
	}
	if _, err := ParseFormat("xml"); err == nil || !strings.Contains(err.Error(), "xml") {
		t.Errorf("ParseFormat(xml) = %v", err)
	}
}
