package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/spheregrid/pkg/errors"
	"github.com/matzehuels/spheregrid/pkg/geom"
	"github.com/matzehuels/spheregrid/pkg/grid"
)

const eps = 1e-9

func TestBaseSize(t *testing.T) {
	tests := []struct {
		name string
		imp  grid.Importance
		want float64
	}{
		{"major", grid.ImportanceMajor, 110},
		{"standard", grid.ImportanceStandard, 92},
		{"minor", grid.ImportanceMinor, 70},
		{"empty falls back", "", 92},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BaseSize(tt.imp); got != tt.want {
				t.Errorf("BaseSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSizeMonotonicAndLinear(t *testing.T) {
	for _, m := range []float64{0.5, 1, 1.15, 1.3, 2} {
		mult := m
		major := Size(grid.Node{Importance: grid.ImportanceMajor, SizeMultiplier: &mult})
		std := Size(grid.Node{Importance: grid.ImportanceStandard, SizeMultiplier: &mult})
		minor := Size(grid.Node{Importance: grid.ImportanceMinor, SizeMultiplier: &mult})
		if !(major >= std && std >= minor) {
			t.Errorf("mult %v: %v >= %v >= %v violated", m, major, std, minor)
		}
		if math.Abs(std-92*m) > eps {
			t.Errorf("mult %v: standard size %v, want %v", m, std, 92*m)
		}
	}
	if got := Size(grid.Node{Importance: grid.ImportanceMinor}); got != 70 {
		t.Errorf("Size without multiplier = %v, want 70", got)
	}
}

func TestPosition(t *testing.T) {
	center := geom.Pt(960, 540)
	tiers := []grid.Tier{{ID: "R30", Radius: 220}, {ID: "R60", Radius: 360}}

	t.Run("core ignores angle", func(t *testing.T) {
		got, err := Position(grid.Node{ID: "C", Tier: grid.CoreTier, Angle: 123}, tiers, center)
		if err != nil {
			t.Fatal(err)
		}
		if got != center {
			t.Errorf("Position() = %+v, want center", got)
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		_, err := Position(grid.Node{ID: "X", Tier: "R999"}, tiers, center)
		if !errors.Is(err, errors.ErrCodeUnknownTier) {
			t.Errorf("Position() error = %v, want UNKNOWN_TIER", err)
		}
	})

	t.Run("radius fidelity", func(t *testing.T) {
		for _, a := range []float64{-90, -45, 0, 15, 75, 150, 270, 359} {
			for _, tier := range tiers {
				got, err := Position(grid.Node{ID: "N", Tier: tier.ID, Angle: a}, tiers, center)
				if err != nil {
					t.Fatal(err)
				}
				if d := got.Dist(center); math.Abs(d-tier.Radius) > eps {
					t.Errorf("angle %v tier %s: distance %v, want %v", a, tier.ID, d, tier.Radius)
				}
			}
		}
	})
}

func TestEndToEndPlacement(t *testing.T) {
	cfg := &grid.Config{
		Canvas: grid.Canvas{Width: 1920, Height: 1080},
		Tiers:  []grid.Tier{{ID: "R30", Radius: 220}},
		Nodes: []grid.Node{
			{ID: "HIRE_3", Tier: "R30", Angle: -45, Importance: grid.ImportanceStandard},
		},
	}
	l, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if l.Center != geom.Pt(960, 540) {
		t.Fatalf("center = %+v", l.Center)
	}

	p, ok := l.Placement("HIRE_3")
	if !ok {
		t.Fatal("placement missing")
	}
	wantAnchor := geom.Pt(960+220*math.Cos(-math.Pi/4), 540+220*math.Sin(-math.Pi/4))
	if !p.Anchor.Eq(wantAnchor, eps) {
		t.Errorf("anchor = %+v, want %+v", p.Anchor, wantAnchor)
	}
	if !p.Anchor.Eq(geom.Pt(1115.563, 384.437), 1e-3) {
		t.Errorf("anchor = %+v, want ≈(1115.6, 384.4)", p.Anchor)
	}
	if p.Size != 92 {
		t.Errorf("size = %v, want 92", p.Size)
	}
	if !p.TopLeft().Eq(geom.Pt(1069.563, 338.437), 1e-3) {
		t.Errorf("top-left = %+v, want ≈(1069.6, 338.4)", p.TopLeft())
	}
}

func TestResolveDefault(t *testing.T) {
	cfg := grid.Default()
	l, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(l.Placements) != len(cfg.Nodes) {
		t.Fatalf("placements = %d, want %d", len(l.Placements), len(cfg.Nodes))
	}
	core, _ := l.Placement("CORE")
	if core.Anchor != l.Center || math.Abs(core.Size-143) > eps {
		t.Errorf("core = %+v", core)
	}
	if _, ok := l.Anchor("NOPE"); ok {
		t.Error("Anchor(NOPE) found")
	}
	if sz, ok := l.Size("CORE"); !ok || sz != core.Size {
		t.Errorf("Size(CORE) = %v, %v", sz, ok)
	}
	if _, ok := l.Size("NOPE"); ok {
		t.Error("Size(NOPE) found")
	}
}

func TestResolveUnknownTier(t *testing.T) {
	cfg := grid.Default()
	cfg.Nodes[4].Tier = "R999"
	if _, err := Resolve(cfg); !errors.Is(err, errors.ErrCodeUnknownTier) {
		t.Errorf("Resolve() error = %v, want UNKNOWN_TIER", err)
	}
}

func TestInfoPlacement(t *testing.T) {
	center := geom.Pt(500, 500)
	tests := []struct {
		name   string
		anchor geom.Point
		align  Align
		wantX  float64
		wantY  float64
	}{
		// offset = 92/2 + 8 = 54, two lines = 22px tall
		{"right", geom.Pt(700, 500), AlignLeft, 700 + 54 + 4, 500 - 11},
		{"left", geom.Pt(300, 500), AlignRight, 300 - 54 - 90 - 4, 500 - 11},
		{"below", geom.Pt(500, 700), AlignCenter, 500 - 45, 700 + 54 + 4},
		{"above", geom.Pt(500, 300), AlignCenter, 500 - 45, 300 - 54 - 22 - 4},
		{"on center", center, AlignCenter, 500 - 45, 500 + 54 + 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := InfoPlacement(tt.anchor, center, 92, 2)
			if b.Align != tt.align {
				t.Errorf("Align = %v, want %v", b.Align, tt.align)
			}
			if math.Abs(b.X-tt.wantX) > eps || math.Abs(b.Y-tt.wantY) > eps {
				t.Errorf("box = (%v, %v), want (%v, %v)", b.X, b.Y, tt.wantX, tt.wantY)
			}
			if b.Height != 22 || b.Width != InfoWidth {
				t.Errorf("size = %vx%v", b.Width, b.Height)
			}
		})
	}
}
