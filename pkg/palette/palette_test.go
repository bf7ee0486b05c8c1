package palette

import (
	"testing"

	"github.com/matzehuels/spheregrid/pkg/color"
	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/style"
)

func TestForIsTotal(t *testing.T) {
	for _, s := range grid.States {
		p := For(s)
		if p.StrokeWeight <= 0 {
			t.Errorf("%s: stroke weight %v", s, p.StrokeWeight)
		}
	}
}

func TestGlowOrdering(t *testing.T) {
	locked := For(grid.StateLocked)
	eligible := For(grid.StateEligible)
	unlocked := For(grid.StateUnlocked)
	mastered := For(grid.StateMastered)

	if len(locked.Effects) != 0 || locked.GlowStrength() != 0 {
		t.Errorf("LOCKED has effects: %+v", locked.Effects)
	}
	if eligible.GlowStrength() != unlocked.GlowStrength() {
		t.Errorf("ELIGIBLE %v != UNLOCKED %v", eligible.GlowStrength(), unlocked.GlowStrength())
	}
	if !(mastered.GlowStrength() > eligible.GlowStrength() && eligible.GlowStrength() > locked.GlowStrength()) {
		t.Error("glow strength ordering violated")
	}
	if !(locked.StrokeWeight < eligible.StrokeWeight && eligible.StrokeWeight == unlocked.StrokeWeight && unlocked.StrokeWeight < mastered.StrokeWeight) {
		t.Error("stroke weight ordering violated")
	}
}

func TestGlowEffects(t *testing.T) {
	e := GlowEffects(Base.Gold, 0.6)
	if len(e) != 2 {
		t.Fatalf("effects = %d, want 2", len(e))
	}
	if e[0].Kind != style.DropShadow || e[0].Radius != 16 || e[0].Color.A != 0.6 {
		t.Errorf("inner = %+v", e[0])
	}
	if e[1].Radius != 32 || e[1].Color.A != 0.3 {
		t.Errorf("outer = %+v", e[1])
	}
}

func TestStateColors(t *testing.T) {
	tests := []struct {
		state  grid.State
		stroke color.RGB
		glow   color.RGB
	}{
		{grid.StateLocked, color.Mix(Base.Locked, Base.Deep, 0.6), Base.Muted},
		{grid.StateEligible, Base.Gold, Base.Gold},
		{grid.StateUnlocked, Base.Unlocked, Base.Unlocked},
		{grid.StateMastered, Base.GoldBright, Base.GoldBright},
	}
	for _, tt := range tests {
		p := For(tt.state)
		if p.Stroke != tt.stroke || p.Glow != tt.glow {
			t.Errorf("%s: stroke %v glow %v", tt.state, p.Stroke, p.Glow)
		}
	}
	if For(grid.StateMastered).Effects[0].Color.Color != Base.Mastered {
		t.Error("MASTERED glow is not the pale mastered color")
	}
}

func TestInfoText(t *testing.T) {
	if c, o := InfoText(grid.StateMastered); c != Base.Gold || o != 0.85 {
		t.Errorf("MASTERED = %v %v", c, o)
	}
	if _, o := InfoText(grid.StateLocked); o != 0.5 {
		t.Errorf("LOCKED opacity = %v", o)
	}
}

func TestConnector(t *testing.T) {
	if Connector(grid.PathMain) == Connector(grid.PathCrossDomain) {
		t.Error("cross-domain connector should be tinted")
	}
	if Connector(grid.PathMain) != Connector(grid.PathBlocked) {
		t.Error("MAIN and BLOCKED share the connector color")
	}
}

func TestRingFollowsGlow(t *testing.T) {
	dimStroke, dimLabel := Ring(grid.Tier{ID: "R10", GlowIntensity: 0})
	if want := color.Mix(Base.Ring, Base.Deep, 0.5); dimStroke != want {
		t.Errorf("stroke at glow 0 = %v, want %v", dimStroke, want)
	}
	brightStroke, brightLabel := Ring(grid.Tier{ID: "R30", GlowIntensity: 1})
	if brightStroke == dimStroke || brightLabel == dimLabel {
		t.Error("ring colors ignore glow intensity")
	}
	if want := color.Mix(Base.Surface, Base.Deep, 0.7); brightLabel != want {
		t.Errorf("label at glow 1 = %v, want %v", brightLabel, want)
	}
}
