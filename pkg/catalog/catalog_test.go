package catalog

import (
	"math"
	"testing"

	"github.com/matzehuels/spheregrid/pkg/errors"
	"github.com/matzehuels/spheregrid/pkg/geom"
	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/scene"
)

func TestBuildIsExhaustive(t *testing.T) {
	c := Build()
	if c.Len() != 16 {
		t.Fatalf("templates = %d, want 16", c.Len())
	}
	for _, k := range Keys() {
		if _, err := c.Lookup(k); err != nil {
			t.Errorf("Lookup(%s): %v", k, err)
		}
	}
	if got := len(c.Templates()); got != 16 {
		t.Errorf("Templates() = %d", got)
	}
}

func TestLookupMissing(t *testing.T) {
	c := Build()
	k := Key{State: grid.StateUnlocked, Shape: grid.ShapeHexagon}
	c.Remove(k)
	if _, err := c.Lookup(k); !errors.Is(err, errors.ErrCodeMissingTemplate) {
		t.Errorf("Lookup() error = %v, want MISSING_TEMPLATE", err)
	}
}

func TestTemplateParts(t *testing.T) {
	tests := []struct {
		key       Key
		glow      bool
		lock      bool
		bodyKind  scene.Kind
		bodySides int
	}{
		{Key{grid.StateLocked, grid.ShapeCircle}, false, true, scene.KindCircle, 0},
		{Key{grid.StateEligible, grid.ShapeHexagon}, true, false, scene.KindPolygon, 6},
		{Key{grid.StateUnlocked, grid.ShapeDiamond}, true, false, scene.KindPolygon, 4},
		{Key{grid.StateMastered, grid.ShapeOctagon}, true, false, scene.KindPolygon, 8},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			tpl := NewTemplate(tt.key)
			root := &tpl.Root
			if (root.Find(PartOuterGlow) != nil) != tt.glow {
				t.Errorf("outer glow present = %v, want %v", !tt.glow, tt.glow)
			}
			if (root.Find(PartLockIcon) != nil) != tt.lock {
				t.Errorf("lock icon present = %v, want %v", !tt.lock, tt.lock)
			}
			body := root.Find(PartSphere)
			if body == nil || body.Kind != tt.bodyKind || body.Sides != tt.bodySides {
				t.Fatalf("body = %+v", body)
			}
			if body.W != ReferenceSize {
				t.Errorf("body size = %v", body.W)
			}
			ring := root.Find(PartInnerRing)
			if ring == nil || ring.X != InnerRingOffset || ring.W != ReferenceSize-2*InnerRingOffset {
				t.Errorf("inner ring = %+v", ring)
			}
			if root.Find(PartHighlight) == nil || root.Find(PartLabel) == nil {
				t.Error("highlight or label missing")
			}
		})
	}
}

func TestMasteredGlowIsStrongest(t *testing.T) {
	m := NewTemplate(Key{grid.StateMastered, grid.ShapeCircle}).Root
	e := NewTemplate(Key{grid.StateEligible, grid.ShapeCircle}).Root
	mg, eg := m.Find(PartOuterGlow), e.Find(PartOuterGlow)
	if mg.Style.EffectiveOpacity() <= eg.Style.EffectiveOpacity() || mg.Style.BlurRadius() <= eg.Style.BlurRadius() {
		t.Errorf("mastered glow %+v not stronger than eligible %+v", mg.Style, eg.Style)
	}
}

func TestInstantiate(t *testing.T) {
	tpl := NewTemplate(Key{grid.StateEligible, grid.ShapeCircle})
	n := Instantiate(tpl, geom.Pt(100, 200), 46, "Node-HIRE_3", "採用\n〜3名", 10)

	if n.Name != "Node-HIRE_3" || n.Template != tpl.Key.String() {
		t.Errorf("name/template = %s/%s", n.Name, n.Template)
	}
	if n.Transform == nil || n.Transform.X != 100 || n.Transform.Y != 200 || n.Transform.Scale != 0.5 {
		t.Fatalf("transform = %+v", n.Transform)
	}
	label := n.Find(PartLabel)
	if label.Text.Content != "採用\n〜3名" {
		t.Errorf("label = %q", label.Text.Content)
	}
	if math.Abs(label.Text.FontSize*n.Transform.Scale-10) > 1e-9 {
		t.Errorf("rendered font size = %v, want 10", label.Text.FontSize*n.Transform.Scale)
	}

	// The template itself is untouched.
	if tpl.Root.Find(PartLabel).Text.Content != "NODE" || tpl.Root.Transform != nil {
		t.Error("Instantiate mutated the template")
	}
}

func TestLabelFontSizeFor(t *testing.T) {
	if LabelFontSizeFor(grid.ImportanceMajor) != 11 || LabelFontSizeFor(grid.ImportanceStandard) != 10 || LabelFontSizeFor(grid.ImportanceMinor) != 9 {
		t.Error("label font sizes wrong")
	}
}
