package geom

import (
	"math"
	"testing"
)

func TestPolar(t *testing.T) {
	c := Pt(960, 540)
	tests := []struct {
		name string
		r    float64
		deg  float64
		want Point
	}{
		{"right", 100, 0, Pt(1060, 540)},
		{"down", 100, 90, Pt(960, 640)},
		{"up", 100, -90, Pt(960, 440)},
		{"left", 100, 180, Pt(860, 540)},
		{"zero radius", 0, 45, c},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Polar(c, tt.r, tt.deg); !got.Eq(tt.want, 1e-9) {
				t.Errorf("Polar() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPointOps(t *testing.T) {
	a, b := Pt(0, 0), Pt(3, 4)
	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist = %v, want 5", d)
	}
	if m := a.Mid(b); m != Pt(1.5, 2) {
		t.Errorf("Mid = %+v", m)
	}
	if s := b.Scale(2).Sub(b); s != b {
		t.Errorf("Scale/Sub = %+v", s)
	}
	if math.Abs(Radians(180)-math.Pi) > 1e-15 {
		t.Error("Radians(180) != Pi")
	}
}

func TestPathBuilderAndClone(t *testing.T) {
	var p Path
	p.MoveTo(Pt(0, 0)).QuadTo(Pt(5, 5), Pt(10, 0)).LineTo(Pt(20, 0))

	if got := len(p.Points()); got != 3 {
		t.Fatalf("Points() len = %d, want 3", got)
	}
	if p.Start() != Pt(0, 0) || p.End() != Pt(20, 0) {
		t.Errorf("Start/End = %+v/%+v", p.Start(), p.End())
	}

	c := p.Clone()
	c.Segments[1].Ctrl.X = 99
	if p.Segments[1].Ctrl.X != 5 {
		t.Error("Clone shares control point storage")
	}

	var empty Path
	if empty.Start() != (Point{}) || empty.End() != (Point{}) {
		t.Error("empty path endpoints should be zero")
	}
}
