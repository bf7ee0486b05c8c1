package geom

// Op identifies a path segment kind.
type Op string

const (
	OpMove Op = "M"
	OpLine Op = "L"
	OpQuad Op = "Q"
	OpArc  Op = "A"
)

// Arc carries the parameters of a circular arc segment.
type Arc struct {
	Radius   float64 `json:"radius"`
	LargeArc bool    `json:"largeArc"`
	Sweep    bool    `json:"sweep"`
	// Center, Start and End are kept for rasterizers that draw arcs by angle.
	Center     Point   `json:"center"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

// Segment is one step of a Path. Ctrl is set for OpQuad, Arc for OpArc.
type Segment struct {
	Op   Op     `json:"op"`
	To   Point  `json:"to"`
	Ctrl *Point `json:"ctrl,omitempty"`
	Arc  *Arc   `json:"arc,omitempty"`
}

// Path is a backend-neutral sequence of segments. Sinks decide how to
// serialize it (SVG path data, rasterizer calls, JSON).
type Path struct {
	Segments []Segment `json:"segments"`
}

// MoveTo appends a move segment and returns the path for chaining.
func (p *Path) MoveTo(to Point) *Path {
	p.Segments = append(p.Segments, Segment{Op: OpMove, To: to})
	return p
}

// LineTo appends a straight segment.
func (p *Path) LineTo(to Point) *Path {
	p.Segments = append(p.Segments, Segment{Op: OpLine, To: to})
	return p
}

// QuadTo appends a quadratic Bezier segment.
func (p *Path) QuadTo(ctrl, to Point) *Path {
	c := ctrl
	p.Segments = append(p.Segments, Segment{Op: OpQuad, To: to, Ctrl: &c})
	return p
}

// ArcTo appends a circular arc segment.
func (p *Path) ArcTo(to Point, arc Arc) *Path {
	a := arc
	p.Segments = append(p.Segments, Segment{Op: OpArc, To: to, Arc: &a})
	return p
}

// Points returns the on-curve points of the path in order.
func (p Path) Points() []Point {
	pts := make([]Point, len(p.Segments))
	for i, s := range p.Segments {
		pts[i] = s.To
	}
	return pts
}

// Start returns the first point, or the zero point for an empty path.
func (p Path) Start() Point {
	if len(p.Segments) == 0 {
		return Point{}
	}
	return p.Segments[0].To
}

// End returns the last point, or the zero point for an empty path.
func (p Path) End() Point {
	if len(p.Segments) == 0 {
		return Point{}
	}
	return p.Segments[len(p.Segments)-1].To
}

// Clone returns a deep copy of p.
func (p Path) Clone() Path {
	out := Path{Segments: make([]Segment, len(p.Segments))}
	for i, s := range p.Segments {
		if s.Ctrl != nil {
			c := *s.Ctrl
			s.Ctrl = &c
		}
		if s.Arc != nil {
			a := *s.Arc
			s.Arc = &a
		}
		out.Segments[i] = s
	}
	return out
}
