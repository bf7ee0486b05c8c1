package grid

// State is the progression state of a node.
type State string

const (
	StateLocked   State = "LOCKED"
	StateEligible State = "ELIGIBLE"
	StateUnlocked State = "UNLOCKED"
	StateMastered State = "MASTERED"
)

// States lists every state from least to most progressed.
var States = []State{StateLocked, StateEligible, StateUnlocked, StateMastered}

// Valid reports whether s is one of the known states.
func (s State) Valid() bool {
	switch s {
	case StateLocked, StateEligible, StateUnlocked, StateMastered:
		return true
	}
	return false
}

// Initial returns the single-letter abbreviation used in the legend.
func (s State) Initial() string {
	if s == "" {
		return ""
	}
	return string(s[0])
}

// Shape is the body outline of a node.
type Shape string

const (
	ShapeCircle  Shape = "CIRCLE"
	ShapeHexagon Shape = "HEXAGON"
	ShapeDiamond Shape = "DIAMOND"
	ShapeOctagon Shape = "OCTAGON"
)

// Shapes lists every shape.
var Shapes = []Shape{ShapeCircle, ShapeHexagon, ShapeDiamond, ShapeOctagon}

// Valid reports whether s is one of the known shapes.
func (s Shape) Valid() bool {
	return s.Sides() >= 0
}

// Sides returns the polygon side count, 0 for a circle and -1 for an
// unknown shape.
func (s Shape) Sides() int {
	switch s {
	case ShapeCircle:
		return 0
	case ShapeHexagon:
		return 6
	case ShapeDiamond:
		return 4
	case ShapeOctagon:
		return 8
	}
	return -1
}

// Importance drives the base size of a node.
type Importance string

const (
	ImportanceMajor    Importance = "MAJOR"
	ImportanceStandard Importance = "STANDARD"
	ImportanceMinor    Importance = "MINOR"
)

// Valid reports whether i is one of the known importances.
func (i Importance) Valid() bool {
	switch i {
	case ImportanceMajor, ImportanceStandard, ImportanceMinor:
		return true
	}
	return false
}

// PathType classifies an edge and selects its stroke style.
type PathType string

const (
	PathMain        PathType = "MAIN"
	PathOptional    PathType = "OPTIONAL"
	PathBlocked     PathType = "BLOCKED"
	PathCrossDomain PathType = "CROSS_DOMAIN"
)

// PathTypes lists every path type in legend order.
var PathTypes = []PathType{PathMain, PathOptional, PathBlocked, PathCrossDomain}

// Valid reports whether p is one of the known path types.
func (p PathType) Valid() bool {
	switch p {
	case PathMain, PathOptional, PathBlocked, PathCrossDomain:
		return true
	}
	return false
}

// CurveType selects straight or curved edge geometry.
type CurveType string

const (
	CurveStraight CurveType = "STRAIGHT"
	CurveBezier   CurveType = "BEZIER"
)

// Valid reports whether c is a known curve type. The empty value is valid
// and means STRAIGHT.
func (c CurveType) Valid() bool {
	switch c {
	case "", CurveStraight, CurveBezier:
		return true
	}
	return false
}

// Policy controls how validation treats edges that reference missing nodes.
type Policy int

const (
	// PolicyStrict makes every structural issue fatal.
	PolicyStrict Policy = iota
	// PolicyLenient reports dangling edges as warnings and drops them.
	PolicyLenient
)

func (p Policy) String() string {
	if p == PolicyLenient {
		return "lenient"
	}
	return "strict"
}
