package anydraw

import "math"

// FillRule specifies how to determine which areas are inside a path.
type FillRule uint8

const (
	// FillRuleNonZero uses the non-zero winding rule.
	// A point is inside if the winding number is non-zero.
	FillRuleNonZero FillRule = iota

	// FillRuleEvenOdd uses the even-odd rule.
	// A point is inside if the winding number is odd.
	FillRuleEvenOdd
)

// String returns the string representation of a FillRule.
func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "EvenOdd"
	}
	return "NonZero"
}

// PathVerb identifies a path segment type.
type PathVerb uint8

const (
	// VerbMoveTo starts a new subpath at a point.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a line to a point.
	VerbLineTo
	// VerbQuadTo draws a quadratic bezier (one control point, one target).
	VerbQuadTo
	// VerbCubicTo draws a cubic bezier (two control points, one target).
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// PointCount returns the number of points consumed by the verb.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	default:
		return 0
	}
}

// Path is a sequence of move/line/curve/close segments describing vector
// geometry in a local coordinate space. Paths may self-intersect; the fill
// rule supplied alongside the path at draw time resolves the interior.
//
// Path is not safe for concurrent mutation. A path added to a Scene is
// cloned, so the caller may keep mutating its copy.
type Path struct {
	verbs  []PathVerb
	points []Point
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, Point{X: x, Y: y})
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, Point{X: x, Y: y})
	return p
}

// QuadTo draws a quadratic bezier with control point (cx, cy) to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, Point{X: cx, Y: cy}, Point{X: x, Y: y})
	return p
}

// CubicTo draws a cubic bezier with control points (c1x, c1y) and
// (c2x, c2y) to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points,
		Point{X: c1x, Y: c1y}, Point{X: c2x, Y: c2y}, Point{X: x, Y: y})
	return p
}

// Close closes the current subpath with a line back to its start.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	return p
}

// IsEmpty returns true if the path has no segments.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.verbs) == 0
}

// VerbCount returns the number of segments in the path.
func (p *Path) VerbCount() int {
	return len(p.verbs)
}

// Verbs returns the path's verb sequence. The returned slice is the
// path's backing storage and must not be modified.
func (p *Path) Verbs() []PathVerb {
	return p.verbs
}

// Points returns the path's point sequence, in verb order. The returned
// slice is the path's backing storage and must not be modified.
func (p *Path) Points() []Point {
	return p.points
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	clone := &Path{
		verbs:  make([]PathVerb, len(p.verbs)),
		points: make([]Point, len(p.points)),
	}
	copy(clone.verbs, p.verbs)
	copy(clone.points, p.points)
	return clone
}

// Transform returns a new path with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	out := p.Clone()
	for i, pt := range out.points {
		x, y := m.TransformPoint(pt.X, pt.Y)
		out.points[i] = Point{X: x, Y: y}
	}
	return out
}

// Bounds returns the control-point bounding box of the path. For curves
// this may be slightly larger than the exact geometric bounds.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	b := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, pt := range p.points {
		b.MinX = math.Min(b.MinX, pt.X)
		b.MinY = math.Min(b.MinY, pt.Y)
		b.MaxX = math.Max(b.MaxX, pt.X)
		b.MaxY = math.Max(b.MaxY, pt.Y)
	}
	return b
}

// RectPath creates a closed rectangular path.
func RectPath(r Rect) *Path {
	p := NewPath()
	p.MoveTo(r.MinX, r.MinY)
	p.LineTo(r.MaxX, r.MinY)
	p.LineTo(r.MaxX, r.MaxY)
	p.LineTo(r.MinX, r.MaxY)
	p.Close()
	return p
}

// EllipsePath creates a closed elliptical path centered at (cx, cy) with
// radii rx and ry, approximated by four cubic beziers.
func EllipsePath(cx, cy, rx, ry float64) *Path {
	// Magic constant for a cubic approximation of a quarter circle.
	const k = 0.5522847498307936
	p := NewPath()
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+k*ry, cx+k*rx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-k*rx, cy+ry, cx-rx, cy+k*ry, cx-rx, cy)
	p.CubicTo(cx-rx, cy-k*ry, cx-k*rx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+k*rx, cy-ry, cx+rx, cy-k*ry, cx+rx, cy)
	p.Close()
	return p
}
