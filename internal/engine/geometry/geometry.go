// Package geometry provides the 2-D primitives used by the drawing engine:
// points, axis-aligned rectangles, and the rectangle/circle containment and
// intersection tests behind hit-testing and rectangular selection.
package geometry

import "fmt"

// Point is a position or offset in canvas coordinates.
type Point struct {
	X float64
	Y float64
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Neg returns the point with both components negated.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsZero returns true if both components are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Width and Height may be negative for a rectangle dragged backwards;
// call Normalize before containment or intersection tests.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// NewRect creates a rectangle from an origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// String returns a human-readable representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.W, r.H)
}

// Origin returns the rectangle's anchor point.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Normalize returns an equivalent rectangle with non-negative extents.
func (r Rect) Normalize() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W == 0 || r.H == 0
}

// Contains reports whether p lies inside the rectangle.
// Edges are inclusive so a zero-area rectangle still contains its corner.
func (r Rect) Contains(p Point) bool {
	r = r.Normalize()
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Intersects reports whether the two rectangles overlap.
// The test is symmetric: a.Intersects(b) == b.Intersects(a).
func (r Rect) Intersects(other Rect) bool {
	a := r.Normalize()
	b := other.Normalize()
	return a.X <= b.X+b.W && b.X <= a.X+a.W &&
		a.Y <= b.Y+b.H && b.Y <= a.Y+a.H
}

// CircleContains reports whether p lies inside the circle at center with
// the given radius. The boundary is inclusive.
func CircleContains(center Point, radius float64, p Point) bool {
	dx := p.X - center.X
	dy := p.Y - center.Y
	return dx*dx+dy*dy <= radius*radius
}

// CircleIntersectsRect reports whether a circle overlaps a rectangle.
// The rectangle is normalized first; the test clamps the circle's center
// to the rectangle and compares the clamped distance to the radius.
func CircleIntersectsRect(center Point, radius float64, r Rect) bool {
	r = r.Normalize()
	cx := clamp(center.X, r.X, r.X+r.W)
	cy := clamp(center.Y, r.Y, r.Y+r.H)
	dx := center.X - cx
	dy := center.Y - cy
	return dx*dx+dy*dy <= radius*radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
