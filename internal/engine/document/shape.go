package document

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/inkwell/internal/engine/geometry"
)

// ShapeID uniquely identifies a shape within a document.
type ShapeID string

// NewShapeID mints a fresh shape identifier.
func NewShapeID() ShapeID {
	return ShapeID(uuid.NewString())
}

// Kind is the shape discriminant.
type Kind uint8

const (
	// KindRectangle is an axis-aligned rectangle.
	KindRectangle Kind = iota
	// KindCircle is a circle described by center and radius.
	KindCircle
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Valid returns true if the kind is a known shape discriminant.
func (k Kind) Valid() bool {
	return k == KindRectangle || k == KindCircle
}

// Shape is a drawable element. It is a comparable value type: two shapes
// are geometrically identical exactly when they compare equal with ==.
//
// For rectangles Origin is the top-left corner and Width/Height the size;
// Radius is unused. For circles Origin is the center and Radius the radius;
// Width/Height are unused.
type Shape struct {
	ID     ShapeID        `json:"id"`
	Kind   Kind           `json:"kind"`
	Origin geometry.Point `json:"origin"`
	Width  float64        `json:"width,omitempty"`
	Height float64        `json:"height,omitempty"`
	Radius float64        `json:"radius,omitempty"`
	Color  colorful.Color `json:"color"`
}

// NewRectangle creates a rectangle shape with a fresh identifier.
func NewRectangle(origin geometry.Point, width, height float64, color colorful.Color) Shape {
	return Shape{
		ID:     NewShapeID(),
		Kind:   KindRectangle,
		Origin: origin,
		Width:  width,
		Height: height,
		Color:  color,
	}
}

// NewCircle creates a circle shape with a fresh identifier.
func NewCircle(center geometry.Point, radius float64, color colorful.Color) Shape {
	return Shape{
		ID:     NewShapeID(),
		Kind:   KindCircle,
		Origin: center,
		Radius: radius,
		Color:  color,
	}
}

// Translate returns the shape moved by d.
func (s Shape) Translate(d geometry.Point) Shape {
	s.Origin = s.Origin.Add(d)
	return s
}

// Bounds returns the shape's axis-aligned bounding rectangle.
func (s Shape) Bounds() geometry.Rect {
	switch s.Kind {
	case KindCircle:
		return geometry.NewRect(s.Origin.X-s.Radius, s.Origin.Y-s.Radius, 2*s.Radius, 2*s.Radius)
	default:
		return geometry.NewRect(s.Origin.X, s.Origin.Y, s.Width, s.Height)
	}
}

// Contains reports whether p lies inside the shape.
func (s Shape) Contains(p geometry.Point) bool {
	switch s.Kind {
	case KindCircle:
		return geometry.CircleContains(s.Origin, s.Radius, p)
	default:
		return s.Bounds().Contains(p)
	}
}

// IntersectsRect reports whether the shape overlaps a normalized rectangle.
func (s Shape) IntersectsRect(r geometry.Rect) bool {
	switch s.Kind {
	case KindCircle:
		return geometry.CircleIntersectsRect(s.Origin, s.Radius, r)
	default:
		return s.Bounds().Intersects(r)
	}
}

// String returns a human-readable representation of the shape.
func (s Shape) String() string {
	switch s.Kind {
	case KindCircle:
		return fmt.Sprintf("circle %s r=%g at %s", s.ID, s.Radius, s.Origin)
	default:
		return fmt.Sprintf("rectangle %s %gx%g at %s", s.ID, s.Width, s.Height, s.Origin)
	}
}
