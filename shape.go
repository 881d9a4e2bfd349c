package wangtile

import (
	"fmt"
	"math"
)

// ShapeKind tags which variant a CollisionShape holds.
type ShapeKind uint8

const (
	// ShapeNone means the tile has no solid region.
	ShapeNone ShapeKind = iota
	ShapeRectangle
	ShapePolygon
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeNone:
		return "none"
	case ShapeRectangle:
		return "rectangle"
	case ShapePolygon:
		return "polygon"
	}
	return fmt.Sprintf("shape(%d)", uint8(k))
}

// Point is a position in tile local space (pixels, origin top left).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis aligned rectangle in tile local space.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CollisionShape is the collision footprint of a single tile.
// Only the field matching Kind is meaningful.
type CollisionShape struct {
	Kind   ShapeKind `json:"kind"`
	Rect   Rect      `json:"rect"`
	Points []Point   `json:"points,omitempty"`
}

// NoShape returns the "no collision" shape.
func NoShape() CollisionShape {
	return CollisionShape{Kind: ShapeNone}
}

// Rectangle returns a rectangle shape.
func Rectangle(x, y, w, h float64) CollisionShape {
	return CollisionShape{Kind: ShapeRectangle, Rect: Rect{X: x, Y: y, Width: w, Height: h}}
}

// Polygon returns a polygon shape. Points are copied.
func Polygon(pts ...Point) CollisionShape {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return CollisionShape{Kind: ShapePolygon, Points: cp}
}

// Outline returns the boundary of the shape as a closed ring of points
// (first point not repeated). ShapeNone yields nil.
func (s CollisionShape) Outline() []Point {
	switch s.Kind {
	case ShapeRectangle:
		r := s.Rect
		return []Point{
			{r.X, r.Y},
			{r.X + r.Width, r.Y},
			{r.X + r.Width, r.Y + r.Height},
			{r.X, r.Y + r.Height},
		}
	case ShapePolygon:
		out := make([]Point, len(s.Points))
		copy(out, s.Points)
		return out
	}
	return nil
}

// Bounds returns the axis aligned bounding box of the shape.
// ShapeNone yields the zero Rect.
func (s CollisionShape) Bounds() Rect {
	switch s.Kind {
	case ShapeRectangle:
		return s.Rect
	case ShapePolygon:
		if len(s.Points) == 0 {
			return Rect{}
		}
		minx, miny := s.Points[0].X, s.Points[0].Y
		maxx, maxy := minx, miny
		for _, p := range s.Points[1:] {
			minx = math.Min(minx, p.X)
			miny = math.Min(miny, p.Y)
			maxx = math.Max(maxx, p.X)
			maxy = math.Max(maxy, p.Y)
		}
		return Rect{X: minx, Y: miny, Width: maxx - minx, Height: maxy - miny}
	}
	return Rect{}
}

// Equal reports whether two shapes describe the same geometry.
func (s CollisionShape) Equal(o CollisionShape) bool {
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case ShapeRectangle:
		return s.Rect == o.Rect
	case ShapePolygon:
		if len(s.Points) != len(o.Points) {
			return false
		}
		for i := range s.Points {
			if s.Points[i] != o.Points[i] {
				return false
			}
		}
	}
	return true
}

// Validate checks the structural preconditions of the shape.
// Polygon winding and self intersection are not checked.
func (s CollisionShape) Validate() error {
	switch s.Kind {
	case ShapeNone:
		return nil
	case ShapeRectangle:
		r := s.Rect
		if !finite(r.X, r.Y, r.Width, r.Height) {
			return fmt.Errorf("%w: rectangle has a non-finite coordinate", ErrInvalidShape)
		}
		if r.Width <= 0 || r.Height <= 0 {
			return fmt.Errorf("%w: rectangle size %vx%v", ErrInvalidShape, r.Width, r.Height)
		}
		return nil
	case ShapePolygon:
		if len(s.Points) < 3 {
			return fmt.Errorf("%w: polygon has %d points, need at least 3", ErrInvalidShape, len(s.Points))
		}
		for i, p := range s.Points {
			if !finite(p.X, p.Y) {
				return fmt.Errorf("%w: polygon point %d is non-finite", ErrInvalidShape, i)
			}
		}
		return nil
	}
	return fmt.Errorf("%w: unknown kind %v", ErrInvalidShape, s.Kind)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
