// Package physics turns a layer of placed tiles into resolv collision
// objects using each tile's collision shape.
package physics

import (
	"fmt"
	"math"

	"github.com/solarlune/resolv"

	"github.com/voidshard/wangtile"
)

const (
	// TagSolid is set on every object we create.
	TagSolid = "solid"

	// cell size of the resolv space, in pixels
	cellSize = 16
)

// Layer is a row major grid of placed tiles.
type Layer struct {
	Width  int
	Height int
	Tiles  []wangtile.TileID
	// Empty marks cells with no tile at all.
	Empty []bool
}

// NewLayer wraps tiles (as returned by Resolver.Fill) in a Layer.
func NewLayer(width, height int, tiles []wangtile.TileID) (*Layer, error) {
	if len(tiles) != width*height {
		return nil, fmt.Errorf("layer %dx%d wants %d tiles, got %d", width, height, width*height, len(tiles))
	}
	return &Layer{Width: width, Height: height, Tiles: tiles}, nil
}

// Validate checks Tiles (and Empty, when set) cover exactly Width x Height
// cells.
func (l *Layer) Validate() error {
	if l.Width < 0 || l.Height < 0 {
		return fmt.Errorf("layer has negative size %dx%d", l.Width, l.Height)
	}
	n := l.Width * l.Height
	if len(l.Tiles) != n {
		return fmt.Errorf("layer %dx%d wants %d tiles, got %d", l.Width, l.Height, n, len(l.Tiles))
	}
	if l.Empty != nil && len(l.Empty) != n {
		return fmt.Errorf("layer %dx%d wants %d empty flags, got %d", l.Width, l.Height, n, len(l.Empty))
	}
	return nil
}

// IsEmpty reports if cell i holds no tile.
func (l *Layer) IsEmpty(i int) bool {
	return i < len(l.Empty) && l.Empty[i]
}

// Objects builds one resolv object per rectangle and one per triangle of
// each polygon, positioned in world space (tile size tw x th).
func Objects(shapes wangtile.ShapeLookup, l *Layer, tw, th float64) ([]*resolv.Object, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	objs := []*resolv.Object{}
	for i, id := range l.Tiles {
		if l.IsEmpty(i) {
			continue
		}

		shape, err := shapes.ShapeOf(id)
		if err != nil {
			return nil, fmt.Errorf("cell (%d,%d): %w", i%l.Width, i/l.Width, err)
		}

		ox := float64(i%l.Width) * tw
		oy := float64(i/l.Width) * th

		switch shape.Kind {
		case wangtile.ShapeNone:
			continue
		case wangtile.ShapeRectangle:
			r := shape.Rect
			obj := resolv.NewObject(ox+r.X, oy+r.Y, r.Width, r.Height, TagSolid)
			obj.SetShape(resolv.NewRectangle(0, 0, r.Width, r.Height))
			objs = append(objs, obj)
		case wangtile.ShapePolygon:
			tris, err := Triangulate(shape.Points)
			if err != nil {
				return nil, fmt.Errorf("tile %d: %w", id, err)
			}
			for _, t := range tris {
				objs = append(objs, triangleObject(ox, oy, t))
			}
		default:
			return nil, fmt.Errorf("tile %d: unknown shape kind %v", id, shape.Kind)
		}
	}
	return objs, nil
}

// triangleObject places a triangle at its bounding box; the shape's points
// are relative to that box.
func triangleObject(ox, oy float64, t Triangle) *resolv.Object {
	minx := math.Min(t[0].X, math.Min(t[1].X, t[2].X))
	miny := math.Min(t[0].Y, math.Min(t[1].Y, t[2].Y))
	maxx := math.Max(t[0].X, math.Max(t[1].X, t[2].X))
	maxy := math.Max(t[0].Y, math.Max(t[1].Y, t[2].Y))

	obj := resolv.NewObject(ox+minx, oy+miny, maxx-minx, maxy-miny, TagSolid)
	obj.SetShape(resolv.NewConvexPolygon(
		t[0].X-minx, t[0].Y-miny,
		t[1].X-minx, t[1].Y-miny,
		t[2].X-minx, t[2].Y-miny,
	))
	return obj
}

// NewSpace builds a resolv space covering the layer and adds every
// collision object to it.
func NewSpace(atlas *wangtile.Atlas, l *Layer) (*resolv.Space, error) {
	tw, th := float64(atlas.TileWidth), float64(atlas.TileHeight)

	objs, err := Objects(atlas.Collisions, l, tw, th)
	if err != nil {
		return nil, err
	}

	space := resolv.NewSpace(l.Width*int(atlas.TileWidth), l.Height*int(atlas.TileHeight), cellSize, cellSize)
	space.Add(objs...)
	return space, nil
}
