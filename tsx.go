/* this file is a simplified set of structs for reading & writing TSX
(Tiled external tileset) files.

We only need the parts of a tileset that say something about collision or
autotiling: per tile object groups (collision shapes), custom properties and
corner wang sets. Everything about drawing the tiles is carried through but
otherwise ignored.
*/
package wangtile

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Tileset is a TSX file structure representing a tileset as a whole.
type Tileset struct {
	XMLName      xml.Name   `xml:"tileset"`
	Version      string     `xml:"version,attr,omitempty"`
	TiledVersion string     `xml:"tiledversion,attr,omitempty"`
	Name         string     `xml:"name,attr"`
	TileWidth    int        `xml:"tilewidth,attr"`  // in pixels
	TileHeight   int        `xml:"tileheight,attr"` // in pixels
	TileCount    int        `xml:"tilecount,attr"`
	Columns      int        `xml:"columns,attr"`
	Image        *Image     `xml:"image"`
	Tiles        []*Tile    `xml:"tile"`
	WangSets     []*WangSet `xml:"wangsets>wangset"`
}

// Property is a TSX file structure which holds a Tiled property.
type Property struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr,omitempty"` // string (default), int, float, bool + other (kept as string)
	Value string `xml:"value,attr"`
}

// Image is an image file in TSX
type Image struct {
	Source string `xml:"source,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
}

// Tile is a TSX tile with any per tile data.
type Tile struct {
	ID          uint         `xml:"id,attr"`
	Properties  []*Property  `xml:"properties>property"`
	ObjectGroup *ObjectGroup `xml:"objectgroup"`
}

// ObjectGroup holds the collision objects of a tile.
type ObjectGroup struct {
	DrawOrder string    `xml:"draworder,attr,omitempty"`
	ID        uint      `xml:"id,attr,omitempty"`
	Objects   []*Object `xml:"object"`
}

// Object is one collision object. Without a child element it's a
// rectangle; polygon points are relative to (X,Y).
type Object struct {
	ID       uint      `xml:"id,attr"`
	X        float64   `xml:"x,attr"`
	Y        float64   `xml:"y,attr"`
	Width    float64   `xml:"width,attr,omitempty"`
	Height   float64   `xml:"height,attr,omitempty"`
	Polygon  *PointSet `xml:"polygon"`
	Polyline *PointSet `xml:"polyline"`
	Ellipse  *struct{} `xml:"ellipse"`
	Point    *struct{} `xml:"point"`
}

// PointSet is a TSX polygon/polyline, points as "x,y x,y ...".
type PointSet struct {
	Points string `xml:"points,attr"`
}

// WangSet is a TSX <wangset>. We only support type="corner".
type WangSet struct {
	Name   string       `xml:"name,attr"`
	Type   string       `xml:"type,attr"`
	Tile   int          `xml:"tile,attr"`
	Colors []*WangColor `xml:"wangcolor"`
	Tiles  []*WangTile  `xml:"wangtile"`
}

// WangColor is one terrain class. Classes are numbered from 1 in the
// order colors are listed.
type WangColor struct {
	Name        string  `xml:"name,attr"`
	Color       string  `xml:"color,attr"`
	Tile        int     `xml:"tile,attr"`
	Probability float64 `xml:"probability,attr"`
}

// WangTile assigns a wangid to a tile.
type WangTile struct {
	TileID uint   `xml:"tileid,attr"`
	WangID string `xml:"wangid,attr"`
}

// shape turns an object group into a single collision shape.
func (g *ObjectGroup) shape() (CollisionShape, error) {
	if g == nil || len(g.Objects) == 0 {
		return NoShape(), nil
	}
	if len(g.Objects) > 1 {
		return CollisionShape{}, fmt.Errorf("%w: %d collision objects, at most 1 supported", ErrInvalidShape, len(g.Objects))
	}

	o := g.Objects[0]
	switch {
	case o.Polygon != nil:
		pts, err := decodePoints(o.Polygon.Points)
		if err != nil {
			return CollisionShape{}, err
		}
		for i := range pts {
			pts[i].X += o.X
			pts[i].Y += o.Y
		}
		return CollisionShape{Kind: ShapePolygon, Points: pts}, nil
	case o.Polyline != nil:
		return CollisionShape{}, fmt.Errorf("%w: polyline objects are open, not collision areas", ErrInvalidShape)
	case o.Ellipse != nil:
		return CollisionShape{}, fmt.Errorf("%w: ellipse objects are not supported", ErrInvalidShape)
	case o.Point != nil:
		return CollisionShape{}, fmt.Errorf("%w: point objects have no area", ErrInvalidShape)
	}
	return Rectangle(o.X, o.Y, o.Width, o.Height), nil
}

// newObjectGroup is the inverse of shape; nil for ShapeNone.
func newObjectGroup(s CollisionShape) *ObjectGroup {
	var o *Object
	switch s.Kind {
	case ShapeRectangle:
		o = &Object{ID: 1, X: s.Rect.X, Y: s.Rect.Y, Width: s.Rect.Width, Height: s.Rect.Height}
	case ShapePolygon:
		o = &Object{ID: 1, Polygon: &PointSet{Points: encodePoints(s.Points)}}
	default:
		return nil
	}
	return &ObjectGroup{DrawOrder: "index", ID: 2, Objects: []*Object{o}}
}

// decodePoints reads "x,y x,y ..."
func decodePoints(in string) ([]Point, error) {
	fields := strings.Fields(in)
	pts := make([]Point, 0, len(fields))
	for _, f := range fields {
		xy := strings.Split(f, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("%w: bad point %q", ErrInvalidShape, f)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad point %q: %v", ErrInvalidShape, f, err)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad point %q: %v", ErrInvalidShape, f, err)
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts, nil
}

// encodePoints is the inverse of decodePoints
func encodePoints(pts []Point) string {
	out := make([]string, len(pts))
	for i, p := range pts {
		out[i] = strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64)
	}
	return strings.Join(out, " ")
}
