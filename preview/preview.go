// Package preview draws collision footprints so a tileset's shapes can be
// eyeballed. It never draws the tile art itself.
package preview

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"

	"github.com/voidshard/wangtile"
	"github.com/voidshard/wangtile/physics"
)

// Options control how a preview is drawn.
type Options struct {
	// Columns in a sheet preview, 0 for a square-ish layout.
	Columns int
	// Scale multiplies the final image size (nearest neighbour), min 1.
	Scale uint
	// Labels draws each tile id in its cell.
	Labels bool
	// Triangles outlines the triangles polygons are split into.
	Triangles bool
}

// Sheet draws the collision shape of every tile in the atlas, one cell per
// tile in id order.
func Sheet(a *wangtile.Atlas, opts Options) (image.Image, error) {
	ids := a.Collisions.IDs()
	if len(ids) == 0 {
		return nil, fmt.Errorf("atlas %q has no tiles", a.Name)
	}

	cols := opts.Columns
	if cols <= 0 {
		cols = 1
		for cols*cols < len(ids) {
			cols++
		}
	}
	rows := (len(ids) + cols - 1) / cols

	layer := &physics.Layer{Width: cols, Height: rows, Tiles: make([]wangtile.TileID, cols*rows), Empty: make([]bool, cols*rows)}
	for i := range layer.Tiles {
		if i < len(ids) {
			layer.Tiles[i] = ids[i]
		} else {
			layer.Empty[i] = true
		}
	}
	return Layer(a, layer, opts)
}

// Layer draws the collision shapes of a placed tile layer.
func Layer(a *wangtile.Atlas, l *physics.Layer, opts Options) (image.Image, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	tw, th := float64(a.TileWidth), float64(a.TileHeight)
	dc := gg.NewContext(l.Width*int(a.TileWidth), l.Height*int(a.TileHeight))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for i, id := range l.Tiles {
		if l.IsEmpty(i) {
			continue
		}
		ox := float64(i%l.Width) * tw
		oy := float64(i/l.Width) * th

		shape, err := a.ShapeOf(id)
		if err != nil {
			return nil, err
		}
		if err := drawShape(dc, ox, oy, shape, opts.Triangles); err != nil {
			return nil, fmt.Errorf("tile %d: %w", id, err)
		}

		// cell border
		dc.SetRGBA(0, 0, 0, 0.25)
		dc.SetLineWidth(1)
		dc.DrawRectangle(ox+0.5, oy+0.5, tw-1, th-1)
		dc.Stroke()

		if opts.Labels {
			dc.SetRGB(0, 0, 0)
			dc.DrawString(fmt.Sprintf("%d", id), ox+2, oy+12)
		}
	}

	return scale(dc.Image(), opts.Scale), nil
}

// drawShape fills the shape at (ox,oy)
func drawShape(dc *gg.Context, ox, oy float64, s wangtile.CollisionShape, triangles bool) error {
	pts := s.Outline()
	if len(pts) == 0 {
		return nil
	}

	dc.NewSubPath()
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(ox+p.X, oy+p.Y)
		} else {
			dc.LineTo(ox+p.X, oy+p.Y)
		}
	}
	dc.ClosePath()
	dc.SetRGBA(0.85, 0.1, 0.1, 0.6)
	dc.FillPreserve()
	dc.SetRGB(0.5, 0, 0)
	dc.SetLineWidth(1)
	dc.Stroke()

	if !triangles || s.Kind != wangtile.ShapePolygon {
		return nil
	}
	tris, err := physics.Triangulate(s.Points)
	if err != nil {
		return err
	}
	dc.SetRGBA(0, 0, 0.6, 0.7)
	for _, t := range tris {
		dc.MoveTo(ox+t[0].X, oy+t[0].Y)
		dc.LineTo(ox+t[1].X, oy+t[1].Y)
		dc.LineTo(ox+t[2].X, oy+t[2].Y)
		dc.ClosePath()
		dc.Stroke()
	}
	return nil
}

// scale the image up by an integer factor, keeping hard pixel edges
func scale(in image.Image, factor uint) image.Image {
	if factor <= 1 {
		return in
	}
	b := in.Bounds()
	return resize.Resize(uint(b.Dx())*factor, uint(b.Dy())*factor, in, resize.NearestNeighbor)
}

// Save writes the image as a PNG.
func Save(fname string, im image.Image) error {
	return gg.SavePNG(fname, im)
}
