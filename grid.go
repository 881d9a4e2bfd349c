package wangtile

import "fmt"

// CornerGrid holds terrain classes sampled at the corners of a Width x Height
// cell map, so (Width+1) x (Height+1) samples in row major order.
type CornerGrid struct {
	Width   int
	Height  int
	Corners []CornerClass
}

// NewCornerGrid returns an all Empty grid for a Width x Height cell map.
func NewCornerGrid(width, height int) *CornerGrid {
	return &CornerGrid{
		Width:   width,
		Height:  height,
		Corners: make([]CornerClass, (width+1)*(height+1)),
	}
}

// At returns the class at corner (x,y), 0 <= x <= Width, 0 <= y <= Height.
func (g *CornerGrid) At(x, y int) CornerClass {
	return g.Corners[y*(g.Width+1)+x]
}

// Set the class at corner (x,y).
func (g *CornerGrid) Set(x, y int, c CornerClass) {
	g.Corners[y*(g.Width+1)+x] = c
}

// Paint sets all four corners of cell (x,y) to c.
func (g *CornerGrid) Paint(x, y int, c CornerClass) {
	g.Set(x, y, c)
	g.Set(x+1, y, c)
	g.Set(x, y+1, c)
	g.Set(x+1, y+1, c)
}

// Signature returns the corner signature of cell (x,y).
func (g *CornerGrid) Signature(x, y int) CornerSignature {
	return CornerSignature{
		g.At(x+1, y),   // NE
		g.At(x+1, y+1), // SE
		g.At(x, y+1),   // SW
		g.At(x, y),     // NW
	}
}

func (g *CornerGrid) validate() error {
	if g.Width < 0 || g.Height < 0 {
		return fmt.Errorf("corner grid has negative size %dx%d", g.Width, g.Height)
	}
	if want := (g.Width + 1) * (g.Height + 1); len(g.Corners) != want {
		return fmt.Errorf("corner grid %dx%d wants %d corners, has %d", g.Width, g.Height, want, len(g.Corners))
	}
	return nil
}

// Fill resolves every cell of the grid, using fallback for cells no tile
// matches. The result is row major, Width x Height.
func (r *Resolver) Fill(g *CornerGrid, fallback TileID) ([]TileID, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	out := make([]TileID, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out[y*g.Width+x] = r.ResolveOrDefault(g.Signature(x, y), fallback)
		}
	}
	return out, nil
}

// FillStrict is Fill without a fallback: the first cell with no matching
// tile fails the whole fill.
func (r *Resolver) FillStrict(g *CornerGrid) ([]TileID, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	out := make([]TileID, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			id, err := r.Resolve(g.Signature(x, y))
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			out[y*g.Width+x] = id
		}
	}
	return out, nil
}
