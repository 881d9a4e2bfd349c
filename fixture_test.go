package wangtile

// terrainRecords mirrors the stock terrain tileset (32x32, one wang color)
// plus tile 15, a blank tile for the all empty corner pattern.
func terrainRecords() []TileRecord {
	f, e := Filled, Empty
	return []TileRecord{
		NewRecord(0, Rectangle(16, 16, 16, 16), SigPtr(Sig(e, f, e, e))),
		NewRecord(1, Rectangle(0, 16, 32, 16), SigPtr(Sig(e, f, f, e))),
		NewRecord(2, Rectangle(0, 16, 16, 16), SigPtr(Sig(e, e, f, e))),
		NewRecord(3, Polygon(lShape()...), SigPtr(Sig(f, e, f, f))),
		NewRecord(4, Polygon(Point{0, 0}, Point{32, 0}, Point{32, 32}, Point{16, 32}, Point{16, 16}, Point{0, 16}), SigPtr(Sig(f, f, e, f))),
		NewRecord(5, Rectangle(16, 0, 16, 32), SigPtr(Sig(f, f, e, e))),
		NewRecord(6, Rectangle(0, 0, 32, 32), SigPtr(Sig(f, f, f, f))),
		NewRecord(7, Rectangle(0, 0, 16, 32), SigPtr(Sig(e, e, f, f))),
		NewRecord(8, Polygon(Point{0, 0}, Point{16, 0}, Point{16, 16}, Point{32, 16}, Point{32, 32}, Point{0, 32}), SigPtr(Sig(e, f, f, f))),
		NewRecord(9, Polygon(Point{16, 16}, Point{16, 0}, Point{32, 0}, Point{32, 32}, Point{0, 32}, Point{0, 16}), SigPtr(Sig(f, f, f, e))),
		NewRecord(10, Rectangle(16, 0, 16, 16), SigPtr(Sig(f, e, e, e))),
		NewRecord(11, Rectangle(0, 0, 32, 16), SigPtr(Sig(f, e, e, f))),
		NewRecord(12, Rectangle(0, 0, 16, 16), SigPtr(Sig(e, e, e, f))),
		NewRecord(13, Rectangle(0, 0, 32, 32), nil),
		NewRecord(14, Rectangle(0, 0, 32, 32), nil),
		NewRecord(15, NoShape(), SigPtr(Uniform(e))),
	}
}

// lShape is everything but the bottom right quadrant of a 32x32 tile.
func lShape() []Point {
	return []Point{{0, 0}, {32, 0}, {32, 16}, {16, 16}, {16, 32}, {0, 32}}
}
