package wangtile

// ShapeLookup represents something that knows tile collision shapes
// (eg. *CollisionTable, *Atlas)
type ShapeLookup interface {
	// ShapeOf returns the shape of the tile, ErrUnknownTile if the id
	// isn't known
	ShapeOf(id TileID) (CollisionShape, error)
}

// Autotiler represents something that chooses tiles by corner signature
// (eg. *Resolver)
type Autotiler interface {
	// Resolve returns the tile exactly matching sig, ErrNoMatchingTile
	// otherwise
	Resolve(sig CornerSignature) (TileID, error)

	// ResolveOrDefault returns the tile exactly matching sig, or fallback
	ResolveOrDefault(sig CornerSignature, fallback TileID) TileID

	// Complement flips Empty <-> Filled on every corner
	Complement(sig CornerSignature) CornerSignature
}

var (
	_ ShapeLookup = (*CollisionTable)(nil)
	_ ShapeLookup = (*Atlas)(nil)
	_ Autotiler   = (*Resolver)(nil)
)
