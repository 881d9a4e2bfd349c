package wangtile

// TileID indexes a tile within its tileset.
type TileID uint32

// TileRecord is everything the core knows about one tile.
// Signature is nil for tiles that take no part in autotiling.
type TileRecord struct {
	ID         TileID
	Shape      CollisionShape
	Signature  *CornerSignature
	Properties *Properties
}

// NewRecord is a small helper for building records by hand.
func NewRecord(id TileID, shape CollisionShape, sig *CornerSignature) TileRecord {
	return TileRecord{ID: id, Shape: shape, Signature: sig}
}

// SigPtr returns a pointer to a copy of s, handy for TileRecord literals.
func SigPtr(s CornerSignature) *CornerSignature {
	return &s
}
