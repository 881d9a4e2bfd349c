package wangtile

import "sync/atomic"

// Atlas bundles the collision table and autotile resolver built from one
// record sequence. The two never talk to each other, the Atlas only holds
// them side by side for callers that want both.
type Atlas struct {
	Name       string
	TileWidth  uint
	TileHeight uint

	Collisions *CollisionTable
	Resolver   *Resolver
}

// NewAtlas builds both tables. Problems from either build are reported
// together in one *BuildError; on error no Atlas is returned.
func NewAtlas(name string, cfg *Config, records []TileRecord) (*Atlas, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	ct, cerr := NewCollisionTable(records)
	rs, rerr := NewResolver(records)
	if err := mergeBuildErrors(cerr, rerr); err != nil {
		return nil, err
	}

	return &Atlas{
		Name:       name,
		TileWidth:  cfg.TileWidth,
		TileHeight: cfg.TileHeight,
		Collisions: ct,
		Resolver:   rs,
	}, nil
}

// ShapeOf is shorthand for a.Collisions.ShapeOf.
func (a *Atlas) ShapeOf(id TileID) (CollisionShape, error) {
	return a.Collisions.ShapeOf(id)
}

// TileFor resolves sig strictly and looks up the chosen tile's shape.
func (a *Atlas) TileFor(sig CornerSignature) (TileID, CollisionShape, error) {
	id, err := a.Resolver.Resolve(sig)
	if err != nil {
		return 0, CollisionShape{}, err
	}
	shape, err := a.Collisions.ShapeOf(id)
	if err != nil {
		return 0, CollisionShape{}, err
	}
	return id, shape, nil
}

// Holder publishes a fully built Atlas to concurrent readers. Readers never
// see a half built atlas: Store only ever swaps in finished values.
type Holder struct {
	ptr atomic.Pointer[Atlas]
}

// NewHolder returns a holder publishing a.
func NewHolder(a *Atlas) *Holder {
	h := &Holder{}
	h.ptr.Store(a)
	return h
}

// Load returns the current atlas (nil before the first Store).
func (h *Holder) Load() *Atlas {
	return h.ptr.Load()
}

// Store publishes a new atlas. Passing nil is ignored.
func (h *Holder) Store(a *Atlas) {
	if a == nil {
		return
	}
	h.ptr.Store(a)
}
