package wangtile

import (
	"fmt"
	"sort"
)

// collisionEntry is one slot in the CollisionTable.
type collisionEntry struct {
	known bool
	shape CollisionShape
}

// CollisionTable maps tile ids to their collision shape.
// It is immutable once built and safe for concurrent reads.
type CollisionTable struct {
	// entries is indexed by id when ids are dense, otherwise sparse is used
	entries []collisionEntry
	sparse  map[TileID]CollisionShape
	count   int
}

// denseSlack is how much bigger than the record count the id range may be
// before the table falls back to a map.
const denseSlack = 1024

// NewCollisionTable builds a table from every given record, with or
// without a corner signature. Any duplicate id or invalid shape fails the
// whole build; the returned error is a *BuildError naming each tile.
func NewCollisionTable(records []TileRecord) (*CollisionTable, error) {
	size := 0
	for _, r := range records {
		if int(r.ID)+1 > size {
			size = int(r.ID) + 1
		}
	}

	t := &CollisionTable{}
	if size <= 2*len(records)+denseSlack {
		t.entries = make([]collisionEntry, size)
	} else {
		t.sparse = map[TileID]CollisionShape{}
	}

	problems := &BuildError{}
	seen := make(map[TileID]bool, len(records))

	for _, r := range records {
		if seen[r.ID] {
			problems.add(r.ID, ErrDuplicateTileID)
			continue
		}
		seen[r.ID] = true

		if err := r.Shape.Validate(); err != nil {
			problems.add(r.ID, err)
			continue
		}

		shape := r.Shape
		if shape.Kind == ShapePolygon {
			// our own copy, the caller may reuse their slice
			shape = Polygon(shape.Points...)
		}
		if t.sparse != nil {
			t.sparse[r.ID] = shape
		} else {
			t.entries[r.ID] = collisionEntry{known: true, shape: shape}
		}
		t.count++
	}

	if err := problems.err(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *CollisionTable) lookup(id TileID) (CollisionShape, bool) {
	if t.sparse != nil {
		s, ok := t.sparse[id]
		return s, ok
	}
	if int(id) >= len(t.entries) || !t.entries[id].known {
		return CollisionShape{}, false
	}
	return t.entries[id].shape, true
}

// ShapeOf returns the collision shape of a tile. A tile without collision
// yields a ShapeNone shape; an id the table doesn't know is ErrUnknownTile.
func (t *CollisionTable) ShapeOf(id TileID) (CollisionShape, error) {
	s, ok := t.lookup(id)
	if !ok {
		return CollisionShape{}, fmt.Errorf("%w: %d", ErrUnknownTile, id)
	}
	return s, nil
}

// Has reports if the tile id is known to the table.
func (t *CollisionTable) Has(id TileID) bool {
	_, ok := t.lookup(id)
	return ok
}

// Len returns the number of tiles in the table.
func (t *CollisionTable) Len() int {
	return t.count
}

// IDs returns all known tile ids, ascending.
func (t *CollisionTable) IDs() []TileID {
	ids := make([]TileID, 0, t.count)
	if t.sparse != nil {
		for id := range t.sparse {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		return ids
	}
	for i, e := range t.entries {
		if e.known {
			ids = append(ids, TileID(i))
		}
	}
	return ids
}
