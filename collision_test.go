package wangtile

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollisionTableShapeOf(t *testing.T) {
	recs := terrainRecords()
	ct, err := NewCollisionTable(recs)
	require.NoError(t, err)

	assert.Equal(t, len(recs), ct.Len())
	for _, r := range recs {
		first, err := ct.ShapeOf(r.ID)
		assert.NoError(t, err)
		assert.True(t, r.Shape.Equal(first), "tile %d", r.ID)

		again, _ := ct.ShapeOf(r.ID)
		assert.Equal(t, first, again)
	}
}

func TestCollisionTableNoShapeIsNotUnknown(t *testing.T) {
	ct, err := NewCollisionTable(terrainRecords())
	require.NoError(t, err)

	s, err := ct.ShapeOf(15)
	assert.NoError(t, err)
	assert.Equal(t, ShapeNone, s.Kind)

	_, err = ct.ShapeOf(16)
	assert.True(t, errors.Is(err, ErrUnknownTile))

	_, err = ct.ShapeOf(1 << 20)
	assert.True(t, errors.Is(err, ErrUnknownTile))
}

func TestCollisionTableGapsAreUnknown(t *testing.T) {
	ct, err := NewCollisionTable([]TileRecord{
		NewRecord(0, NoShape(), nil),
		NewRecord(4, Rectangle(0, 0, 8, 8), nil),
	})
	require.NoError(t, err)

	assert.Equal(t, []TileID{0, 4}, ct.IDs())
	for _, id := range []TileID{1, 2, 3} {
		_, err := ct.ShapeOf(id)
		assert.True(t, errors.Is(err, ErrUnknownTile), "tile %d", id)
		assert.False(t, ct.Has(id))
	}
}

func TestCollisionTableCopiesPolygon(t *testing.T) {
	pts := lShape()
	ct, err := NewCollisionTable([]TileRecord{{ID: 0, Shape: CollisionShape{Kind: ShapePolygon, Points: pts}}})
	require.NoError(t, err)

	pts[0] = Point{99, 99}

	s, _ := ct.ShapeOf(0)
	assert.Equal(t, Point{0, 0}, s.Points[0])
}

func TestCollisionTableDuplicateID(t *testing.T) {
	recs := append(terrainRecords(), NewRecord(3, NoShape(), nil))

	ct, err := NewCollisionTable(recs)
	assert.Nil(t, ct)
	assert.True(t, errors.Is(err, ErrDuplicateTileID))

	var be *BuildError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, []TileID{3}, be.TileIDs())
}

func TestCollisionTableReportsEveryBadTile(t *testing.T) {
	recs := []TileRecord{
		NewRecord(0, Polygon(Point{0, 0}, Point{1, 1}), nil),
		NewRecord(1, Polygon(Point{0, 0}, Point{math.NaN(), 1}, Point{2, 2}), nil),
		NewRecord(2, Rectangle(0, 0, 32, 32), nil),
		NewRecord(2, Rectangle(0, 0, 32, 32), nil),
	}

	ct, err := NewCollisionTable(recs)
	assert.Nil(t, ct)
	assert.True(t, errors.Is(err, ErrInvalidShape))
	assert.True(t, errors.Is(err, ErrDuplicateTileID))

	var be *BuildError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, []TileID{0, 1, 2}, be.TileIDs())
	assert.Contains(t, err.Error(), "tile 1")
}

func TestCollisionTableDuplicateAfterInvalidShape(t *testing.T) {
	recs := []TileRecord{
		NewRecord(0, Polygon(Point{0, 0}, Point{1, 1}), nil),
		NewRecord(0, Rectangle(0, 0, 32, 32), nil),
	}

	_, err := NewCollisionTable(recs)
	assert.True(t, errors.Is(err, ErrInvalidShape))
	assert.True(t, errors.Is(err, ErrDuplicateTileID))
}

func TestCollisionTableSparseIDs(t *testing.T) {
	recs := []TileRecord{
		NewRecord(4000000000, Rectangle(0, 0, 32, 32), nil),
		NewRecord(2, NoShape(), nil),
	}

	ct, err := NewCollisionTable(recs)
	require.NoError(t, err)
	assert.Equal(t, 2, ct.Len())
	assert.Equal(t, []TileID{2, 4000000000}, ct.IDs())
	assert.True(t, ct.Has(4000000000))
	assert.False(t, ct.Has(3))

	s, err := ct.ShapeOf(4000000000)
	require.NoError(t, err)
	assert.Equal(t, ShapeRectangle, s.Kind)

	_, err = ct.ShapeOf(1)
	assert.True(t, errors.Is(err, ErrUnknownTile))
}

func TestCollisionTableEmpty(t *testing.T) {
	ct, err := NewCollisionTable(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, ct.Len())

	_, err = ct.ShapeOf(0)
	assert.True(t, errors.Is(err, ErrUnknownTile))
}
