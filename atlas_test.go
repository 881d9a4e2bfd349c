package wangtile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAtlasMergesProblems(t *testing.T) {
	recs := terrainRecords()
	recs = append(recs,
		NewRecord(30, Polygon(Point{0, 0}, Point{1, 1}), nil),
		NewRecord(31, Rectangle(0, 0, 32, 32), SigPtr(Uniform(Filled))),
	)

	a, err := NewAtlas("bad", nil, recs)
	assert.Nil(t, a)
	assert.True(t, errors.Is(err, ErrInvalidShape))
	assert.True(t, errors.Is(err, ErrConflictingSignature))

	var be *BuildError
	require.True(t, errors.As(err, &be))
	assert.ElementsMatch(t, []TileID{30, 31}, be.TileIDs())
}

func TestAtlasTileForUnknownShape(t *testing.T) {
	// resolver and collision table are built from the same records, but a
	// caller can still ask for ids that don't exist
	a, err := NewAtlas("terrain", DefaultConfig(), terrainRecords())
	require.NoError(t, err)

	_, err = a.ShapeOf(100)
	assert.True(t, errors.Is(err, ErrUnknownTile))

	_, _, err = a.TileFor(Sig(Filled, Empty, Filled, Empty))
	assert.True(t, errors.Is(err, ErrNoMatchingTile))
}

func TestHolder(t *testing.T) {
	h := &Holder{}
	assert.Nil(t, h.Load())

	first, err := NewAtlas("first", nil, terrainRecords())
	require.NoError(t, err)
	second, err := NewAtlas("second", nil, terrainRecords()[:3])
	require.NoError(t, err)

	h.Store(first)
	assert.Same(t, first, h.Load())

	h.Store(nil)
	assert.Same(t, first, h.Load())

	h.Store(second)
	assert.Equal(t, "second", h.Load().Name)
}
