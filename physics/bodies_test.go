package physics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/wangtile"
)

func testAtlas(t *testing.T) *wangtile.Atlas {
	f, e := wangtile.Filled, wangtile.Empty
	a, err := wangtile.NewAtlas("test", nil, []wangtile.TileRecord{
		wangtile.NewRecord(0, wangtile.NoShape(), wangtile.SigPtr(wangtile.Uniform(e))),
		wangtile.NewRecord(1, wangtile.Rectangle(0, 0, 32, 32), wangtile.SigPtr(wangtile.Uniform(f))),
		wangtile.NewRecord(2, wangtile.Polygon(pts(0, 0, 32, 0, 32, 16, 16, 16, 16, 32, 0, 32)...), wangtile.SigPtr(wangtile.Sig(f, e, f, f))),
		wangtile.NewRecord(3, wangtile.Rectangle(0, 16, 32, 16), wangtile.SigPtr(wangtile.Sig(e, f, f, e))),
	})
	require.NoError(t, err)
	return a
}

func TestObjects(t *testing.T) {
	a := testAtlas(t)
	l, err := NewLayer(2, 2, []wangtile.TileID{0, 1, 2, 3})
	require.NoError(t, err)

	objs, err := Objects(a.Collisions, l, 32, 32)
	require.NoError(t, err)

	// no shape: 0, rect: 1, l shape: 4 triangles, half rect: 1
	require.Len(t, objs, 6)

	full := objs[0]
	assert.Equal(t, 32.0, full.X)
	assert.Equal(t, 0.0, full.Y)
	assert.Equal(t, 32.0, full.W)
	assert.Equal(t, 32.0, full.H)
	assert.True(t, full.HasTags(TagSolid))

	// triangles of the l shape sit inside cell (0,1)
	for _, o := range objs[1:5] {
		assert.GreaterOrEqual(t, o.X, 0.0)
		assert.LessOrEqual(t, o.X+o.W, 32.0)
		assert.GreaterOrEqual(t, o.Y, 32.0)
		assert.LessOrEqual(t, o.Y+o.H, 64.0)
	}

	half := objs[5]
	assert.Equal(t, 32.0, half.X)
	assert.Equal(t, 48.0, half.Y)
	assert.Equal(t, 16.0, half.H)
}

func TestObjectsUnknownTile(t *testing.T) {
	a := testAtlas(t)
	l, err := NewLayer(1, 1, []wangtile.TileID{9})
	require.NoError(t, err)

	_, err = Objects(a, l, 32, 32)
	assert.True(t, errors.Is(err, wangtile.ErrUnknownTile))
}

func TestObjectsSkipsEmptyCells(t *testing.T) {
	a := testAtlas(t)
	l := &Layer{Width: 2, Height: 1, Tiles: []wangtile.TileID{1, 9}, Empty: []bool{false, true}}

	objs, err := Objects(a, l, 32, 32)
	require.NoError(t, err)
	assert.Len(t, objs, 1)
}

func TestObjectsShortEmptyFlags(t *testing.T) {
	a := testAtlas(t)
	l := &Layer{Width: 2, Height: 1, Tiles: []wangtile.TileID{1, 1}, Empty: []bool{false}}

	_, err := Objects(a, l, 32, 32)
	assert.Error(t, err)
}

func TestNewSpaceFromFill(t *testing.T) {
	a := testAtlas(t)

	g := wangtile.NewCornerGrid(4, 3)
	for i := range g.Corners {
		g.Corners[i] = wangtile.Filled
	}
	tiles, err := a.Resolver.FillStrict(g)
	require.NoError(t, err)

	l, err := NewLayer(g.Width, g.Height, tiles)
	require.NoError(t, err)

	space, err := NewSpace(a, l)
	require.NoError(t, err)
	assert.Len(t, space.Objects(), 12)
}

func TestNewLayerSize(t *testing.T) {
	_, err := NewLayer(2, 2, []wangtile.TileID{1, 2, 3})
	assert.Error(t, err)
}
