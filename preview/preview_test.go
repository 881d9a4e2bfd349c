package preview

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/wangtile"
	"github.com/voidshard/wangtile/physics"
)

func testAtlas(t *testing.T) *wangtile.Atlas {
	a, err := wangtile.NewAtlas("test", nil, []wangtile.TileRecord{
		wangtile.NewRecord(0, wangtile.NoShape(), nil),
		wangtile.NewRecord(1, wangtile.Rectangle(0, 0, 32, 32), nil),
		wangtile.NewRecord(2, wangtile.Polygon(
			wangtile.Point{X: 0, Y: 0}, wangtile.Point{X: 32, Y: 0}, wangtile.Point{X: 32, Y: 16},
			wangtile.Point{X: 16, Y: 16}, wangtile.Point{X: 16, Y: 32}, wangtile.Point{X: 0, Y: 32},
		), nil),
		wangtile.NewRecord(3, wangtile.Rectangle(16, 16, 16, 16), nil),
		wangtile.NewRecord(4, wangtile.Rectangle(0, 0, 16, 16), nil),
	})
	require.NoError(t, err)
	return a
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestSheet(t *testing.T) {
	im, err := Sheet(testAtlas(t), Options{Labels: true, Triangles: true})
	require.NoError(t, err)

	// 5 tiles -> 3x2 grid
	assert.Equal(t, 96, im.Bounds().Dx())
	assert.Equal(t, 64, im.Bounds().Dy())

	// centre of tile 0 has no collision, tile 1 is solid all over
	assert.True(t, isWhite(im.At(20, 20)))
	assert.False(t, isWhite(im.At(32+20, 20)))
}

func TestSheetScaled(t *testing.T) {
	im, err := Sheet(testAtlas(t), Options{Columns: 5, Scale: 3})
	require.NoError(t, err)
	assert.Equal(t, 5*32*3, im.Bounds().Dx())
	assert.Equal(t, 32*3, im.Bounds().Dy())
}

func TestLayer(t *testing.T) {
	a := testAtlas(t)
	l, err := physics.NewLayer(2, 1, []wangtile.TileID{2, 3})
	require.NoError(t, err)

	im, err := Layer(a, l, Options{})
	require.NoError(t, err)
	assert.Equal(t, 64, im.Bounds().Dx())

	// l shape leaves its bottom right quadrant open
	assert.False(t, isWhite(im.At(8, 8)))
	assert.True(t, isWhite(im.At(24, 24)))
	// tile 3 is only the bottom right quadrant
	assert.True(t, isWhite(im.At(32+8, 8)))
	assert.False(t, isWhite(im.At(32+24, 24)))
}

func TestLayerUnknownTile(t *testing.T) {
	l, err := physics.NewLayer(1, 1, []wangtile.TileID{7})
	require.NoError(t, err)

	_, err = Layer(testAtlas(t), l, Options{})
	assert.Error(t, err)
}

func TestLayerShortEmptyFlags(t *testing.T) {
	l := &physics.Layer{Width: 2, Height: 1, Tiles: []wangtile.TileID{1, 1}, Empty: []bool{true}}

	_, err := Layer(testAtlas(t), l, Options{})
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	im, err := Sheet(testAtlas(t), Options{})
	require.NoError(t, err)

	fname := filepath.Join(t.TempDir(), "sheet.png")
	require.NoError(t, Save(fname, im))

	back, err := gg.LoadPNG(fname)
	require.NoError(t, err)
	assert.Equal(t, im.Bounds(), back.Bounds())
}
