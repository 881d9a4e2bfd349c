// Package assets embeds the stock tilesets.
package assets

import (
	"bytes"
	_ "embed"

	"github.com/voidshard/wangtile"
)

// MapTexturesTSX is the 32x32 terrain tileset: 15 tiles, 13 of them in a
// two class (empty / filled) corner wang set.
//
//go:embed maptextures.tsx
var MapTexturesTSX []byte

// MapTextures decodes the embedded terrain tileset.
func MapTextures() (*wangtile.Tileset, error) {
	return wangtile.DecodeTileset(bytes.NewReader(MapTexturesTSX))
}

// MapTexturesAtlas builds an Atlas from the embedded terrain tileset.
func MapTexturesAtlas() (*wangtile.Atlas, error) {
	ts, err := MapTextures()
	if err != nil {
		return nil, err
	}
	return ts.Atlas()
}
