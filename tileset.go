/* file adds helper functions to our tsx tileset wrapper struct.
 */
package wangtile

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"os"
	"sort"
)

// wangPalette colours generated wang colors when writing a tileset.
var wangPalette = []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff", "#00ffff"}

// NewTileset returns a tileset describing the given records, ready to be
// encoded. Tiles without shape or properties are only counted.
func NewTileset(name string, cfg *Config, records []TileRecord) *Tileset {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	sorted := make([]TileRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	ts := &Tileset{
		Version:    "1.10",
		Name:       name,
		TileWidth:  int(cfg.TileWidth),
		TileHeight: int(cfg.TileHeight),
		Tiles:      []*Tile{},
	}

	ws := &WangSet{Name: name, Type: "corner", Tile: -1}
	maxClass := CornerClass(0)

	for _, r := range sorted {
		if int(r.ID)+1 > ts.TileCount {
			ts.TileCount = int(r.ID) + 1
		}

		group := newObjectGroup(r.Shape)
		props := r.Properties.toList()
		if group != nil || len(props) > 0 {
			ts.Tiles = append(ts.Tiles, &Tile{ID: uint(r.ID), Properties: props, ObjectGroup: group})
		}

		if r.Signature == nil {
			continue
		}
		for _, c := range r.Signature {
			if c > maxClass {
				maxClass = c
			}
		}
		ws.Tiles = append(ws.Tiles, &WangTile{TileID: uint(r.ID), WangID: formatWangID(r.Signature.WangID())})
	}

	if len(ws.Tiles) > 0 {
		for i := 0; i < int(maxClass); i++ {
			ws.Colors = append(ws.Colors, &WangColor{
				Color:       wangPalette[i%len(wangPalette)],
				Tile:        -1,
				Probability: 1,
			})
		}
		ts.WangSets = []*WangSet{ws}
	}

	return ts
}

// Records returns one record per tile, ordered by id. Every problem found
// (bad objects, unsupported wang data) is returned together as a
// *BuildError.
func (t *Tileset) Records() ([]TileRecord, error) {
	byID := map[TileID]*TileRecord{}
	get := func(id TileID) *TileRecord {
		r, ok := byID[id]
		if !ok {
			r = &TileRecord{ID: id, Shape: NoShape(), Properties: NewProperties()}
			byID[id] = r
		}
		return r
	}

	if t.TileCount < 0 || uint64(t.TileCount) > math.MaxUint32+1 {
		return nil, fmt.Errorf("tileset %q: tilecount %d out of range", t.Name, t.TileCount)
	}
	for i := 0; i < t.TileCount; i++ {
		get(TileID(i))
	}

	problems := &BuildError{}
	seenTile := map[TileID]bool{}
	for _, tile := range t.Tiles {
		id, err := t.tileID(tile.ID)
		if err != nil {
			problems.add(id, err)
			continue
		}
		if seenTile[id] {
			problems.add(id, ErrDuplicateTileID)
			continue
		}
		seenTile[id] = true

		r := get(id)
		r.Properties = newPropertiesFromList(tile.Properties)

		shape, err := tile.ObjectGroup.shape()
		if err != nil {
			problems.add(id, err)
			continue
		}
		r.Shape = shape
	}

	if len(t.WangSets) > 1 {
		return nil, fmt.Errorf("%w: %d wang sets, at most 1 supported", ErrUnsupportedWangSet, len(t.WangSets))
	}
	for _, ws := range t.WangSets {
		if ws.Type != "corner" {
			return nil, fmt.Errorf("%w: wang set %q has type %q", ErrUnsupportedWangSet, ws.Name, ws.Type)
		}
		for _, wt := range ws.Tiles {
			id, err := t.tileID(wt.TileID)
			if err != nil {
				problems.add(id, err)
				continue
			}
			raw, err := parseWangID(wt.WangID)
			if err != nil {
				problems.add(id, err)
				continue
			}
			sig, err := SignatureFromWangID(raw)
			if err != nil {
				problems.add(id, err)
				continue
			}
			r := get(id)
			if r.Signature != nil {
				// two wangtile entries for one tile
				problems.add(id, ErrDuplicateTileID)
				continue
			}
			r.Signature = &sig
		}
	}

	if err := problems.err(); err != nil {
		return nil, err
	}

	out := make([]TileRecord, 0, len(byID))
	for _, r := range byID {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// tileID checks a raw id from the file lies within [0, tilecount).
// Out of range ids are reported clamped to the TileID range.
func (t *Tileset) tileID(raw uint) (TileID, error) {
	if uint64(raw) >= uint64(t.TileCount) {
		id := TileID(math.MaxUint32)
		if uint64(raw) <= math.MaxUint32 {
			id = TileID(raw)
		}
		return id, fmt.Errorf("%w: id %d outside tilecount %d", ErrUnknownTile, raw, t.TileCount)
	}
	return TileID(raw), nil
}

// Config returns a config carrying this tileset's tile size.
func (t *Tileset) Config() *Config {
	cfg := DefaultConfig()
	if t.TileWidth > 0 {
		cfg.TileWidth = uint(t.TileWidth)
	}
	if t.TileHeight > 0 {
		cfg.TileHeight = uint(t.TileHeight)
	}
	return cfg
}

// Atlas decodes the records and builds an Atlas from them.
func (t *Tileset) Atlas() (*Atlas, error) {
	records, err := t.Records()
	if err != nil {
		return nil, err
	}
	return NewAtlas(t.Name, t.Config(), records)
}

// Encode the tileset as XML to a io.Writer stream
func (t *Tileset) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", " ")
	if err := enc.Encode(t); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// DecodeTileset reads an input TSX tileset XML
func DecodeTileset(r io.Reader) (*Tileset, error) {
	t := &Tileset{}
	if err := xml.NewDecoder(r).Decode(t); err != nil {
		return nil, fmt.Errorf("decode tileset: %w", err)
	}
	return t, nil
}

// OpenTileset reads a TSX file from disk.
func OpenTileset(fname string) (*Tileset, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeTileset(f)
}

// WriteFile encodes the tileset to the given file.
func (t *Tileset) WriteFile(fname string) error {
	buff := bytes.Buffer{}
	err := t.Encode(&buff)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fname, buff.Bytes(), 0644)
}
