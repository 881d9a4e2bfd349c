package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mitchellh/go-homedir"

	"github.com/voidshard/wangtile"
	"github.com/voidshard/wangtile/assets"
	"github.com/voidshard/wangtile/physics"
	"github.com/voidshard/wangtile/preview"
)

const desc = `Inspects corner wang tilesets: picks tiles by the terrain at their four corners
and reports each tile's collision shape.

Records come from a Tiled .tsx tileset (--tileset), a sqlite store written by
'import' (--store), or the built in terrain tileset when neither is given.

Signatures are written NE,SE,SW,NW where each corner is 'empty', 'filled' or
a wang color number, eg. "filled,empty,filled,filled".`

var cli struct {
	Config  string `short:"c" help:"yaml config file"`
	Tileset string `short:"t" help:"tileset .tsx file to read records from"`
	Store   string `short:"s" help:"sqlite store to read records from (overrides --tileset)"`

	Resolve struct {
		Signature string `arg:"" help:"corner signature NE,SE,SW,NW"`
		Fallback  int    `short:"f" default:"-1" help:"tile id to use when nothing matches (default: fail)"`
	} `cmd:"" help:"pick the tile matching a corner signature"`

	Shape struct {
		ID uint32 `arg:"" help:"tile id"`
	} `cmd:"" help:"print a tile's collision shape"`

	Complement struct {
		Signature string `arg:"" help:"corner signature NE,SE,SW,NW"`
	} `cmd:"" help:"flip empty/filled on every corner"`

	Signatures struct{} `cmd:"" help:"list every signature the tileset covers"`

	Import struct {
		Output string `short:"o" required:"" help:"sqlite file to write records to"`
	} `cmd:"" help:"copy tileset records into a sqlite store"`

	Export struct {
		Output string `short:"o" required:"" help:".tsx file to write"`
		Name   string `short:"n" default:"tileset" help:"tileset name"`
	} `cmd:"" help:"write records out as a Tiled tileset"`

	Preview struct {
		Output    string `short:"o" default:"preview.png" help:"png file to write"`
		Columns   int    `default:"0" help:"tiles per row (0: square)"`
		Scale     uint   `default:"0" help:"upscale factor (0: from config)"`
		Labels    bool   `help:"draw tile ids"`
		Triangles bool   `help:"outline polygon triangulation"`
	} `cmd:"" help:"draw every tile's collision shape to a png"`

	Fill struct {
		Rows     []string `arg:"" help:"corner rows, one char per corner: e(mpty), f(illed) or 0-9"`
		Fallback int      `short:"f" default:"-1" help:"tile id for cells nothing matches (default: fail)"`
		Output   string   `short:"o" help:"also draw the filled layer's collision to this png"`
		Bodies   bool     `help:"report the collision objects the layer would create"`
	} `cmd:"" help:"autotile a grid given the terrain at every corner"`

	Watch struct{} `cmd:"" help:"reload --tileset on change and report what changed"`
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("wangtile"),
		kong.Description(desc),
	)

	cfg := wangtile.DefaultConfig()
	if cli.Config != "" {
		var err error
		cfg, err = wangtile.LoadConfig(cli.Config)
		if err != nil {
			log.Fatal(err)
		}
	}
	if cli.Store == "" {
		cli.Store = cfg.Store
	}
	cli.Tileset = expand(cli.Tileset)
	cli.Store = expand(cli.Store)

	var err error
	// kong names commands with their args, eg. "resolve <signature>"
	switch strings.Fields(ctx.Command())[0] {
	case "resolve":
		err = doResolve(cfg)
	case "shape":
		err = doShape(cfg)
	case "complement":
		err = doComplement()
	case "signatures":
		err = doSignatures(cfg)
	case "import":
		err = doImport(cfg)
	case "export":
		err = doExport(cfg)
	case "preview":
		err = doPreview(cfg)
	case "fill":
		err = doFill(cfg)
	case "watch":
		err = doWatch()
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		log.Fatal(err)
	}
}

// expand a leading ~ in a path
func expand(path string) string {
	if path == "" {
		return path
	}
	out, err := homedir.Expand(path)
	if err != nil {
		log.Fatal(err)
	}
	return out
}

// records loads records from the store, the tileset or the built in set,
// returning the config to build with.
func records(cfg *wangtile.Config) (string, *wangtile.Config, []wangtile.TileRecord, error) {
	if cli.Store != "" {
		st, err := wangtile.OpenStore(cli.Store)
		if err != nil {
			return "", nil, nil, err
		}
		defer st.Close()
		recs, err := st.Records()
		return cli.Store, cfg, recs, err
	}

	var (
		ts  *wangtile.Tileset
		err error
	)
	if cli.Tileset != "" {
		ts, err = wangtile.OpenTileset(cli.Tileset)
	} else {
		ts, err = assets.MapTextures()
	}
	if err != nil {
		return "", nil, nil, err
	}

	tcfg := ts.Config()
	tcfg.Fallback = cfg.Fallback
	tcfg.PreviewScale = cfg.PreviewScale
	recs, err := ts.Records()
	return ts.Name, tcfg, recs, err
}

func atlas(cfg *wangtile.Config) (*wangtile.Atlas, error) {
	name, bcfg, recs, err := records(cfg)
	if err != nil {
		return nil, err
	}
	return wangtile.NewAtlas(name, bcfg, recs)
}

func doResolve(cfg *wangtile.Config) error {
	a, err := atlas(cfg)
	if err != nil {
		return err
	}
	sig, err := wangtile.ParseSignature(cli.Resolve.Signature)
	if err != nil {
		return err
	}

	var id wangtile.TileID
	if cli.Resolve.Fallback >= 0 {
		id = a.Resolver.ResolveOrDefault(sig, wangtile.TileID(cli.Resolve.Fallback))
	} else {
		id, err = a.Resolver.Resolve(sig)
		if err != nil {
			return err
		}
	}

	shape, err := a.ShapeOf(id)
	if err != nil {
		return err
	}
	fmt.Printf("%v -> tile %d (%s)\n", sig, id, describe(shape))
	return nil
}

func doShape(cfg *wangtile.Config) error {
	a, err := atlas(cfg)
	if err != nil {
		return err
	}
	shape, err := a.ShapeOf(wangtile.TileID(cli.Shape.ID))
	if err != nil {
		return err
	}
	fmt.Printf("tile %d: %s\n", cli.Shape.ID, describe(shape))
	return nil
}

func doComplement() error {
	sig, err := wangtile.ParseSignature(cli.Complement.Signature)
	if err != nil {
		return err
	}
	fmt.Println(sig.Complement())
	return nil
}

func doSignatures(cfg *wangtile.Config) error {
	a, err := atlas(cfg)
	if err != nil {
		return err
	}
	for _, sig := range a.Resolver.Signatures() {
		id, _ := a.Resolver.Resolve(sig)
		fmt.Printf("%-30s tile %d\n", sig, id)
	}
	return nil
}

func doImport(cfg *wangtile.Config) error {
	_, bcfg, recs, err := records(cfg)
	if err != nil {
		return err
	}
	// refuse to store something we couldn't build from later
	if _, err := wangtile.NewAtlas("", bcfg, recs); err != nil {
		return err
	}

	st, err := wangtile.OpenStore(expand(cli.Import.Output))
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SaveRecords(recs); err != nil {
		return err
	}
	fmt.Printf("wrote %d records to %s\n", len(recs), st.Filename())
	return nil
}

func doExport(cfg *wangtile.Config) error {
	_, bcfg, recs, err := records(cfg)
	if err != nil {
		return err
	}
	out := expand(cli.Export.Output)
	if err := wangtile.NewTileset(cli.Export.Name, bcfg, recs).WriteFile(out); err != nil {
		return err
	}
	fmt.Printf("wrote %d records to %s\n", len(recs), out)
	return nil
}

func doPreview(cfg *wangtile.Config) error {
	a, err := atlas(cfg)
	if err != nil {
		return err
	}
	scale := cli.Preview.Scale
	if scale == 0 {
		scale = cfg.PreviewScale
	}

	im, err := preview.Sheet(a, preview.Options{
		Columns:   cli.Preview.Columns,
		Scale:     scale,
		Labels:    cli.Preview.Labels,
		Triangles: cli.Preview.Triangles,
	})
	if err != nil {
		return err
	}
	out := expand(cli.Preview.Output)
	if err := preview.Save(out, im); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func doFill(cfg *wangtile.Config) error {
	a, err := atlas(cfg)
	if err != nil {
		return err
	}
	grid, err := parseGrid(cli.Fill.Rows)
	if err != nil {
		return err
	}

	var tiles []wangtile.TileID
	if cli.Fill.Fallback >= 0 {
		tiles, err = a.Resolver.Fill(grid, wangtile.TileID(cli.Fill.Fallback))
	} else {
		tiles, err = a.Resolver.FillStrict(grid)
	}
	if err != nil {
		return err
	}

	for y := 0; y < grid.Height; y++ {
		row := make([]string, grid.Width)
		for x := 0; x < grid.Width; x++ {
			row[x] = strconv.Itoa(int(tiles[y*grid.Width+x]))
		}
		fmt.Println(strings.Join(row, ","))
	}

	layer, err := physics.NewLayer(grid.Width, grid.Height, tiles)
	if err != nil {
		return err
	}
	if cli.Fill.Bodies {
		space, err := physics.NewSpace(a, layer)
		if err != nil {
			return err
		}
		fmt.Printf("%d collision objects\n", len(space.Objects()))
	}
	if cli.Fill.Output != "" {
		im, err := preview.Layer(a, layer, preview.Options{Scale: cfg.PreviewScale, Triangles: true})
		if err != nil {
			return err
		}
		if err := preview.Save(expand(cli.Fill.Output), im); err != nil {
			return err
		}
	}
	return nil
}

func doWatch() error {
	if cli.Tileset == "" {
		return errors.New("watch needs --tileset")
	}
	w, err := wangtile.NewWatcher(cli.Tileset)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report := func(a *wangtile.Atlas) {
		fmt.Printf("%s: %d tiles, %d signatures\n", a.Name, a.Collisions.Len(), a.Resolver.Len())
	}
	report(w.Holder.Load())

	go w.Run(ctx)
	for {
		select {
		case a := <-w.Reloaded:
			report(a)
		case err := <-w.Errors:
			fmt.Printf("reload failed, keeping previous tileset: %v\n", err)
		case <-ctx.Done():
			return nil
		}
	}
}

// parseGrid reads corner rows; every row must be the same length.
func parseGrid(rows []string) (*wangtile.CornerGrid, error) {
	if len(rows) < 2 || len(rows[0]) < 2 {
		return nil, errors.New("need at least 2 rows of 2 corners")
	}
	grid := wangtile.NewCornerGrid(len(rows[0])-1, len(rows)-1)
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has %d corners, want %d", y, len(row), len(rows[0]))
		}
		for x, r := range row {
			c, err := wangtile.ParseCornerClass(string(r))
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", y, err)
			}
			grid.Set(x, y, c)
		}
	}
	return grid, nil
}

// describe a shape in one line
func describe(s wangtile.CollisionShape) string {
	switch s.Kind {
	case wangtile.ShapeRectangle:
		r := s.Rect
		return fmt.Sprintf("rectangle x=%g y=%g w=%g h=%g", r.X, r.Y, r.Width, r.Height)
	case wangtile.ShapePolygon:
		pts := make([]string, len(s.Points))
		for i, p := range s.Points {
			pts[i] = fmt.Sprintf("%g,%g", p.X, p.Y)
		}
		return "polygon " + strings.Join(pts, " ")
	}
	return "no collision"
}
