package wangtile

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	sqlUpsertTile = `INSERT INTO tiles (id, shape, signature, properties) VALUES (:id, :shape, :signature, :properties)
	ON CONFLICT (id) DO UPDATE SET shape=EXCLUDED.shape, signature=EXCLUDED.signature, properties=EXCLUDED.properties;`
	sqlSelectTiles = `SELECT id, shape, signature, properties FROM tiles ORDER BY id;`
	sqlDeleteTiles = `DELETE FROM tiles;`
)

// Store persists tile records in a sqlite database, so a loader can hand
// records to NewAtlas without re-parsing the source tileset.
type Store struct {
	filename string
	db       *sqlx.DB
}

// NewStore creates a store with a random name in the os tempdir.
func NewStore() (*Store, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	fname := filepath.Join(os.TempDir(), fmt.Sprintf("wangtile.%d.sqlite", rng.Intn(1000000)))
	return OpenStore(fname)
}

// OpenStore given it's filename (database file) on disk.
// Will create if it doesn't exist.
func OpenStore(fname string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", fname)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, filename: fname}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Filename returns the path to the database on disk
func (s *Store) Filename() string {
	return s.filename
}

// Close the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRecords replaces everything in the store with the given records,
// in one transaction.
func (s *Store) SaveRecords(records []TileRecord) error {
	rows := make([]dbTile, 0, len(records))
	for _, r := range records {
		row, err := newDBTile(r)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	txn, err := s.db.Beginx()
	if err != nil {
		return err
	}

	if _, err = txn.Exec(sqlDeleteTiles); err != nil {
		txn.Rollback()
		return err
	}
	for _, row := range rows {
		if _, err = txn.NamedExec(sqlUpsertTile, row); err != nil {
			txn.Rollback()
			return fmt.Errorf("store tile %d: %w", row.ID, err)
		}
	}

	return txn.Commit()
}

// Records returns all stored records ordered by id.
func (s *Store) Records() ([]TileRecord, error) {
	rows := []dbTile{}
	if err := s.db.Select(&rows, sqlSelectTiles); err != nil {
		return nil, err
	}

	out := make([]TileRecord, 0, len(rows))
	for _, row := range rows {
		r, err := row.record()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// init creates our table if it doesn't exist
func (s *Store) init() error {
	createTiles := `CREATE TABLE IF NOT EXISTS tiles(
		id INTEGER PRIMARY KEY,
		shape TEXT NOT NULL,
		signature TEXT,
		properties TEXT
	    );`
	_, err := s.db.Exec(createTiles)
	return err
}

// dbTile encodes a single record, complex fields as JSON.
type dbTile struct {
	ID         int64   `db:"id"`
	Shape      string  `db:"shape"`
	Signature  *string `db:"signature"`
	Properties *string `db:"properties"`
}

// newDBTile crafts a dbTile struct given it's record
func newDBTile(r TileRecord) (dbTile, error) {
	shape, err := json.Marshal(r.Shape)
	if err != nil {
		return dbTile{}, err
	}
	row := dbTile{ID: int64(r.ID), Shape: string(shape)}

	if r.Signature != nil {
		sig := r.Signature.String()
		row.Signature = &sig
	}
	if r.Properties != nil {
		data, err := json.Marshal(r.Properties)
		if err != nil {
			return dbTile{}, err
		}
		props := string(data)
		row.Properties = &props
	}
	return row, nil
}

// record decodes the row back into a TileRecord
func (d dbTile) record() (TileRecord, error) {
	r := TileRecord{ID: TileID(d.ID)}
	if err := json.Unmarshal([]byte(d.Shape), &r.Shape); err != nil {
		return r, fmt.Errorf("tile %d: shape: %w", d.ID, err)
	}

	if d.Signature != nil {
		sig, err := ParseSignature(*d.Signature)
		if err != nil {
			return r, fmt.Errorf("tile %d: %w", d.ID, err)
		}
		r.Signature = &sig
	}

	if d.Properties != nil {
		r.Properties = NewProperties()
		if err := json.Unmarshal([]byte(*d.Properties), r.Properties); err != nil {
			return r, fmt.Errorf("tile %d: properties: %w", d.ID, err)
		}
	}
	return r, nil
}
