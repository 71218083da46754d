// Package snapshot provides SQLite-based storage for generated maps.
// The generator core never imports this package; data flows one way,
// from a finished snapshot into the store.
package snapshot

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/tannersley/hexland/internal/hexmath"
	"github.com/tannersley/hexland/internal/worldgen"
)

// Store wraps a SQLite connection for map snapshot storage.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		config_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tiles (
		snapshot_id TEXT NOT NULL,
		q INTEGER NOT NULL,
		r INTEGER NOT NULL,
		biome INTEGER NOT NULL,
		terrain INTEGER NOT NULL,
		elevation REAL NOT NULL,
		moisture REAL NOT NULL,
		river_shape INTEGER,
		river_rotation INTEGER,
		path_shape INTEGER,
		path_rotation INTEGER,
		site INTEGER,
		building INTEGER,
		PRIMARY KEY (snapshot_id, q, r)
	);

	CREATE INDEX IF NOT EXISTS idx_tiles_snapshot ON tiles(snapshot_id);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Info summarizes one stored snapshot.
type Info struct {
	ID        string `db:"id"`
	CreatedAt int64  `db:"created_at"`
	Seed      int64  `db:"seed"`
	Width     int    `db:"width"`
	Height    int    `db:"height"`
}

// Save writes a snapshot of the map plus the config that produced it,
// returning the new snapshot's ID. Tiles are inserted in sorted order in
// one transaction.
func (s *Store) Save(cfg worldgen.MapConfig, m *worldgen.TileMap) (string, error) {
	id := uuid.NewString()

	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	tx, err := s.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO snapshots (id, created_at, seed, width, height, config_json)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, time.Now().Unix(), cfg.Seed, m.Width, m.Height, string(cfgJSON))
	if err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO tiles
		(snapshot_id, q, r, biome, terrain, elevation, moisture,
		 river_shape, river_rotation, path_shape, path_rotation, site, building)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, c := range m.SortedCoords() {
		t := m.Get(c)
		riverShape, riverRot := segmentCols(t.River)
		pathShape, pathRot := segmentCols(t.Path)

		var site, building *int64
		if t.Site != nil {
			v := int64(*t.Site)
			site = &v
		}
		if t.Building != nil {
			v := int64(*t.Building)
			building = &v
		}

		_, err := stmt.Exec(id, c.Q, c.R, t.Biome, t.Terrain, t.Elevation, t.Moisture,
			riverShape, riverRot, pathShape, pathRot, site, building)
		if err != nil {
			return "", fmt.Errorf("insert tile %s: %w", c.Key(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

func segmentCols(seg *worldgen.Segment) (shape, rotation *int64) {
	if seg == nil {
		return nil, nil
	}
	sh := int64(seg.Shape)
	rot := int64(seg.Rotation)
	return &sh, &rot
}

type tileRow struct {
	Q             int     `db:"q"`
	R             int     `db:"r"`
	Biome         uint8   `db:"biome"`
	Terrain       uint8   `db:"terrain"`
	Elevation     float64 `db:"elevation"`
	Moisture      float64 `db:"moisture"`
	RiverShape    *int64  `db:"river_shape"`
	RiverRotation *int64  `db:"river_rotation"`
	PathShape     *int64  `db:"path_shape"`
	PathRotation  *int64  `db:"path_rotation"`
	Site          *int64  `db:"site"`
	Building      *int64  `db:"building"`
}

// Load rebuilds a stored snapshot's tile map and config.
func (s *Store) Load(id string) (*worldgen.TileMap, worldgen.MapConfig, error) {
	var cfg worldgen.MapConfig

	var meta struct {
		Width      int    `db:"width"`
		Height     int    `db:"height"`
		ConfigJSON string `db:"config_json"`
	}
	err := s.conn.Get(&meta, `SELECT width, height, config_json FROM snapshots WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, cfg, fmt.Errorf("snapshot %s not found", id)
	}
	if err != nil {
		return nil, cfg, fmt.Errorf("load snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(meta.ConfigJSON), &cfg); err != nil {
		return nil, cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	var rows []tileRow
	if err := s.conn.Select(&rows, `SELECT q, r, biome, terrain, elevation, moisture,
		river_shape, river_rotation, path_shape, path_rotation, site, building
		FROM tiles WHERE snapshot_id = ?`, id); err != nil {
		return nil, cfg, fmt.Errorf("load tiles: %w", err)
	}

	m := worldgen.NewTileMap(meta.Width, meta.Height)
	for _, row := range rows {
		coord := hexmath.Hex{Q: row.Q, R: row.R}
		t := &worldgen.Tile{
			Coord:     coord,
			Biome:     worldgen.Biome(row.Biome),
			Terrain:   worldgen.Terrain(row.Terrain),
			Elevation: row.Elevation,
			Moisture:  row.Moisture,
			River:     segmentFromCols(row.RiverShape, row.RiverRotation),
			Path:      segmentFromCols(row.PathShape, row.PathRotation),
		}
		if row.Site != nil {
			arch := worldgen.Archetype(*row.Site)
			t.Site = &arch
		}
		if row.Building != nil {
			b := worldgen.Building(*row.Building)
			t.Building = &b
		}
		m.Tiles[coord] = t
	}

	return m, cfg, nil
}

func segmentFromCols(shape, rotation *int64) *worldgen.Segment {
	if shape == nil {
		return nil
	}
	seg := &worldgen.Segment{Shape: worldgen.Shape(*shape)}
	if rotation != nil {
		seg.Rotation = int(*rotation)
	}
	return seg
}

// List returns metadata for every stored snapshot, newest first.
func (s *Store) List() ([]Info, error) {
	var infos []Info
	err := s.conn.Select(&infos, `SELECT id, created_at, seed, width, height
		FROM snapshots ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return infos, nil
}
