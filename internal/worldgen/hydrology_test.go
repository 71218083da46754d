package worldgen

import (
	"testing"

	"github.com/tannersley/hexland/internal/hexmath"
	"github.com/tannersley/hexland/internal/noise"
)

func TestTraceRiverPathsValid(t *testing.T) {
	cfg := testConfig(42, 25, 20)
	src := noise.New(cfg.Seed)
	m := NewTileMap(cfg.Width, cfg.Height)
	synthesizeTerrain(cfg, src, m)

	rng := src.Rivers()
	maxLength := cfg.Width + cfg.Height

	for i := 0; i < 20; i++ {
		start := pickRiverStart(cfg, rng, m)
		path := traceRiver(cfg, rng, m, start)

		if len(path) > maxLength {
			t.Fatalf("river %d length %d exceeds cap %d", i, len(path), maxLength)
		}
		seen := make(map[hexmath.Hex]bool)
		for j, c := range path {
			if seen[c] {
				t.Fatalf("river %d repeats coordinate %s", i, c.Key())
			}
			seen[c] = true
			if !m.InBounds(c) {
				t.Fatalf("river %d leaves the map at %s", i, c.Key())
			}
			if j > 0 && hexmath.Distance(path[j-1], c) != 1 {
				t.Fatalf("river %d not hex-adjacent at step %d", i, j)
			}
		}
	}
}

func TestStampRiverRaisesMoistureAndShapes(t *testing.T) {
	cfg := testConfig(8, 20, 20)
	src := noise.New(cfg.Seed)
	m := NewTileMap(cfg.Width, cfg.Height)
	synthesizeTerrain(cfg, src, m)

	// A hand-built path with a straight run and one bend.
	path := []hexmath.Hex{
		CoordAt(5, 5),
	}
	for i := 0; i < 3; i++ {
		path = append(path, path[len(path)-1].Add(hexmath.Directions[0]))
	}
	path = append(path, path[len(path)-1].Add(hexmath.Directions[5]))

	stampRiver(cfg, m, path)

	for i, c := range path {
		tile := m.Get(c)
		if tile.River == nil {
			t.Fatalf("path tile %d has no river stamp", i)
		}
		if tile.Biome != BiomeRiverside {
			t.Fatalf("path tile %d biome %d, want riverside", i, tile.Biome)
		}
		if tile.Moisture < riverMoisture {
			t.Fatalf("path tile %d moisture %f below %f", i, tile.Moisture, riverMoisture)
		}
	}

	// Interior of the straight run is straight; the bend is a corner.
	if m.Get(path[1]).River.Shape != ShapeStraight {
		t.Fatalf("straight run stamped %d", m.Get(path[1]).River.Shape)
	}
	if m.Get(path[3]).River.Shape != ShapeCorner {
		t.Fatalf("bend stamped %d, want corner", m.Get(path[3]).River.Shape)
	}
	// Endpoints default to straight.
	if m.Get(path[0]).River.Shape != ShapeStraight {
		t.Fatal("source endpoint not straight")
	}
	if m.Get(path[len(path)-1]).River.Shape != ShapeStraight {
		t.Fatal("mouth endpoint not straight")
	}

	// Neighbors one hop out got a moisture boost.
	for _, nb := range path[1].Neighbors() {
		nt := m.Get(nb)
		if nt == nil || nt.River != nil {
			continue
		}
		if nt.Moisture <= 0 {
			t.Fatalf("neighbor %s moisture not raised", nb.Key())
		}
	}
}

func TestRiverTilesMatchCarvedCount(t *testing.T) {
	result := mustGenerator(t, testConfig(42, 25, 20)).Generate()
	riverTiles := 0
	for _, tile := range result.Map.Tiles {
		if tile.River != nil {
			riverTiles++
			if tile.Biome != BiomeRiverside {
				t.Fatalf("river tile %s not riverside", tile.Coord.Key())
			}
			if tile.Moisture < riverMoisture {
				t.Fatalf("river tile %s moisture %f", tile.Coord.Key(), tile.Moisture)
			}
		}
	}
	// Rivers may overlap, but every carved river stamps at least two
	// tiles, so the union is never smaller than one river.
	if result.Rivers > 0 && riverTiles < 2 {
		t.Fatalf("%d rivers but only %d river tiles", result.Rivers, riverTiles)
	}
}
