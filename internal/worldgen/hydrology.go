package worldgen

import (
	"log/slog"
	"math/rand"

	"github.com/tannersley/hexland/internal/hexmath"
	"github.com/tannersley/hexland/internal/noise"
)

const (
	// Candidate start points sampled along the chosen map edge.
	riverStartCandidates = 4
	// Elevation jitter subtracted when comparing descent neighbors.
	// Keeps parallel rivers from tracing identical grooves while staying
	// seed-reproducible.
	riverElevationJitter = 0.05
	// Rivers shorter than this may not yet terminate at a boundary tile.
	riverMinLength = 3
	// Moisture stamped on river tiles and the floor they raise toward.
	riverMoisture = 0.8
	// Additive moisture boost applied one hop out from the channel.
	riverMoistureBoost = 0.25
)

// simulateHydrology is phase 2: carves up to cfg.RiverCount rivers by
// steepest-descent flow and stamps their tiles. Degenerate rivers with no
// valid first step are dropped; the returned count may be below the
// requested count.
func simulateHydrology(cfg MapConfig, src *noise.Source, m *TileMap) int {
	rng := src.Rivers()
	carved := 0

	for i := 0; i < cfg.RiverCount; i++ {
		start := pickRiverStart(cfg, rng, m)
		path := traceRiver(cfg, rng, m, start)
		if len(path) < 2 {
			slog.Debug("dropping degenerate river", "start", start.Key(), "length", len(path))
			continue
		}
		stampRiver(cfg, m, path)
		carved++
	}

	return carved
}

// pickRiverStart samples candidate tiles along one random map edge and
// keeps the highest: rivers originate near high ground.
func pickRiverStart(cfg MapConfig, rng *rand.Rand, m *TileMap) hexmath.Hex {
	edge := rng.Intn(4)

	best := hexmath.Hex{}
	bestElev := -1.0
	for i := 0; i < riverStartCandidates; i++ {
		var coord hexmath.Hex
		switch edge {
		case 0: // north
			coord = CoordAt(rng.Intn(cfg.Width), 0)
		case 1: // east
			coord = CoordAt(cfg.Width-1, rng.Intn(cfg.Height))
		case 2: // south
			coord = CoordAt(rng.Intn(cfg.Width), cfg.Height-1)
		default: // west
			coord = CoordAt(0, rng.Intn(cfg.Height))
		}
		if t := m.Get(coord); t != nil && t.Elevation > bestElev {
			best = coord
			bestElev = t.Elevation
		}
	}
	return best
}

// traceRiver follows steepest descent from start: each step moves to the
// unvisited in-bounds neighbor with the lowest jittered elevation. Stops
// when no neighbor remains, the length cap is hit, or (past the minimum
// length) a boundary tile is reached.
func traceRiver(cfg MapConfig, rng *rand.Rand, m *TileMap, start hexmath.Hex) []hexmath.Hex {
	maxLength := cfg.Width + cfg.Height

	path := make([]hexmath.Hex, 0, maxLength)
	visited := make(map[hexmath.Hex]bool)
	current := start

	for {
		path = append(path, current)
		visited[current] = true

		if len(path) >= maxLength {
			break
		}
		if len(path) >= riverMinLength && m.OnBoundary(current) {
			break
		}

		next := current
		found := false
		bestEff := 0.0
		for _, nb := range current.Neighbors() {
			if visited[nb] || !m.InBounds(nb) {
				continue
			}
			eff := m.Get(nb).Elevation - rng.Float64()*riverElevationJitter
			if !found || eff < bestEff {
				next = nb
				bestEff = eff
				found = true
			}
		}
		if !found {
			break
		}
		current = next
	}

	return path
}

// stampRiver marks every path tile as riverside water with the segment
// shape derived from flow direction, then raises moisture one hop out.
func stampRiver(cfg MapConfig, m *TileMap, path []hexmath.Hex) {
	for i, c := range path {
		t := m.Get(c)
		t.Biome = BiomeRiverside
		t.Terrain = TerrainWater
		if t.Moisture < riverMoisture {
			t.Moisture = riverMoisture
		}
		seg := segmentAt(path, i)
		t.River = &seg
	}

	// Single hop only: promoted neighbors never cascade further.
	for _, c := range path {
		for _, nb := range c.Neighbors() {
			nt := m.Get(nb)
			if nt == nil || nt.River != nil {
				continue
			}
			nt.Moisture += riverMoistureBoost
			if nt.Moisture > 1 {
				nt.Moisture = 1
			}
			if nt.Moisture >= cfg.RiversideMoisture && nt.Biome != BiomeRiverside {
				nt.Biome = BiomeRiverside
			}
		}
	}
}

// segmentAt derives the stamp for path[i] from its neighbors on the path.
// Flow continuing in one direction is straight; a bend is a corner.
// Endpoints default to straight along the one known direction.
func segmentAt(path []hexmath.Hex, i int) Segment {
	dirIn, dirOut := -1, -1
	if i > 0 {
		dirIn = hexmath.DirectionIndex(path[i-1], path[i])
	}
	if i < len(path)-1 {
		dirOut = hexmath.DirectionIndex(path[i], path[i+1])
	}

	switch {
	case dirIn >= 0 && dirOut >= 0:
		if dirIn == dirOut {
			return Segment{Shape: ShapeStraight, Rotation: dirIn}
		}
		return Segment{Shape: ShapeCorner, Rotation: dirIn}
	case dirOut >= 0:
		return Segment{Shape: ShapeStraight, Rotation: dirOut}
	case dirIn >= 0:
		return Segment{Shape: ShapeStraight, Rotation: dirIn}
	default:
		return Segment{Shape: ShapeStraight, Rotation: 0}
	}
}
