package worldgen

import (
	"log/slog"

	"github.com/tannersley/hexland/internal/hexmath"
	"github.com/tannersley/hexland/internal/noise"
	"github.com/tannersley/hexland/internal/pathing"
)

// A* step costs by destination tile. Water and mountains are discouraged
// but never forbidden; crossing a river costs a ford, not a wall.
const (
	roadCostNormal   = 1
	roadCostRiver    = 2
	roadCostMountain = 3
	roadCostWater    = 5
)

// Extra redundancy edges only connect sites within this hex distance.
const extraEdgeMaxDistance = 15

type roadEdge struct {
	from, to hexmath.Hex
}

// buildRoads is phase 4: connects every placed site through an
// approximate minimum spanning tree plus a fraction of redundant edges,
// resolving each edge with terrain-weighted A* and stamping the tiles.
func buildRoads(cfg MapConfig, src *noise.Source, m *TileMap, sites []Site) int {
	if len(sites) < 2 {
		return 0
	}

	edges := spanningEdges(sites)

	// Redundancy: extra random edges between nearby pairs. Duplicates
	// are tolerated; re-stamping the same shape changes nothing.
	rng := src.Roads()
	extra := int(float64(len(edges)) * cfg.PathDensity)
	for i := 0; i < extra; i++ {
		a := sites[rng.Intn(len(sites))]
		b := sites[rng.Intn(len(sites))]
		if a.Coord == b.Coord {
			continue
		}
		if hexmath.Distance(a.Coord, b.Coord) > extraEdgeMaxDistance {
			continue
		}
		edges = append(edges, roadEdge{from: a.Coord, to: b.Coord})
	}

	for _, e := range edges {
		path := resolveRoad(m, e.from, e.to)
		stampRoad(m, path)
	}
	return len(edges)
}

// spanningEdges builds an approximate MST greedily: grow the connected
// set by the globally shortest hex-distance edge to any remaining site.
// Quadratic in site count, which is fine at tens of sites.
func spanningEdges(sites []Site) []roadEdge {
	connected := []hexmath.Hex{sites[0].Coord}
	remaining := make([]hexmath.Hex, 0, len(sites)-1)
	for _, s := range sites[1:] {
		remaining = append(remaining, s.Coord)
	}

	edges := make([]roadEdge, 0, len(sites)-1)
	for len(remaining) > 0 {
		bestDist := -1
		bestFrom, bestIdx := connected[0], 0
		for _, c := range connected {
			for i, r := range remaining {
				d := hexmath.Distance(c, r)
				if bestDist < 0 || d < bestDist {
					bestDist = d
					bestFrom = c
					bestIdx = i
				}
			}
		}
		edges = append(edges, roadEdge{from: bestFrom, to: remaining[bestIdx]})
		connected = append(connected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return edges
}

// resolveRoad runs A* between two sites. On exhaustion it falls back to a
// direct interpolated hex line so every edge resolves to some path.
func resolveRoad(m *TileMap, from, to hexmath.Hex) []hexmath.Hex {
	neighbors := func(a hexmath.Hex) []hexmath.Hex {
		out := make([]hexmath.Hex, 0, 6)
		for _, nb := range a.Neighbors() {
			if m.InBounds(nb) {
				out = append(out, nb)
			}
		}
		return out
	}
	cost := func(_, b hexmath.Hex) int {
		t := m.Get(b)
		switch {
		case t.River != nil:
			return roadCostRiver
		case t.Terrain == TerrainWater:
			return roadCostWater
		case t.Terrain == TerrainMountain:
			return roadCostMountain
		default:
			return roadCostNormal
		}
	}

	path := pathing.AStar(from, to, pathing.HeuristicTo(to), neighbors, cost)
	if path == nil {
		slog.Debug("road search exhausted, using direct line", "from", from.Key(), "to", to.Key())
		path = hexmath.Line(from, to)
	}
	return path
}

// stampRoad marks path tiles. A tile already carrying a river becomes a
// crossing without touching its river stamp; everything else gets the
// same straight/corner directional logic rivers use. Terrain is coerced
// to bare ground unless it is water or stone-family.
func stampRoad(m *TileMap, path []hexmath.Hex) {
	for i, c := range path {
		t := m.Get(c)
		if t == nil {
			continue
		}

		seg := segmentAt(path, i)
		if t.River != nil {
			seg.Shape = ShapeCrossing
		}
		t.Path = &seg

		if t.Terrain != TerrainWater && !t.Terrain.IsStoneFamily() {
			t.Terrain = TerrainDirt
		}
	}
}
