package worldgen

import (
	"math/rand"
)

// Chance a crossing stays a bare marker with no structure.
const crossingBareChance = 0.4

// assignBuildings is phase 5: maps every site archetype to a concrete
// building token. Towns and farms coin-flip between two equivalent
// tokens; crossings may receive nothing.
func assignBuildings(rng *rand.Rand, m *TileMap, sites []Site) {
	for _, s := range sites {
		t := m.Get(s.Coord)
		if t == nil || t.Building != nil {
			continue
		}
		if b, ok := buildingFor(rng, s.Archetype); ok {
			t.Building = &b
		}
	}
}

func buildingFor(rng *rand.Rand, arch Archetype) (Building, bool) {
	switch arch {
	case SiteTown:
		if rng.Float64() < 0.5 {
			return BuildingVillage, true
		}
		return BuildingMarket, true
	case SiteMine:
		return BuildingMine, true
	case SiteFarm:
		if rng.Float64() < 0.5 {
			return BuildingFarmhouse, true
		}
		return BuildingWindmill, true
	case SiteOutpost:
		return BuildingWatchtower, true
	case SiteCrossing:
		if rng.Float64() < crossingBareChance {
			return 0, false
		}
		return BuildingWatchtower, true
	default:
		return 0, false
	}
}
