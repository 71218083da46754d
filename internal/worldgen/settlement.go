package worldgen

import (
	"log/slog"
	"math/rand"

	"github.com/tannersley/hexland/internal/hexmath"
	"github.com/tannersley/hexland/internal/noise"
)

const (
	// Minimum hex distance between any two placed sites, regardless of
	// archetype.
	siteMinSpacing = 4
	// Crossings use a smaller exclusion radius since they sit on river
	// tiles the other archetypes avoid.
	crossingMinSpacing = 2
	// Chance for a river tile to host a crossing even without an
	// adjacent road.
	crossingChance = 0.05

	// Candidate thresholds for the archetype buckets.
	townElevationCeil  = 0.5
	mineElevationFloor = 0.6
	farmMoistureFloor  = 0.35
	farmMoistureCeil   = 0.75
)

// Site is a placed settlement location. Assigned once, immutable after.
type Site struct {
	Coord     hexmath.Hex `json:"coord"`
	Archetype Archetype   `json:"archetype"`
}

// planSettlements is phase 3: buckets tiles into candidate lists per
// archetype, then greedily places sites under the global minimum-spacing
// rule. Quotas are targets, not guarantees; candidate exhaustion is a
// normal outcome.
func planSettlements(cfg MapConfig, src *noise.Source, m *TileMap) []Site {
	var townCands, mineCands, farmCands []hexmath.Hex

	// Buckets are non-exclusive: one tile can qualify for several
	// archetypes but hosts at most one site.
	for _, c := range m.SortedCoords() {
		t := m.Get(c)
		if t.Biome == BiomeRiverside && t.Elevation < townElevationCeil && t.River == nil {
			townCands = append(townCands, c)
		}
		if t.Biome == BiomeBadlands && t.Terrain.IsStoneFamily() && t.Elevation >= mineElevationFloor {
			mineCands = append(mineCands, c)
		}
		if t.Biome == BiomeGrassland && t.Moisture >= farmMoistureFloor && t.Moisture <= farmMoistureCeil {
			farmCands = append(farmCands, c)
		}
	}

	total := int(float64(cfg.Width*cfg.Height) * cfg.BuildingSiteDensity)
	townQuota := total * 30 / 100
	mineQuota := total * 30 / 100
	farmQuota := total - townQuota - mineQuota

	rng := src.Settlements()
	var sites []Site
	sites = placeArchetype(rng, m, sites, townCands, SiteTown, townQuota)
	sites = placeArchetype(rng, m, sites, mineCands, SiteMine, mineQuota)
	sites = placeArchetype(rng, m, sites, farmCands, SiteFarm, farmQuota)

	if len(sites) < total {
		slog.Debug("settlement quota unmet", "placed", len(sites), "target", total)
	}
	return sites
}

// placeArchetype shuffles the candidate list and greedily accepts
// candidates far enough from every already-placed site of any archetype.
func placeArchetype(rng *rand.Rand, m *TileMap, sites []Site, candidates []hexmath.Hex, arch Archetype, quota int) []Site {
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	placed := 0
	for _, c := range candidates {
		if placed >= quota {
			break
		}
		if tooClose(c, sites, siteMinSpacing) {
			continue
		}
		t := m.Get(c)
		if t.Site != nil {
			continue
		}
		arch := arch
		t.Site = &arch
		sites = append(sites, Site{Coord: c, Archetype: arch})
		placed++
	}
	return sites
}

// placeCrossings scans river tiles for crossing outposts: an unclaimed
// river tile adjacent to a road, or chosen by an independent coin flip,
// becomes a crossing when no placed site sits within the smaller
// crossing radius. Runs after the road network so road adjacency is
// meaningful.
func placeCrossings(cfg MapConfig, rng *rand.Rand, m *TileMap, sites []Site) []Site {
	for _, c := range m.SortedCoords() {
		t := m.Get(c)
		if t.River == nil || t.Site != nil {
			continue
		}

		nearRoad := false
		for _, nb := range c.Neighbors() {
			if nt := m.Get(nb); nt != nil && nt.Path != nil {
				nearRoad = true
				break
			}
		}
		// The coin flip draws for every eligible tile so the stream
		// stays aligned regardless of road adjacency.
		lucky := rng.Float64() < crossingChance
		if !nearRoad && !lucky {
			continue
		}
		if tooClose(c, sites, crossingMinSpacing) {
			continue
		}

		arch := SiteCrossing
		t.Site = &arch
		sites = append(sites, Site{Coord: c, Archetype: SiteCrossing})
	}
	return sites
}

func tooClose(coord hexmath.Hex, sites []Site, minDist int) bool {
	for _, s := range sites {
		if hexmath.Distance(coord, s.Coord) < minDist {
			return true
		}
	}
	return false
}
