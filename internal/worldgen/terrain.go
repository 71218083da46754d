package worldgen

import (
	"math/rand"

	"github.com/tannersley/hexland/internal/hexmath"
	"github.com/tannersley/hexland/internal/noise"
)

// Moisture below this, combined with a low biome value, classifies desert.
const desertMoistureCeil = 0.4

// Hills and mountains only appear above these elevations; lower rolls
// fall back to the biome's flat variant.
const (
	hillsElevationFloor    = 0.55
	mountainElevationFloor = 0.8
)

// synthesizeTerrain is phase 1: creates one tile per in-bounds coordinate
// with biome, terrain variant, elevation, and moisture. River, path, and
// building fields stay unset for later phases.
func synthesizeTerrain(cfg MapConfig, src *noise.Source, m *TileMap) {
	rng := src.Variants()

	for row := 0; row < cfg.Height; row++ {
		for col := 0; col < cfg.Width; col++ {
			coord := CoordAt(col, row)
			wx, wy := hexmath.ToWorld(coord, cfg.HexSize)

			biomeVal := src.Sample(noise.StreamBiome, wx, wy, cfg.BiomeScale)
			moisture := src.Sample(noise.StreamMoisture, wx, wy, cfg.MoistureScale)
			elevation := src.Sample(noise.StreamElevation, wx, wy, cfg.ElevationScale)

			biome := classifyBiome(cfg, biomeVal, moisture, elevation)

			m.Tiles[coord] = &Tile{
				Coord:     coord,
				Biome:     biome,
				Terrain:   rollVariant(rng, biome, elevation),
				Elevation: elevation,
				Moisture:  moisture,
			}
		}
	}
}

// classifyBiome applies the threshold ladder in fixed order: riverside
// moisture wins first, then badlands elevation, then dry low biome values
// become desert, mid values grassland. Desert is the explicit fallback so
// every input combination lands in a declared biome.
func classifyBiome(cfg MapConfig, biomeVal, moisture, elevation float64) Biome {
	if moisture >= cfg.RiversideMoisture {
		return BiomeRiverside
	}
	if elevation >= cfg.BadlandsElevation {
		return BiomeBadlands
	}
	if biomeVal < cfg.DesertThreshold && moisture < desertMoistureCeil {
		return BiomeDesert
	}
	if biomeVal < cfg.GrasslandThreshold {
		return BiomeGrassland
	}
	return BiomeDesert
}

// rollVariant selects a concrete terrain within the biome via a weighted
// PRNG roll. Elevation gates hills and mountains.
func rollVariant(rng *rand.Rand, biome Biome, elevation float64) Terrain {
	roll := rng.Float64()

	switch biome {
	case BiomeDesert:
		if roll < 0.7 {
			return TerrainSand
		}
		return TerrainDunes

	case BiomeGrassland:
		switch {
		case roll < 0.6:
			return TerrainGrass
		case roll < 0.85:
			return TerrainForest
		default:
			if elevation >= hillsElevationFloor {
				return TerrainHills
			}
			return TerrainGrass
		}

	case BiomeBadlands:
		switch {
		case roll < 0.5:
			return TerrainStone
		case roll < 0.8:
			return TerrainRock
		default:
			if elevation >= mountainElevationFloor {
				return TerrainMountain
			}
			return TerrainRock
		}

	case BiomeRiverside:
		if roll < 0.75 {
			return TerrainGrass
		}
		return TerrainForest

	default:
		return TerrainSand
	}
}
