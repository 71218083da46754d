// Package worldgen synthesizes complete hex-world maps from a seed:
// terrain and biomes from layered noise, rivers by steepest-descent flow,
// settlement sites under spacing constraints, and a pathfinding-resolved
// road network. Output is byte-for-byte reproducible from the config.
package worldgen

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/tannersley/hexland/internal/hexmath"
)

// Biome is the thematic terrain category of a tile.
type Biome uint8

const (
	BiomeDesert Biome = iota
	BiomeGrassland
	BiomeBadlands
	BiomeRiverside
)

// BiomeName returns a human-readable name for a biome.
func BiomeName(b Biome) string {
	switch b {
	case BiomeDesert:
		return "Desert"
	case BiomeGrassland:
		return "Grassland"
	case BiomeBadlands:
		return "Badlands"
	case BiomeRiverside:
		return "Riverside"
	default:
		return "Unknown"
	}
}

// Terrain is the concrete surface variant within a biome.
type Terrain uint8

const (
	TerrainSand     Terrain = iota // Desert floor
	TerrainDunes                   // Rolling desert dunes
	TerrainGrass                   // Open grassland
	TerrainForest                  // Wooded grassland
	TerrainHills                   // Elevated grassland
	TerrainStone                   // Badlands floor
	TerrainRock                    // Broken rock fields
	TerrainMountain                // Badlands peaks
	TerrainWater                   // River channel
	TerrainDirt                    // Bare walkable ground (road surface)
)

// TerrainName returns a human-readable name for a terrain variant.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainSand:
		return "Sand"
	case TerrainDunes:
		return "Dunes"
	case TerrainGrass:
		return "Grass"
	case TerrainForest:
		return "Forest"
	case TerrainHills:
		return "Hills"
	case TerrainStone:
		return "Stone"
	case TerrainRock:
		return "Rock"
	case TerrainMountain:
		return "Mountain"
	case TerrainWater:
		return "Water"
	case TerrainDirt:
		return "Dirt"
	default:
		return "Unknown"
	}
}

// IsStoneFamily reports whether t is a stone-family surface. Roads leave
// these unmodified when stamping.
func (t Terrain) IsStoneFamily() bool {
	return t == TerrainStone || t == TerrainRock || t == TerrainMountain
}

// Shape describes how a river or road segment crosses a tile.
type Shape uint8

const (
	ShapeStraight Shape = iota
	ShapeCorner
	ShapeCrossing
)

// ShapeName returns a human-readable name for a segment shape.
func ShapeName(s Shape) string {
	switch s {
	case ShapeStraight:
		return "Straight"
	case ShapeCorner:
		return "Corner"
	case ShapeCrossing:
		return "Crossing"
	default:
		return "Unknown"
	}
}

// Archetype categorizes a settlement site.
type Archetype uint8

const (
	SiteTown Archetype = iota
	SiteMine
	SiteFarm
	SiteOutpost
	SiteCrossing
)

// ArchetypeName returns a human-readable name for a site archetype.
func ArchetypeName(a Archetype) string {
	switch a {
	case SiteTown:
		return "Town"
	case SiteMine:
		return "Mine"
	case SiteFarm:
		return "Farm"
	case SiteOutpost:
		return "Outpost"
	case SiteCrossing:
		return "Crossing"
	default:
		return "Unknown"
	}
}

// Building is a concrete structure token placed on a settlement site.
type Building uint8

const (
	BuildingVillage Building = iota
	BuildingMarket
	BuildingMine
	BuildingFarmhouse
	BuildingWindmill
	BuildingWatchtower
)

// Segment is a river or road stamp on a tile: the shape plus a rotation
// expressed as a direction index into hexmath.Directions.
type Segment struct {
	Shape    Shape `json:"shape"`
	Rotation int   `json:"rotation"`
}

// Tile is one record of the generated map. Created during terrain
// synthesis, then mutated in place by the later phases; never deleted.
type Tile struct {
	Coord     hexmath.Hex `json:"coord"`
	Biome     Biome       `json:"biome"`
	Terrain   Terrain     `json:"terrain"`
	Elevation float64     `json:"elevation"` // 0.0 to 1.0
	Moisture  float64     `json:"moisture"`  // 0.0 to 1.0

	River    *Segment   `json:"river,omitempty"`
	Path     *Segment   `json:"path,omitempty"`
	Site     *Archetype `json:"site,omitempty"`
	Building *Building  `json:"building,omitempty"`
}

// TileMap is the shared tile arena mutated across generation phases and
// returned to callers as a read-only snapshot. Coordinates map to a
// width x height rectangle through odd-r offset rows.
type TileMap struct {
	Width  int                   `json:"width"`
	Height int                   `json:"height"`
	Tiles  map[hexmath.Hex]*Tile `json:"-"`
}

// NewTileMap creates an empty arena for the given dimensions.
func NewTileMap(width, height int) *TileMap {
	return &TileMap{
		Width:  width,
		Height: height,
		Tiles:  make(map[hexmath.Hex]*Tile, width*height),
	}
}

// CoordAt returns the axial coordinate of the tile at offset (col, row).
func CoordAt(col, row int) hexmath.Hex {
	return hexmath.Hex{Q: col - (row-(row&1))/2, R: row}
}

// Offset returns the (col, row) offset position of an axial coordinate.
func Offset(h hexmath.Hex) (col, row int) {
	return h.Q + (h.R-(h.R&1))/2, h.R
}

// Get returns the tile at the given coordinate, or nil if out of bounds.
func (m *TileMap) Get(h hexmath.Hex) *Tile {
	return m.Tiles[h]
}

// InBounds reports whether the coordinate lies inside the map rectangle.
func (m *TileMap) InBounds(h hexmath.Hex) bool {
	col, row := Offset(h)
	return col >= 0 && col < m.Width && row >= 0 && row < m.Height
}

// OnBoundary reports whether the coordinate lies on the map rectangle's
// outermost ring.
func (m *TileMap) OnBoundary(h hexmath.Hex) bool {
	col, row := Offset(h)
	return col == 0 || col == m.Width-1 || row == 0 || row == m.Height-1
}

// SortedCoords returns every tile coordinate in a stable row-major order.
// Generation phases iterate through this so Go map ordering never leaks
// into the output.
func (m *TileMap) SortedCoords() []hexmath.Hex {
	coords := maps.Keys(m.Tiles)
	slices.SortFunc(coords, func(a, b hexmath.Hex) int {
		if a.R != b.R {
			return a.R - b.R
		}
		return a.Q - b.Q
	})
	return coords
}

// KeyedTiles returns the map under its external contract: canonical
// "q,r" string keys to tile records. Shares the underlying tiles.
func (m *TileMap) KeyedTiles() map[string]*Tile {
	out := make(map[string]*Tile, len(m.Tiles))
	for h, t := range m.Tiles {
		out[h.Key()] = t
	}
	return out
}

// TileCount returns the number of tiles in the map.
func (m *TileMap) TileCount() int {
	return len(m.Tiles)
}

// BiomeCounts returns the biome distribution of the map.
func (m *TileMap) BiomeCounts() map[Biome]int {
	counts := make(map[Biome]int)
	for _, t := range m.Tiles {
		counts[t.Biome]++
	}
	return counts
}
