package worldgen

import (
	"log/slog"

	"github.com/tannersley/hexland/internal/noise"
)

// Generator runs the five generation phases over one shared tile arena.
// Each Generate call builds a fresh arena and hands it to the caller as
// an owned snapshot; the generator keeps no reference to returned maps.
// Not safe for concurrent Generate calls on one instance; distinct
// instances are fully independent.
type Generator struct {
	cfg MapConfig
	src *noise.Source
}

// Result is a completed generation: the tile map snapshot plus the sites
// and phase statistics produced along the way.
type Result struct {
	Map    *TileMap
	Sites  []Site
	Rivers int
	Roads  int
}

// New validates the configuration and builds a generator for it.
func New(cfg MapConfig) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg: cfg,
		src: noise.New(cfg.Seed),
	}, nil
}

// Config returns the active configuration.
func (g *Generator) Config() MapConfig {
	return g.cfg
}

// Reseed replaces the noise streams and config seed. Maps returned by
// earlier Generate calls are unaffected; a new Generate call produces
// the map for the new seed.
func (g *Generator) Reseed(seed int64) {
	g.cfg.Seed = seed
	g.src.Reseed(seed)
}

// Generate runs the phases in strict order: terrain, hydrology,
// settlements, roads (with the post-road crossing scan), buildings.
// Each phase reads only fields the prior phases populated.
func (g *Generator) Generate() *Result {
	m := NewTileMap(g.cfg.Width, g.cfg.Height)

	synthesizeTerrain(g.cfg, g.src, m)
	rivers := simulateHydrology(g.cfg, g.src, m)
	sites := planSettlements(g.cfg, g.src, m)
	roads := buildRoads(g.cfg, g.src, m, sites)
	sites = placeCrossings(g.cfg, g.src.Crossings(), m, sites)
	assignBuildings(g.src.Buildings(), m, sites)

	slog.Debug("map generated",
		"seed", g.cfg.Seed,
		"tiles", m.TileCount(),
		"rivers", rivers,
		"sites", len(sites),
		"roads", roads,
	)

	return &Result{
		Map:    m,
		Sites:  sites,
		Rivers: rivers,
		Roads:  roads,
	}
}
