// Command hexland generates a deterministic hex-world map from a seed,
// prints a summary, and optionally persists the snapshot to SQLite.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tannersley/hexland/internal/snapshot"
	"github.com/tannersley/hexland/internal/worldgen"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (partial override of defaults)")
	seed := flag.Int64("seed", 0, "generation seed (overrides config when non-zero)")
	width := flag.Int("width", 0, "map width in tiles (overrides config when non-zero)")
	height := flag.Int("height", 0, "map height in tiles (overrides config when non-zero)")
	dbPath := flag.String("db", "", "SQLite path to persist the snapshot (optional)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg := worldgen.DefaultMapConfig()
	if *configPath != "" {
		var err error
		cfg, err = worldgen.LoadConfig(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *width != 0 {
		cfg.Width = *width
	}
	if *height != 0 {
		cfg.Height = *height
	}

	gen, err := worldgen.New(cfg)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("generating map",
		"seed", cfg.Seed,
		"width", cfg.Width,
		"height", cfg.Height,
	)

	start := time.Now()
	result := gen.Generate()
	elapsed := time.Since(start)

	counts := result.Map.BiomeCounts()
	biomes := make([]worldgen.Biome, 0, len(counts))
	for b := range counts {
		biomes = append(biomes, b)
	}
	sort.Slice(biomes, func(i, j int) bool { return biomes[i] < biomes[j] })
	for _, b := range biomes {
		slog.Info("biome", "name", worldgen.BiomeName(b), "tiles", counts[b])
	}

	slog.Info("map ready",
		"tiles", humanize.Comma(int64(result.Map.TileCount())),
		"rivers", result.Rivers,
		"sites", len(result.Sites),
		"road_edges", result.Roads,
		"elapsed", elapsed,
	)

	if *dbPath != "" {
		store, err := snapshot.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open snapshot store", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		id, err := store.Save(cfg, result.Map)
		if err != nil {
			slog.Error("failed to save snapshot", "error", err)
			os.Exit(1)
		}
		slog.Info("snapshot saved", "id", id, "path", *dbPath)
	}

	fmt.Printf("Generated %s tiles (seed %d): %d rivers, %d settlement sites, %d road edges in %s.\n",
		humanize.Comma(int64(result.Map.TileCount())), cfg.Seed,
		result.Rivers, len(result.Sites), result.Roads, elapsed.Round(time.Millisecond))
}
