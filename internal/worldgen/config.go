package worldgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MapConfig holds all generation parameters. Every field has a default;
// YAML files override only the fields they name.
type MapConfig struct {
	Seed    int64   `yaml:"seed"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	HexSize float64 `yaml:"hex_size"`

	BiomeScale     float64 `yaml:"biome_scale"`
	MoistureScale  float64 `yaml:"moisture_scale"`
	ElevationScale float64 `yaml:"elevation_scale"`

	RiverCount          int     `yaml:"river_count"`
	PathDensity         float64 `yaml:"path_density"`          // extra road edges as a fraction of the spanning tree
	BuildingSiteDensity float64 `yaml:"building_site_density"` // target sites per tile

	DesertThreshold    float64 `yaml:"desert_threshold"`
	GrasslandThreshold float64 `yaml:"grassland_threshold"`
	BadlandsElevation  float64 `yaml:"badlands_elevation"`
	RiversideMoisture  float64 `yaml:"riverside_moisture"`
}

// DefaultMapConfig returns the baseline configuration: a mid-sized map
// with a handful of rivers and sparse settlements.
func DefaultMapConfig() MapConfig {
	return MapConfig{
		Seed:    1,
		Width:   40,
		Height:  30,
		HexSize: 1.0,

		BiomeScale:     0.08,
		MoistureScale:  0.06,
		ElevationScale: 0.05,

		RiverCount:          6,
		PathDensity:         0.3,
		BuildingSiteDensity: 0.02,

		DesertThreshold:    0.35,
		GrasslandThreshold: 0.65,
		BadlandsElevation:  0.72,
		RiversideMoisture:  0.75,
	}
}

// LoadConfig reads a YAML file over the defaults, so partial files keep
// default values for every field they omit.
func LoadConfig(path string) (MapConfig, error) {
	cfg := DefaultMapConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects structurally invalid configurations. Generation-time
// shortfalls (fewer rivers or settlements than requested) are graceful
// degradations, not config errors; only parameters that make generation
// impossible fail here.
func (cfg MapConfig) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("map dimensions must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.HexSize <= 0 {
		return fmt.Errorf("hex size must be positive, got %g", cfg.HexSize)
	}
	if cfg.RiverCount < 0 {
		return fmt.Errorf("river count must be non-negative, got %d", cfg.RiverCount)
	}
	if cfg.PathDensity < 0 {
		return fmt.Errorf("path density must be non-negative, got %g", cfg.PathDensity)
	}
	if cfg.BuildingSiteDensity < 0 {
		return fmt.Errorf("building site density must be non-negative, got %g", cfg.BuildingSiteDensity)
	}
	// Thresholds outside (0,1) empty a site archetype's candidate space
	// entirely: riverside moisture can never exceed 1, elevation never
	// drops below 0.
	if cfg.RiversideMoisture <= 0 || cfg.RiversideMoisture > 1 {
		return fmt.Errorf("riverside moisture threshold must be in (0,1], got %g", cfg.RiversideMoisture)
	}
	if cfg.BadlandsElevation <= 0 || cfg.BadlandsElevation >= 1 {
		return fmt.Errorf("badlands elevation threshold must be in (0,1), got %g", cfg.BadlandsElevation)
	}
	if cfg.DesertThreshold < 0 || cfg.DesertThreshold > 1 {
		return fmt.Errorf("desert threshold must be in [0,1], got %g", cfg.DesertThreshold)
	}
	if cfg.GrasslandThreshold < 0 || cfg.GrasslandThreshold > 1 {
		return fmt.Errorf("grassland threshold must be in [0,1], got %g", cfg.GrasslandThreshold)
	}
	return nil
}
