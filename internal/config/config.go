// Package config handles block world configuration loading and management.
package config

import (
	"github.com/deltasampler/block-world/internal/meshing"
	"github.com/deltasampler/block-world/internal/world"
)

// Config holds all settings.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Atlas    AtlasConfig    `yaml:"atlas"`
	Meshing  MeshingConfig  `yaml:"meshing"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WorldConfig selects the generator and the streaming window.
type WorldConfig struct {
	Seed            int64   `yaml:"seed"`
	Preset          string  `yaml:"preset"`
	VoxelSize       float32 `yaml:"voxel_size"`
	Radius          int     `yaml:"radius"` // in chunks
	EvictMargin     int     `yaml:"evict_margin"`
	MinChunkY       int     `yaml:"min_chunk_y"`
	MaxChunkY       int     `yaml:"max_chunk_y"`
	MaxLoadsPerTick int     `yaml:"max_loads_per_tick"`
}

// TerrainConfig shapes the terrain preset's height field.
type TerrainConfig struct {
	Scale           float64 `yaml:"scale"`
	Octaves         int     `yaml:"octaves"`
	Persistence     float64 `yaml:"persistence"`
	Lacunarity      float64 `yaml:"lacunarity"`
	BaseHeight      int     `yaml:"base_height"`
	HeightVariation float64 `yaml:"height_variation"`
	WaterLevel      int     `yaml:"water_level"`
	DirtDepth       int     `yaml:"dirt_depth"`
	Basis           string  `yaml:"basis"` // simplex or value
}

// AtlasConfig describes the block texture atlas.
type AtlasConfig struct {
	Size     int    `yaml:"size"`
	CellSize int    `yaml:"cell_size"`
	Padding  int    `yaml:"padding"`
	Image    string `yaml:"image"` // PNG path; empty draws a placeholder
}

// MeshingConfig holds mesh extraction settings.
type MeshingConfig struct {
	CullChunkSeams bool `yaml:"cull_chunk_seams"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	VSync    bool    `yaml:"vsync"`
	FPSLimit int     `yaml:"fps_limit"` // 0 = uncapped; ignored with vsync
	FOV      float32 `yaml:"fov"`       // degrees
	Headless bool    `yaml:"headless"`
	Ticks    int     `yaml:"ticks"` // headless tick count
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	stream := world.DefaultStreamSettings()
	terrain := world.DefaultTerrainSettings()
	return &Config{
		World: WorldConfig{
			Seed:            0,
			Preset:          world.PresetTerrain,
			VoxelSize:       stream.VoxelSize,
			Radius:          stream.Radius,
			EvictMargin:     stream.EvictMargin,
			MinChunkY:       stream.MinY,
			MaxChunkY:       stream.MaxY,
			MaxLoadsPerTick: stream.MaxLoadsPerTick,
		},
		Terrain: TerrainConfig{
			Scale:           terrain.Scale,
			Octaves:         terrain.Octaves,
			Persistence:     terrain.Persistence,
			Lacunarity:      terrain.Lacunarity,
			BaseHeight:      terrain.BaseHeight,
			HeightVariation: terrain.HeightVariation,
			WaterLevel:      terrain.WaterLevel,
			DirtDepth:       terrain.DirtDepth,
			Basis:           string(terrain.Basis),
		},
		Atlas: AtlasConfig{
			Size:     meshing.DefaultAtlasSize,
			CellSize: meshing.DefaultAtlasCell,
			Padding:  meshing.DefaultAtlasPadding,
		},
		Meshing: MeshingConfig{
			CullChunkSeams: false,
		},
		Graphics: GraphicsConfig{
			Width:    1280,
			Height:   720,
			VSync:    true,
			FPSLimit: 0,
			FOV:      60,
			Ticks:    120,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// StreamSettings converts the world section for the chunk streamer.
func (c *Config) StreamSettings() world.StreamSettings {
	return world.StreamSettings{
		Radius:          c.World.Radius,
		EvictMargin:     c.World.EvictMargin,
		MinY:            c.World.MinChunkY,
		MaxY:            c.World.MaxChunkY,
		MaxLoadsPerTick: c.World.MaxLoadsPerTick,
		VoxelSize:       c.World.VoxelSize,
	}
}

// TerrainSettings converts the terrain section for the terrain generator.
func (c *Config) TerrainSettings() world.TerrainSettings {
	return world.TerrainSettings{
		Scale:           c.Terrain.Scale,
		Octaves:         c.Terrain.Octaves,
		Persistence:     c.Terrain.Persistence,
		Lacunarity:      c.Terrain.Lacunarity,
		BaseHeight:      c.Terrain.BaseHeight,
		HeightVariation: c.Terrain.HeightVariation,
		WaterLevel:      c.Terrain.WaterLevel,
		DirtDepth:       c.Terrain.DirtDepth,
		Basis:           world.Basis(c.Terrain.Basis),
	}
}

// NewAtlas builds the atlas description from the atlas section.
func (c *Config) NewAtlas() (meshing.Atlas, error) {
	return meshing.NewAtlas(c.Atlas.Size, c.Atlas.CellSize, c.Atlas.Padding)
}

// NewGenerator builds the configured preset.
func (c *Config) NewGenerator() (world.Generator, error) {
	return world.NewPreset(c.World.Preset, c.World.Seed, c.TerrainSettings())
}
