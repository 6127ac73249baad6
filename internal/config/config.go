// Package config provides YAML-based game configuration loading and
// validation for the arcade platform.
package config

import "errors"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// FishingConfig contains all configuration for the Deep Line game.
// Coordinates are world pixels; depths are meters.
type FishingConfig struct {
	World      FishingWorld      `yaml:"world"`
	Hook       FishingHook       `yaml:"hook"`
	Physics    FishingPhysics    `yaml:"physics"`
	Clock      FishingClock      `yaml:"clock"`
	Population FishingPopulation `yaml:"population"`
	Species    SpeciesTables     `yaml:"species"`
}

// FishingWorld defines the logical play field.
type FishingWorld struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	EdgeMargin float64 `yaml:"edge_margin"` // Off-screen band entities wrap through
}

// FishingHook defines the line and hook geometry.
type FishingHook struct {
	X             float64 `yaml:"x"`        // 0 = center of the world
	OriginY       float64 `yaml:"origin_y"` // Where the line leaves the rod
	MinLineLength float64 `yaml:"min_line_length"`
	MaxLineLength float64 `yaml:"max_line_length"`
	Radius        float64 `yaml:"radius"`
}

// FishingPhysics defines depth movement and entity speed parameters.
type FishingPhysics struct {
	MaxDepth       float64 `yaml:"max_depth"`
	DivingRate     float64 `yaml:"diving_rate"`      // Meters per tick while descending
	RisingRate     float64 `yaml:"rising_rate"`      // Meters per tick while released
	SpeedJitterMin float64 `yaml:"speed_jitter_min"` // Lowest fraction of base speed
}

// FishingClock defines session timing in milliseconds.
type FishingClock struct {
	TickMillis     int `yaml:"tick_millis"`
	SessionMillis  int `yaml:"session_millis"`
	FeedbackMillis int `yaml:"feedback_millis"`
}

// FishingPopulation defines caps and the hazard depth-layer quota table.
type FishingPopulation struct {
	FishCount    int           `yaml:"fish_count"`
	FishCap      int           `yaml:"fish_cap"`
	HazardCap    int           `yaml:"hazard_cap"`
	HazardLayers []HazardLayer `yaml:"hazard_layers"` // Ordered shallow to deep
}

// HazardLayer is one row of the hazard quota table.
type HazardLayer struct {
	MinDepth      float64 `yaml:"min_depth"`
	MaxDepth      float64 `yaml:"max_depth"`
	Quota         int     `yaml:"quota"`
	RespawnChance float64 `yaml:"respawn_chance"` // Probability this layer is picked when it has room
}

// SpeciesTables holds the fish and hazard catalogs.
type SpeciesTables struct {
	Fish    []SpeciesConfig `yaml:"fish"`
	Hazards []SpeciesConfig `yaml:"hazards"`
}

// SpeciesConfig defines one fish or hazard species.
// Value is points for fish and a penalty for hazards.
type SpeciesConfig struct {
	Name     string  `yaml:"name"`
	Color    string  `yaml:"color"`
	Value    int     `yaml:"value"`
	MinDepth float64 `yaml:"min_depth"`
	MaxDepth float64 `yaml:"max_depth"`
	Size     float64 `yaml:"size"`
	Speed    float64 `yaml:"speed"`
}

// HookX returns the resolved horizontal hook position.
func (c FishingConfig) HookX() float64 {
	if c.Hook.X == 0 {
		return c.World.Width / 2
	}
	return c.Hook.X
}

// QuotaTotal returns the sum of all layer quotas.
func (p FishingPopulation) QuotaTotal() int {
	total := 0
	for _, l := range p.HazardLayers {
		total += l.Quota
	}
	return total
}
