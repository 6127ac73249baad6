package config

import (
	_ "embed"
)

//go:embed defaults/deepline.yaml
var defaultFishingYAML []byte

// DefaultFishingConfig returns the built-in Deep Line configuration.
// It mirrors defaults/deepline.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFishingConfig() FishingConfig {
	return FishingConfig{
		World: FishingWorld{
			Width:      800,
			Height:     600,
			EdgeMargin: 50,
		},
		Hook: FishingHook{
			X:             0,
			OriginY:       50,
			MinLineLength: 50,
			MaxLineLength: 550,
			Radius:        8,
		},
		Physics: FishingPhysics{
			MaxDepth:       500,
			DivingRate:     2.0,
			RisingRate:     1.5,
			SpeedJitterMin: 0.5,
		},
		Clock: FishingClock{
			TickMillis:     16,    // 60Hz
			SessionMillis:  30000, // 30 seconds
			FeedbackMillis: 2000,
		},
		Population: FishingPopulation{
			FishCount: 20,
			FishCap:   20,
			HazardCap: 10,
			HazardLayers: []HazardLayer{
				{MinDepth: 0, MaxDepth: 125, Quota: 1, RespawnChance: 1.0},
				{MinDepth: 125, MaxDepth: 250, Quota: 2, RespawnChance: 0.4},
				{MinDepth: 250, MaxDepth: 375, Quota: 3, RespawnChance: 0.5},
				{MinDepth: 375, MaxDepth: 500, Quota: 4, RespawnChance: 0.6},
			},
		},
		Species: SpeciesTables{
			Fish: []SpeciesConfig{
				{Name: "Minnow", Color: "bright_red", Value: 10, MinDepth: 0, MaxDepth: 50, Size: 15, Speed: 1.0},
				{Name: "Tropical Fish", Color: "cyan", Value: 25, MinDepth: 50, MaxDepth: 150, Size: 20, Speed: 1.2},
				{Name: "Tuna", Color: "bright_blue", Value: 50, MinDepth: 100, MaxDepth: 300, Size: 25, Speed: 1.5},
				{Name: "Shark", Color: "green", Value: 100, MinDepth: 200, MaxDepth: 400, Size: 30, Speed: 2.0},
				{Name: "Anglerfish", Color: "bright_yellow", Value: 200, MinDepth: 300, MaxDepth: 500, Size: 35, Speed: 1.8},
			},
			Hazards: []SpeciesConfig{
				{Name: "Sea Mine", Color: "red", Value: 50, MinDepth: 100, MaxDepth: 400, Size: 20, Speed: 0.5},
				{Name: "Ghost Net", Color: "gray", Value: 30, MinDepth: 50, MaxDepth: 300, Size: 25, Speed: 0.3},
				{Name: "Jellyfish", Color: "orange", Value: 20, MinDepth: 0, MaxDepth: 200, Size: 18, Speed: 0.8},
				{Name: "Wreck Debris", Color: "magenta", Value: 40, MinDepth: 200, MaxDepth: 500, Size: 22, Speed: 0.2},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFishingYAML
}
