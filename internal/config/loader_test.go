package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseFishing(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseFishing(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultFishingConfig()) {
		t.Errorf("embedded YAML drifted from DefaultFishingConfig():\n%+v\nvs\n%+v", cfg, DefaultFishingConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultFishingConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestHookXDefaultsToCenter(t *testing.T) {
	cfg := DefaultFishingConfig()
	if cfg.HookX() != 400 {
		t.Errorf("HookX() = %f, expected 400", cfg.HookX())
	}

	cfg.Hook.X = 120
	if cfg.HookX() != 120 {
		t.Errorf("HookX() = %f, expected 120", cfg.HookX())
	}
}

func TestQuotaTotal(t *testing.T) {
	if got := DefaultFishingConfig().Population.QuotaTotal(); got != 10 {
		t.Errorf("QuotaTotal() = %d, expected 10", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FishingConfig)
	}{
		{"zero width", func(c *FishingConfig) { c.World.Width = 0 }},
		{"negative margin", func(c *FishingConfig) { c.World.EdgeMargin = -1 }},
		{"hook outside world", func(c *FishingConfig) { c.Hook.X = 900 }},
		{"empty line range", func(c *FishingConfig) { c.Hook.MaxLineLength = c.Hook.MinLineLength }},
		{"zero hook radius", func(c *FishingConfig) { c.Hook.Radius = 0 }},
		{"zero max depth", func(c *FishingConfig) { c.Physics.MaxDepth = 0 }},
		{"zero rising rate", func(c *FishingConfig) { c.Physics.RisingRate = 0 }},
		{"jitter above one", func(c *FishingConfig) { c.Physics.SpeedJitterMin = 1.5 }},
		{"zero tick", func(c *FishingConfig) { c.Clock.TickMillis = 0 }},
		{"negative fish cap", func(c *FishingConfig) { c.Population.FishCap = -1 }},
		{"unordered layers", func(c *FishingConfig) {
			c.Population.HazardLayers[1], c.Population.HazardLayers[2] = c.Population.HazardLayers[2], c.Population.HazardLayers[1]
		}},
		{"layer deeper than max", func(c *FishingConfig) { c.Population.HazardLayers[3].MaxDepth = 600 }},
		{"chance above one", func(c *FishingConfig) { c.Population.HazardLayers[0].RespawnChance = 2 }},
		{"no fish", func(c *FishingConfig) { c.Species.Fish = nil }},
		{"inverted band", func(c *FishingConfig) { c.Species.Fish[0].MinDepth = 60 }},
		{"unknown color", func(c *FishingConfig) { c.Species.Hazards[0].Color = "chartreuse" }},
		{"zero size", func(c *FishingConfig) { c.Species.Hazards[1].Size = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFishingConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadFishingCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  diving_rate: 3.5\nclock:\n  session_millis: 10000\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFishing(path)
	if err != nil {
		t.Fatalf("LoadFishing() failed: %v", err)
	}

	if cfg.Physics.DivingRate != 3.5 {
		t.Errorf("DivingRate = %f, expected 3.5", cfg.Physics.DivingRate)
	}
	if cfg.Clock.SessionMillis != 10000 {
		t.Errorf("SessionMillis = %d, expected 10000", cfg.Clock.SessionMillis)
	}
	// Untouched fields keep defaults
	if cfg.Physics.RisingRate != 1.5 {
		t.Errorf("RisingRate = %f, expected default 1.5", cfg.Physics.RisingRate)
	}
	if len(cfg.Species.Fish) != 5 {
		t.Errorf("expected default fish catalog, got %d species", len(cfg.Species.Fish))
	}
}

func TestLoadFishingErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFishing(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	typo := filepath.Join(dir, "typo.yaml")
	if err := os.WriteFile(typo, []byte("physics:\n  divng_rate: 3\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadFishing(typo); err == nil {
		t.Error("unknown key should be rejected")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics:\n  max_depth: -5\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := LoadFishing(bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid values should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestParseFishingEmptyDocument(t *testing.T) {
	cfg, err := ParseFishing(nil)
	if err != nil {
		t.Fatalf("empty document should yield defaults: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFishingConfig()) {
		t.Error("empty document should yield defaults")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultFishingConfig()
	cfg.Population.FishCap = 12

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	back, err := ParseFishing(data)
	if err != nil {
		t.Fatalf("ParseFishing() failed: %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Error("config should survive Marshal/ParseFishing")
	}
}
