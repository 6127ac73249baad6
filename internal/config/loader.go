package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/deepline/internal/core"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "deepline.yaml"

// LoadFishing loads Deep Line configuration.
// Search order: customPath -> ~/.arcade/configs/deepline.yaml -> ./configs/deepline.yaml -> embedded default.
// Fields missing from a file keep their default values. The result is validated.
func LoadFishing(customPath string) (FishingConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FishingConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseFishing(data)
		if err != nil {
			return FishingConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(ConfigFileName), filepath.Join("configs", ConfigFileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := ParseFishing(data)
		if err != nil {
			return FishingConfig{}, fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := ParseFishing(defaultFishingYAML)
	if err != nil {
		return DefaultFishingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseFishing decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func ParseFishing(data []byte) (FishingConfig, error) {
	cfg := DefaultFishingConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return FishingConfig{}, fmt.Errorf("failed to parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return FishingConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func (c FishingConfig) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks the geometry, timing, population and catalog tables.
func (c FishingConfig) Validate() error {
	w := c.World
	if w.Width <= 0 || w.Height <= 0 {
		return invalid("world size must be positive, got %.0fx%.0f", w.Width, w.Height)
	}
	if w.EdgeMargin < 0 {
		return invalid("edge_margin must not be negative")
	}
	if x := c.HookX(); x < 0 || x > w.Width {
		return invalid("hook x %.1f outside world width %.1f", x, w.Width)
	}

	h := c.Hook
	if h.MinLineLength < 0 || h.MaxLineLength <= h.MinLineLength {
		return invalid("line length range [%.1f, %.1f] is empty", h.MinLineLength, h.MaxLineLength)
	}
	if h.Radius <= 0 {
		return invalid("hook radius must be positive")
	}

	p := c.Physics
	if p.MaxDepth <= 0 {
		return invalid("max_depth must be positive")
	}
	if p.DivingRate <= 0 || p.RisingRate <= 0 {
		return invalid("diving_rate and rising_rate must be positive")
	}
	if p.SpeedJitterMin <= 0 || p.SpeedJitterMin > 1 {
		return invalid("speed_jitter_min must be in (0, 1], got %.2f", p.SpeedJitterMin)
	}

	ck := c.Clock
	if ck.TickMillis <= 0 || ck.SessionMillis <= 0 {
		return invalid("tick_millis and session_millis must be positive")
	}
	if ck.FeedbackMillis < 0 {
		return invalid("feedback_millis must not be negative")
	}

	if err := c.Population.validate(p.MaxDepth); err != nil {
		return err
	}

	if len(c.Species.Fish) == 0 {
		return invalid("catalog has no fish species")
	}
	for _, s := range c.Species.Fish {
		if err := s.validate(p.MaxDepth); err != nil {
			return err
		}
	}
	for _, s := range c.Species.Hazards {
		if err := s.validate(p.MaxDepth); err != nil {
			return err
		}
	}
	return nil
}

func (p FishingPopulation) validate(maxDepth float64) error {
	if p.FishCount < 0 || p.FishCap < 0 || p.HazardCap < 0 {
		return invalid("population counts must not be negative")
	}
	prev := 0.0
	for i, l := range p.HazardLayers {
		if l.MinDepth < prev || l.MaxDepth <= l.MinDepth || l.MaxDepth > maxDepth {
			return invalid("hazard layer %d [%.0f, %.0f] must be ordered within [0, %.0f]", i, l.MinDepth, l.MaxDepth, maxDepth)
		}
		if l.Quota < 0 {
			return invalid("hazard layer %d quota must not be negative", i)
		}
		if l.RespawnChance < 0 || l.RespawnChance > 1 {
			return invalid("hazard layer %d respawn_chance must be in [0, 1]", i)
		}
		prev = l.MaxDepth
	}
	return nil
}

func (s SpeciesConfig) validate(maxDepth float64) error {
	if s.Name == "" {
		return invalid("species without a name")
	}
	if s.MinDepth < 0 || s.MaxDepth < s.MinDepth || s.MaxDepth > maxDepth {
		return invalid("species %q depth band [%.0f, %.0f] outside [0, %.0f]", s.Name, s.MinDepth, s.MaxDepth, maxDepth)
	}
	if s.Size <= 0 {
		return invalid("species %q size must be positive", s.Name)
	}
	if s.Speed < 0 || s.Value < 0 {
		return invalid("species %q speed and value must not be negative", s.Name)
	}
	if _, err := core.ParseColor(s.Color); err != nil {
		return invalid("species %q: %v", s.Name, err)
	}
	return nil
}
