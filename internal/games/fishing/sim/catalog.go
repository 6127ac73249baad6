// Package sim implements the Deep Line simulation: species catalog,
// population control, per-tick physics, depth-gated collisions and the
// session clock. It is pure logic driven by a single descend flag.
package sim

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/deepline/internal/config"
	"github.com/vovakirdan/deepline/internal/core"
)

// Kind separates things worth catching from things to avoid.
type Kind int

const (
	KindFish Kind = iota
	KindHazard
)

// String returns the storage name of the kind.
func (k Kind) String() string {
	if k == KindHazard {
		return "hazard"
	}
	return "fish"
}

// SpeciesDef describes one fish or hazard species.
// Value is points for fish and a penalty for hazards.
type SpeciesDef struct {
	Name     string
	Kind     Kind
	Color    core.Color
	Value    int
	MinDepth float64 // Inclusive, meters
	MaxDepth float64 // Inclusive, meters
	Size     float64 // Collision radius contribution
	Speed    float64 // Base horizontal speed per tick
}

// InBand reports whether depth lies inside the species depth band.
func (s SpeciesDef) InBand(depth float64) bool {
	return depth >= s.MinDepth && depth <= s.MaxDepth
}

// Overlaps reports whether the band intersects [lo, hi].
func (s SpeciesDef) Overlaps(lo, hi float64) bool {
	return s.MinDepth <= hi && s.MaxDepth >= lo
}

// Catalog is the read-only species table for a session.
type Catalog struct {
	fish    []SpeciesDef
	hazards []SpeciesDef
}

// NewCatalog builds a catalog from config tables.
func NewCatalog(tables config.SpeciesTables) (*Catalog, error) {
	fish, err := buildSpecies(tables.Fish, KindFish)
	if err != nil {
		return nil, err
	}
	hazards, err := buildSpecies(tables.Hazards, KindHazard)
	if err != nil {
		return nil, err
	}
	return &Catalog{fish: fish, hazards: hazards}, nil
}

func buildSpecies(rows []config.SpeciesConfig, kind Kind) ([]SpeciesDef, error) {
	defs := make([]SpeciesDef, 0, len(rows))
	for _, row := range rows {
		color, err := core.ParseColor(row.Color)
		if err != nil {
			return nil, fmt.Errorf("sim: species %q: %w", row.Name, err)
		}
		defs = append(defs, SpeciesDef{
			Name:     row.Name,
			Kind:     kind,
			Color:    color,
			Value:    row.Value,
			MinDepth: row.MinDepth,
			MaxDepth: row.MaxDepth,
			Size:     row.Size,
			Speed:    row.Speed,
		})
	}
	return defs, nil
}

// Fish returns a copy of the fish species.
func (c *Catalog) Fish() []SpeciesDef {
	return slices.Clone(c.fish)
}

// Hazards returns a copy of the hazard species.
func (c *Catalog) Hazards() []SpeciesDef {
	return slices.Clone(c.hazards)
}

// HazardsIn returns hazard species whose band intersects [lo, hi].
func (c *Catalog) HazardsIn(lo, hi float64) []SpeciesDef {
	var out []SpeciesDef
	for _, h := range c.hazards {
		if h.Overlaps(lo, hi) {
			out = append(out, h)
		}
	}
	return out
}

// Lookup finds a species of either kind by name.
func (c *Catalog) Lookup(name string) (SpeciesDef, bool) {
	for _, s := range c.fish {
		if s.Name == name {
			return s, true
		}
	}
	for _, s := range c.hazards {
		if s.Name == name {
			return s, true
		}
	}
	return SpeciesDef{}, false
}
