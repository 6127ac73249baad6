package sim

import (
	"math/rand"

	"github.com/vovakirdan/deepline/internal/config"
)

// Spawner creates fish and hazards within population caps and layer quotas.
// All randomness comes from the injected RNG so sessions replay from a seed.
type Spawner struct {
	rng     *rand.Rand
	catalog *Catalog
	cfg     *config.FishingConfig
	geo     Geometry
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, catalog *Catalog, cfg *config.FishingConfig) *Spawner {
	return &Spawner{
		rng:     rng,
		catalog: catalog,
		cfg:     cfg,
		geo:     NewGeometry(*cfg),
	}
}

// PopulateFish fills the fish list up to min(count, fish cap).
// Fish are placed anywhere inside the visible field.
func (sp *Spawner) PopulateFish(s *State, count int) {
	species := sp.catalog.fish
	if len(species) == 0 {
		return
	}
	target := min(count, sp.cfg.Population.FishCap)
	for len(s.Fish) < target {
		def := species[sp.rng.Intn(len(species))]
		depth := sp.sampleDepth(def.MinDepth, def.MaxDepth)
		x := sp.geo.Margin + sp.rng.Float64()*(sp.geo.Width-2*sp.geo.Margin)
		s.Fish = append(s.Fish, sp.newEntity(def, depth, x, sp.randomDirection(), NoLayer))
	}
}

// PopulateHazards fills each depth layer up to its quota, shallow to deep,
// stopping at the global hazard cap. Layers no hazard species can reach
// stay empty.
func (sp *Spawner) PopulateHazards(s *State) {
	pop := sp.cfg.Population
	counts := LayerCounts(s.Hazards, len(pop.HazardLayers))
	for i, layer := range pop.HazardLayers {
		candidates := sp.catalog.HazardsIn(layer.MinDepth, layer.MaxDepth)
		if len(candidates) == 0 {
			continue
		}
		for ; counts[i] < layer.Quota; counts[i]++ {
			if len(s.Hazards) >= pop.HazardCap {
				return
			}
			def := candidates[sp.rng.Intn(len(candidates))]
			depth := sp.sampleDepth(max(def.MinDepth, layer.MinDepth), min(def.MaxDepth, layer.MaxDepth))
			x := sp.geo.Margin + sp.rng.Float64()*(sp.geo.Width-2*sp.geo.Margin)
			s.Hazards = append(s.Hazards, sp.newEntity(def, depth, x, sp.randomDirection(), i))
		}
	}
}

// RespawnFish adds one fish entering from a screen edge.
// Returns false when the fish cap is reached.
func (sp *Spawner) RespawnFish(s *State) bool {
	species := sp.catalog.fish
	if len(species) == 0 || len(s.Fish) >= sp.cfg.Population.FishCap {
		return false
	}
	def := species[sp.rng.Intn(len(species))]
	depth := sp.sampleDepth(def.MinDepth, def.MaxDepth)
	s.Fish = append(s.Fish, sp.edgeEntity(def, depth, NoLayer))
	return true
}

// RespawnHazard adds one hazard entering from a screen edge.
// The target layer is chosen deepest first, each under-populated layer
// accepted with its respawn chance; the shallowest layer with room is the
// fallback. Returns false when the global cap is reached or no layer has room.
func (sp *Spawner) RespawnHazard(s *State) bool {
	pop := sp.cfg.Population
	if len(s.Hazards) >= pop.HazardCap {
		return false
	}

	counts := LayerCounts(s.Hazards, len(pop.HazardLayers))
	candidates := make([][]SpeciesDef, len(pop.HazardLayers))
	hasRoom := func(i int) bool {
		return counts[i] < pop.HazardLayers[i].Quota && len(candidates[i]) > 0
	}
	for i, layer := range pop.HazardLayers {
		candidates[i] = sp.catalog.HazardsIn(layer.MinDepth, layer.MaxDepth)
	}

	target := -1
	for i := len(pop.HazardLayers) - 1; i >= 1; i-- {
		if hasRoom(i) && sp.rng.Float64() < pop.HazardLayers[i].RespawnChance {
			target = i
			break
		}
	}
	if target < 0 {
		for i := range pop.HazardLayers {
			if hasRoom(i) {
				target = i
				break
			}
		}
	}
	if target < 0 {
		return false
	}

	layer := pop.HazardLayers[target]
	def := candidates[target][sp.rng.Intn(len(candidates[target]))]
	depth := sp.sampleDepth(max(def.MinDepth, layer.MinDepth), min(def.MaxDepth, layer.MaxDepth))
	s.Hazards = append(s.Hazards, sp.edgeEntity(def, depth, target))
	return true
}

// LayerCounts returns how many hazards occupy each of n layers.
func LayerCounts(hazards []Entity, n int) []int {
	counts := make([]int, n)
	for _, h := range hazards {
		if h.Layer >= 0 && h.Layer < n {
			counts[h.Layer]++
		}
	}
	return counts
}

func (sp *Spawner) edgeEntity(def SpeciesDef, depth float64, layer int) Entity {
	dir := sp.randomDirection()
	x := -sp.geo.Margin
	if dir == DirLeft {
		x = sp.geo.Width + sp.geo.Margin
	}
	return sp.newEntity(def, depth, x, dir, layer)
}

func (sp *Spawner) newEntity(def SpeciesDef, depth, x float64, dir, layer int) Entity {
	return Entity{
		X:         x,
		Y:         sp.geo.DepthToY(depth),
		Depth:     depth,
		Species:   def,
		Direction: dir,
		Speed:     sp.jitterSpeed(def.Speed),
		Layer:     layer,
	}
}

func (sp *Spawner) sampleDepth(lo, hi float64) float64 {
	return lo + sp.rng.Float64()*(hi-lo)
}

func (sp *Spawner) randomDirection() int {
	if sp.rng.Intn(2) == 0 {
		return DirLeft
	}
	return DirRight
}

// jitterSpeed scales base speed by a factor in [SpeedJitterMin, 1).
func (sp *Spawner) jitterSpeed(base float64) float64 {
	lo := sp.cfg.Physics.SpeedJitterMin
	return base * (lo + sp.rng.Float64()*(1-lo))
}
