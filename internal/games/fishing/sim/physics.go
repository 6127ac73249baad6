package sim

import (
	"github.com/vovakirdan/deepline/internal/config"
	"github.com/vovakirdan/deepline/internal/core"
)

// Geometry is the resolved play field and hook layout in world pixels.
type Geometry struct {
	Width, Height float64
	Margin        float64
	HookX         float64
	OriginY       float64
	MinLine       float64
	MaxLine       float64
	HookRadius    float64
	MaxDepth      float64
}

// NewGeometry resolves geometry from config.
func NewGeometry(cfg config.FishingConfig) Geometry {
	return Geometry{
		Width:      cfg.World.Width,
		Height:     cfg.World.Height,
		Margin:     cfg.World.EdgeMargin,
		HookX:      cfg.HookX(),
		OriginY:    cfg.Hook.OriginY,
		MinLine:    cfg.Hook.MinLineLength,
		MaxLine:    cfg.Hook.MaxLineLength,
		HookRadius: cfg.Hook.Radius,
		MaxDepth:   cfg.Physics.MaxDepth,
	}
}

// LineLength maps depth linearly onto [MinLine, MaxLine].
func (g Geometry) LineLength(depth float64) float64 {
	return g.MinLine + depth/g.MaxDepth*(g.MaxLine-g.MinLine)
}

// DepthToY maps a depth to a world Y coordinate.
// Entities and the hook share this mapping so drawn depth equals logical depth.
func (g Geometry) DepthToY(depth float64) float64 {
	return g.OriginY + g.LineLength(depth)
}

// HookPoint returns the hook position for the given depth.
func (g Geometry) HookPoint(depth float64) core.Vec2 {
	return core.Vec2{X: g.HookX, Y: g.DepthToY(depth)}
}

// Wrap moves an x that left the margin band to the opposite edge.
func (g Geometry) Wrap(x float64) float64 {
	switch {
	case x < -g.Margin:
		return g.Width + g.Margin
	case x > g.Width+g.Margin:
		return -g.Margin
	default:
		return x
	}
}

// UpdateDepth applies one tick of diving or rising and clamps to [0, MaxDepth].
func UpdateDepth(depth float64, descend bool, p config.FishingPhysics) float64 {
	switch {
	case descend && depth < p.MaxDepth:
		depth += p.DivingRate
	case !descend && depth > 0:
		depth -= p.RisingRate
	}
	return core.ClampF(depth, 0, p.MaxDepth)
}

// MoveEntities advances every entity along its patrol and wraps at the edges.
// Direction and speed are preserved across a wrap.
func MoveEntities(entities []Entity, g Geometry) {
	for i := range entities {
		e := &entities[i]
		e.X = g.Wrap(e.X + e.Speed*float64(e.Direction))
	}
}
