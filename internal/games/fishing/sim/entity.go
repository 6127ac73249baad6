package sim

import "github.com/vovakirdan/deepline/internal/core"

// Direction values for horizontal patrol.
const (
	DirLeft  = -1
	DirRight = 1
)

// NoLayer marks entities that are not tracked by the hazard layer table.
const NoLayer = -1

// Entity is a live fish or hazard patrolling horizontally at a fixed depth.
type Entity struct {
	X, Y      float64 // World position; Y is derived from Depth
	Depth     float64
	Species   SpeciesDef
	Direction int     // DirLeft or DirRight
	Speed     float64 // Jittered from the species base speed
	Layer     int     // Hazard layer index, NoLayer for fish
}

// Pos returns the entity position as a vector.
func (e Entity) Pos() core.Vec2 {
	return core.Vec2{X: e.X, Y: e.Y}
}
