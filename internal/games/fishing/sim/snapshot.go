package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/deepline/internal/core"
)

// EntityView is the read-only render view of a live entity.
type EntityView struct {
	X, Y      float64
	Depth     float64
	Name      string
	Kind      Kind
	Color     core.Color
	Value     int
	Size      float64
	Direction int
}

// FeedbackView is a score popup with its remaining fade fraction.
type FeedbackView struct {
	Kind  FeedbackKind
	Text  string // "+25" or "-50"
	Color core.Color
	Fade  float64 // 1 when fresh, 0 when about to be purged
}

// HookView describes the line and hook.
type HookView struct {
	X, Y       float64
	OriginY    float64
	LineLength float64
	Radius     float64
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Phase           Phase
	Score           int
	Catches         int
	Hits            int
	Depth           int // Rounded meters
	MaxDepth        int
	Ticks           int
	ElapsedMillis   int
	RemainingMillis int
	WorldW, WorldH  float64
	Hook            HookView
	Fish            []EntityView
	Hazards         []EntityView
	Feedback        []FeedbackView
}

// Snapshot captures the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	st := &s.state
	hook := s.geo.HookPoint(st.Depth)
	return Snapshot{
		Phase:           st.Phase,
		Score:           st.Score,
		Catches:         st.Catches,
		Hits:            st.Hits,
		Depth:           int(math.Round(st.Depth)),
		MaxDepth:        int(s.geo.MaxDepth),
		Ticks:           s.ticks,
		ElapsedMillis:   st.Clock.Elapsed,
		RemainingMillis: st.Clock.Remaining(),
		WorldW:          s.geo.Width,
		WorldH:          s.geo.Height,
		Hook: HookView{
			X:          hook.X,
			Y:          hook.Y,
			OriginY:    s.geo.OriginY,
			LineLength: s.geo.LineLength(st.Depth),
			Radius:     s.geo.HookRadius,
		},
		Fish:     entityViews(st.Fish),
		Hazards:  entityViews(st.Hazards),
		Feedback: s.feedbackViews(),
	}
}

func entityViews(entities []Entity) []EntityView {
	views := make([]EntityView, len(entities))
	for i, e := range entities {
		views[i] = EntityView{
			X:         e.X,
			Y:         e.Y,
			Depth:     e.Depth,
			Name:      e.Species.Name,
			Kind:      e.Species.Kind,
			Color:     e.Species.Color,
			Value:     e.Species.Value,
			Size:      e.Species.Size,
			Direction: e.Direction,
		}
	}
	return views
}

func (s *Session) feedbackViews() []FeedbackView {
	window := float64(s.cfg.Clock.FeedbackMillis)
	views := make([]FeedbackView, len(s.state.Feedback))
	for i, f := range s.state.Feedback {
		fade := 0.0
		if window > 0 {
			age := float64(s.state.Clock.Elapsed - f.CreatedAt)
			fade = core.ClampF(1-age/window, 0, 1)
		}
		sign := "+"
		if f.Kind == FeedbackPenalty {
			sign = "-"
		}
		views[i] = FeedbackView{
			Kind:  f.Kind,
			Text:  fmt.Sprintf("%s%d", sign, f.Value),
			Color: f.Color,
			Fade:  fade,
		}
	}
	return views
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Phase)
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Catches)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hits)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ticks)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ElapsedMillis) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Hook.Y)
	for _, list := range [][]EntityView{snap.Fish, snap.Hazards} {
		h = h*31 + uint64(len(list))
		for _, e := range list {
			h = h*31 + math.Float64bits(e.X)
			h = h*31 + math.Float64bits(e.Depth)
			h = h*31 + uint64(e.Direction+1) //#nosec G115 -- direction is -1 or 1
			for _, r := range e.Name {
				h = h*31 + uint64(r)
			}
		}
	}
	for _, f := range snap.Feedback {
		h = h*31 + math.Float64bits(f.Fade)
	}
	return h
}
