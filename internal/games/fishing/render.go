package fishing

import (
	"fmt"

	"github.com/vovakirdan/deepline/internal/core"
	"github.com/vovakirdan/deepline/internal/games/fishing/sim"
)

// Layout constants in screen cells
const (
	MinScreenW  = 40
	MinScreenH  = 14
	gaugeWidth  = 7  // Depth gauge block on the right
	markerEvery = 50 // Meters between depth markers
)

// Visual characters for rendering
const (
	WaveChar   = '~'
	LineChar   = '│'
	HookChar   = 'J'
	RodChar    = '━'
	RodTipChar = '┓'
	MarkerChar = '·'
	GaugeChar  = '┃'
	GaugeFill  = '█'
)

// hazardGlyphs gives the built-in hazards a recognizable shape.
var hazardGlyphs = map[string]string{
	"Sea Mine":     "(*)",
	"Ghost Net":    "#+#",
	"Jellyfish":    "{~}",
	"Wreck Debris": "[=]",
}

// field maps world pixels onto the playing area of the screen.
type field struct {
	x, y, w, h     int
	worldW, worldH float64
}

func newField(dst *core.Screen, snap sim.Snapshot) field {
	return field{
		x:      0,
		y:      1, // HUD row above
		w:      dst.Width() - gaugeWidth,
		h:      dst.Height() - 1,
		worldW: snap.WorldW,
		worldH: snap.WorldH,
	}
}

func (f field) col(x float64) int {
	return f.x + core.Scale(x, f.worldW, f.w)
}

func (f field) row(y float64) int {
	return f.y + core.Clamp(core.Scale(y, f.worldH, f.h), 0, f.h-1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	snap := g.session.Snapshot()
	geo := g.session.Geometry()
	f := newField(dst, snap)

	g.drawWater(dst, f, geo, snap.Ticks)
	g.drawDepthMarkers(dst, f, geo)
	hookCol, hookRow := g.drawLine(dst, f, snap)

	for _, e := range snap.Hazards {
		drawEntity(dst, f, e)
	}
	for _, e := range snap.Fish {
		drawEntity(dst, f, e)
	}
	dst.SetColored(hookCol, hookRow, HookChar, core.ColorBrightWhite)
	g.drawDepthLabels(dst, f, geo)

	drawFeedback(dst, snap.Feedback, hookCol, hookRow)
	drawGauge(dst, f, snap)
	drawHUD(dst, snap)

	switch snap.Phase {
	case sim.PhaseNotStarted:
		drawPanel(dst, core.ColorBrightCyan,
			"DEEP LINE",
			"",
			"Hold SPACE to let the line sink",
			"Release to reel in",
			fmt.Sprintf("Hook fish, dodge hazards: %ds", snap.RemainingMillis/1000),
			"",
			"Press ENTER to start",
		)
	case sim.PhaseOver:
		drawPanel(dst, core.ColorBrightYellow,
			"TIME UP",
			"",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Catches: %d  Hazards hit: %d", snap.Catches, snap.Hits),
			"",
			"R restart  TAB catch log",
		)
	}
}

// drawWater draws the animated surface just above depth zero.
func (g *Game) drawWater(dst *core.Screen, f field, geo sim.Geometry, ticks int) {
	row := f.row(geo.DepthToY(0)) - 1
	if row < f.y {
		return
	}
	shift := ticks / 12
	for x := 0; x < f.w; x++ {
		if (x+shift)%3 != 2 {
			dst.SetColored(f.x+x, row, WaveChar, core.ColorBlue)
		}
	}
}

// drawDepthMarkers draws a dotted line every 50 m.
func (g *Game) drawDepthMarkers(dst *core.Screen, f field, geo sim.Geometry) {
	for d := markerEvery; d <= int(geo.MaxDepth); d += markerEvery {
		row := f.row(geo.DepthToY(float64(d)))
		for x := 5; x < f.w; x += 4 {
			dst.SetColored(f.x+x, row, MarkerChar, core.ColorGray)
		}
	}
}

// drawDepthLabels writes marker depths in the left margin, above entities.
func (g *Game) drawDepthLabels(dst *core.Screen, f field, geo sim.Geometry) {
	for d := markerEvery; d <= int(geo.MaxDepth); d += markerEvery {
		dst.DrawText(f.x, f.row(geo.DepthToY(float64(d))), fmt.Sprintf("%dm", d), core.ColorGray)
	}
}

// drawLine draws the rod and line and returns the hook cell.
func (g *Game) drawLine(dst *core.Screen, f field, snap sim.Snapshot) (int, int) {
	hookCol := f.col(snap.Hook.X)
	originRow := f.row(snap.Hook.OriginY)
	hookRow := f.row(snap.Hook.Y)

	dst.DrawHLine(hookCol-6, originRow, 6, RodChar, core.ColorYellow)
	dst.SetColored(hookCol, originRow, RodTipChar, core.ColorYellow)
	if hookRow > originRow+1 {
		dst.DrawVLine(hookCol, originRow+1, hookRow-originRow-1, LineChar, core.ColorWhite)
	}
	return hookCol, hookRow
}

// drawEntity draws a fish or hazard centered on its position.
// Fish face their swim direction.
// Cells outside the field are clipped so the gauge stays clean.
func drawEntity(dst *core.Screen, f field, e sim.EntityView) {
	glyph := []rune(entityGlyph(e))
	col := f.col(e.X) - len(glyph)/2
	row := f.row(e.Y)
	for i, r := range glyph {
		if x := col + i; x >= f.x && x < f.x+f.w {
			dst.SetColored(x, row, r, e.Color)
		}
	}
}

func entityGlyph(e sim.EntityView) string {
	if e.Kind == sim.KindHazard {
		if g, ok := hazardGlyphs[e.Name]; ok {
			return g
		}
		return "<!>"
	}

	var glyph string
	switch {
	case e.Size < 20:
		glyph = "><>"
	case e.Size < 30:
		glyph = "><=>"
	default:
		glyph = "><==>"
	}
	if e.Direction == sim.DirLeft {
		glyph = mirror(glyph)
	}
	return glyph
}

// mirror flips an ASCII fish to face the other way.
func mirror(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	for i, c := range r {
		switch c {
		case '<':
			r[i] = '>'
		case '>':
			r[i] = '<'
		}
	}
	return string(r)
}

// drawFeedback draws score popups beside the hook, drifting up as they fade.
func drawFeedback(dst *core.Screen, items []sim.FeedbackView, hookCol, hookRow int) {
	for i, fb := range items {
		row := hookRow - 1 - int((1-fb.Fade)*3)
		col := hookCol + 2 + (i%3)*5
		dst.DrawText(col, row, fb.Text, fadeColor(fb))
	}
}

func fadeColor(fb sim.FeedbackView) core.Color {
	switch {
	case fb.Fade < 0.25:
		return core.ColorGray
	case fb.Kind == sim.FeedbackPenalty && fb.Fade < 0.6:
		return core.ColorRed
	case fb.Kind == sim.FeedbackPenalty:
		return core.ColorBrightRed
	case fb.Fade < 0.6:
		return core.ColorGreen
	default:
		return core.ColorBrightGreen
	}
}

// drawGauge draws the vertical depth gauge with the rounded depth beneath.
func drawGauge(dst *core.Screen, f field, snap sim.Snapshot) {
	x := f.x + f.w + 2
	top := f.y + 1
	height := f.h - 4
	if height < 2 {
		return
	}

	dst.DrawText(x-1, f.y, "DEPTH", core.ColorCyan)
	filled := core.Scale(float64(snap.Depth), float64(snap.MaxDepth), height)
	for i := 0; i < height; i++ {
		if i < filled {
			dst.SetColored(x+1, top+i, GaugeFill, core.ColorCyan)
		} else {
			dst.SetColored(x+1, top+i, GaugeChar, core.ColorGray)
		}
	}
	dst.DrawText(x-1, top+height+1, fmt.Sprintf("%4dm", snap.Depth), core.ColorBrightWhite)
}

func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	left := fmt.Sprintf(" Score: %d  Catches: %d", snap.Score, snap.Catches)
	dst.DrawText(0, 0, left, core.ColorBrightWhite)

	secs := float64(snap.RemainingMillis) / 1000
	timeColor := core.ColorBrightWhite
	if snap.Phase == sim.PhaseRunning && secs <= 5 {
		timeColor = core.ColorBrightRed
	}
	right := fmt.Sprintf("Time: %4.1fs ", secs)
	dst.DrawText(dst.Width()-len(right), 0, right, timeColor)
}

// drawPanel draws a centered framed message box.
func drawPanel(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	w, h := width+4, len(lines)+2
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r, c)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(r.Y+1+i, l, color)
	}
}
