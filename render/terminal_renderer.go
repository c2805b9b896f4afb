package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sun-rise-set/almanac"
	"github.com/lixenwraith/sun-rise-set/constants"
	"github.com/lixenwraith/sun-rise-set/curve"
)

// Frame is the animation state a single redraw depends on
type Frame struct {
	CurrentDay int
	// Readout is the day whose details are shown, almanac.NoDay hides the readout
	Readout int
}

// guide is a horizontal marker at the current day's curve value for one event time
type guide struct {
	minute int
	glyph  rune
	alpha  float64
	label  string
}

// TerminalRenderer handles all terminal rendering
// Every frame is repainted from scratch, so there are no stale artifacts to remove
type TerminalRenderer struct {
	screen tcell.Screen
	table  *almanac.Table
	curves []curve.Curve
	layout Layout
}

// NewTerminalRenderer creates a renderer and pre-computes one curve per table day
func NewTerminalRenderer(screen tcell.Screen, table *almanac.Table) *TerminalRenderer {
	curves := make([]curve.Curve, table.Len())
	for i := range curves {
		curves[i] = curve.Generate(table.At(i))
	}
	width, height := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		table:  table,
		curves: curves,
		layout: NewLayout(width, height, table.Len()),
	}
}

// Resize recomputes the layout for new screen dimensions
func (r *TerminalRenderer) Resize(width, height int) {
	r.layout = NewLayout(width, height, r.table.Len())
}

// Layout returns the current screen layout
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(f Frame) {
	if r.layout.Width <= 0 || r.layout.Height <= 0 {
		return
	}
	day := r.table.At(f.CurrentDay)
	season := SeasonColor(day.DayOfYear)
	bg := ColorfulToRGB(season)
	text := TextColor(season)

	r.screen.Fill(' ', cellStyle(text, bg))

	// Back to front: reference lines, guides, curves, then labels and UI on top
	r.drawTimeMarks(bg)
	r.drawZeroLine(bg)
	guides := r.guides(day)
	r.drawGuides(f.CurrentDay, guides, bg)
	r.drawCurves(f.CurrentDay, bg)
	r.drawTimeLabels(bg)
	r.drawGuideLabels(f.CurrentDay, guides, text, bg)
	r.drawDayAxis(f.CurrentDay, bg)
	if f.Readout != almanac.NoDay {
		r.drawReadout(f.Readout, text, bg)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) guides(day almanac.DayRecord) []guide {
	return []guide{
		{day.Rise, constants.GlyphGuideDashed, constants.GuideDashedAlpha, "sunrise"},
		{day.Set, constants.GlyphGuideDashed, constants.GuideDashedAlpha, "sunset"},
		{day.Transit, constants.GlyphGuideSolid, constants.GuideSolidAlpha, "suntran"},
	}
}

// drawTimeMarks draws dashed verticals at 0:00, 12:00 and 24:00
func (r *TerminalRenderer) drawTimeMarks(bg RGB) {
	fg := Blend(bg, RgbGuide, constants.TimeMarkAlpha)
	for _, t := range []float64{0, 0.5, 1} {
		col := r.layout.PlotColumn(t)
		for y := 0; y < r.layout.PlotHeight; y++ {
			r.put(col, y, constants.GlyphTimeMark, fg, bg)
		}
	}
}

// drawZeroLine draws the solid horizon line
func (r *TerminalRenderer) drawZeroLine(bg RGB) {
	row := r.layout.PlotRow(0)
	for x := 0; x < r.layout.Width; x++ {
		r.put(x, row, constants.GlyphZeroLine, RgbGuide, bg)
	}
}

// drawGuides draws horizontal lines at the current curve's rise, set and transit values
func (r *TerminalRenderer) drawGuides(current int, guides []guide, bg RGB) {
	c := r.curves[current]
	for _, g := range guides {
		row := r.layout.PlotRow(c.AtMinute(g.minute))
		fg := Blend(bg, RgbGuide, g.alpha)
		for x := 0; x < r.layout.Width; x++ {
			r.put(x, row, g.glyph, fg, bg)
		}
	}
}

// drawCurves draws the current day and its neighbors, farthest first so nearer curves stay on top
func (r *TerminalRenderer) drawCurves(current int, bg RGB) {
	for dist := constants.NeighborRadius; dist >= 0; dist-- {
		alpha := 1.0 - constants.OpacityFalloff*float64(dist)
		if alpha <= 1e-9 {
			continue
		}
		offsets := []int{-dist, dist}
		if dist == 0 {
			offsets = offsets[:1]
		}
		for _, d := range offsets {
			fg := Blend(bg, Gradient(d+constants.NeighborRadius), alpha)
			glyph := constants.GlyphNeighborCurve
			if d == 0 {
				glyph = constants.GlyphCurrentCurve
			}
			r.drawCurve(r.curves[r.table.Wrap(current+d)], glyph, fg, bg)
		}
	}
}

// drawCurve plots one curve per column, bridging vertical gaps between neighboring columns
func (r *TerminalRenderer) drawCurve(c curve.Curve, glyph rune, fg, bg RGB) {
	prev := -1
	for col := 0; col < r.layout.Width; col++ {
		_, v := c.Nearest(r.layout.ColumnX(col))
		row := r.layout.PlotRow(v)
		if prev >= 0 {
			for y := min(prev, row) + 1; y < max(prev, row); y++ {
				r.put(col, y, glyph, fg, bg)
			}
		}
		r.put(col, row, glyph, fg, bg)
		prev = row
	}
}

// drawTimeLabels labels the time marks along the top row
func (r *TerminalRenderer) drawTimeLabels(bg RGB) {
	panel := Blend(bg, RgbLabelPanel, constants.LabelPanelAlpha)
	marks := []struct {
		t     float64
		label string
	}{
		{0, "0:00"},
		{0.5, "12:00"},
		{1, "24:00"},
	}
	for _, m := range marks {
		r.drawCentered(r.layout.PlotColumn(m.t), 0, m.label, RgbGuide, panel)
	}
}

// drawGuideLabels names each guide line next to its event time
func (r *TerminalRenderer) drawGuideLabels(current int, guides []guide, text, bg RGB) {
	c := r.curves[current]
	panel := Blend(bg, RgbLabelPanel, constants.LabelPanelAlpha)
	for _, g := range guides {
		row := r.layout.PlotRow(c.AtMinute(g.minute))
		col := r.layout.PlotColumn(float64(g.minute) / constants.MinutesPerDay)
		r.drawCentered(col, row, g.label, text, panel)
	}
}

// drawDayAxis draws the axis line, current day marker and month labels
func (r *TerminalRenderer) drawDayAxis(current int, bg RGB) {
	l := r.layout
	for x := 0; x < l.Width; x++ {
		r.put(x, l.AxisRow, constants.GlyphAxis, RgbGuide, bg)
	}
	r.put(l.ColumnOf(current), l.AxisRow, constants.GlyphDayMarker, RgbDayMarker, bg)

	next := 0
	for _, tick := range r.table.MonthTicks() {
		col := l.ColumnOf(tick.Index)
		if col < next {
			continue
		}
		r.drawText(col, l.LabelRow, tick.Label, RgbGuide, bg)
		next = col + len(tick.Label) + 1
	}
}

// drawReadout shows the detail line for a day on a light panel
func (r *TerminalRenderer) drawReadout(day int, text, bg RGB) {
	panel := Blend(bg, RgbReadout, constants.ReadoutAlpha)
	line := " " + r.table.At(day).Readout() + " "
	r.drawCentered(r.layout.Width/2, r.layout.ReadoutRow, line, text, panel)
}

// drawCentered draws s centered on col, shifted to stay on screen
func (r *TerminalRenderer) drawCentered(col, y int, s string, fg, bg RGB) {
	n := len([]rune(s))
	start := col - n/2
	start = max(0, min(start, r.layout.Width-n))
	r.drawText(start, y, s, fg, bg)
}

// drawText draws s starting at x, clipped to the screen
func (r *TerminalRenderer) drawText(x, y int, s string, fg, bg RGB) {
	for i, ch := range []rune(s) {
		r.put(x+i, y, ch, fg, bg)
	}
}

// put writes one clipped cell
func (r *TerminalRenderer) put(x, y int, ch rune, fg, bg RGB) {
	if x < 0 || x >= r.layout.Width || y < 0 || y >= r.layout.Height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, cellStyle(fg, bg))
}

func cellStyle(fg, bg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(RGBToTcell(fg)).Background(RGBToTcell(bg))
}
