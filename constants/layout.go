package constants

// Screen Layout
// Bottom rows, top to bottom: day axis, month labels, readout
const (
	AxisRows = 3

	// PlotYMin and PlotYMax bound the curve area, leaving headroom above and below the [-1,1] curves
	PlotYMin = -1.1
	PlotYMax = 1.1
)

// Guide Opacity
const (
	TimeMarkAlpha    = 0.7
	GuideDashedAlpha = 0.7
	GuideSolidAlpha  = 1.0
	LabelPanelAlpha  = 0.3
	ReadoutAlpha     = 0.9
)

// TextBrightnessThreshold selects black text over backgrounds brighter than this
const TextBrightnessThreshold = 0.5

// Plot Glyphs
const (
	GlyphCurrentCurve  = '●'
	GlyphNeighborCurve = '•'
	GlyphZeroLine      = '─'
	GlyphTimeMark      = '┆'
	GlyphGuideDashed   = '╌'
	GlyphGuideSolid    = '━'
	GlyphAxis          = '─'
	GlyphDayMarker     = '┃'
)
