package render

import (
	"math"

	"github.com/lixenwraith/sun-rise-set/constants"
)

// Layout maps between screen cells, normalized plot space, and table indices
// The plot fills the top rows, followed by the day axis, month labels, and readout
type Layout struct {
	Width, Height int
	PlotHeight    int
	AxisRow       int
	LabelRow      int
	ReadoutRow    int
	Days          int
}

// NewLayout computes the regions for a screen of width x height showing days entries
func NewLayout(width, height, days int) Layout {
	plot := max(height-constants.AxisRows, 1)
	return Layout{
		Width:      width,
		Height:     height,
		PlotHeight: plot,
		AxisRow:    plot,
		LabelRow:   plot + 1,
		ReadoutRow: plot + 2,
		Days:       days,
	}
}

// OnAxis reports whether a cell belongs to the interactive day axis strip
func (l Layout) OnAxis(x, y int) bool {
	if x < 0 || x >= l.Width {
		return false
	}
	return y == l.AxisRow || y == l.LabelRow
}

// DayAt maps a screen column to the nearest table index
func (l Layout) DayAt(x int) int {
	if l.Days <= 1 || l.Width <= 1 {
		return 0
	}
	day := int(math.Round(float64(x) * float64(l.Days-1) / float64(l.Width-1)))
	return max(0, min(day, l.Days-1))
}

// ColumnOf maps a table index to its screen column on the day axis
func (l Layout) ColumnOf(day int) int {
	if l.Days <= 1 || l.Width <= 1 {
		return 0
	}
	col := int(math.Round(float64(day) * float64(l.Width-1) / float64(l.Days-1)))
	return max(0, min(col, l.Width-1))
}

// ColumnX returns the normalized time [0,1] shown by a plot column
func (l Layout) ColumnX(col int) float64 {
	if l.Width <= 1 {
		return 0
	}
	return float64(col) / float64(l.Width-1)
}

// PlotColumn maps normalized time to a plot column
func (l Layout) PlotColumn(x float64) int {
	col := int(math.Round(x * float64(l.Width-1)))
	return max(0, min(col, l.Width-1))
}

// PlotRow maps a curve value to a plot row, higher values toward the top
func (l Layout) PlotRow(v float64) int {
	frac := (constants.PlotYMax - v) / (constants.PlotYMax - constants.PlotYMin)
	row := int(math.Round(frac * float64(l.PlotHeight-1)))
	return max(0, min(row, l.PlotHeight-1))
}
