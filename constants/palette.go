package constants

// Seasonal background anchors, interpolated linearly in RGB between consecutive breakpoints
// Jan 1 -> Mar 1 -> Jun 1 -> Sep 1 -> Dec 31 of a leap year
var (
	SeasonAnchors     = []string{"#97E3FC", "#C3F87E", "#FDD874", "#E1C28D", "#97E3FC"}
	SeasonBreakpoints = []int{1, 60, 152, 245, 366}
)

// Cool-warm diverging gradient endpoints for neighbor curves, earliest day is cool
const (
	GradientCoolHex = "#3B4CC0"
	GradientMidHex  = "#DDDDDD"
	GradientWarmHex = "#B40426"
)

// Fixed overlay colors
const (
	GuideHex      = "#FFFFFF"
	DayMarkerHex  = "#FF0000"
	LabelPanelHex = "#000000"
	ReadoutHex    = "#FFFFFF"
)
