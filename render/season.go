package render

import (
	"github.com/lixenwraith/sun-rise-set/constants"
	"github.com/lucasb-eyer/go-colorful"
)

var seasonAnchors = func() []colorful.Color {
	anchors := make([]colorful.Color, len(constants.SeasonAnchors))
	for i, hex := range constants.SeasonAnchors {
		anchors[i] = mustHex(hex)
	}
	return anchors
}()

// SeasonColor returns the background color for a day-of-year
// Colors interpolate linearly in RGB between breakpoint anchors, the first matching
// segment wins on shared breakpoints, days outside every segment get the first anchor
func SeasonColor(dayOfYear int) colorful.Color {
	bp := constants.SeasonBreakpoints
	for i := 0; i < len(bp)-1; i++ {
		start, end := bp[i], bp[i+1]
		if start <= dayOfYear && dayOfYear <= end {
			frac := float64(dayOfYear-start) / float64(end-start)
			a, b := seasonAnchors[i], seasonAnchors[i+1]
			return colorful.Color{
				R: a.R*(1-frac) + b.R*frac,
				G: a.G*(1-frac) + b.G*frac,
				B: a.B*(1-frac) + b.B*frac,
			}
		}
	}
	return seasonAnchors[0]
}
