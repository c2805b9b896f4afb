package render

import (
	"github.com/lixenwraith/sun-rise-set/constants"
	"github.com/lucasb-eyer/go-colorful"
)

// Fixed overlay colors
var (
	RgbGuide      = ColorfulToRGB(mustHex(constants.GuideHex))
	RgbDayMarker  = ColorfulToRGB(mustHex(constants.DayMarkerHex))
	RgbLabelPanel = ColorfulToRGB(mustHex(constants.LabelPanelHex))
	RgbReadout    = ColorfulToRGB(mustHex(constants.ReadoutHex))
)

// gradient holds one color per visible curve, cool for the earliest neighbor
var gradient [constants.VisibleCurves]RGB

// init pre-calculates the cool-warm gradient in Lab space to keep the render loop free of color math
func init() {
	cool := mustHex(constants.GradientCoolHex)
	mid := mustHex(constants.GradientMidHex)
	warm := mustHex(constants.GradientWarmHex)

	last := float64(constants.VisibleCurves - 1)
	for i := range gradient {
		t := float64(i) / last
		var c colorful.Color
		if t < 0.5 {
			c = cool.BlendLab(mid, t*2)
		} else {
			c = mid.BlendLab(warm, (t-0.5)*2)
		}
		gradient[i] = ColorfulToRGB(c)
	}
}

// Gradient returns the curve color for slot i, where i = offset + NeighborRadius
// Out-of-range slots clamp to the ends
func Gradient(i int) RGB {
	return gradient[max(0, min(i, len(gradient)-1))]
}

// Brightness returns perceived luma of a color in [0,1]
func Brightness(c colorful.Color) float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// TextColor picks black text on bright backgrounds and white text on dark ones
func TextColor(bg colorful.Color) RGB {
	if Brightness(bg) > constants.TextBrightnessThreshold {
		return RGBBlack
	}
	return RGBWhite
}
