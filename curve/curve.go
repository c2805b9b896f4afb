// Package curve synthesizes the stylized day curve drawn for each table day.
//
// The curve is decorative, not a sun-altitude model: a cosine peaking midway
// between rise and set, crossing zero at rise and set, and faded to zero at
// midnight on both ends with a squared-sine window.
package curve

import (
	"math"

	"github.com/lixenwraith/sun-rise-set/almanac"
	"github.com/lixenwraith/sun-rise-set/constants"
)

// Curve is a sampled day curve over normalized time [0,1]
type Curve struct {
	X []float64
	Y []float64
}

// Generate samples the curve for a day at the default resolution
func Generate(day almanac.DayRecord) Curve {
	return Sample(day.Rise, day.Set, constants.CurveSamples)
}

// Sample builds an n-point curve from rise and set minutes, rise must precede set
func Sample(riseMin, setMin, n int) Curve {
	rise := float64(riseMin) / constants.MinutesPerDay
	set := float64(setMin) / constants.MinutesPerDay
	center := (rise + set) / 2
	length := set - rise

	c := Curve{X: make([]float64, n), Y: make([]float64, n)}
	for i := range n {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		// Period of twice the day length: peak at center, zero at rise and set
		y := math.Cos(math.Pi * (x - center) / length)
		c.X[i] = x
		c.Y[i] = y * window(x, rise, set)
	}
	return c
}

// window fades the curve in from midnight to rise and out from set to midnight
func window(x, rise, set float64) float64 {
	switch {
	case x < rise:
		s := math.Sin(x / rise * math.Pi / 2)
		return s * s
	case x > set:
		s := math.Sin((1 - x) / (1 - set) * math.Pi / 2)
		return s * s
	}
	return 1
}

// Nearest returns the index and value of the sample closest to normalized time x
func (c Curve) Nearest(x float64) (int, float64) {
	n := len(c.X)
	if n == 0 {
		return 0, 0
	}
	i := 0
	if n > 1 {
		i = int(math.Round(x * float64(n-1)))
		i = max(0, min(i, n-1))
	}
	return i, c.Y[i]
}

// AtMinute returns the curve value nearest a minute-of-day
func (c Curve) AtMinute(minute int) float64 {
	_, y := c.Nearest(float64(minute) / constants.MinutesPerDay)
	return y
}
