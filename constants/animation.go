package constants

import "time"

// Animation Timing
const (
	// TickInterval advances the animation five days per second
	TickInterval = 200 * time.Millisecond

	// FastForwardStep is the maximum number of days jumped per tick while fast-forwarding
	FastForwardStep = 5

	// SnapDistance ends a fast-forward once the current day is this close to the target
	SnapDistance = 1
)

// Curve Synthesis
const (
	// CurveSamples is the number of points in one synthesized day curve
	CurveSamples = 1000

	// MinutesPerDay normalizes minute-of-day values into [0,1]
	MinutesPerDay = 1440
)

// Neighbor Curves
const (
	// NeighborRadius is the number of days drawn on either side of the current day
	NeighborRadius = 10

	// VisibleCurves is the current day plus its neighbors
	VisibleCurves = 2*NeighborRadius + 1

	// OpacityFalloff is the opacity lost per day of distance from the current day
	OpacityFalloff = 0.1
)
