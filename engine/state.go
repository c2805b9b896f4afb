package engine

import "github.com/lixenwraith/sun-rise-set/almanac"

// NoDay marks an absent hovered day or fast-forward target
const NoDay = almanac.NoDay

// State is the animation mode derived from AnimationState
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateFastForwarding
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "PLAYING"
	case StatePaused:
		return "PAUSED"
	case StateFastForwarding:
		return "FAST_FORWARDING"
	}
	return "UNKNOWN"
}

// AnimationState is the transient playback state mutated by ticks and pointer handlers
type AnimationState struct {
	CurrentDay        int
	Running           bool
	HoveredDay        int
	FastForwardTarget int
}

// State derives the animation mode
func (a AnimationState) State() State {
	switch {
	case a.FastForwardTarget != NoDay:
		return StateFastForwarding
	case a.Running:
		return StatePlaying
	}
	return StatePaused
}
