package engine

import (
	"github.com/lixenwraith/sun-rise-set/almanac"
	"github.com/lixenwraith/sun-rise-set/constants"
)

// Player owns the animation state machine over a table of days
//
// Transitions:
//   - Tick while playing advances one day, wrapping at the end of the table
//   - Tick while fast-forwarding steps toward the target, then lands or snaps and pauses
//   - Hover on the day axis pauses and shows the hovered day
//   - Leave clears the hover and resumes unless fast-forwarding
//   - Click on another day fast-forwards to it, on the current day pauses
type Player struct {
	days     int
	state    AnimationState
	readout  int
	timer    *Timer
	onArrive func(day int)
}

// NewPlayer creates a playing player at day 0 and starts its timer
// days must be positive
func NewPlayer(days int, timer *Timer) *Player {
	p := &Player{
		days: days,
		state: AnimationState{
			CurrentDay:        0,
			Running:           true,
			HoveredDay:        NoDay,
			FastForwardTarget: NoDay,
		},
		readout: NoDay,
		timer:   timer,
	}
	p.timer.Start()
	return p
}

// SetArrivalHandler registers a callback fired when a fast-forward lands
func (p *Player) SetArrivalHandler(fn func(day int)) {
	p.onArrive = fn
}

// Snapshot returns a copy of the animation state
func (p *Player) Snapshot() AnimationState {
	return p.state
}

// State returns the current animation mode
func (p *Player) State() State {
	return p.state.State()
}

// CurrentDay returns the index of the day at the center of the display
func (p *Player) CurrentDay() int {
	return p.state.CurrentDay
}

// Readout returns the day whose details are shown, or NoDay
func (p *Player) Readout() int {
	return p.readout
}

// Timer returns the tick source driving the player
func (p *Player) Timer() *Timer {
	return p.timer
}

// Tick advances the animation by one timer interval
func (p *Player) Tick() {
	s := &p.state
	switch {
	case s.FastForwardTarget != NoDay:
		diff := s.FastForwardTarget - s.CurrentDay
		if abs(diff) <= constants.SnapDistance {
			p.arrive()
			return
		}
		// Clamp the step so the approach cannot overshoot and oscillate
		step := min(constants.FastForwardStep, abs(diff))
		if diff < 0 {
			step = -step
		}
		s.CurrentDay = almanac.WrapIndex(s.CurrentDay+step, p.days)
		if s.CurrentDay == s.FastForwardTarget {
			p.arrive()
		}
	case s.Running && s.HoveredDay == NoDay:
		s.CurrentDay = almanac.WrapIndex(s.CurrentDay+1, p.days)
	}
}

// arrive snaps onto the fast-forward target and pauses with its readout shown
func (p *Player) arrive() {
	s := &p.state
	s.CurrentDay = s.FastForwardTarget
	s.FastForwardTarget = NoDay
	s.Running = false
	p.timer.Stop()
	p.readout = s.CurrentDay
	if p.onArrive != nil {
		p.onArrive(s.CurrentDay)
	}
}

// Hover handles pointer motion over the day axis at day
func (p *Player) Hover(day int) {
	s := &p.state
	day = almanac.ClampIndex(day, p.days)
	if s.HoveredDay != day {
		s.HoveredDay = day
		p.readout = day
	}
	// A running fast-forward keeps going under the pointer
	if s.Running && s.FastForwardTarget == NoDay {
		s.Running = false
		p.timer.Stop()
	}
}

// Leave handles the pointer moving off the day axis
func (p *Player) Leave() {
	s := &p.state
	if s.HoveredDay != NoDay {
		s.HoveredDay = NoDay
		p.readout = NoDay
	}
	if !s.Running && s.FastForwardTarget == NoDay {
		s.Running = true
		p.timer.Start()
	}
}

// Click handles a pointer press on the day axis at day
func (p *Player) Click(day int) {
	s := &p.state
	day = almanac.ClampIndex(day, p.days)
	if day != s.CurrentDay {
		s.FastForwardTarget = day
		s.Running = true
		p.timer.Start()
		return
	}
	s.FastForwardTarget = NoDay
	s.Running = false
	p.timer.Stop()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
