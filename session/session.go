// Package session runs the interactive viewer loop on a terminal screen
package session

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/lixenwraith/sun-rise-set/almanac"
	"github.com/lixenwraith/sun-rise-set/constants"
	"github.com/lixenwraith/sun-rise-set/core"
	"github.com/lixenwraith/sun-rise-set/engine"
	"github.com/lixenwraith/sun-rise-set/modes"
	"github.com/lixenwraith/sun-rise-set/render"
)

// Options configures a Session
type Options struct {
	// Clock drives the animation timer, the real clock is used when nil
	Clock clockwork.Clock
	// OnArrive is called when a fast-forward reaches its target
	OnArrive func(day int)
}

// Session wires the player, renderer and input handler to one screen
type Session struct {
	screen   tcell.Screen
	player   *engine.Player
	renderer *render.TerminalRenderer
	input    *modes.InputHandler
	last     engine.State
}

// New creates a session over an initialized screen, the table must not be empty
func New(screen tcell.Screen, table *almanac.Table, opts Options) *Session {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	timer := engine.NewTimer(clock, constants.TickInterval)
	player := engine.NewPlayer(table.Len(), timer)
	if opts.OnArrive != nil {
		player.SetArrivalHandler(opts.OnArrive)
	}

	renderer := render.NewTerminalRenderer(screen, table)
	return &Session{
		screen:   screen,
		player:   player,
		renderer: renderer,
		input:    modes.NewInputHandler(player, renderer.Layout()),
		last:     player.State(),
	}
}

// Player returns the animation state machine
func (s *Session) Player() *engine.Player {
	return s.player
}

// Run draws and processes events until an exit key is pressed or ctx is done
func (s *Session) Run(ctx context.Context) error {
	s.screen.EnableMouse(tcell.MouseMotionEvents)
	defer s.screen.DisableMouse()
	defer s.player.Timer().Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	log.Printf("session started with %s", s.last)
	s.draw()

	for {
		select {
		case <-ctx.Done():
			log.Printf("session cancelled: %v", ctx.Err())
			return nil
		case ev := <-eventChan:
			if !s.handleEvent(ev) {
				log.Printf("session exit requested")
				return nil
			}
		case <-s.player.Timer().C():
			s.tick()
		}
	}
}

// handleEvent applies one terminal event and redraws, returning false on exit
func (s *Session) handleEvent(ev tcell.Event) bool {
	if ev, ok := ev.(*tcell.EventResize); ok {
		s.screen.Sync()
		w, h := ev.Size()
		s.renderer.Resize(w, h)
		s.input.SetLayout(s.renderer.Layout())
		log.Printf("resized to %dx%d", w, h)
		s.draw()
		return true
	}

	if !s.input.HandleEvent(ev) {
		return false
	}
	s.logTransition()
	s.draw()
	return true
}

// tick advances the animation one step and redraws
func (s *Session) tick() {
	s.player.Tick()
	s.logTransition()
	s.draw()
}

func (s *Session) logTransition() {
	state := s.player.State()
	if state == s.last {
		return
	}
	log.Printf("state %s -> %s at day %d", s.last, state, s.player.CurrentDay())
	s.last = state
}

func (s *Session) draw() {
	s.renderer.RenderFrame(render.Frame{
		CurrentDay: s.player.CurrentDay(),
		Readout:    s.player.Readout(),
	})
}
