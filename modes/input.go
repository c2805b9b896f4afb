package modes

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sun-rise-set/render"
)

// Player receives pointer actions on the day axis
type Player interface {
	Hover(day int)
	Leave()
	Click(day int)
}

// InputHandler processes user input events
type InputHandler struct {
	player  Player
	layout  render.Layout
	pressed bool
}

// NewInputHandler creates a new input handler
func NewInputHandler(player Player, layout render.Layout) *InputHandler {
	return &InputHandler{
		player: player,
		layout: layout,
	}
}

// SetLayout updates the screen mapping after a resize
func (h *InputHandler) SetLayout(layout render.Layout) {
	h.layout = layout
}

// HandleEvent processes a tcell event and returns false if the viewer should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		h.handleMouseEvent(ev)
	}
	return true
}

// handleKeyEvent processes keyboard events, only exit keys are bound
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ, tcell.KeyEscape:
		return false
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return false
		}
	}
	return true
}

// handleMouseEvent maps pointer motion and presses on the day axis to player actions
// A held button reports on every motion, so only the press edge counts as a click
func (h *InputHandler) handleMouseEvent(ev *tcell.EventMouse) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	if !h.layout.OnAxis(x, y) {
		h.pressed = down
		h.player.Leave()
		return
	}

	day := h.layout.DayAt(x)
	h.player.Hover(day)
	if down && !h.pressed {
		h.player.Click(day)
	}
	h.pressed = down
}
