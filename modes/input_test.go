package modes

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sun-rise-set/render"
	"github.com/stretchr/testify/assert"
)

type recordingPlayer struct {
	calls []string
}

func (p *recordingPlayer) Hover(day int) { p.calls = append(p.calls, fmt.Sprintf("hover %d", day)) }
func (p *recordingPlayer) Leave()        { p.calls = append(p.calls, "leave") }
func (p *recordingPlayer) Click(day int) { p.calls = append(p.calls, fmt.Sprintf("click %d", day)) }

func newTestHandler() (*InputHandler, *recordingPlayer, render.Layout) {
	layout := render.NewLayout(80, 24, 366)
	player := &recordingPlayer{}
	return NewInputHandler(player, layout), player, layout
}

func TestHandleEvent_ExitKeys(t *testing.T) {
	h, _, _ := newTestHandler()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"Ctrl-C", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false},
		{"Ctrl-Q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), false},
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), false},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.HandleEvent(tt.ev))
		})
	}
}

func TestHandleEvent_HoverAndLeave(t *testing.T) {
	h, p, l := newTestHandler()

	assert.True(t, h.HandleEvent(tcell.NewEventMouse(0, l.AxisRow, tcell.ButtonNone, tcell.ModNone)))
	assert.True(t, h.HandleEvent(tcell.NewEventMouse(79, l.LabelRow, tcell.ButtonNone, tcell.ModNone)))
	assert.True(t, h.HandleEvent(tcell.NewEventMouse(40, 3, tcell.ButtonNone, tcell.ModNone)))
	assert.True(t, h.HandleEvent(tcell.NewEventMouse(40, l.ReadoutRow, tcell.ButtonNone, tcell.ModNone)))

	assert.Equal(t, []string{"hover 0", "hover 365", "leave", "leave"}, p.calls)
}

func TestHandleEvent_ClickOnPressEdge(t *testing.T) {
	h, p, l := newTestHandler()
	x := l.ColumnOf(100)

	h.HandleEvent(tcell.NewEventMouse(x, l.AxisRow, tcell.Button1, tcell.ModNone))
	// Dragging with the button held must not re-click
	h.HandleEvent(tcell.NewEventMouse(x+1, l.AxisRow, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(x+1, l.AxisRow, tcell.ButtonNone, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(x, l.AxisRow, tcell.Button1, tcell.ModNone))

	day := l.DayAt(x)
	next := l.DayAt(x + 1)
	assert.Equal(t, []string{
		fmt.Sprintf("hover %d", day),
		fmt.Sprintf("click %d", day),
		fmt.Sprintf("hover %d", next),
		fmt.Sprintf("hover %d", next),
		fmt.Sprintf("hover %d", day),
		fmt.Sprintf("click %d", day),
	}, p.calls)
}

func TestHandleEvent_PressOffAxisIgnored(t *testing.T) {
	h, p, l := newTestHandler()

	h.HandleEvent(tcell.NewEventMouse(10, 2, tcell.Button1, tcell.ModNone))
	// Sliding onto the axis with the button still held is not a click
	h.HandleEvent(tcell.NewEventMouse(10, l.AxisRow, tcell.Button1, tcell.ModNone))

	assert.Equal(t, []string{"leave", fmt.Sprintf("hover %d", l.DayAt(10))}, p.calls)
}

func TestSetLayout(t *testing.T) {
	h, p, _ := newTestHandler()
	wide := render.NewLayout(200, 50, 366)
	h.SetLayout(wide)

	h.HandleEvent(tcell.NewEventMouse(199, wide.AxisRow, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, []string{"hover 365"}, p.calls)
}

func TestHandleEvent_ResizeIsIgnored(t *testing.T) {
	h, p, _ := newTestHandler()
	assert.True(t, h.HandleEvent(tcell.NewEventResize(100, 30)))
	assert.Empty(t, p.calls)
}
