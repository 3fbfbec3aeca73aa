package input

import "github.com/gdamore/tcell/v2"

// DefaultStep is how far one key press turns a knob.
const DefaultStep = 1.0 / 32

// A Panel is the full control set of the explorer: three knobs and four
// buttons, driven from terminal key events.
type Panel struct {
	CursorX, CursorY, Zoom *Knob

	ZoomIn, ZoomOut, Recenter, Resolution *Latch

	Step float64
}

// NewPanel returns a panel with every knob centered.
func NewPanel() *Panel {
	return &Panel{
		CursorX:    NewKnob(0.5),
		CursorY:    NewKnob(0.5),
		Zoom:       NewKnob(0.5),
		ZoomIn:     &Latch{},
		ZoomOut:    &Latch{},
		Recenter:   &Latch{},
		Resolution: &Latch{},
		Step:       DefaultStep,
	}
}

// HandleKey applies one key event. It reports whether the key asks to quit.
//
//	arrows   move the cursor
//	+ -      grow or shrink the cursor
//	a        zoom in          x  zoom out
//	b        recenter         y  toggle resolution
//	q Esc    quit
func (p *Panel) HandleKey(ev *tcell.EventKey) bool {
	step := p.Step
	if ev.Modifiers()&tcell.ModShift != 0 {
		step *= 4
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		p.CursorX.Nudge(-step)
	case tcell.KeyRight:
		p.CursorX.Nudge(step)
	case tcell.KeyUp:
		// The y knob is inverted, so turning it up moves the cursor up.
		p.CursorY.Nudge(step)
	case tcell.KeyDown:
		p.CursorY.Nudge(-step)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case '+', '=':
			p.Zoom.Nudge(step)
		case '-', '_':
			p.Zoom.Nudge(-step)
		case 'a', 'A':
			p.ZoomIn.Press()
		case 'x', 'X':
			p.ZoomOut.Press()
		case 'b', 'B':
			p.Recenter.Press()
		case 'y', 'Y':
			p.Resolution.Press()
		}
	}
	return false
}
