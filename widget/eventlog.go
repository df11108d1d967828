package widget

import (
	"fmt"

	goterm "github.com/ahnafcodes/goterm"
	"github.com/ahnafcodes/goterm/internal/ring"
	"github.com/ahnafcodes/goterm/vtparser"
	"github.com/ahnafcodes/goterm/width"
)

// EventLog is a diagnostic widget that transparently observes every event
// routed through it and renders the most recent ones, newest first,
// generalizing the reference EventLog demo widget's deque-backed history.
type EventLog struct {
	Base
	Title string

	buf *ring.Buffer[string]
}

// NewEventLog returns an EventLog retaining at most capacity lines of
// history.
func NewEventLog(capacity int) *EventLog {
	return &EventLog{
		Title: "Event Log",
		buf:   ring.New[string](capacity),
	}
}

func (l *EventLog) Render(b *goterm.Buffer) {
	r := l.Bounds()
	if r.W <= 0 || r.H <= 0 {
		return
	}
	row := 0
	drawLine := func(s string) {
		if row >= r.H {
			return
		}
		col := 0
		for _, ch := range s {
			cw := width.RuneWidth(ch)
			if col+cw > r.W {
				break
			}
			b.Set(r.X+col, r.Y+row, goterm.Cell{Content: string(ch)})
			col += cw
		}
		row++
	}
	drawLine(l.Title)
	sep := ""
	for i := 0; i < r.W; i++ {
		sep += "-"
	}
	drawLine(sep)
	for _, line := range l.buf.Entries() {
		if row >= r.H {
			break
		}
		drawLine(line)
	}
}

// OnEvent logs every event it sees and reports the same containment rule
// the reference widget used: mouse events are consumed only when they fall
// within this widget's own bounds, letting them pass through to siblings
// (e.g. buttons) otherwise; every other event kind is always consumed.
func (l *EventLog) OnEvent(e vtparser.Event) bool {
	l.buf.Push(formatEvent(e))
	if e.Kind == vtparser.Mouse {
		return l.Bounds().Contains(e.X, e.Y)
	}
	return true
}

func formatEvent(e vtparser.Event) string {
	switch e.Kind {
	case vtparser.None:
		return "None"
	case vtparser.Resize:
		return fmt.Sprintf("Resize(%dx%d)", e.X, e.Y)
	case vtparser.Key:
		var keyDesc string
		switch {
		case e.KeyCode < 32:
			keyDesc = fmt.Sprintf("Key(%d ^%c)", e.KeyCode, rune(e.KeyCode+64))
		case e.KeyCode < 127:
			keyDesc = fmt.Sprintf("Key(%d '%c')", e.KeyCode, rune(e.KeyCode))
		default:
			keyDesc = fmt.Sprintf("Key(%d)", e.KeyCode)
		}
		return keyDesc + formatMods(e.Mod)
	case vtparser.Mouse:
		return formatMouse(e)
	case vtparser.Quit:
		return "Quit"
	case vtparser.Paste:
		return fmt.Sprintf("Paste(text: %q)", e.PasteText)
	default:
		return fmt.Sprintf("Unknown(%d)", e.Kind)
	}
}

func formatMouse(e vtparser.Event) string {
	s := fmt.Sprintf("Mouse(%d, %d) ", e.X, e.Y)
	switch {
	case e.MouseDrag():
		s += "Drag "
	case e.MouseMove():
		s += "Move "
	case e.MouseWheel():
		if e.Button == 64 {
			s += "Wheel(Up) "
		} else if e.Button == 65 {
			s += "Wheel(Down) "
		} else {
			s += "Wheel "
		}
	case e.MouseRelease():
		s += "Release "
	case e.MouseLeft():
		s += "Click(Left) "
	case e.MouseRight():
		s += "Click(Right) "
	case e.MouseMiddle():
		s += "Click(Middle) "
	default:
		s += fmt.Sprintf("Unknown(%d) ", e.Button)
	}
	return s + formatMods(e.Mod)
}

func formatMods(m vtparser.Mod) string {
	s := ""
	if m&vtparser.ModCtrl != 0 {
		s += "+Ctrl"
	}
	if m&vtparser.ModShift != 0 {
		s += "+Shift"
	}
	if m&vtparser.ModAlt != 0 {
		s += "+Alt"
	}
	return s
}
