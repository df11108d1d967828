package widget

import (
	goterm "github.com/ahnafcodes/goterm"
	"github.com/ahnafcodes/goterm/signals"
	"github.com/ahnafcodes/goterm/vtparser"
	"github.com/ahnafcodes/goterm/width"
)

// Label is a single-line, non-focusable text widget. Its content can be
// static or bound to a reactive *signals.Signal[string]: binding wires the
// dependency-tracking Effect from package signals into the widget tree, so
// a signal write anywhere in the program schedules a render without the
// widget's owner polling for changes.
type Label struct {
	Base
	Fg, Bg goterm.Color

	text   string
	sig    *signals.Signal[string]
	effect *signals.Effect
}

// NewLabel returns a Label with static text.
func NewLabel(text string) *Label {
	return &Label{text: text, Fg: goterm.DefaultColor, Bg: goterm.DefaultColor}
}

// NewReactiveLabel binds the label's text to sig. onDirty is invoked (on
// the goroutine that mutated the signal) every time the bound value
// changes, so callers typically pass an App's render-request hook.
func NewReactiveLabel(sig *signals.Signal[string], onDirty func()) *Label {
	l := &Label{sig: sig, Fg: goterm.DefaultColor, Bg: goterm.DefaultColor}
	first := true
	l.effect = signals.CreateEffect(func() {
		l.text = sig.Get()
		if !first && onDirty != nil {
			onDirty()
		}
		first = false
	})
	return l
}

// NewComputedLabel binds the label's text to a derived signals.Computed:
// onDirty fires every time one of the computed's upstream signals changes,
// whether or not the derived text ends up different — the same binding as
// NewReactiveLabel but for a value built from one or more signals rather
// than a single one.
func NewComputedLabel(c *signals.Computed[string], onDirty func()) *Label {
	l := &Label{Fg: goterm.DefaultColor, Bg: goterm.DefaultColor}
	first := true
	l.effect = signals.CreateEffect(func() {
		l.text = c.Get()
		if !first && onDirty != nil {
			onDirty()
		}
		first = false
	})
	return l
}

// Dispose releases the label's effect subscription. Only meaningful for
// reactive labels; a no-op otherwise.
func (l *Label) Dispose() {
	if l.effect != nil {
		l.effect.Dispose()
	}
}

// SetText overwrites a static label's text directly. Has no effect on a
// label bound with NewReactiveLabel — set the signal instead.
func (l *Label) SetText(text string) {
	if l.sig == nil {
		l.text = text
	}
}

// PreferredSize reports the label's natural extent: its display width by
// one row, clamped to the available space.
func (l *Label) PreferredSize(maxW, maxH int) (int, int) {
	w := width.StringWidth(l.text)
	if w > maxW {
		w = maxW
	}
	h := 1
	if h > maxH {
		h = maxH
	}
	return w, h
}

func (l *Label) Render(b *goterm.Buffer) {
	r := l.Bounds()
	col := 0
	for _, ch := range l.text {
		cw := width.RuneWidth(ch)
		if col+cw > r.W {
			break
		}
		b.Set(r.X+col, r.Y, goterm.Cell{Content: string(ch), Fg: l.Fg, Bg: l.Bg})
		col += cw
	}
}

func (l *Label) OnEvent(e vtparser.Event) bool { return false }
