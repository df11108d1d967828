package app

import (
	goterm "github.com/ahnafcodes/goterm"
	"github.com/ahnafcodes/goterm/theme"
	"github.com/ahnafcodes/goterm/vtparser"
	"github.com/ahnafcodes/goterm/widget"
)

// Dialog is an overlay entry on the dialog stack: its own widget subtree,
// a bounding rect, and the flags that govern modality, focus handling, and
// shadow rendering (§4.8), generalizing the reference MenuDialog's
// open/close pair to a flag-driven overlay usable for any widget subtree.
type Dialog struct {
	Root       widget.Widget
	Rect       goterm.Rect
	Modal      bool
	StealFocus bool
	Shadow     bool

	open        bool
	savedFocus  widget.Widget
}

// IsOpen reports whether the dialog is currently on the app's stack.
func (d *Dialog) IsOpen() bool { return d.open }

// OpenDialog pushes d onto the stack at the given top-left position, sized
// to w x h. Opening an already-open dialog is a no-op (§4.8: "an open/close
// on a dialog already in the requested state is a no-op").
func (a *App) OpenDialog(d *Dialog, x, y, w, h int) {
	if d.open {
		return
	}
	d.Rect = goterm.Rect{X: x, Y: y, W: w, H: h}
	d.Root.SetBounds(d.Rect)
	if c, ok := d.Root.(widget.Container); ok {
		c.Layout()
	}
	d.open = true
	a.dialogs = append(a.dialogs, d)
	a.dialogStackChanged = true
	a.needsRender = true
}

// OpenDialogCentered opens d centered within the current terminal size.
func (a *App) OpenDialogCentered(d *Dialog, w, h int) {
	tw, th := a.back.Width, a.back.Height
	x := (tw - w) / 2
	y := (th - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	a.OpenDialog(d, x, y, w, h)
}

// CloseDialog removes d from the stack wherever it is. Closing a dialog
// that isn't open is a no-op. Safe to call mid-dispatch: the remaining
// walk checks IsOpen before recursing into each entry.
func (a *App) CloseDialog(d *Dialog) {
	if !d.open {
		return
	}
	d.open = false
	for i, entry := range a.dialogs {
		if entry == d {
			a.dialogs = append(a.dialogs[:i], a.dialogs[i+1:]...)
			break
		}
	}
	if d.StealFocus {
		a.closedStealFocus = append(a.closedStealFocus, d.savedFocus)
		d.savedFocus = nil
	}
	a.dialogStackChanged = true
	a.needsRender = true
}

// topDialog returns the last-pushed open dialog, or nil.
func (a *App) topDialog() *Dialog {
	if len(a.dialogs) == 0 {
		return nil
	}
	return a.dialogs[len(a.dialogs)-1]
}

// syncFocusOnStackChange runs the focus save/restore step of §4.6 item 1:
// when a steal_focus dialog is newly on top, save the current focus and
// move to its first focusable descendant; when the stack shrinks back
// past a steal_focus dialog, restore what was saved.
func (a *App) syncFocusOnStackChange() {
	if !a.dialogStackChanged {
		return
	}
	a.dialogStackChanged = false

	top := a.topDialog()
	if top != nil && top.StealFocus && top.savedFocus == nil {
		top.savedFocus = a.focused
		if first := firstFocusable(top.Root); first != nil {
			a.setFocus(first)
		} else {
			a.setFocus(nil)
		}
		return
	}

	// Stack shrank: restore focus from the most recently closed
	// steal_focus dialog, if any is still pending restoration.
	for i := len(a.closedStealFocus) - 1; i >= 0; i-- {
		saved := a.closedStealFocus[i]
		a.closedStealFocus = a.closedStealFocus[:i]
		a.setFocus(saved)
		return
	}
}

// dispatchToDialogsAndRoot routes an event top-down through open dialogs,
// stopping at the first modal dialog that didn't consume a mouse event
// itself (the modal absorbs it rather than letting it fall through to
// dialogs below or the root), then finally to the root.
func (a *App) dispatchToDialogsAndRoot(e vtparser.Event) bool {
	for i := len(a.dialogs) - 1; i >= 0; i-- {
		d := a.dialogs[i]
		if !d.IsOpen() {
			continue
		}
		if d.Root.OnEvent(e) {
			return true
		}
		if d.Modal && e.Kind == vtparser.Mouse {
			return true // absorbed: modality only blocks mouse, not keyboard (§4.8)
		}
	}
	return a.root.OnEvent(e)
}

// renderOverlays draws every open dialog in stack order (bottom to top),
// each under its own shadow and full clip.
func (a *App) renderOverlays(b *goterm.Buffer) {
	for _, d := range a.dialogs {
		if !d.IsOpen() {
			continue
		}
		if d.Shadow {
			drawShadow(b, d.Rect)
		}
		b.PushFullClip()
		b.PushClip(d.Rect)
		d.Root.Render(b)
		b.PopClip()
		b.PopClip()
	}
}

// drawShadow darkens the one-cell strip below and to the right of r, using
// a gamma-reduced copy of whatever is already beneath it (§4.8).
func drawShadow(b *goterm.Buffer, r goterm.Rect) {
	darken := func(x, y int) {
		cell := b.Get(x, y)
		cell.Bg = theme.Blend(cell.Bg.Resolve(theme.Current().Background), goterm.RGB(0, 0, 0), 0.5)
		cell.Fg = theme.Blend(cell.Fg.Resolve(theme.Current().Foreground), goterm.RGB(0, 0, 0), 0.5)
		b.Set(x, y, cell)
	}
	for x := r.X + 1; x <= r.X+r.W; x++ {
		darken(x, r.Y+r.H)
	}
	for y := r.Y + 1; y <= r.Y+r.H; y++ {
		darken(r.X+r.W, y)
	}
}
