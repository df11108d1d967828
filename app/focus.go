package app

import (
	"github.com/ahnafcodes/goterm/widget"
)

// focusRoot returns the subtree tab-cycle, hit-test, and click-to-focus
// operate against: the topmost open dialog if one exists, else the
// application root (§4.6).
func (a *App) focusRoot() widget.Widget {
	if d := a.topDialog(); d != nil {
		return d.Root
	}
	return a.root
}

// collectFocusable gathers every focusable, tab-stop, visible,
// positive-sized widget in preorder, per §4.6's tab-cycle rule.
func collectFocusable(w widget.Widget) []widget.Widget {
	var out []widget.Widget
	var walk func(widget.Widget)
	walk = func(w widget.Widget) {
		if !w.Visible() {
			return
		}
		if w.Focusable() && w.TabStop() {
			out = append(out, w)
		}
		if c, ok := w.(widget.Container); ok {
			for _, child := range c.Children() {
				walk(child)
			}
		}
	}
	walk(w)
	return out
}

// firstFocusable returns the first tab-stop widget in preorder under w, or
// nil.
func firstFocusable(w widget.Widget) widget.Widget {
	list := collectFocusable(w)
	if len(list) == 0 {
		return nil
	}
	return list[0]
}

// setFocus blurs the previously focused widget (if any) and focuses w (if
// not nil).
func (a *App) setFocus(w widget.Widget) {
	if a.focused != nil {
		a.focused.SetFocus(false)
	}
	a.focused = w
	if w != nil {
		w.SetFocus(true)
	}
	a.needsRender = true
}

// advanceTabCycle moves focus to the next (or, if reverse, previous)
// focusable widget in the current focus root, wrapping around. The
// focused widget's position is found by identity; if it isn't in the
// list (or nothing is focused), the cycle starts at index 0 (or the
// last index, in reverse) (§4.6).
func (a *App) advanceTabCycle(reverse bool) {
	list := collectFocusable(a.focusRoot())
	if len(list) == 0 {
		return
	}
	idx := -1
	for i, w := range list {
		if w == a.focused {
			idx = i
			break
		}
	}
	var next int
	switch {
	case reverse && idx == -1:
		next = len(list) - 1
	case reverse:
		next = (idx - 1 + len(list)) % len(list)
	case idx == -1:
		next = 0
	default:
		next = (idx + 1) % len(list)
	}
	a.setFocus(list[next])
}

// findWidgetAt performs the clip-aware, reverse-draw-order hit-test of
// §4.6: children are tested last-drawn-first, and a child is only
// considered if the point lies within both its own bounds and clip the
// caller intersected in. If no child hits but the widget itself reports
// hit_test, the widget wins. onlyFocusable restricts the result to
// widgets reporting Focusable() true.
func findWidgetAt(w widget.Widget, px, py int, onlyFocusable bool) widget.Widget {
	if !w.Visible() {
		return nil
	}
	if c, ok := w.(widget.Container); ok {
		children := c.Children()
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			if !child.Visible() {
				continue
			}
			b := child.Bounds()
			if px < b.X || px >= b.X+b.W || py < b.Y || py >= b.Y+b.H {
				continue
			}
			if hit := findWidgetAt(child, px, py, onlyFocusable); hit != nil {
				return hit
			}
		}
	}
	if !w.HitTest(px, py) {
		return nil
	}
	if onlyFocusable && !w.Focusable() {
		return nil
	}
	return w
}

// resolveClickToFocus implements §4.6's click-to-focus rule for a
// left-press not consumed by dialog chrome: focus the deepest focusable
// widget under the point, or blur entirely if the point hits nothing. A
// hit on a non-focusable widget leaves focus unchanged.
func (a *App) resolveClickToFocus(px, py int) {
	hit := findWidgetAt(a.focusRoot(), px, py, true)
	if hit != nil {
		a.setFocus(hit)
		return
	}
	anyHit := findWidgetAt(a.focusRoot(), px, py, false)
	if anyHit == nil {
		a.setFocus(nil)
	}
}

// resolveHover recomputes the hover target for the given point and, on
// change, fires the outgoing/incoming hover callbacks and updates the
// single active-tooltip slot (§4.8).
func (a *App) resolveHover(px, py int) {
	hit := findWidgetAt(a.focusRoot(), px, py, false)
	if hit == a.hovered {
		return
	}
	if h, ok := a.hovered.(hoverable); ok {
		h.SetHovered(false)
	}
	a.hovered = hit
	if h, ok := a.hovered.(hoverable); ok {
		h.SetHovered(true)
	}
	a.updateActiveTooltip()
}

// hoverable is implemented by widget.Base (via SetHovered); widgets that
// don't embed Base simply never receive hover callbacks.
type hoverable interface {
	SetHovered(bool)
}
