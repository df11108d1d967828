package app

import (
	goterm "github.com/ahnafcodes/goterm"
)

// updateActiveTooltip hides whatever tooltip was showing and, if the new
// hover target carries one, stores it in the single active_tooltip slot
// (§4.8). There is no per-tooltip delay in the core; a widget wanting a
// hover delay must gate Tooltip() itself.
func (a *App) updateActiveTooltip() {
	if a.hovered == nil || a.hovered.Tooltip() == nil {
		a.activeTooltip = nil
		a.activeTooltipAt = goterm.Rect{}
		return
	}
	a.activeTooltip = a.hovered.Tooltip()
	a.activeTooltipAt = a.hovered.Bounds()
	a.needsRender = true
}

// renderActiveTooltip paints the active tooltip last, escaping any
// enclosing clip via PushFullClip so it is never truncated by the widget
// it's anchored to (§4.8).
func (a *App) renderActiveTooltip(b *goterm.Buffer) {
	if a.activeTooltip == nil {
		return
	}
	r := a.activeTooltip.Place(a.activeTooltipAt, b.Width, b.Height)
	b.PushFullClip()
	a.activeTooltip.Render(b, r)
	b.PopClip()
}
