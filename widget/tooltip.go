package widget

import goterm "github.com/ahnafcodes/goterm"

// Tooltip is a small bordered text popup anchored to a widget's bounds. At
// most one tooltip is ever active at a time across the whole application
// (§4.8): App owns that single-slot activation state, and this type only
// describes what one tooltip looks like once shown.
type Tooltip struct {
	Text string
	// DelayMs records a hover delay in milliseconds. App does not consult
	// it: a tooltip is activated as soon as its widget becomes the hover
	// target.
	DelayMs int
}

// NewTooltip returns a tooltip with DelayMs set to 500.
func NewTooltip(text string) *Tooltip {
	return &Tooltip{Text: text, DelayMs: 500}
}

// Place computes the tooltip's bounding rect directly below anchor,
// left-aligned with it (above it when there is no room below), clamped so
// it never starts left of or above the screen's top-left corner.
func (t *Tooltip) Place(anchor goterm.Rect, screenW, screenH int) goterm.Rect {
	w := len(t.Text) + 2
	h := 3
	x := anchor.X
	y := anchor.Y + anchor.H
	if x+w > screenW {
		x = screenW - w
	}
	if x < 0 {
		x = 0
	}
	if y+h > screenH {
		y = anchor.Y - h
	}
	if y < 0 {
		y = 0
	}
	return goterm.Rect{X: x, Y: y, W: w, H: h}
}

// Render draws the tooltip's border and text at r.
func (t *Tooltip) Render(b *goterm.Buffer, r goterm.Rect) {
	bg := goterm.RGB(60, 60, 60)
	fg := goterm.ContrastColor(bg)
	drawBorder(b, r, fg)
	for i, ch := range t.Text {
		if i+1 >= r.W-1 {
			break
		}
		b.Set(r.X+1+i, r.Y+1, goterm.Cell{Content: string(ch), Fg: fg, Bg: bg})
	}
}
