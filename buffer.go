package goterm

import "github.com/ahnafcodes/goterm/width"

// Buffer is a fixed-size 2D grid of styled cells with a clip-rectangle
// stack. It generalizes the reference screen buffer (which stored a bare
// rune plus a single style) to UTF-8 grapheme content so wide and combining
// sequences are representable, and adds the clip stack containers and
// overlays rely on (§4.2).
type Buffer struct {
	Width, Height int
	cells         []Cell
	clips         []Rect
}

// NewBuffer builds a w x h buffer, all cells default-initialized, with a
// single full-buffer clip rect.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{Width: w, Height: h}
	b.cells = make([]Cell, w*h)
	b.clips = []Rect{{X: 0, Y: 0, W: w, H: h}}
	return b
}

// Resize destructively reallocates the buffer and resets the clip stack to
// a single full-buffer rect.
func (b *Buffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.Width, b.Height = w, h
	b.cells = make([]Cell, w*h)
	b.clips = []Rect{{X: 0, Y: 0, W: w, H: h}}
}

// top returns the active (innermost) clip rect. The stack is guaranteed
// non-empty by construction.
func (b *Buffer) top() Rect {
	return b.clips[len(b.clips)-1]
}

// PushClip intersects r with the current clip and pushes the result.
func (b *Buffer) PushClip(r Rect) {
	b.clips = append(b.clips, b.top().Intersect(r))
}

// PushFullClip pushes the full buffer rect unconditionally, escaping any
// enclosing container's clip. Overlays (dialogs, tooltips) use this so they
// can paint outside the bounds of whatever clipped container triggered
// them.
func (b *Buffer) PushFullClip() {
	b.clips = append(b.clips, Rect{X: 0, Y: 0, W: b.Width, H: b.Height})
}

// PopClip pops the innermost clip. It is a no-op once only the root
// full-buffer rect remains.
func (b *Buffer) PopClip() {
	if len(b.clips) <= 1 {
		return
	}
	b.clips = b.clips[:len(b.clips)-1]
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Set writes a cell at (x,y). Ignored unless (x,y) lies in both the buffer
// bounds and the top clip rect. Enforces the wide-char invariant: a
// width-2 Content also writes the continuation sentinel at x+1 (clipped
// independently, so a wide glyph straddling a clip edge loses only its
// trailing half).
func (b *Buffer) Set(x, y int, cell Cell) {
	if !b.inBounds(x, y) || !b.top().Contains(x, y) {
		return
	}
	b.cells[y*b.Width+x] = cell
	if width.StringWidth(cell.Content) == 2 {
		cont := Cell{Content: "", Bg: cell.Bg}
		if b.inBounds(x+1, y) && b.top().Contains(x+1, y) {
			b.cells[y*b.Width+x+1] = cont
		}
	}
}

// SetChar mutates only a cell's content, preserving its existing style.
func (b *Buffer) SetChar(x, y int, ch string) {
	if !b.inBounds(x, y) || !b.top().Contains(x, y) {
		return
	}
	idx := y*b.Width + x
	cell := b.cells[idx]
	cell.Content = ch
	b.Set(x, y, cell)
}

// Get returns the cell at (x,y), or a static blank cell when out of
// bounds — Get never panics.
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return blankCell
	}
	return b.cells[y*b.Width+x]
}

// Clear fills every cell with fill, ignoring the clip stack (a full
// wipe precedes each frame).
func (b *Buffer) Clear(fill Cell) {
	for i := range b.cells {
		b.cells[i] = fill
	}
}
