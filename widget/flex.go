package widget

import (
	goterm "github.com/ahnafcodes/goterm"
	"github.com/ahnafcodes/goterm/vtparser"
)

// Direction is a Flex container's main axis.
type Direction int

const (
	Row Direction = iota
	Column
)

// Preferred is implemented by widgets that know their own natural size
// (e.g. a label sized to its text). Flex consults it for Auto children;
// widgets that don't implement it are treated as weight-1 flex children,
// generalizing the reference implementation's string/Renderable auto-sizing
// (layout_engine.go measureContent) to an arbitrary Widget tree.
type Preferred interface {
	PreferredSize(maxW, maxH int) (int, int)
}

// FlexChild pairs a widget with its main-axis sizing constraint.
type FlexChild struct {
	Widget Widget
	Size   Size
}

// Flex arranges children along one axis inside an optional border and
// padding box, in two measurement passes: fixed and auto children first,
// then flex children share what's left (§4.5), generalizing the reference
// implementation's LayoutNode.Measure/Draw box model.
type Flex struct {
	Base
	direction Direction
	Padding   int
	Border    bool
	BorderFg  goterm.Color

	children []FlexChild
	geoms    []goterm.Rect
}

// NewFlex constructs an empty Flex container along the given axis.
func NewFlex(dir Direction) *Flex {
	f := &Flex{direction: dir, BorderFg: goterm.DefaultColor}
	return f
}

// Add appends a child with its sizing constraint.
func (f *Flex) Add(w Widget, s Size) {
	f.children = append(f.children, FlexChild{Widget: w, Size: s})
}

// Children returns the container's direct children.
func (f *Flex) Children() []Widget {
	out := make([]Widget, len(f.children))
	for i, c := range f.children {
		out[i] = c.Widget
	}
	return out
}

// HasFocusWithin reports whether this container or any descendant holds
// focus.
func (f *Flex) HasFocusWithin() bool {
	if f.HasFocus() {
		return true
	}
	for _, c := range f.children {
		if sub, ok := c.Widget.(Container); ok {
			if sub.HasFocusWithin() {
				return true
			}
		} else if c.Widget.HasFocus() {
			return true
		}
	}
	return false
}

// Layout measures and places every child within the container's current
// bounds, following the box model: border consumes one cell on each edge,
// padding consumes Padding cells inside that.
func (f *Flex) Layout() {
	r := f.Bounds()
	deduction := f.Padding * 2
	if f.Border {
		deduction += 2
	}
	contentW := max(r.W-deduction, 0)
	contentH := max(r.H-deduction, 0)

	mainAvail := contentW
	if f.direction == Column {
		mainAvail = contentH
	}

	sizes := make([]int, len(f.children))
	var totalFixed, totalAuto, totalFlexWeight int

	for i, c := range f.children {
		switch c.Size.Kind {
		case SizeFixed:
			sizes[i] = c.Size.Value
			totalFixed += sizes[i]
		case SizeAuto:
			if _, ok := c.Widget.(Preferred); ok {
				sizes[i] = f.autoExtent(c.Widget, contentW, contentH)
				totalAuto += sizes[i]
			} else {
				totalFlexWeight++
			}
		case SizeFlex:
			totalFlexWeight += c.Size.Value
		}
	}

	available := max(mainAvail-totalFixed-totalAuto, 0)
	for i, c := range f.children {
		weight := c.Size.Value
		if c.Size.Kind == SizeAuto {
			if _, ok := c.Widget.(Preferred); ok {
				continue
			}
			weight = 1
		} else if c.Size.Kind != SizeFlex {
			continue
		}
		share := 0
		if totalFlexWeight > 0 {
			share = available * weight / totalFlexWeight
		}
		sizes[i] = share
	}

	contentX := r.X + f.Padding
	contentY := r.Y + f.Padding
	if f.Border {
		contentX++
		contentY++
	}

	f.geoms = make([]goterm.Rect, len(f.children))
	cur := contentX
	if f.direction == Column {
		cur = contentY
	}
	for i, c := range f.children {
		var cr goterm.Rect
		if f.direction == Row {
			cr = goterm.Rect{X: cur, Y: contentY, W: sizes[i], H: contentH}
			cur += sizes[i]
		} else {
			cr = goterm.Rect{X: contentX, Y: cur, W: contentW, H: sizes[i]}
			cur += sizes[i]
		}
		f.geoms[i] = cr
		c.Widget.SetBounds(cr)
		if sub, ok := c.Widget.(Container); ok {
			sub.Layout()
		}
	}
}

// autoExtent asks a Preferred child its preferred size on the main axis,
// clamped to the content space. Layout does not call it for Auto children
// without a natural size; those get a weight-1 flex share instead.
func (f *Flex) autoExtent(w Widget, maxW, maxH int) int {
	if p, ok := w.(Preferred); ok {
		cw, ch := p.PreferredSize(maxW, maxH)
		if f.direction == Row {
			return min(cw, maxW)
		}
		return min(ch, maxH)
	}
	return 0
}

// Render draws the optional border, then each visible child within its
// own clip rect, so overflowing content is truncated rather than bleeding
// into siblings (§4.2's clip-stack contract).
func (f *Flex) Render(b *goterm.Buffer) {
	r := f.Bounds()
	if f.Border {
		drawBorder(b, r, f.BorderFg)
	}
	for i, c := range f.children {
		if !c.Widget.Visible() {
			continue
		}
		b.PushClip(f.geoms[i])
		c.Widget.Render(b)
		b.PopClip()
	}
}

// OnEvent dispatches to the child under the event's coordinates for mouse
// events, and to the focused child otherwise. It returns whether any child
// consumed the event.
func (f *Flex) OnEvent(e vtparser.Event) bool {
	if e.Kind == vtparser.Mouse {
		for _, c := range f.children {
			if c.Widget.Visible() && c.Widget.HitTest(e.X, e.Y) {
				if c.Widget.OnEvent(e) {
					return true
				}
			}
		}
		return false
	}
	for _, c := range f.children {
		if sub, ok := c.Widget.(Container); ok {
			if sub.HasFocusWithin() && sub.OnEvent(e) {
				return true
			}
		} else if c.Widget.HasFocus() && c.Widget.OnEvent(e) {
			return true
		}
	}
	return false
}

func drawBorder(b *goterm.Buffer, r goterm.Rect, fg goterm.Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	set := func(x, y int, ch string) {
		b.Set(x, y, goterm.Cell{Content: ch, Fg: fg, Bg: goterm.DefaultColor})
	}
	for x := r.X + 1; x < r.X+r.W-1; x++ {
		set(x, r.Y, "─")
		set(x, r.Y+r.H-1, "─")
	}
	for y := r.Y + 1; y < r.Y+r.H-1; y++ {
		set(r.X, y, "│")
		set(r.X+r.W-1, y, "│")
	}
	set(r.X, r.Y, "┌")
	set(r.X+r.W-1, r.Y, "┐")
	set(r.X, r.Y+r.H-1, "└")
	set(r.X+r.W-1, r.Y+r.H-1, "┘")
}
