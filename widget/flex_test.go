package widget

import (
	"testing"

	goterm "github.com/ahnafcodes/goterm"
	"github.com/ahnafcodes/goterm/vtparser"
)

// stubWidget is a minimal Widget for exercising Flex layout without any
// rendering concerns.
type stubWidget struct {
	Base
	renders int
}

func (s *stubWidget) Render(b *goterm.Buffer)          { s.renders++ }
func (s *stubWidget) OnEvent(e vtparser.Event) bool     { return false }

func TestFlexRowFixedAndFlexSplitSpace(t *testing.T) {
	f := NewFlex(Row)
	f.SetBounds(goterm.Rect{X: 0, Y: 0, W: 20, H: 5})
	a := &stubWidget{}
	b := &stubWidget{}
	f.Add(a, FixedSize(5))
	f.Add(b, FlexSize(1))
	f.Layout()

	if got := a.Bounds(); got.W != 5 {
		t.Errorf("fixed child width = %d, want 5", got.W)
	}
	if got := b.Bounds(); got.W != 15 {
		t.Errorf("flex child width = %d, want 15", got.W)
	}
}

func TestFlexColumnStacksChildren(t *testing.T) {
	f := NewFlex(Column)
	f.SetBounds(goterm.Rect{X: 0, Y: 0, W: 10, H: 9})
	a := &stubWidget{}
	b := &stubWidget{}
	f.Add(a, FlexSize(1))
	f.Add(b, FlexSize(2))
	f.Layout()

	if got := a.Bounds(); got.H != 3 {
		t.Errorf("first flex child height = %d, want 3", got.H)
	}
	if got := b.Bounds(); got.H != 6 || got.Y != 3 {
		t.Errorf("second flex child = %+v, want H=6 Y=3", got)
	}
}

func TestFlexBorderShrinksContentArea(t *testing.T) {
	f := NewFlex(Row)
	f.Border = true
	f.SetBounds(goterm.Rect{X: 0, Y: 0, W: 10, H: 5})
	a := &stubWidget{}
	f.Add(a, FlexSize(1))
	f.Layout()

	got := a.Bounds()
	if got.X != 1 || got.Y != 1 || got.W != 8 || got.H != 3 {
		t.Errorf("bordered content rect = %+v, want X=1 Y=1 W=8 H=3", got)
	}
}

func TestFlexRenderSkipsInvisibleChildren(t *testing.T) {
	f := NewFlex(Row)
	f.SetBounds(goterm.Rect{X: 0, Y: 0, W: 10, H: 3})
	a := &stubWidget{}
	a.SetHiddenFor(Large, true)
	a.UpdateResponsive(Large, TallHeight)
	f.Add(a, FlexSize(1))
	f.Layout()

	buf := goterm.NewBuffer(10, 3)
	f.Render(buf)
	if a.renders != 0 {
		t.Errorf("hidden child should not render, got %d calls", a.renders)
	}
}

func TestFlexHasFocusWithinNested(t *testing.T) {
	inner := NewFlex(Row)
	leaf := &stubWidget{}
	leaf.SetFocusable(true, true)
	inner.Add(leaf, FlexSize(1))

	outer := NewFlex(Column)
	outer.Add(inner, FlexSize(1))

	if outer.HasFocusWithin() {
		t.Fatalf("nothing focused yet, want false")
	}
	leaf.SetFocus(true)
	if !outer.HasFocusWithin() {
		t.Errorf("expected HasFocusWithin to see through nested Flex")
	}
}
