package goterm

import "testing"

func TestBufferSetGet(t *testing.T) {
	b := NewBuffer(10, 5)
	b.Set(2, 1, Cell{Content: "x"})
	if got := b.Get(2, 1); got.Content != "x" {
		t.Errorf("Get after Set = %q, want %q", got.Content, "x")
	}
}

func TestBufferSetOutsideClipIsNoOp(t *testing.T) {
	b := NewBuffer(10, 10)
	b.PushClip(Rect{X: 0, Y: 0, W: 5, H: 5})
	b.Set(7, 7, Cell{Content: "x"})
	if got := b.Get(7, 7); got.Content == "x" {
		t.Errorf("Set outside clip should be a no-op, got %q", got.Content)
	}
}

func TestPushClipIntersects(t *testing.T) {
	b := NewBuffer(20, 20)
	b.PushClip(Rect{X: 0, Y: 0, W: 10, H: 10})
	b.PushClip(Rect{X: 5, Y: 5, W: 10, H: 10})
	want := Rect{X: 5, Y: 5, W: 5, H: 5}
	if got := b.top(); got != want {
		t.Errorf("effective clip = %+v, want %+v", got, want)
	}
}

func TestPopClipNeverEmpty(t *testing.T) {
	b := NewBuffer(1, 1)
	b.PopClip()
	b.PopClip()
	if len(b.clips) != 1 {
		t.Fatalf("clip stack length = %d, want 1 (root rect never popped)", len(b.clips))
	}
	if b.top() != (Rect{X: 0, Y: 0, W: 1, H: 1}) {
		t.Errorf("root clip should remain the full buffer rect")
	}
}

func TestPushFullClipEscapesContainer(t *testing.T) {
	b := NewBuffer(20, 20)
	b.PushClip(Rect{X: 0, Y: 0, W: 5, H: 5})
	b.PushFullClip()
	b.Set(15, 15, Cell{Content: "x"})
	if got := b.Get(15, 15); got.Content != "x" {
		t.Errorf("PushFullClip should escape the enclosing clip")
	}
}

func TestResizeClearsAndResetsClip(t *testing.T) {
	b := NewBuffer(5, 5)
	b.Set(0, 0, Cell{Content: "x"})
	b.PushClip(Rect{X: 0, Y: 0, W: 2, H: 2})
	b.Resize(3, 3)
	if b.Width != 3 || b.Height != 3 {
		t.Fatalf("Resize did not update dimensions")
	}
	if got := b.Get(0, 0); got.Content != "" {
		t.Errorf("Resize should clear cells, got %q", got.Content)
	}
	if len(b.clips) != 1 {
		t.Errorf("Resize should reset clip stack to the root rect")
	}
}

func TestWideCharWritesContinuation(t *testing.T) {
	b := NewBuffer(10, 1)
	b.Set(0, 0, Cell{Content: "日", Bg: RGB(1, 2, 3)})
	if got := b.Get(1, 0); got.Content != "" || !got.Bg.Equal(RGB(1, 2, 3)) {
		t.Errorf("continuation cell = %+v, want empty content matching bg", got)
	}
}

func TestGetOutOfBoundsReturnsBlank(t *testing.T) {
	b := NewBuffer(2, 2)
	if got := b.Get(-1, 0); got.Content != blankCell.Content {
		t.Errorf("out-of-bounds Get should return the static blank cell")
	}
	if got := b.Get(5, 5); got.Content != blankCell.Content {
		t.Errorf("out-of-bounds Get should return the static blank cell")
	}
}

func TestSetCharPreservesStyle(t *testing.T) {
	b := NewBuffer(5, 5)
	b.Set(0, 0, Cell{Content: "a", Bold: true})
	b.SetChar(0, 0, "b")
	got := b.Get(0, 0)
	if got.Content != "b" || !got.Bold {
		t.Errorf("SetChar should only change content, got %+v", got)
	}
}

func TestContrastColor(t *testing.T) {
	if got := ContrastColor(RGB(255, 255, 255)); got != RGB(0, 0, 0) {
		t.Errorf("ContrastColor(white) = %+v, want black", got)
	}
	if got := ContrastColor(RGB(0, 0, 0)); got != RGB(255, 255, 255) {
		t.Errorf("ContrastColor(black) = %+v, want white", got)
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 5, W: 10, H: 10}
	got := a.Intersect(b)
	want := Rect{X: 5, Y: 5, W: 5, H: 5}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	disjoint := Rect{X: 100, Y: 100, W: 5, H: 5}
	got = a.Intersect(disjoint)
	if got.W != 0 || got.H != 0 {
		t.Errorf("disjoint Intersect should clamp to zero size, got %+v", got)
	}
}
