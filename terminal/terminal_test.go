package terminal

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	goterm "github.com/ahnafcodes/goterm"
)

func newTestTerminal(buf *bytes.Buffer) *Terminal {
	return &Terminal{out: bufio.NewWriter(buf)}
}

func TestRenderIdenticalBuffersEmitOnlyReset(t *testing.T) {
	var out bytes.Buffer
	tm := newTestTerminal(&out)

	cur := goterm.NewBuffer(3, 1)
	prev := goterm.NewBuffer(3, 1)
	tm.Render(cur, prev)

	if out.String() != "\x1b[0m" {
		t.Errorf("identical buffers should emit only the reset sequence, got %q", out.String())
	}
}

func TestRenderSingleCellChangeMovesCursorOnce(t *testing.T) {
	var out bytes.Buffer
	tm := newTestTerminal(&out)

	prev := goterm.NewBuffer(5, 1)
	cur := goterm.NewBuffer(5, 1)
	cur.Set(2, 0, goterm.Cell{Content: "x", Bold: true})

	tm.Render(cur, prev)
	s := out.String()

	if strings.Count(s, "\x1b[") < 1 {
		t.Fatalf("expected at least one escape sequence, got %q", s)
	}
	if strings.Count(s, "\x1b[1;3H") != 1 || strings.Count(s, "H") != 1 {
		t.Errorf("expected exactly one cursor move, to row 1 col 3, got %q", s)
	}
	if !strings.Contains(s, "x") {
		t.Errorf("expected cell content in output, got %q", s)
	}
	if !strings.HasSuffix(s, "\x1b[0m") {
		t.Errorf("expected trailing reset, got %q", s)
	}
}

func TestRenderWideCharSkipsContinuation(t *testing.T) {
	var out bytes.Buffer
	tm := newTestTerminal(&out)

	prev := goterm.NewBuffer(5, 1)
	prev.Set(0, 0, goterm.Cell{Content: "A"})
	cur := goterm.NewBuffer(5, 1)
	cur.Set(0, 0, goterm.Cell{Content: "日", Bg: goterm.RGB(1, 2, 3)})

	tm.Render(cur, prev)
	s := out.String()

	if !strings.Contains(s, "日") {
		t.Fatalf("expected wide glyph in output, got %q", s)
	}
	if tm.cursorX != 2 {
		t.Errorf("logical cursor should advance by 2 after a wide emit, got %d", tm.cursorX)
	}
	// The continuation cell (1,0) differs between prev and cur (prev had no
	// continuation sentinel there) but must never be emitted as standalone
	// output.
	if strings.Count(s, "\x1b[1;2H") != 0 {
		t.Errorf("continuation cell should not get its own cursor move, got %q", s)
	}
}
