// Package terminal owns the physical terminal: raw-mode setup and
// teardown, the alternate screen, mouse and bracketed-paste reporting,
// resize detection, and diff-based frame flush. It is the only package in
// this module that touches an *os.File directly (§4.4, §5).
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	goterm "github.com/ahnafcodes/goterm"
	"github.com/ahnafcodes/goterm/vtparser"
	"github.com/ahnafcodes/goterm/width"
	"github.com/rs/zerolog"
)

// followUpWait bounds how long ReadEvent waits for the rest of a
// fragmented escape sequence once the parser is mid-sequence (§4.4).
const followUpWait = 20 * time.Millisecond

// Terminal drives stdin/stdout for a running application. The zero value
// is not usable; construct with New.
type Terminal struct {
	in  *os.File
	out *bufio.Writer

	parser *vtparser.Parser
	raw    *rawState

	resizePending atomic.Bool
	sigwinch      chan os.Signal
	sigint        chan os.Signal
	done          chan struct{}

	rawBytes chan byte

	width, height int

	cursorX, cursorY int
	lastFg, lastBg   goterm.Color
	lastBold         bool
	lastItalic       bool
	lastUnderline    bool

	log zerolog.Logger
}

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// WithLogger overrides the zerolog.Logger used for recoverable-error
// diagnostics. The default discards all output, since a TUI framework
// cannot write to stdout/stderr while it owns the alternate screen.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Terminal) { t.log = l }
}

// New constructs a Terminal bound to stdin/stdout. Call Setup before use.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		in:   os.Stdin,
		out:  bufio.NewWriterSize(os.Stdout, 64*1024),
		done: make(chan struct{}),
		log:  zerolog.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.parser = vtparser.New(vtparser.WithLogger(t.log))
	return t
}

// Setup enables raw mode, switches to the alternate screen, hides the
// cursor, enables SGR-1006 any-motion mouse reporting and bracketed paste,
// and installs the resize/interrupt signal handlers (§4.4).
func (t *Terminal) Setup() error {
	w, h, err := getSize(t.in)
	if err != nil {
		w, h = 80, 24
		t.log.Warn().Err(err).Msg("falling back to 80x24, could not query terminal size")
	}
	t.width, t.height = w, h

	old, err := enableRawMode(t.in)
	if err != nil {
		t.log.Warn().Err(err).Msg("failed to enable raw mode")
	} else {
		t.raw = old
	}

	t.out.WriteString("\x1b[?1049h") // alt screen
	t.out.WriteString("\x1b[?25l")   // hide cursor
	t.out.WriteString("\x1b[?1003h\x1b[?1006h") // any-motion + SGR mouse
	t.out.WriteString("\x1b[?2004h") // bracketed paste
	t.out.Flush()

	t.rawBytes = make(chan byte, 256)
	go t.readLoop()

	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, syscall.SIGWINCH)
	go t.watchResize()

	t.sigint = make(chan os.Signal, 1)
	signal.Notify(t.sigint, os.Interrupt)
	go t.watchInterrupt()

	t.drainInputBuffer()

	return nil
}

// Teardown disables mouse reporting and bracketed paste, leaves the
// alternate screen, shows the cursor, and restores the original terminal
// mode. It is safe to call more than once.
func (t *Terminal) Teardown() {
	select {
	case <-t.done:
		return
	default:
		close(t.done)
	}
	signal.Stop(t.sigwinch)
	signal.Stop(t.sigint)

	t.out.WriteString("\x1b[?2004l")
	t.out.WriteString("\x1b[?1003l\x1b[?1006l")
	t.out.WriteString("\x1b[?1049l")
	t.out.WriteString("\x1b[?25h")
	t.out.Flush()

	if t.raw != nil {
		if err := disableRawMode(t.in, t.raw); err != nil {
			t.log.Warn().Err(err).Msg("failed to restore terminal mode")
		}
	}
}

func (t *Terminal) watchInterrupt() {
	select {
	case <-t.done:
		return
	case <-t.sigint:
		t.Teardown()
		os.Exit(130)
	}
}

func (t *Terminal) watchResize() {
	for {
		select {
		case <-t.done:
			return
		case <-t.sigwinch:
			t.resizePending.Store(true)
		}
	}
}

func (t *Terminal) readLoop() {
	for {
		buf := make([]byte, 1)
		n, err := t.in.Read(buf)
		if err != nil {
			close(t.rawBytes)
			return
		}
		if n == 0 {
			continue
		}
		select {
		case t.rawBytes <- buf[0]:
		case <-t.done:
			return
		}
	}
}

// drainInputBuffer discards any bytes queued by the raw-mode switch itself
// so they aren't misread as application input.
func (t *Terminal) drainInputBuffer() {
	for {
		select {
		case _, ok := <-t.rawBytes:
			if !ok {
				return
			}
		case <-time.After(5 * time.Millisecond):
			return
		}
	}
}

// Size returns the terminal's current dimensions as last observed (by
// Setup or a consumed Resize event).
func (t *Terminal) Size() (int, int) {
	return t.width, t.height
}

// ReadEvent waits up to timeoutMs (−1 = indefinite) for the next event
// (§4.4). A pending resize always takes priority and is reported
// immediately as a synthetic Resize event.
func (t *Terminal) ReadEvent(timeoutMs int) vtparser.Event {
	if t.resizePending.Swap(false) {
		w, h, err := getSize(t.in)
		if err == nil {
			t.width, t.height = w, h
		}
		return vtparser.Event{Kind: vtparser.Resize, X: t.width, Y: t.height}
	}

	b, ok := t.readByte(timeoutMs)
	if !ok {
		return vtparser.Event{Kind: vtparser.None}
	}

	ev := t.parser.Process(b)
	for ev.Kind == vtparser.None && t.parser.Pending() {
		nb, ok := t.readByte(int(followUpWait / time.Millisecond))
		if !ok {
			break
		}
		ev = t.parser.Process(nb)
	}
	return ev
}

func (t *Terminal) readByte(timeoutMs int) (byte, bool) {
	if timeoutMs < 0 {
		b, ok := <-t.rawBytes
		return b, ok
	}
	select {
	case b, ok := <-t.rawBytes:
		return b, ok
	case <-time.After(time.Duration(timeoutMs) * time.Millisecond):
		return 0, false
	}
}

// Render diffs current against previous cell-by-cell and writes only
// changed cells to the terminal, following the wire protocol in §4.4/§6.
// The entire frame is buffered and flushed once to minimize syscalls and
// tearing.
func (t *Terminal) Render(current, previous *goterm.Buffer) {
	t.cursorX, t.cursorY = -1, -1
	// Every Render ends with a hard SGR reset (Setup emits none, so the
	// first frame takes the terminal to start at its defaults): seed the
	// tracked style to default colors with no attributes so the first
	// changed cell only emits the attributes it actually needs.
	t.lastFg, t.lastBg = goterm.DefaultColor, goterm.DefaultColor
	t.lastBold, t.lastItalic, t.lastUnderline = false, false, false

	w, h := current.Width, current.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cur := current.Get(x, y)
			if cur == previous.Get(x, y) {
				continue
			}
			if cur.Content == "" {
				// Continuation cell: nothing is emitted standalone; the
				// preceding wide-char write already advanced past it.
				continue
			}
			t.moveCursor(x, y)
			t.emitStyle(cur)
			t.out.WriteString(cur.Content)
			t.cursorX = x + width.StringWidth(cur.Content)
			t.cursorY = y
		}
	}
	t.out.WriteString("\x1b[0m")
	t.out.Flush()
}

func (t *Terminal) moveCursor(x, y int) {
	if t.cursorX == x && t.cursorY == y {
		return
	}
	var buf [32]byte
	out := buf[:0]
	out = append(out, '\x1b', '[')
	out = strconv.AppendInt(out, int64(y+1), 10)
	out = append(out, ';')
	out = strconv.AppendInt(out, int64(x+1), 10)
	out = append(out, 'H')
	t.out.Write(out)
}

func (t *Terminal) emitStyle(c goterm.Cell) {
	if !c.Fg.Equal(t.lastFg) {
		t.writeFg(c.Fg)
		t.lastFg = c.Fg
	}
	if !c.Bg.Equal(t.lastBg) {
		t.writeBg(c.Bg)
		t.lastBg = c.Bg
	}
	if c.Bold != t.lastBold {
		t.writeAttr(1, 22, c.Bold)
		t.lastBold = c.Bold
	}
	if c.Italic != t.lastItalic {
		t.writeAttr(3, 23, c.Italic)
		t.lastItalic = c.Italic
	}
	if c.Underline != t.lastUnderline {
		t.writeAttr(4, 24, c.Underline)
		t.lastUnderline = c.Underline
	}
}

func (t *Terminal) writeFg(c goterm.Color) {
	if c.IsDefault {
		t.out.WriteString("\x1b[39m")
		return
	}
	fmt.Fprintf(t.out, "\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

func (t *Terminal) writeBg(c goterm.Color) {
	if c.IsDefault {
		t.out.WriteString("\x1b[49m")
		return
	}
	fmt.Fprintf(t.out, "\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

func (t *Terminal) writeAttr(on, off int, enabled bool) {
	if enabled {
		fmt.Fprintf(t.out, "\x1b[%dm", on)
	} else {
		fmt.Fprintf(t.out, "\x1b[%dm", off)
	}
}
