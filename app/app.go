// Package app implements the single-threaded cooperative event loop that
// owns the terminal, both screen buffers, the dialog stack, the focus
// pointer, and all widget state (§4.6, §5), generalizing the reference
// App::run(root) driver.
package app

import (
	"time"

	goterm "github.com/ahnafcodes/goterm"
	"github.com/ahnafcodes/goterm/terminal"
	"github.com/ahnafcodes/goterm/theme"
	"github.com/ahnafcodes/goterm/vtparser"
	"github.com/ahnafcodes/goterm/widget"
	"github.com/rs/zerolog"
)

// resizeDebounce is the idle period after the last resize event before
// buffers are actually reallocated (§4.6).
const resizeDebounce = 25 * time.Millisecond

// eventBatchCap bounds how many already-buffered events are drained in a
// single loop iteration before a render (§4.6 step 4).
const eventBatchCap = 50

// App owns the running program: the terminal, the double-buffered screen,
// the dialog stack, focus, hover, the active tooltip, and timers.
type App struct {
	term *terminal.Terminal
	root widget.Widget

	front, back *goterm.Buffer

	dialogs            []*Dialog
	dialogStackChanged bool
	closedStealFocus   []widget.Widget

	focused widget.Widget
	hovered widget.Widget

	activeTooltip   *widget.Tooltip
	activeTooltipAt goterm.Rect

	timers      []*timerEntry
	nextTimerID int

	exitKeys map[int32]bool
	quit     bool

	needsRender bool

	resizePending  bool
	resizeDeadline time.Time
	pendingW       int
	pendingH       int

	log zerolog.Logger

	// nowFn is overridden in tests; production code leaves it nil and
	// falls back to time.Now via the now() helper.
	nowFn func() time.Time
}

// Option configures an App at construction time.
type Option func(*App)

// WithLogger overrides the zerolog.Logger used for recoverable-error
// diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) { a.log = l }
}

// New constructs an App. Call Run to start the event loop.
func New(opts ...Option) *App {
	a := &App{
		exitKeys: make(map[int32]bool),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) now() time.Time {
	if a.nowFn != nil {
		return a.nowFn()
	}
	return time.Now()
}

// RegisterExitKey marks a key code (ASCII or a vtparser synthetic code)
// as one that terminates the loop immediately when pressed unmodified,
// generalizing the reference's app.register_exit_key('q').
func (a *App) RegisterExitKey(k int32) {
	a.exitKeys[k] = true
}

// Quit requests the event loop stop after the current iteration,
// generalizing the reference's static App::quit() into an instance method
// (§9: no process-wide globals).
func (a *App) Quit() {
	a.quit = true
}

// RequestRender marks the next loop iteration dirty. Timer callbacks and
// widget event handlers already do this implicitly; RequestRender exists
// for reactive state outside that flow, such as a signals.Effect wired up
// by widget.NewReactiveLabel.
func (a *App) RequestRender() {
	a.needsRender = true
}

// Run blocks until Quit is called, an exit key is pressed, or Ctrl-C
// fires, driving the event loop described in §4.6. It owns terminal setup
// and teardown.
func (a *App) Run(root widget.Widget) error {
	a.root = root
	a.needsRender = true

	t := terminal.New(terminal.WithLogger(a.log))
	if err := t.Setup(); err != nil {
		return err
	}
	a.term = t
	defer t.Teardown()

	w, h := t.Size()
	a.front = goterm.NewBuffer(w, h)
	a.back = goterm.NewBuffer(w, h)
	a.pendingW, a.pendingH = w, h

	for !a.quit {
		a.syncFocusOnStackChange()

		if a.needsRender {
			a.renderFrame()
		}

		waitMs := a.computeWaitMs()
		ev := a.term.ReadEvent(waitMs)
		if ev.Kind != vtparser.None {
			a.handleEvent(ev)
			for n := 1; n < eventBatchCap; n++ {
				next := a.term.ReadEvent(0)
				if next.Kind == vtparser.None {
					break
				}
				a.handleEvent(next)
			}
		}

		if a.resizePending && a.now().Sub(a.resizeDeadline) >= 0 {
			a.applyResize()
		}

		if a.fireDueTimers() {
			a.needsRender = true
		}
	}
	return nil
}

// computeWaitMs returns the smallest of: the next timer deadline, the
// resize-debounce deadline if pending, or -1 (wait indefinitely).
func (a *App) computeWaitMs() int {
	best := a.nextTimerDeadline()
	if a.resizePending {
		remaining := int(a.resizeDeadline.Sub(a.now()) / time.Millisecond)
		if remaining < 0 {
			remaining = 0
		}
		if best == -1 || remaining < best {
			best = remaining
		}
	}
	return best
}

func (a *App) applyResize() {
	a.resizePending = false
	a.front = goterm.NewBuffer(a.pendingW, a.pendingH)
	a.back = goterm.NewBuffer(a.pendingW, a.pendingH)
	a.needsRender = true
}

// handleEvent implements §4.6 step 4's per-event dispatch rules.
func (a *App) handleEvent(e vtparser.Event) {
	switch e.Kind {
	case vtparser.Quit:
		a.quit = true
		return
	case vtparser.Resize:
		a.resizePending = true
		a.resizeDeadline = a.now().Add(resizeDebounce)
		a.pendingW, a.pendingH = e.X, e.Y
		return
	case vtparser.Key:
		if e.Mod&vtparser.ModCtrl != 0 && e.KeyCode == int32('c') {
			a.quit = true
			return
		}
		if a.exitKeys[e.KeyCode] && e.Mod == vtparser.ModNone {
			a.quit = true
			return
		}
		if e.KeyCode == vtparser.KeyTab && e.Mod == vtparser.ModNone {
			a.advanceTabCycle(false)
			return
		}
		if e.KeyCode == vtparser.KeyTab && e.Mod == vtparser.ModShift {
			a.advanceTabCycle(true)
			return
		}
		a.dispatchKey(e)
		a.needsRender = true
	case vtparser.Mouse:
		a.dispatchMouse(e)
		a.needsRender = true
	case vtparser.Paste:
		a.dispatchToDialogsAndRoot(e)
		a.needsRender = true
	}
}

// dispatchKey sends a key event to the focused widget first, falling
// through to the root if unconsumed (§4.6).
func (a *App) dispatchKey(e vtparser.Event) {
	if a.focused != nil && a.focused.OnEvent(e) {
		return
	}
	a.dispatchToDialogsAndRoot(e)
}

// dispatchMouse resolves hover/tooltip, click-to-focus, then routes the
// event through the dialog stack and root (§4.6, §4.8).
func (a *App) dispatchMouse(e vtparser.Event) {
	a.resolveHover(e.X, e.Y)
	if e.MouseLeft() && !e.MouseRelease() {
		a.resolveClickToFocus(e.X, e.Y)
	}
	a.dispatchToDialogsAndRoot(e)
}

// renderFrame implements §4.6 step 2: layout, clear to theme background,
// render root, dialogs, tooltip, diff-flush, swap buffers.
func (a *App) renderFrame() {
	if c, ok := a.root.(widget.Container); ok {
		a.root.SetBounds(goterm.Rect{X: 0, Y: 0, W: a.back.Width, H: a.back.Height})
		c.Layout()
	} else {
		a.root.SetBounds(goterm.Rect{X: 0, Y: 0, W: a.back.Width, H: a.back.Height})
	}

	bg := theme.Current().Background
	a.back.Clear(goterm.Cell{Content: " ", Bg: bg, Fg: theme.Current().Foreground})

	a.back.PushFullClip()
	a.root.Render(a.back)
	a.back.PopClip()

	a.renderOverlays(a.back)
	a.renderActiveTooltip(a.back)

	a.term.Render(a.back, a.front)
	a.front, a.back = a.back, a.front
	a.needsRender = false
}
