// Package vtparser turns a byte stream from a VT/ANSI-capable terminal into
// Events: key presses (including synthetic codes for arrows, function keys
// and navigation keys), SGR-1006/X10 mouse reports, and bracketed paste.
// Resize is synthesized by the terminal package from SIGWINCH, not by this
// parser, and carried here only as the Event payload shape.
package vtparser

// EventKind tags which payload of Event is meaningful.
type EventKind int

const (
	None EventKind = iota
	Key
	Mouse
	Resize
	Quit
	Paste
)

// Mod is a bitset of modifier keys.
type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModAlt   Mod = 1 << 1
	ModCtrl  Mod = 1 << 2
)

// MouseButton is the raw SGR/X10 button bitfield, stripped of its modifier
// bits (§4.3).
type MouseButton int

// Event is a tagged variant over {None, Key, Mouse, Resize, Quit, Paste}.
// Only the field(s) matching Kind are meaningful.
type Event struct {
	Kind EventKind

	// Key payload.
	KeyCode int32
	Mod     Mod

	// Mouse payload.
	X, Y   int
	Button MouseButton

	// Resize payload reuses X (new width) and Y (new height).

	// Paste payload.
	PasteText string
}

// MouseLeft reports a left-button press (not a wheel impulse).
func (e Event) MouseLeft() bool { return e.Button&3 == 0 && e.Button&64 == 0 }

// MouseMiddle reports a middle-button press.
func (e Event) MouseMiddle() bool { return e.Button&3 == 1 && e.Button&64 == 0 }

// MouseRight reports a right-button press.
func (e Event) MouseRight() bool { return e.Button&3 == 2 && e.Button&64 == 0 }

// MouseRelease reports a button release.
func (e Event) MouseRelease() bool { return e.Button&3 == 3 }

// MouseMotion reports the motion bit (bit 32), set on drag and plain move.
func (e Event) MouseMotion() bool { return e.Button&32 != 0 }

// MouseDrag reports motion while a button is held (motion without release).
func (e Event) MouseDrag() bool { return e.MouseMotion() && !e.MouseRelease() }

// MouseMove reports motion with no button held.
func (e Event) MouseMove() bool { return e.MouseMotion() && e.MouseRelease() }

// MouseWheel reports a wheel impulse (bit 64).
func (e Event) MouseWheel() bool { return e.Button&64 != 0 }
