package vtparser

import (
	"io"

	"github.com/rs/zerolog"
)

// state is the parser's current position in the escape-sequence state
// machine (§4.3).
type state int

const (
	stStart state = iota
	stEscape
	stCSI
	stSS3
	stMouseX10
	stMouseSGR
)

// Parser is a byte-fed VT/ANSI state machine. Each Process call either
// emits an event (Kind != None) and returns to the Start state, or stays in
// a non-Start state awaiting more bytes. It never blocks and never panics
// on malformed input: unrecognized sequences degrade to a None or zero-key
// event and the state resets to Start, with the degraded sequence logged
// at debug level rather than surfaced to the caller.
type Parser struct {
	state state

	params []byte // CSI parameter scratch, digits and ';' only
	mouse  []byte // X10 mouse 3-byte scratch

	inPaste bool
	paste   []byte

	log zerolog.Logger
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithLogger overrides the zerolog.Logger used to record sequences the
// state machine could not recognize. The default discards all output.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Parser) { p.log = l }
}

// New returns a parser positioned at Start.
func New(opts ...Option) *Parser {
	p := &Parser{log: zerolog.New(io.Discard)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// pasteTerminator is the bracketed-paste end marker (§4 supplement).
var pasteTerminator = []byte("\x1b[201~")

// Process feeds one byte to the state machine and returns the resulting
// event (Kind == None if the sequence is incomplete).
func (p *Parser) Process(b byte) Event {
	if p.inPaste {
		return p.feedPaste(b)
	}

	switch p.state {
	case stStart:
		return p.processStart(b)
	case stEscape:
		return p.processEscape(b)
	case stCSI:
		return p.processCSI(b)
	case stSS3:
		return p.processSS3(b)
	case stMouseX10:
		return p.processMouseX10(b)
	case stMouseSGR:
		return p.processMouseSGR(b)
	default:
		p.state = stStart
		return Event{Kind: None}
	}
}

// Pending reports whether the parser is mid-sequence (not at Start), so a
// caller (Terminal.ReadEvent) can decide to wait a little longer for
// follow-up bytes.
func (p *Parser) Pending() bool {
	return p.state != stStart || p.inPaste
}

func (p *Parser) processStart(b byte) Event {
	switch {
	case b == 0x1B:
		p.state = stEscape
		return Event{Kind: None}
	case b == 0x00:
		return Event{Kind: Key, KeyCode: ' ', Mod: ModCtrl}
	case b >= 0x01 && b <= 0x1A && b != 0x08 && b != 0x09 && b != 0x0A && b != 0x0D:
		return Event{Kind: Key, KeyCode: int32(b) + 0x60, Mod: ModCtrl}
	default:
		return Event{Kind: Key, KeyCode: int32(b)}
	}
}

func (p *Parser) processEscape(b byte) Event {
	switch b {
	case '[':
		p.state = stCSI
		p.params = p.params[:0]
		return Event{Kind: None}
	case 'O':
		p.state = stSS3
		return Event{Kind: None}
	default:
		p.state = stStart
		return Event{Kind: Key, KeyCode: int32(b), Mod: ModAlt}
	}
}

func (p *Parser) processSS3(b byte) Event {
	p.state = stStart
	switch b {
	case 'P':
		return Event{Kind: Key, KeyCode: KeyF1}
	case 'Q':
		return Event{Kind: Key, KeyCode: KeyF2}
	case 'R':
		return Event{Kind: Key, KeyCode: KeyF3}
	case 'S':
		return Event{Kind: Key, KeyCode: KeyF4}
	default:
		p.log.Debug().Str("final", string(b)).Msg("unrecognized SS3 sequence, discarding")
		return Event{Kind: None}
	}
}

func (p *Parser) processCSI(b byte) Event {
	switch {
	case b == 'M':
		p.state = stMouseX10
		p.mouse = p.mouse[:0]
		return Event{Kind: None}
	case b == '<':
		p.state = stMouseSGR
		p.params = p.params[:0]
		return Event{Kind: None}
	case (b >= '0' && b <= '9') || b == ';':
		p.params = append(p.params, b)
		return Event{Kind: None}
	case b >= 0x40 && b <= 0x7E:
		p.state = stStart
		return p.dispatchCSI(p.params, b)
	default:
		// Any other non-final byte inside CSI is treated as a parameter
		// byte so the machine never stalls (§4.3 Failure).
		p.params = append(p.params, b)
		return Event{Kind: None}
	}
}

func (p *Parser) processMouseX10(b byte) Event {
	p.mouse = append(p.mouse, b)
	if len(p.mouse) < 3 {
		return Event{Kind: None}
	}
	p.state = stStart
	return parseX10(p.mouse)
}

func (p *Parser) processMouseSGR(b byte) Event {
	if b == 'M' || b == 'm' {
		p.state = stStart
		ev := parseSGR(p.params, b == 'm')
		return ev
	}
	p.params = append(p.params, b)
	return Event{Kind: None}
}

func (p *Parser) feedPaste(b byte) Event {
	p.paste = append(p.paste, b)
	n := len(pasteTerminator)
	if len(p.paste) >= n {
		if string(p.paste[len(p.paste)-n:]) == string(pasteTerminator) {
			text := string(p.paste[:len(p.paste)-n])
			p.inPaste = false
			p.paste = nil
			return Event{Kind: Paste, PasteText: text}
		}
	}
	return Event{Kind: None}
}

func parseParams(params []byte) (int, int) {
	p1, p2 := 1, 1
	if len(params) == 0 {
		return p1, p2
	}
	parts := splitSemicolon(params)
	if len(parts) > 0 {
		if v, ok := atoiDefault(parts[0]); ok {
			p1 = v
		}
	}
	if len(parts) > 1 {
		if v, ok := atoiDefault(parts[1]); ok {
			p2 = v
		}
	}
	return p1, p2
}

func splitSemicolon(b []byte) [][]byte {
	var out [][]byte
	start := 0
	for i, c := range b {
		if c == ';' {
			out = append(out, b[start:i])
			start = i + 1
		}
	}
	out = append(out, b[start:])
	return out
}

func atoiDefault(b []byte) (int, bool) {
	if len(b) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// modFromParam decodes the xterm CSI modifier parameter: p2 = 1 +
// shift|alt<<1|ctrl<<2 (§4.3).
func modFromParam(p2 int) Mod {
	if p2 <= 1 {
		return ModNone
	}
	bits := p2 - 1
	var m Mod
	if bits&1 != 0 {
		m |= ModShift
	}
	if bits&2 != 0 {
		m |= ModAlt
	}
	if bits&4 != 0 {
		m |= ModCtrl
	}
	return m
}

func (p *Parser) dispatchCSI(params []byte, final byte) Event {
	p1, p2 := parseParams(params)
	mod := modFromParam(p2)

	switch final {
	case 'A':
		return Event{Kind: Key, KeyCode: KeyUp, Mod: mod}
	case 'B':
		return Event{Kind: Key, KeyCode: KeyDown, Mod: mod}
	case 'C':
		return Event{Kind: Key, KeyCode: KeyRight, Mod: mod}
	case 'D':
		return Event{Kind: Key, KeyCode: KeyLeft, Mod: mod}
	case 'Z':
		return Event{Kind: Key, KeyCode: KeyTab, Mod: ModShift}
	case 'H':
		return Event{Kind: Key, KeyCode: KeyHome, Mod: mod}
	case 'F':
		return Event{Kind: Key, KeyCode: KeyEnd, Mod: mod}
	case '~':
		switch p1 {
		case 200:
			p.inPaste = true
			p.paste = p.paste[:0]
			return Event{Kind: None}
		case 201:
			// Stray end marker with no matching start; ignore.
			return Event{Kind: None}
		case 2:
			return Event{Kind: Key, KeyCode: KeyInsert, Mod: mod}
		case 3:
			return Event{Kind: Key, KeyCode: KeyDelete, Mod: mod}
		case 5:
			return Event{Kind: Key, KeyCode: KeyPageUp, Mod: mod}
		case 6:
			return Event{Kind: Key, KeyCode: KeyPageDown, Mod: mod}
		default:
			p.log.Debug().Int("p1", p1).Msg("unrecognized CSI ~ sequence, discarding")
			return Event{Kind: Key, KeyCode: 0}
		}
	default:
		p.log.Debug().Str("final", string(final)).Bytes("params", params).Msg("unrecognized CSI sequence, discarding")
		return Event{Kind: Key, KeyCode: 0}
	}
}

// parseX10 decodes a legacy X10 mouse record: three bytes, each biased by
// +32, with 1-based coordinates (§4.3).
func parseX10(b []byte) Event {
	raw := int(b[0]) - 32
	x := int(b[1]) - 32 - 1
	y := int(b[2]) - 32 - 1
	return mouseEventFromRaw(x, y, raw)
}

// parseSGR decodes an SGR 1006 mouse record. release indicates the
// sequence was terminated with 'm' rather than 'M'.
func parseSGR(params []byte, release bool) Event {
	parts := splitSemicolon(params)
	var b, x, y int
	if len(parts) > 0 {
		b, _ = atoiDefault(parts[0])
	}
	if len(parts) > 1 {
		x, _ = atoiDefault(parts[1])
	}
	if len(parts) > 2 {
		y, _ = atoiDefault(parts[2])
	}
	if release {
		b = 3
	}
	return Event{
		Kind:   Mouse,
		X:      x - 1,
		Y:      y - 1,
		Button: MouseButton(b & ^(4 | 8 | 16)),
		Mod:    mouseMod(b),
	}
}

func mouseEventFromRaw(x, y, raw int) Event {
	return Event{
		Kind:   Mouse,
		X:      x,
		Y:      y,
		Button: MouseButton(raw & ^(4 | 8 | 16)),
		Mod:    mouseMod(raw),
	}
}

// mouseMod decodes the shift/alt/ctrl bits carried in the raw mouse button
// byte (§4.3: shift=b&4, alt=b&8, ctrl=b&16).
func mouseMod(b int) Mod {
	var m Mod
	if b&4 != 0 {
		m |= ModShift
	}
	if b&8 != 0 {
		m |= ModAlt
	}
	if b&16 != 0 {
		m |= ModCtrl
	}
	return m
}
