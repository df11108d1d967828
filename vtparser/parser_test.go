package vtparser

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
)

func feed(t *testing.T, p *Parser, bytes []byte) Event {
	t.Helper()
	var last Event
	for _, b := range bytes {
		last = p.Process(b)
		if last.Kind != None {
			return last
		}
	}
	return last
}

func TestArrowUpNoModifiers(t *testing.T) {
	ev := feed(t, New(), []byte{0x1B, '[', 'A'})
	if ev.Kind != Key || ev.KeyCode != KeyUp || ev.Mod != ModNone {
		t.Fatalf("got %+v", ev)
	}
}

func TestArrowUpWithCtrlModifier(t *testing.T) {
	ev := feed(t, New(), []byte{0x1B, '[', '1', ';', '5', 'A'})
	if ev.Kind != Key || ev.KeyCode != KeyUp || ev.Mod != ModCtrl {
		t.Fatalf("got %+v", ev)
	}
}

func TestSGRMouseLeftPress(t *testing.T) {
	ev := feed(t, New(), []byte("\x1b[<0;10;20M"))
	if ev.Kind != Mouse || ev.X != 9 || ev.Y != 19 || !ev.MouseLeft() {
		t.Fatalf("got %+v", ev)
	}
}

func TestSGRMouseReleaseForcesButton3(t *testing.T) {
	ev := feed(t, New(), []byte("\x1b[<0;10;20m"))
	if ev.Kind != Mouse || !ev.MouseRelease() {
		t.Fatalf("expected release, got %+v", ev)
	}
}

func TestCtrlCRemapsToLetterC(t *testing.T) {
	ev := New().Process(0x03)
	if ev.Kind != Key || ev.KeyCode != int32('c') || ev.Mod != ModCtrl {
		t.Fatalf("got %+v", ev)
	}
}

func TestBareEscLeavesParserPending(t *testing.T) {
	p := New()
	ev := p.Process(0x1B)
	if ev.Kind != None {
		t.Fatalf("expected no event yet, got %+v", ev)
	}
	if !p.Pending() {
		t.Fatalf("expected parser to be mid-sequence after bare ESC")
	}
}

func TestTabAndEnterAndBackspaceRemainAscii(t *testing.T) {
	cases := []struct {
		b    byte
		want int32
	}{
		{0x09, 9},
		{0x0D, 13},
		{0x7F, 127},
	}
	for _, c := range cases {
		ev := New().Process(c.b)
		if ev.Kind != Key || ev.KeyCode != c.want || ev.Mod != ModNone {
			t.Errorf("byte %#x: got %+v, want KeyCode=%d no mod", c.b, ev, c.want)
		}
	}
}

func TestDeleteInsertPageUpPageDown(t *testing.T) {
	cases := []struct {
		seq  string
		want int32
	}{
		{"\x1b[2~", KeyInsert},
		{"\x1b[3~", KeyDelete},
		{"\x1b[5~", KeyPageUp},
		{"\x1b[6~", KeyPageDown},
	}
	for _, c := range cases {
		ev := feed(t, New(), []byte(c.seq))
		if ev.Kind != Key || ev.KeyCode != c.want {
			t.Errorf("%q: got %+v, want KeyCode=%d", c.seq, ev, c.want)
		}
	}
}

func TestSS3FunctionKeys(t *testing.T) {
	ev := feed(t, New(), []byte{0x1B, 'O', 'P'})
	if ev.Kind != Key || ev.KeyCode != KeyF1 {
		t.Fatalf("got %+v", ev)
	}
}

func TestAltKey(t *testing.T) {
	ev := feed(t, New(), []byte{0x1B, 'x'})
	if ev.Kind != Key || ev.KeyCode != int32('x') || ev.Mod != ModAlt {
		t.Fatalf("got %+v", ev)
	}
}

func TestX10Mouse(t *testing.T) {
	// button=0 (left), x=5 (1-based), y=5 (1-based) => event x=4,y=4
	seq := []byte{0x1B, '[', 'M', byte(32 + 0), byte(32 + 5), byte(32 + 5)}
	ev := feed(t, New(), seq)
	if ev.Kind != Mouse || ev.X != 4 || ev.Y != 4 {
		t.Fatalf("got %+v", ev)
	}
}

func TestBracketedPaste(t *testing.T) {
	p := New()
	var ev Event
	for _, b := range []byte("\x1b[200~hello world\x1b[201~") {
		ev = p.Process(b)
		if ev.Kind != None {
			break
		}
	}
	if ev.Kind != Paste || ev.PasteText != "hello world" {
		t.Fatalf("got %+v", ev)
	}
}

func TestMalformedCSIParamsDefaultToOne(t *testing.T) {
	ev := feed(t, New(), []byte{0x1B, '[', ';', 'A'})
	if ev.Kind != Key || ev.KeyCode != KeyUp {
		t.Fatalf("malformed params should still dispatch with defaults, got %+v", ev)
	}
}

func TestUnrecognizedFinalByteYieldsZeroKey(t *testing.T) {
	ev := feed(t, New(), []byte{0x1B, '[', 'j'})
	if ev.Kind != Key || ev.KeyCode != 0 {
		t.Fatalf("got %+v", ev)
	}
}

func TestUnrecognizedSequenceLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	p := New(WithLogger(log))
	feed(t, p, []byte{0x1B, '[', 'j'})
	if buf.Len() == 0 {
		t.Fatal("expected a log line for an unrecognized CSI sequence")
	}
}
