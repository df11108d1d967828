package width

import "testing"

func TestRuneWidthClasses(t *testing.T) {
	cases := []struct {
		name string
		cp   rune
		want int
	}{
		{"ascii letter", 'A', 1},
		{"cjk ideograph", '日', 2},
		{"combining acute", '́', 0},
		{"emoji", '🙂', 2},
		{"tab is control, not special-cased", '\t', 0},
		{"newline is control", '\n', 0},
	}
	for _, c := range cases {
		if got := RuneWidth(c.cp); got != c.want {
			t.Errorf("%s: RuneWidth(%q) = %d, want %d", c.name, c.cp, got, c.want)
		}
	}
}

func TestStringWidthSumsRunes(t *testing.T) {
	s := "日本語"
	if got := StringWidth(s); got != 6 {
		t.Errorf("StringWidth(%q) = %d, want 6", s, got)
	}
}

func TestStringWidthSkipsMalformedBytes(t *testing.T) {
	s := string([]byte{0xFF, 'A'})
	if got := StringWidth(s); got != 1 {
		t.Errorf("StringWidth with leading bad byte = %d, want 1", got)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		s    string
		want rune
		n    int
	}{
		{"A", 'A', 1},
		{"日", '日', 3},
		{"🙂", '🙂', 4},
		{"é", 'é', 2},
	}
	for _, c := range cases {
		cp, n, ok := Decode([]byte(c.s), 0)
		if !ok {
			t.Fatalf("Decode(%q) failed", c.s)
		}
		if cp != c.want || n != c.n {
			t.Errorf("Decode(%q) = (%q, %d), want (%q, %d)", c.s, cp, n, c.want, c.n)
		}
	}
}

func TestDecodeInvalidStartByteSkipsOne(t *testing.T) {
	b := []byte{0x80, 'A'}
	_, _, ok := Decode(b, 0)
	if ok {
		t.Fatalf("expected decode failure on lone continuation byte")
	}
	cp, n, ok := Decode(b, 1)
	if !ok || cp != 'A' || n != 1 {
		t.Fatalf("expected recovery at next byte, got (%q, %d, %v)", cp, n, ok)
	}
}

func TestDecodeTruncatedMultibyte(t *testing.T) {
	b := []byte{0xE6, 0x97} // first two bytes of 日, missing the third
	_, _, ok := Decode(b, 0)
	if ok {
		t.Fatalf("expected decode failure on truncated sequence")
	}
}
