package widget

import (
	"testing"

	"github.com/ahnafcodes/goterm/basement"
)

func TestHighlightGoKeywordIsBoldMagenta(t *testing.T) {
	spans := Highlight("func main() {}", "go")
	found := false
	for _, s := range spans {
		if s.Text == "func" {
			found = true
			if !s.Style.Bold || s.Style.Color != basement.GetColorCode("magenta") {
				t.Errorf("expected 'func' span to be bold magenta, got %+v", s.Style)
			}
		}
	}
	if !found {
		t.Fatalf("expected a 'func' token in %+v", spans)
	}
}

func TestHighlightUnknownLanguageFallsBack(t *testing.T) {
	spans := Highlight("plain text", "not-a-real-language")
	if len(spans) == 0 {
		t.Fatalf("expected at least one span from fallback lexer")
	}
}

func TestHighlightedLinesSplitsOnNewlines(t *testing.T) {
	lines := highlightedLines("a\nb", "")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d (%+v)", len(lines), lines)
	}
}
