package widget

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"

	"github.com/ahnafcodes/goterm/basement"
)

// Span is one syntax-highlighted token: literal text plus the basement
// Style it should render with.
type Span struct {
	Text  string
	Style basement.Style
}

// Highlight tokenizes code with chroma's lexer for lang (falling back to
// its generic lexer when lang is empty or unrecognized) and maps each
// token's category onto the fixed 16-color basement palette, since a
// terminal cell can't represent chroma's full RGB theme.
func Highlight(code, lang string) []Span {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return []Span{{Text: code, Style: basement.Style{Dim: true}}}
	}

	var spans []Span
	for _, token := range iterator.Tokens() {
		entry := style.Get(token.Type)
		bs := basement.Style{}
		if entry.Bold == chroma.Yes {
			bs.Bold = true
		}
		if entry.Underline == chroma.Yes {
			bs.Underline = true
		}
		if entry.Italic == chroma.Yes {
			bs.Italic = true
		}

		switch token.Type.Category() {
		case chroma.Keyword:
			bs.Color = basement.GetColorCode("magenta")
			bs.Bold = true
		case chroma.Name:
			bs.Color = basement.GetColorCode("white")
		case chroma.LiteralString:
			bs.Color = basement.GetColorCode("green")
		case chroma.LiteralNumber:
			bs.Color = basement.GetColorCode("cyan")
		case chroma.Comment:
			bs.Color = basement.GetColorCode("grey")
			bs.Dim = true
		case chroma.Operator, chroma.Punctuation:
			bs.Color = basement.GetColorCode("white")
		}

		spans = append(spans, Span{Text: token.Value, Style: bs})
	}
	return spans
}
