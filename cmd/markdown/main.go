// Command markdown renders a mixed document — headers, lists, a
// blockquote, a fenced Go code block run through chroma — generalizing the
// reference's Example 11/12 (tui.Template markdown rendering and chroma
// highlighting) onto MarkdownView's AST-walk renderer.
package main

import (
	"fmt"
	"os"

	"github.com/ahnafcodes/goterm/app"
	"github.com/ahnafcodes/goterm/vtparser"
	"github.com/ahnafcodes/goterm/widget"
)

const doc = "# goterm\n" +
	"\n" +
	"A terminal-UI framework with:\n" +
	"\n" +
	"* retained widgets\n" +
	"* a two-pass flex layout\n" +
	"* __bracketed paste__ and *mouse* support\n" +
	"\n" +
	"> Widgets are values, not a class hierarchy.\n" +
	"\n" +
	"```go\n" +
	"func main() {\n" +
	"    app.New().Run(root)\n" +
	"}\n" +
	"```\n" +
	"\n" +
	"(Press q to exit, Up/Down to scroll)\n"

// scrollableMarkdown wires Up/Down into MarkdownView.ScrollY — MarkdownView
// itself only renders a fixed scroll offset, it doesn't own a keybinding.
type scrollableMarkdown struct {
	*widget.MarkdownView
}

func (s *scrollableMarkdown) OnEvent(e vtparser.Event) bool {
	if e.Kind != vtparser.Key {
		return false
	}
	switch e.KeyCode {
	case vtparser.KeyUp:
		if s.ScrollY > 0 {
			s.ScrollY--
		}
		return true
	case vtparser.KeyDown:
		s.ScrollY++
		return true
	}
	return false
}

func main() {
	mv := &scrollableMarkdown{MarkdownView: widget.NewMarkdownView(doc)}
	mv.SetFocusable(true, true)

	root := widget.NewFlex(widget.Column)
	root.Border = true
	root.Add(mv, widget.FlexSize(1))

	a := app.New()
	a.RegisterExitKey(int32('q'))

	if err := a.Run(root); err != nil {
		fmt.Fprintln(os.Stderr, "markdown:", err)
		os.Exit(1)
	}
}
