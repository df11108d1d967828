// Command hello is the framework's minimal example: a bordered Flex column
// holding a MarkdownView, generalizing the reference's Example 1
// (tui.Template rendering static markdown text) onto the widget tree.
package main

import (
	"fmt"
	"os"

	"github.com/ahnafcodes/goterm/app"
	"github.com/ahnafcodes/goterm/vtparser"
	"github.com/ahnafcodes/goterm/widget"
)

func main() {
	root := widget.NewFlex(widget.Column)
	root.Border = true
	root.Padding = 1

	md := widget.NewMarkdownView(`# Hello, goterm!

This is a **static** example.
You can use *italics*, __underline__, and even #green(colors)!

(Press q or Ctrl+C to exit)`)
	root.Add(md, widget.FlexSize(1))

	a := app.New()
	a.RegisterExitKey(int32('q'))
	a.RegisterExitKey(vtparser.KeyEsc)

	if err := a.Run(root); err != nil {
		fmt.Fprintln(os.Stderr, "hello:", err)
		os.Exit(1)
	}
}
