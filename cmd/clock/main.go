// Command clock shows a live timestamp, generalizing the reference's
// Example 4 (a signals.Signal driven by a goroutine ticking every second)
// onto AddTimer — the event loop itself now owns the tick rather than a
// background goroutine racing the render path.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ahnafcodes/goterm/app"
	"github.com/ahnafcodes/goterm/theme"
	"github.com/ahnafcodes/goterm/vtparser"
	"github.com/ahnafcodes/goterm/widget"
)

func main() {
	root := widget.NewFlex(widget.Column)
	root.Border = true
	root.Padding = 1

	title := widget.NewLabel("Digital Clock")
	title.Fg = theme.Current().Primary
	root.Add(title, widget.FixedSize(1))

	clock := widget.NewLabel(time.Now().Format("15:04:05"))
	clock.Fg = theme.Current().Success
	root.Add(clock, widget.FixedSize(1))

	hint := widget.NewLabel("(Press q or Ctrl+C to exit)")
	root.Add(hint, widget.FixedSize(1))

	a := app.New()
	a.RegisterExitKey(int32('q'))
	a.RegisterExitKey(vtparser.KeyEsc)
	a.AddTimer(1000, func() {
		clock.SetText(time.Now().Format("15:04:05"))
		a.RequestRender()
	})

	if err := a.Run(root); err != nil {
		fmt.Fprintln(os.Stderr, "clock:", err)
		os.Exit(1)
	}
}
