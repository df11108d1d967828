// Command eventlog is a direct port of the reference's event_logger.cpp:
// every key, mouse, and paste event routed to the log widget is appended
// to a scrolling, capped history. Resize events are handled by the event
// loop itself and never reach it.
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

	log := widget.NewEventLog(50)
	log.Title = "Event Logger (press keys or click)"
	log.SetFocusable(true, true)
	root.Add(log, widget.FlexSize(1))

	a := app.New()
	a.RegisterExitKey(vtparser.KeyEsc)

	if err := a.Run(root); err != nil {
		fmt.Fprintln(os.Stderr, "eventlog:", err)
		os.Exit(1)
	}
}
