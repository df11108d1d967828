// Command dialogs exercises the dialog stack: a modal, steal-focus,
// shadowed confirmation dialog opened over a plain root, with no reference
// equivalent (the teacher has no dialog concept at all) — grounded
// directly on spec.md §4.8 and its worked examples.
package main

import (
	"fmt"
	"os"

	goterm "github.com/ahnafcodes/goterm"
	"github.com/ahnafcodes/goterm/app"
	"github.com/ahnafcodes/goterm/theme"
	"github.com/ahnafcodes/goterm/vtparser"
	"github.com/ahnafcodes/goterm/widget"
)

// trigger is a one-row focusable widget whose only job is turning 'd' into
// "open the dialog" and Enter/Esc into "close it", since Flex itself has no
// notion of a keybinding map — a stand-in for the reference's per-example
// Button callbacks.
type trigger struct {
	widget.Base
	status *widget.Label
	open   func()
	close  func()
}

func newTrigger(status *widget.Label, open, close func()) *trigger {
	t := &trigger{status: status, open: open, close: close}
	t.SetFocusable(true, true)
	return t
}

func (t *trigger) Render(b *goterm.Buffer) {
	r := t.Bounds()
	text := "Press Tab to focus here, d to open, q to quit"
	if t.HasFocus() {
		text = "[focused] " + text
	}
	for i, ch := range text {
		if i >= r.W {
			break
		}
		b.Set(r.X+i, r.Y, goterm.Cell{Content: string(ch)})
	}
}

func (t *trigger) OnEvent(e vtparser.Event) bool {
	if e.Kind != vtparser.Key {
		return false
	}
	switch e.KeyCode {
	case int32('d'):
		t.open()
		return true
	case vtparser.KeyEnter:
		t.status.SetText("confirmed")
		t.close()
		return true
	case vtparser.KeyEsc:
		t.status.SetText("cancelled")
		t.close()
		return true
	}
	return false
}

func main() {
	root := widget.NewFlex(widget.Column)
	root.Border = true
	root.Padding = 1

	status := widget.NewLabel("")
	root.Add(status, widget.FixedSize(1))

	confirmBody := widget.NewFlex(widget.Column)
	confirmBody.Border = true
	confirmBody.Padding = 1
	confirmLabel := widget.NewLabel("Discard unsaved changes?")
	confirmLabel.Fg = theme.Current().Warning
	confirmBody.Add(confirmLabel, widget.FixedSize(1))
	confirmBody.Add(widget.NewLabel("(Enter to confirm, Esc to cancel)"), widget.FixedSize(1))

	dlg := &app.Dialog{
		Root:       confirmBody,
		Modal:      true,
		StealFocus: true,
		Shadow:     true,
	}

	a := app.New()
	a.RegisterExitKey(int32('q'))

	t := newTrigger(status, func() {
		a.OpenDialogCentered(dlg, 40, 7)
	}, func() {
		a.CloseDialog(dlg)
	})
	root.Add(t, widget.FixedSize(1))

	if err := a.Run(root); err != nil {
		fmt.Fprintln(os.Stderr, "dialogs:", err)
		os.Exit(1)
	}
}
