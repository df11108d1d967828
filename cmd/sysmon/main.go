// Command sysmon is a chart-less generalization of the reference's
// htop_sim.cpp: per-core load percentages updated on a timer and colored by
// threshold (green/yellow/red), without that example's ProgressBar/
// Sparkline/TableScrollable widgets, which this module doesn't build. Each
// core's display text is a signals.Computed derived from a signals.Signal
// the timer writes, rather than the label being poked directly.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/ahnafcodes/goterm/app"
	"github.com/ahnafcodes/goterm/signals"
	"github.com/ahnafcodes/goterm/theme"
	"github.com/ahnafcodes/goterm/widget"
)

const cores = 4

func main() {
	root := widget.NewFlex(widget.Column)
	root.Border = true
	root.Padding = 1
	root.Add(widget.NewLabel("sysmon (chart-less) — q to quit"), widget.FixedSize(1))

	a := app.New()

	loads := make([]*signals.Signal[float64], cores)
	rows := make([]*widget.Label, cores)
	for i := range loads {
		i := i
		load := signals.New(0.0)
		text := signals.NewComputed(func() string {
			return fmt.Sprintf("cpu%d: %4.1f%%", i, load.Get()*100)
		})
		l := widget.NewComputedLabel(text, a.RequestRender)
		root.Add(l, widget.FixedSize(1))
		loads[i] = load
		rows[i] = l
	}

	a.RegisterExitKey(int32('q'))

	var t float64
	a.AddTimer(200, func() {
		t += 0.1
		for i, load := range loads {
			val := 0.3 + 0.3*math.Sin(t+float64(i)*1.5)
			if val < 0 {
				val = 0
			}
			if val > 1 {
				val = 1
			}
			load.Set(val)
			switch {
			case val < 0.5:
				rows[i].Fg = theme.Current().Success
			case val < 0.8:
				rows[i].Fg = theme.Current().Warning
			default:
				rows[i].Fg = theme.Current().Error
			}
		}
	})

	if err := a.Run(root); err != nil {
		fmt.Fprintln(os.Stderr, "sysmon:", err)
		os.Exit(1)
	}
}
