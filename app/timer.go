package app

import (
	"time"

	"github.com/ahnafcodes/goterm/signals"
)

// TimerID identifies a scheduled callback. The zero value is never
// returned by AddTimer (§4.7: "a monotonic non-zero id").
type TimerID int

type timerEntry struct {
	id       TimerID
	interval time.Duration
	lastFire time.Time
	callback func()
	removed  bool
}

// AddTimer schedules callback to run at most once per loop iteration,
// roughly every intervalMs milliseconds. Drift is bounded by one loop
// iteration: lastFire is reset to "now" (not "scheduled time") on each
// fire (§4.7).
func (a *App) AddTimer(intervalMs int, callback func()) TimerID {
	a.nextTimerID++
	id := TimerID(a.nextTimerID)
	a.timers = append(a.timers, &timerEntry{
		id:       id,
		interval: time.Duration(intervalMs) * time.Millisecond,
		lastFire: a.now(),
		callback: callback,
	})
	return id
}

// RemoveTimer removes a previously scheduled timer. Removing an unknown
// or already-removed id is a no-op.
func (a *App) RemoveTimer(id TimerID) {
	for _, t := range a.timers {
		if t.id == id {
			t.removed = true
		}
	}
}

// fireDueTimers runs every timer whose interval has elapsed, in
// registration order, and reports whether any fired. Each callback runs
// inside a signals.Batch, so a callback that writes several signals (e.g.
// one Signal per monitored value on a shared tick) notifies their
// subscribers once per tick rather than once per write.
func (a *App) fireDueTimers() bool {
	now := a.now()
	fired := false
	live := a.timers[:0]
	for _, t := range a.timers {
		if t.removed {
			continue
		}
		live = append(live, t)
		if now.Sub(t.lastFire) >= t.interval {
			t.lastFire = now
			signals.Batch(t.callback)
			fired = true
		}
	}
	a.timers = live
	return fired
}

// nextTimerDeadline returns the smallest non-negative millisecond wait
// until some timer next fires, or -1 if there are no timers.
func (a *App) nextTimerDeadline() int {
	now := a.now()
	best := -1
	for _, t := range a.timers {
		if t.removed {
			continue
		}
		remaining := t.interval - now.Sub(t.lastFire)
		ms := int(remaining / time.Millisecond)
		if ms < 0 {
			ms = 0
		}
		if best == -1 || ms < best {
			best = ms
		}
	}
	return best
}
