package signals

import "testing"

// TestReactiveLabelBindingPattern exercises the exact shape widget.Label's
// NewReactiveLabel and NewComputedLabel build on: an Effect that reads a
// signal and calls a dirty hook on every run after the first.
func TestReactiveLabelBindingPattern(t *testing.T) {
	sig := New("idle")
	var rendered string
	dirty := 0
	first := true

	effect := CreateEffect(func() {
		rendered = sig.Get()
		if !first {
			dirty++
		}
		first = false
	})
	defer effect.Dispose()

	if rendered != "idle" || dirty != 0 {
		t.Fatalf("initial run should set text without counting as dirty, got %q dirty=%d", rendered, dirty)
	}

	sig.Set("running")
	if rendered != "running" || dirty != 1 {
		t.Fatalf("expected one dirty notification after Set, got %q dirty=%d", rendered, dirty)
	}
}

func TestEffectDisposeStopsFurtherRuns(t *testing.T) {
	sig := New(0)
	runs := 0
	effect := CreateEffect(func() {
		sig.Get()
		runs++
	})
	effect.Dispose()

	sig.Set(1)
	if runs != 1 {
		t.Fatalf("expected no runs after Dispose, got %d", runs)
	}
}

// TestComputedLabelBindingPattern exercises widget.NewComputedLabel's
// shape: a Computed derived from a Signal, consumed through an Effect.
func TestComputedLabelBindingPattern(t *testing.T) {
	load := New(0.0)
	text := NewComputed(func() string {
		if load.Get() > 0.5 {
			return "high"
		}
		return "low"
	})

	var rendered string
	CreateEffect(func() {
		rendered = text.Get()
	})

	if rendered != "low" {
		t.Fatalf("expected low, got %q", rendered)
	}

	load.Set(0.9)
	if rendered != "high" {
		t.Fatalf("expected high after load change, got %q", rendered)
	}
}

// TestBatchCoalescesMultipleWrites exercises the app event loop's
// fireDueTimers pattern: several signals written inside one Batch notify
// their subscribers once, not once per write.
func TestBatchCoalescesMultipleWrites(t *testing.T) {
	a := New(0)
	b := New(0)
	runs := 0
	CreateEffect(func() {
		a.Get()
		b.Get()
		runs++
	})

	runs = 0
	Batch(func() {
		a.Set(1)
		b.Set(2)
	})

	if runs != 1 {
		t.Fatalf("expected exactly one effect run per batch, got %d", runs)
	}
}
