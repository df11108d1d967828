package ring

import "testing"

func TestPushEvictsOldestBeyondCapacity(t *testing.T) {
	b := New[string](3)
	b.Push("a")
	b.Push("b")
	b.Push("c")
	b.Push("d")

	got := b.Entries()
	want := []string{"d", "c", "b"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entries = %v, want %v", got, want)
		}
	}
}

func TestNonPositiveCapacityClampsToOne(t *testing.T) {
	b := New[int](0)
	if b.Cap() != 1 {
		t.Fatalf("Cap() = %d, want 1", b.Cap())
	}
	b.Push(1)
	b.Push(2)
	if got := b.Entries(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("Entries() = %v, want [2]", got)
	}
}

func TestClearEmptiesBuffer(t *testing.T) {
	b := New[int](4)
	b.Push(1)
	b.Push(2)
	b.Clear()
	if b.Len() != 0 {
		t.Fatalf("Len() = %d after Clear, want 0", b.Len())
	}
}
