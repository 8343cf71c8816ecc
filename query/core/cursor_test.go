package core

import "testing"

func TestCursor(t *testing.T) {
	c := NewCursor(seqOf(1, 2, 3))
	defer c.Close()

	for want := 1; want <= 3; want++ {
		got, ok := c.Next()
		if !ok {
			t.Fatalf("Next() exhausted early, want %d", want)
		}
		if got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}
	if _, ok := c.Next(); ok {
		t.Error("Next() returned a value after exhaustion")
	}
}

func TestCursorCloseStopsIteration(t *testing.T) {
	pulled := 0
	seq := func(yield func(int) bool) {
		for i := 0; ; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	}

	c := NewCursor(seq)
	if _, ok := c.Next(); !ok {
		t.Fatal("Next() = false on fresh cursor")
	}
	c.Close()
	if _, ok := c.Next(); ok {
		t.Error("Next() returned a value after Close")
	}
	if pulled > 2 {
		t.Errorf("source was pulled %d times after Close", pulled)
	}
}
