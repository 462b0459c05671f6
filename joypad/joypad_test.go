package joypad

import "testing"

func TestStrobeReadOrder(t *testing.T) {
	j := New()
	j.SetPressed(A, true)
	j.SetPressed(Select, true)
	j.SetPressed(Right, true)

	j.Write(1) // strobe high
	j.Write(0) // strobe low, latch current state, start serial read

	want := []uint8{1, 0, 1, 0, 0, 0, 0, 1} // A,B,Select,Start,Up,Down,Left,Right
	for i, w := range want {
		if got := j.Read(); got != w {
			t.Errorf("read %d = %d, want %d", i, got, w)
		}
	}
	if got := j.Read(); got != 1 {
		t.Errorf("9th read = %d, want 1 (open bus)", got)
	}
}

func TestStrobeHeldAlwaysReturnsA(t *testing.T) {
	j := New()
	j.SetPressed(A, true)
	j.Write(1)
	for i := 0; i < 3; i++ {
		if got := j.Read(); got != 1 {
			t.Errorf("read %d with strobe held = %d, want 1", i, got)
		}
	}
}

func TestSetPressedClearsBit(t *testing.T) {
	j := New()
	j.SetPressed(B, true)
	j.SetPressed(B, false)
	j.Write(1)
	j.Write(0)
	j.Read() // A
	if got := j.Read(); got != 0 {
		t.Errorf("B = %d, want 0 after release", got)
	}
}
