package core

import "testing"

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:     "None",
		ActionRotate:   "Rotate",
		ActionHardDrop: "HardDrop",
		ActionSlot3:    "Slot3",
		ActionPause:    "Pause",
		Action(99):     "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", int(a), got, want)
		}
	}
}

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionRotate)
	f.Set(ActionLeft)

	want := []Action{ActionLeft, ActionRotate, ActionLeft}
	if len(f.Actions) != len(want) {
		t.Fatalf("len = %d, want %d", len(f.Actions), len(want))
	}
	for i := range want {
		if f.Actions[i] != want[i] {
			t.Errorf("Actions[%d] = %v, want %v", i, f.Actions[i], want[i])
		}
	}
	if !f.Has(ActionRotate) || f.Has(ActionDown) {
		t.Error("Has() mismatch")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)
	clone := f.Clone()

	f.Clear()
	if len(f.Actions) != 0 {
		t.Errorf("Clear() left %d actions", len(f.Actions))
	}
	if !clone.Has(ActionDown) {
		t.Error("clone should not share storage with the original")
	}
}
