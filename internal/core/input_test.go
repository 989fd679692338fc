package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionBoost) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionBoost)
	f.Hold(ActionLeft)
	f.SetClick(3, 4)

	if !f.Has(ActionBoost) {
		t.Error("Boost should be set")
	}
	if f.Has(ActionLeft) {
		t.Error("held action must not appear as a discrete press")
	}
	if !f.IsHeld(ActionLeft) {
		t.Error("Left should be held")
	}
	if f.Click == nil || f.Click.X != 3 || f.Click.Y != 4 {
		t.Errorf("Click = %v, expected (3, 4)", f.Click)
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionMute)
	f.Hold(ActionRight)
	f.SetClick(1, 1)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionMute) || !clone.IsHeld(ActionRight) || clone.Click == nil {
		t.Error("Clone must be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionBoost:   "Boost",
		ActionRestart: "Restart",
		ActionMute:    "Mute",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
