package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"left", core.ActionLeft, false},
		{"a", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"d", core.ActionRight, false},
		{" ", core.ActionBoost, false},
		{"enter", core.ActionConfirm, false},
		{"b", core.ActionBack, false},
		{"esc", core.ActionBack, false},
		{"r", core.ActionRestart, false},
		{"m", core.ActionMute, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tt.key))
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.key, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMovementIsHeld(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("right"), &frame)
	if frame.Has(core.ActionRight) {
		t.Error("movement should not be a discrete press")
	}

	for i := 0; i < moveHoldTicks; i++ {
		km.ApplyHold(&frame)
		if !frame.IsHeld(core.ActionRight) {
			t.Fatalf("tick %d: right not held", i)
		}
		frame.Clear()
	}

	km.ApplyHold(&frame)
	if frame.IsHeld(core.ActionRight) {
		t.Errorf("right still held after %d ticks", moveHoldTicks)
	}
}

func TestOppositeDirectionReplacesHold(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("left"), &frame)
	km.ApplyHold(&frame)
	frame.Clear()

	km.MapKeyToFrame(keyMsg("right"), &frame)
	km.ApplyHold(&frame)
	if frame.IsHeld(core.ActionLeft) || !frame.IsHeld(core.ActionRight) {
		t.Errorf("Holding = %v, expected only right", frame.Holding)
	}

	frame.Clear()
	km.Release()
	km.ApplyHold(&frame)
	if !frame.Empty() {
		t.Errorf("frame after Release() = %+v, expected empty", frame)
	}
}

func TestDiscreteKeysSetOnce(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg(" "), &frame) {
		t.Error("space should not quit")
	}
	if !frame.Has(core.ActionBoost) {
		t.Error("space should set boost")
	}
	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not reach the game")
	}
}

func TestMouseClick(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion}, &frame)
	if frame.Click != nil {
		t.Error("motion should not click")
	}

	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	if frame.Click == nil || *frame.Click != (core.Point{X: 3, Y: 4}) {
		t.Errorf("Click = %v, expected (3,4)", frame.Click)
	}
}
