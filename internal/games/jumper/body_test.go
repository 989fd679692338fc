package jumper

import (
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

func TestBodyMoveWraps(t *testing.T) {
	tests := []struct {
		name     string
		x, dx    float64
		expected float64
	}{
		{"inside stays", 400, 6, 406},
		{"partly out right stays", 810, 6, 816},
		{"fully out right wraps", 815, 6, -20},
		{"partly out left stays", -10, -6, -16},
		{"fully out left wraps", -15, -6, 820},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(core.Vec2{X: tt.x, Y: 100}, 20)
			b.Move(tt.dx, 800)
			if b.Pos.X != tt.expected {
				t.Errorf("X = %v, expected %v", b.Pos.X, tt.expected)
			}
		})
	}
}

func TestBodyIntegrate(t *testing.T) {
	b := NewBody(core.Vec2{X: 0, Y: 100}, 20)
	b.Grounded = true

	b.Integrate(0.5)

	if b.VelY != 0.5 || b.Pos.Y != 100.5 {
		t.Errorf("after Integrate: vel=%v y=%v, expected 0.5 and 100.5", b.VelY, b.Pos.Y)
	}
	if b.Grounded {
		t.Error("Integrate should clear Grounded")
	}
	if !b.Falling() {
		t.Error("Falling() = false with positive velocity")
	}
}

func TestBodyBounce(t *testing.T) {
	b := NewBody(core.Vec2{X: 0, Y: 535}, 20)
	b.VelY = 3

	b.Bounce(550, 10)

	if b.Bottom() != 550 {
		t.Errorf("Bottom() = %v, expected 550", b.Bottom())
	}
	if b.VelY != -10 {
		t.Errorf("VelY = %v, expected -10", b.VelY)
	}
	if !b.Grounded {
		t.Error("Bounce should set Grounded")
	}
}
