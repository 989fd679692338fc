package jumper

import (
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

func newTestField(seed int64) *PlatformField {
	cfg := config.DefaultJumperConfig()
	return NewPlatformField(cfg.Platforms, cfg.World, 400, NewRNG(seed))
}

func TestNewPlatformFieldLayout(t *testing.T) {
	f := newTestField(1)

	if f.Len() != 16 {
		t.Fatalf("Len() = %d, expected 16", f.Len())
	}

	start := f.Get(0)
	if start.Rect != core.NewRectF(340, 550, 120, 20) {
		t.Errorf("start platform = %+v, expected centered at y=550", start.Rect)
	}

	ids := make(map[int]bool)
	for i, p := range f.Platforms() {
		if ids[p.ID] {
			t.Errorf("duplicate platform ID %d", p.ID)
		}
		ids[p.ID] = true
		if p.Visited {
			t.Errorf("platform %d starts visited", i)
		}
		if i == 0 {
			continue
		}
		if want := 450 - float64(i-1)*80; p.Rect.Y != want {
			t.Errorf("platform %d y = %v, expected %v", i, p.Rect.Y, want)
		}
		if p.Rect.X < 50 || p.Rect.X > 630 {
			t.Errorf("platform %d x = %v outside [50, 630]", i, p.Rect.X)
		}
	}
}

func TestLandingBand(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		bottom   float64 // offset of body bottom from platform top
		velY     float64
		expected int
	}{
		{"on top edge", 400, 0, 1, 0},
		{"inside band", 400, 10, 1, 0},
		{"band limit", 400, 15, 1, 0},
		{"above band", 400, -1, 1, -1},
		{"below band", 400, 16, 1, -1},
		{"rising", 400, 5, -1, -1},
		{"resting", 400, 5, 0, -1},
		{"left inset excluded", 325, 5, 1, -1},
		{"left inset overlap", 326, 5, 1, 0},
		{"right inset excluded", 475, 5, 1, -1},
		{"right inset overlap", 474, 5, 1, 0},
	}

	f := newTestField(1)
	top := f.Get(0).Rect.Top()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(core.Vec2{X: tt.x, Y: top + tt.bottom - 20}, 20)
			b.VelY = tt.velY
			if got := f.Landing(b); got != tt.expected {
				t.Errorf("Landing() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestLandingFirstMatchWins(t *testing.T) {
	f := newTestField(1)
	f.platforms = []Platform{
		{ID: 1, Rect: core.NewRectF(300, 300, 120, 20)},
		{ID: 2, Rect: core.NewRectF(320, 305, 120, 20)},
	}
	b := NewBody(core.Vec2{X: 370, Y: 288}, 20)
	b.VelY = 2

	if got := f.Landing(b); got != 0 {
		t.Errorf("Landing() = %d, expected first platform", got)
	}
}

func TestVisitOnce(t *testing.T) {
	f := newTestField(1)
	if !f.Visit(3) {
		t.Error("first Visit() = false")
	}
	if f.Visit(3) {
		t.Error("second Visit() = true")
	}
	if !f.Get(3).Visited {
		t.Error("platform not marked visited")
	}
}

func TestRecycleKeepsPoolSize(t *testing.T) {
	f := newTestField(5)
	f.Visit(0)
	highest := f.HighestY()

	f.Shift(100)
	n := f.Recycle(80)

	if n != 1 {
		t.Fatalf("Recycle() = %d, expected 1", n)
	}
	if f.Len() != 16 {
		t.Fatalf("Len() = %d, expected 16", f.Len())
	}

	spawned := f.Get(f.Len() - 1)
	if spawned.ID != 17 {
		t.Errorf("spawned ID = %d, expected fresh ID 17", spawned.ID)
	}
	if spawned.Visited {
		t.Error("spawned platform inherited Visited")
	}
	if want := highest + 100 - 80; spawned.Rect.Y != want {
		t.Errorf("spawned y = %v, expected %v", spawned.Rect.Y, want)
	}
	for _, p := range f.Platforms() {
		if p.ID == 1 {
			t.Error("retired platform still in pool")
		}
	}
}

func TestRecycleNothingOnScreen(t *testing.T) {
	f := newTestField(5)
	f.Shift(50) // start platform top lands exactly on the bottom edge
	if n := f.Recycle(80); n != 0 {
		t.Errorf("Recycle() = %d, expected 0", n)
	}
}
