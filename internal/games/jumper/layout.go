package jumper

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Layout holds the clickable regions in world units.
// Regions of the same state never overlap, so containment is the only hit test.
type Layout struct {
	Start core.RectF // Menu: start game
	Sound core.RectF // Menu: toggle sound
	Menu  core.RectF // Game over: return to menu
}

// reference height the button rows were laid out for
const layoutRefH = 600.0

// NewLayout places the buttons centered horizontally in the world.
func NewLayout(world config.WorldConfig) Layout {
	sy := world.Height / layoutRefH
	x := world.Width/2 - 100
	return Layout{
		Start: core.NewRectF(x, 200*sy, 200, 50*sy),
		Sound: core.NewRectF(x, 270*sy, 200, 50*sy),
		Menu:  core.NewRectF(x, 440*sy, 200, 40*sy),
	}
}

// cellToWorld maps the center of a terminal cell to world units.
func cellToWorld(p core.Point, screenW, screenH int, world config.WorldConfig) core.Vec2 {
	if screenW <= 0 || screenH <= 0 {
		return core.Vec2{X: float64(p.X), Y: float64(p.Y)}
	}
	return core.Vec2{
		X: (float64(p.X) + 0.5) * world.Width / float64(screenW),
		Y: (float64(p.Y) + 0.5) * world.Height / float64(screenH),
	}
}

// worldToCell maps a world position to the terminal cell containing it.
func worldToCell(v core.Vec2, screenW, screenH int, world config.WorldConfig) (int, int) {
	x := math.Floor(v.X * float64(screenW) / world.Width)
	y := math.Floor(v.Y * float64(screenH) / world.Height)
	return int(x), int(y)
}
