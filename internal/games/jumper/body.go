package jumper

import "github.com/vovakirdan/tui-jumper/internal/core"

// Body is the player's circular kinematic state.
// Pos is the center; Radius is fixed for the whole session.
type Body struct {
	Pos      core.Vec2
	VelY     float64
	Radius   float64
	Grounded bool
}

// NewBody places a resting body at pos.
func NewBody(pos core.Vec2, radius float64) Body {
	return Body{Pos: pos, Radius: radius}
}

// Top returns the y of the body's upper edge.
func (b Body) Top() float64 { return b.Pos.Y - b.Radius }

// Bottom returns the y of the body's lower edge.
func (b Body) Bottom() float64 { return b.Pos.Y + b.Radius }

// Move shifts the body horizontally and wraps it once it has fully left
// either side of a world of the given width.
func (b *Body) Move(dx, worldW float64) {
	b.Pos.X += dx
	switch {
	case b.Pos.X-b.Radius > worldW:
		b.Pos.X = -b.Radius
	case b.Pos.X+b.Radius < 0:
		b.Pos.X = worldW + b.Radius
	}
}

// Integrate applies one frame of gravity and clears the grounded flag.
func (b *Body) Integrate(gravity float64) {
	b.VelY += gravity
	b.Pos.Y += b.VelY
	b.Grounded = false
}

// Falling reports whether the body is moving down.
func (b Body) Falling() bool {
	return b.VelY > 0
}

// Bounce rests the body on surfaceY and launches it upward.
func (b *Body) Bounce(surfaceY, jumpPower float64) {
	b.Pos.Y = surfaceY - b.Radius
	b.VelY = -jumpPower
	b.Grounded = true
}
