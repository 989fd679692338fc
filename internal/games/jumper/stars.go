package jumper

import "math"

// Star is one twinkling point of the night background.
type Star struct {
	X, Y  float64
	Size  int
	Base  int     // Base brightness
	Speed float64 // Twinkle speed
	Phase float64
}

// Starfield is the parallax background of the night theme.
type Starfield struct {
	stars []Star
	rng   *RNG
	w, h  float64
	t     float64
}

// NewStarfield scatters count stars over a w×h world.
func NewStarfield(count int, w, h float64, rng *RNG) *Starfield {
	sf := &Starfield{rng: rng, w: w, h: h, stars: make([]Star, count)}
	for i := range sf.stars {
		sf.stars[i] = Star{
			X:     float64(rng.IntRange(0, int(w))),
			Y:     float64(rng.IntRange(0, int(h))),
			Size:  rng.IntRange(1, 3),
			Base:  rng.IntRange(100, 255),
			Speed: rng.Uniform(0.01, 0.05),
			Phase: rng.Uniform(0, 2*math.Pi),
		}
	}
	return sf
}

// Advance moves the twinkle clock one frame.
func (sf *Starfield) Advance() {
	sf.t += 0.1
}

// Shift scrolls the stars down by dy, respawning those that leave the
// bottom at the top edge with a new x.
func (sf *Starfield) Shift(dy float64) {
	for i := range sf.stars {
		s := &sf.stars[i]
		s.Y += dy
		if s.Y > sf.h {
			s.Y = 0
			s.X = float64(sf.rng.IntRange(0, int(sf.w)))
		}
	}
}

// Brightness returns the current gray level of s, kept within [50, 255].
func (sf *Starfield) Brightness(s Star) uint8 {
	v := s.Base + int(50*math.Sin(sf.t*s.Speed+s.Phase))
	return uint8(max(min(v, 255), 50)) //#nosec G115 -- clamped to byte range
}

// Stars returns a copy of the stars.
func (sf *Starfield) Stars() []Star {
	out := make([]Star, len(sf.stars))
	copy(out, sf.stars)
	return out
}
