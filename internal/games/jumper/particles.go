package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Particle is a short-lived decorative spark.
type Particle struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Color    core.RGB
	Lifetime int
}

// ParticleSystem owns the live particles of one session.
type ParticleSystem struct {
	cfg   config.ParticleConfig
	items []Particle
}

// NewParticleSystem creates an empty system.
func NewParticleSystem(cfg config.ParticleConfig) *ParticleSystem {
	return &ParticleSystem{cfg: cfg}
}

// Spawn emits one burst at pos.
func (s *ParticleSystem) Spawn(pos core.Vec2, rng *RNG) {
	for i := 0; i < s.cfg.Burst; i++ {
		s.items = append(s.items, Particle{
			Pos:    pos,
			Vel:    core.Vec2{X: rng.Uniform(-1, 1), Y: rng.Uniform(-2, 0)},
			Radius: float64(rng.IntRange(s.cfg.MinRadius, s.cfg.MaxRadius)),
			Color: core.RGB{
				R: uint8(rng.IntRange(200, 255)), //#nosec G115 -- range fits in uint8
				G: uint8(rng.IntRange(100, 200)), //#nosec G115 -- range fits in uint8
				B: 0,
			},
			Lifetime: rng.IntRange(s.cfg.MinLifetime, s.cfg.MaxLifetime),
		})
	}
}

// Update advances every particle one frame and prunes the dead ones.
func (s *ParticleSystem) Update() {
	alive := s.items[:0]
	for _, p := range s.items {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel.Y += s.cfg.Gravity
		p.Lifetime--
		if p.Lifetime < s.cfg.FadeBelow {
			p.Radius *= s.cfg.FadeFactor
		}
		if p.Lifetime <= 0 || p.Radius <= s.cfg.VisibleRadius {
			continue
		}
		alive = append(alive, p)
	}
	// Zero the tail so pruned particles are not kept reachable.
	for i := len(alive); i < len(s.items); i++ {
		s.items[i] = Particle{}
	}
	s.items = alive
}

// Len returns the number of live particles.
func (s *ParticleSystem) Len() int {
	return len(s.items)
}

// Particles returns a copy of the live particles.
func (s *ParticleSystem) Particles() []Particle {
	out := make([]Particle, len(s.items))
	copy(out, s.items)
	return out
}

// Visible returns the particles large enough to draw.
func (s *ParticleSystem) Visible() []Particle {
	out := make([]Particle, 0, len(s.items))
	for _, p := range s.items {
		if p.Radius > s.cfg.VisibleRadius {
			out = append(out, p)
		}
	}
	return out
}

// Clear removes all particles.
func (s *ParticleSystem) Clear() {
	s.items = nil
}
