package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Events reports what one session frame produced, so the machine can
// request sounds without the session knowing about audio.
type Events struct {
	Bounced  bool    // Body bounced off a platform
	Scored   bool    // The bounce was the first on that platform
	Fell     bool    // Body dropped below the world
	Scrolled float64 // World shift applied this frame, 0 if none
}

// Session is the complete mutable state of one run. A new Session is
// built for every start or restart; nothing carries over.
type Session struct {
	cfg        config.JumperConfig
	difficulty *config.DifficultyManager
	rng        *RNG
	tickRate   int

	Body      Body
	Field     *PlatformField
	Particles *ParticleSystem
	Stats     SessionStats
	Boosts    int

	startY   float64
	scrolled float64
	frame    int
}

// NewSession lays out a fresh run.
func NewSession(cfg config.JumperConfig, difficulty *config.DifficultyManager, rng *RNG, tickRate int) *Session {
	start := core.Vec2{X: cfg.World.Width / 2, Y: cfg.World.Height - cfg.Player.StartOffset}
	return &Session{
		cfg:        cfg,
		difficulty: difficulty,
		rng:        rng,
		tickRate:   tickRate,
		Body:       NewBody(start, cfg.Player.Radius),
		Field:      NewPlatformField(cfg.Platforms, cfg.World, start.X, rng),
		Particles:  NewParticleSystem(cfg.Particles),
		Boosts:     cfg.Boost.InitialCharges,
		startY:     start.Y,
	}
}

// Boost spends a charge for an airborne jump.
// It is a no-op returning false while grounded or out of charges.
func (s *Session) Boost() bool {
	if s.Body.Grounded || s.Boosts <= 0 {
		return false
	}
	s.Body.VelY = -s.cfg.Physics.JumpPower
	s.Boosts--
	s.Stats.BoostsUsed++
	s.Particles.Spawn(core.Vec2{X: s.Body.Pos.X, Y: s.Body.Bottom()}, s.rng)
	return true
}

// Step runs one frame of movement, gravity, landing and scrolling.
func (s *Session) Step(left, right bool) Events {
	var ev Events

	s.frame++
	if s.tickRate > 0 && s.frame%s.tickRate == 0 {
		s.Stats.ElapsedSeconds++
	}

	w, h := s.cfg.World.Width, s.cfg.World.Height
	if left {
		s.Body.Move(-s.cfg.Physics.MoveSpeed, w)
	}
	if right {
		s.Body.Move(s.cfg.Physics.MoveSpeed, w)
	}

	s.Body.Integrate(s.cfg.Physics.Gravity)

	if i := s.Field.Landing(s.Body); i >= 0 {
		s.Body.Bounce(s.Field.Get(i).Rect.Top(), s.cfg.Physics.JumpPower)
		ev.Bounced = true
		if s.Field.Visit(i) {
			s.Stats.Score++
			s.Stats.PlatformsLanded++
			ev.Scored = true
			if s.Stats.Score%s.cfg.Boost.ReplenishEvery == 0 {
				s.Boosts = min(s.Boosts+1, s.cfg.Boost.MaxCharges)
			}
		}
	}

	s.Stats.observeHeight(s.Height())

	if s.Body.Top() > h {
		ev.Fell = true
		return ev
	}

	if s.Body.Pos.Y < h/2 {
		speed := s.difficulty.ScrollSpeed(s.cfg.Physics.ScrollSpeed, s.Stats.Score, s.frame)
		s.Body.Pos.Y += speed
		s.Field.Shift(speed)
		s.scrolled += speed
		s.Field.Recycle(s.gap())
		ev.Scrolled = speed
	}

	return ev
}

// gap returns the spacing for newly spawned platforms, capped below the
// bounce apex so a plain bounce can always reach the next platform.
func (s *Session) gap() float64 {
	p := s.cfg.Physics
	apex := p.JumpPower * p.JumpPower / (2 * p.Gravity)
	return s.difficulty.Gap(s.cfg.Platforms.Gap, apex*0.9, s.Stats.Score, s.frame)
}

// Height returns the distance climbed from the start position, counting
// the world already scrolled away.
func (s *Session) Height() float64 {
	return s.startY - s.Body.Pos.Y + s.scrolled
}

// Scrolled returns the total world shift of this session.
func (s *Session) Scrolled() float64 {
	return s.scrolled
}

// Frame returns the number of Playing frames stepped.
func (s *Session) Frame() int {
	return s.frame
}
