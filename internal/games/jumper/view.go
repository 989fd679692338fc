package jumper

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// View is a read-only snapshot of everything needed to draw a frame.
// It is safe to marshal and to hand to other goroutines.
type View struct {
	Game           string                `json:"game"`
	Tick           uint64                `json:"tick"`
	State          string                `json:"state"`
	World          core.Vec2             `json:"world"`
	Body           BodyView              `json:"body"`
	Platforms      []PlatformView        `json:"platforms"`
	Particles      []ParticleView        `json:"particles"`
	Stars          []StarView            `json:"stars,omitempty"`
	Stats          core.RunStats         `json:"stats"`
	BoostCharges   int                   `json:"boost_charges"`
	BoostMax       int                   `json:"boost_max"`
	SoundEnabled   bool                  `json:"sound_enabled"`
	AudioAvailable bool                  `json:"audio_available"`
	Status         string                `json:"status,omitempty"`
	Buttons        map[string]core.RectF `json:"buttons"`
}

// BodyView is the drawable body state.
type BodyView struct {
	Pos      core.Vec2 `json:"pos"`
	Radius   float64   `json:"radius"`
	VelY     float64   `json:"vel_y"`
	Grounded bool      `json:"grounded"`
}

// PlatformView is one drawable platform.
type PlatformView struct {
	ID      int        `json:"id"`
	Rect    core.RectF `json:"rect"`
	Visited bool       `json:"visited"`
}

// ParticleView is one drawable particle.
type ParticleView struct {
	Pos    core.Vec2 `json:"pos"`
	Radius float64   `json:"radius"`
	Color  core.RGB  `json:"color"`
}

// StarView is one drawable star.
type StarView struct {
	Pos        core.Vec2 `json:"pos"`
	Size       int       `json:"size"`
	Brightness uint8     `json:"brightness"`
}

// View builds the current snapshot.
func (m *Machine) View() View {
	v := View{
		Game:           m.ID(),
		Tick:           m.tick,
		State:          m.state.String(),
		World:          core.Vec2{X: m.cfg.World.Width, Y: m.cfg.World.Height},
		SoundEnabled:   m.soundEnabled,
		AudioAvailable: m.audio.Available(),
		BoostMax:       m.cfg.Boost.MaxCharges,
		Status:         m.statusText(),
		Buttons:        m.buttons(),
	}

	if s := m.session; s != nil {
		v.Body = BodyView{Pos: s.Body.Pos, Radius: s.Body.Radius, VelY: s.Body.VelY, Grounded: s.Body.Grounded}
		v.Stats = s.Stats.RunStats()
		v.BoostCharges = s.Boosts

		v.Platforms = make([]PlatformView, 0, s.Field.Len())
		for _, p := range s.Field.Platforms() {
			v.Platforms = append(v.Platforms, PlatformView{ID: p.ID, Rect: p.Rect, Visited: p.Visited})
		}

		visible := s.Particles.Visible()
		v.Particles = make([]ParticleView, 0, len(visible))
		for _, p := range visible {
			v.Particles = append(v.Particles, ParticleView{Pos: p.Pos, Radius: p.Radius, Color: p.Color})
		}
	}

	if m.stars != nil {
		for _, st := range m.stars.Stars() {
			v.Stars = append(v.Stars, StarView{
				Pos:        core.Vec2{X: st.X, Y: st.Y},
				Size:       st.Size,
				Brightness: m.stars.Brightness(st),
			})
		}
	}

	return v
}

// buttons lists the clickable regions of the current state.
func (m *Machine) buttons() map[string]core.RectF {
	switch m.state {
	case StateMenu:
		return map[string]core.RectF{"start": m.layout.Start, "sound": m.layout.Sound}
	case StateGameOver:
		return map[string]core.RectF{"menu": m.layout.Menu}
	default:
		return nil
	}
}

// statusText is the transient sound indicator, or a permanent notice when
// the audio device failed.
func (m *Machine) statusText() string {
	if !m.audio.Available() {
		return "Audio unavailable"
	}
	if m.statusTicks <= 0 {
		return ""
	}
	if m.soundEnabled {
		return "Sound: ON"
	}
	return "Sound: OFF"
}

// Hash returns a simple hash of the simulation part of the view for
// determinism checks.
func (v View) Hash() uint64 {
	h := v.Tick
	h = h*31 + uint64(len(v.State))
	h = h*31 + math.Float64bits(v.Body.Pos.X)
	h = h*31 + math.Float64bits(v.Body.Pos.Y)
	h = h*31 + math.Float64bits(v.Body.VelY)
	h = h*31 + uint64(v.Stats.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(v.Stats.MaxHeight)       //#nosec G115 -- hash computation
	h = h*31 + uint64(v.Stats.PlatformsLanded) //#nosec G115 -- hash computation
	h = h*31 + uint64(v.Stats.BoostsUsed)      //#nosec G115 -- hash computation
	h = h*31 + uint64(v.BoostCharges)          //#nosec G115 -- hash computation

	for _, p := range v.Platforms {
		h = h*31 + uint64(p.ID) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(p.Rect.X)
		h = h*31 + math.Float64bits(p.Rect.Y)
	}

	for _, p := range v.Particles {
		h = h*31 + math.Float64bits(p.Pos.X)
		h = h*31 + math.Float64bits(p.Pos.Y)
		h = h*31 + math.Float64bits(p.Radius)
	}

	return h
}
