package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/audio"
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// State is the top-level mode of the machine.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Machine is the game state machine. It owns the current session, the
// sound flag and the background, and turns input frames into transitions.
type Machine struct {
	night bool

	runtime    core.RuntimeConfig
	cfg        config.JumperConfig
	difficulty *config.DifficultyManager
	rng        *RNG
	audio      audio.Gateway
	layout     Layout

	state   State
	session *Session
	stars   *Starfield

	soundEnabled bool
	statusTicks  int
	tick         uint64
}

// New creates a jumper with the day theme.
func New() *Machine {
	return &Machine{soundEnabled: true, audio: silent{}}
}

// NewNight creates a jumper with the twinkling starfield background.
func NewNight() *Machine {
	m := New()
	m.night = true
	return m
}

// ID returns the unique identifier for this game.
func (m *Machine) ID() string {
	if m.night {
		return "jumper_night"
	}
	return "jumper"
}

// Title returns the display name for this game.
func (m *Machine) Title() string {
	if m.night {
		return "Platform Jumper (Night)"
	}
	return "Platform Jumper"
}

// SetAudio attaches the audio gateway. A nil gateway silences the game.
func (m *Machine) SetAudio(g audio.Gateway) {
	if g == nil {
		g = silent{}
	}
	m.audio = g
	if !g.Available() {
		m.soundEnabled = false
	}
}

// Reset loads the configuration and returns to the menu.
// The sound flag survives resets.
func (m *Machine) Reset(runtime core.RuntimeConfig) {
	m.ResetWithConfig(runtime, loadConfig())
}

// ResetWithConfig is Reset with explicit tuning.
func (m *Machine) ResetWithConfig(runtime core.RuntimeConfig, cfg config.JumperConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	m.runtime = runtime
	m.cfg = cfg
	m.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	m.rng = NewRNG(runtime.Seed)
	m.layout = NewLayout(cfg.World)
	m.state = StateMenu
	m.session = NewSession(cfg, m.difficulty, m.rng, runtime.TickRate)
	m.stars = nil
	if m.night {
		// Separate stream so both themes lay out identical platforms for a seed.
		m.stars = NewStarfield(cfg.Stars.Count, cfg.World.Width, cfg.World.Height, NewRNG(runtime.Seed^0x5deece66d))
	}
	m.statusTicks = cfg.HUD.SoundStatusTicks
	m.tick = 0
	if !m.audio.Available() {
		m.soundEnabled = false
	}
}

// Resize records the terminal size used to map clicks to world units.
func (m *Machine) Resize(w, h int) {
	m.runtime.ScreenW = w
	m.runtime.ScreenH = h
}

// Step advances the machine by one frame.
func (m *Machine) Step(in core.InputFrame) core.StepResult {
	m.tick++
	if m.statusTicks > 0 {
		m.statusTicks--
	}
	if m.stars != nil {
		m.stars.Advance()
	}

	muted := in.Has(core.ActionMute)
	if muted {
		m.ToggleSound()
	}

	var click *core.Vec2
	if in.Click != nil {
		p := cellToWorld(*in.Click, m.runtime.ScreenW, m.runtime.ScreenH, m.cfg.World)
		click = &p
	}

	switch m.state {
	case StateMenu:
		switch {
		case in.Has(core.ActionConfirm), click != nil && m.layout.Start.Contains(*click):
			m.start()
		case !muted && click != nil && m.layout.Sound.Contains(*click):
			// One toggle per frame even when the key and the button agree.
			m.ToggleSound()
		}

	case StatePlaying:
		m.stepPlaying(in)

	case StateGameOver:
		switch {
		case in.Has(core.ActionRestart):
			m.start()
		case in.Has(core.ActionBack), click != nil && m.layout.Menu.Contains(*click):
			// Stats stay readable until the next start.
			m.state = StateMenu
		}
	}

	if m.state != StateMenu {
		m.session.Particles.Update()
	}

	return core.StepResult{State: m.State()}
}

func (m *Machine) stepPlaying(in core.InputFrame) {
	s := m.session

	if in.Has(core.ActionBoost) && s.Boost() {
		m.play(audio.EffectBoost)
	}

	left := in.IsHeld(core.ActionLeft) || in.Has(core.ActionLeft)
	right := in.IsHeld(core.ActionRight) || in.Has(core.ActionRight)
	ev := s.Step(left, right)

	if ev.Bounced {
		m.play(audio.EffectJump)
	}
	if ev.Scored {
		m.play(audio.EffectLand)
	}
	if ev.Fell {
		m.state = StateGameOver
		m.play(audio.EffectGameOver)
		m.audio.SetMusicPlaying(false)
		return
	}
	if ev.Scrolled > 0 && m.stars != nil {
		m.stars.Shift(ev.Scrolled * m.cfg.Stars.Parallax)
	}
}

// start begins a fresh session from the menu or after game over.
func (m *Machine) start() {
	m.session = NewSession(m.cfg, m.difficulty, m.rng, m.runtime.TickRate)
	m.state = StatePlaying
	if m.soundEnabled {
		m.audio.SetMusicPlaying(true)
	}
}

// ToggleSound flips the process-wide sound flag. Music follows the flag
// but only plays during a run.
func (m *Machine) ToggleSound() {
	m.soundEnabled = !m.soundEnabled
	m.statusTicks = m.cfg.HUD.SoundStatusTicks
	if !m.soundEnabled {
		m.audio.SetMusicPlaying(false)
		return
	}
	if m.state == StatePlaying {
		m.audio.SetMusicPlaying(true)
	}
}

// play requests an effect unless sound is off.
func (m *Machine) play(e audio.Effect) {
	if m.soundEnabled {
		m.audio.PlayEffect(e)
	}
}

// SoundEnabled reports the sound flag.
func (m *Machine) SoundEnabled() bool {
	return m.soundEnabled
}

// CurrentState returns the machine state.
func (m *Machine) CurrentState() State {
	return m.state
}

// Session returns the current or most recent session.
func (m *Machine) Session() *Session {
	return m.session
}

// Config returns the tuning in use.
func (m *Machine) Config() config.JumperConfig {
	return m.cfg
}

// Layout returns the clickable regions in world units.
func (m *Machine) Layout() Layout {
	return m.layout
}

// State returns the summary the platform layer consumes.
func (m *Machine) State() core.GameState {
	var stats SessionStats
	if m.session != nil {
		stats = m.session.Stats
	}
	return core.GameState{
		Score:    stats.Score,
		GameOver: m.state == StateGameOver,
		InMenu:   m.state == StateMenu,
		Stats:    stats.RunStats(),
	}
}

// Observe returns the current read-only View.
func (m *Machine) Observe() any {
	return m.View()
}

// silent is the gateway used until one is attached.
type silent struct{}

func (silent) PlayEffect(audio.Effect) {}
func (silent) SetMusicPlaying(bool)    {}
func (silent) Available() bool         { return true }
