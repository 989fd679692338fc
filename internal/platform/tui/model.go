package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/audio"
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/platform/feed"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/replay"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// defaultFeedEvery is the number of ticks between spectator frames.
const defaultFeedEvery = 2

// Options are the optional services a Model drives besides the game.
type Options struct {
	Store     *storage.Store // Run history; nil disables saving
	Sink      audio.Sink     // Sound output; nil keeps the game silent
	Feed      *feed.Hub      // Spectator feed; nil disables publishing
	FeedEvery int            // Ticks between spectator frames
	Record    bool           // Record input frames for replay
	Logger    *log.Logger
}

// audioSetter is implemented by games that play sounds.
type audioSetter interface {
	SetAudio(audio.Gateway)
}

// tunable is implemented by games that expose their tuning for recordings.
type tunable interface {
	Config() config.JumperConfig
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	recorder   *replay.Recorder
	inputFrame core.InputFrame
	gameState  core.GameState
	tick       uint64
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.FeedEvery <= 0 {
		opts.FeedEvery = defaultFeedEvery
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	if a, ok := game.(audioSetter); ok && opts.Sink != nil {
		a.SetAudio(audio.NewMixer(opts.Sink, opts.Logger))
	}
	game.Reset(cfg)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}

	if opts.Record {
		tuning := config.DefaultJumperConfig()
		if t, ok := game.(tunable); ok {
			tuning = t.Config()
		}
		m.recorder = replay.NewRecorder(game.ID(), cfg, tuning)
	}

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// The run continues; only the click mapping and the buffer change.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	}
	if m.recorder != nil {
		m.recorder.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.keys.ApplyHold(&m.inputFrame)
	if m.recorder != nil {
		m.recorder.Record(m.inputFrame)
	}

	// Run game simulation
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.tick++

	// Save the run once, on the edge into game over
	if m.gameState.GameOver && !prev.GameOver {
		m.saveRun()
	}

	if m.opts.Feed != nil && m.tick%uint64(m.opts.FeedEvery) == 0 {
		if o, ok := m.game.(registry.Observable); ok {
			//nolint:errcheck // Spectators are best-effort
			m.opts.Feed.Publish(o.Observe())
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run in the history.
func (m Model) saveRun() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveRun(m.game.ID(), m.gameState.Stats); err != nil {
		m.opts.Logger.Warn("could not save run", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.screen.Clear()
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".jumper", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Recording returns the input recorded so far, or nil when not recording.
func (m Model) Recording() *replay.Recording {
	if m.recorder == nil {
		return nil
	}
	return m.recorder.Recording()
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program and returns the final model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Menu buttons are clickable
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := final.(Model); ok {
		return m, nil
	}
	return model, nil
}
