package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/platform/feed"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// stubGame ends the run on a fixed tick and counts platform calls.
type stubGame struct {
	overAt   int
	steps    int
	resets   int
	resized  [2]int
	observed int
	held     []bool
	state    core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.state = core.GameState{InMenu: true}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.held = append(g.held, in.IsHeld(core.ActionRight))
	g.state.InMenu = false
	if g.steps >= g.overAt {
		g.state.GameOver = true
		g.state.Score = 12
		g.state.Stats = core.RunStats{Score: 12, MaxHeight: 900, PlatformsLanded: 12, ElapsedSeconds: 4}
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState   { return g.state }
func (g *stubGame) Resize(w, h int)         { g.resized = [2]int{w, h} }
func (g *stubGame) Observe() any            { g.observed++; return g.state }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1}
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		next, _ := m.Update(TickMsg{})
		m = next.(Model)
	}
	return m
}

func TestModelResetsOnce(t *testing.T) {
	g := &stubGame{overAt: 100}
	m := NewModel(g, testConfig(), Options{})
	tick(t, m, 5)

	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if g.steps != 5 {
		t.Errorf("steps = %d, expected 5", g.steps)
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{overAt: 3}
	m := NewModel(g, testConfig(), Options{Store: store})
	tick(t, m, 10)

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, expected 1", len(runs))
	}
	if runs[0].Stats.MaxHeight != 900 || runs[0].Stats.Score != 12 {
		t.Errorf("saved stats = %+v", runs[0].Stats)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &stubGame{overAt: 100}
	m := NewModel(g, testConfig(), Options{})
	m = tick(t, m, 3)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	tick(t, m, 1)

	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if g.resized != [2]int{100, 30} {
		t.Errorf("Resize() got %v, expected [100 30]", g.resized)
	}
	if g.steps != 4 {
		t.Errorf("steps = %d, expected 4", g.steps)
	}
}

func TestModelHoldsMovement(t *testing.T) {
	g := &stubGame{overAt: 100}
	m := NewModel(g, testConfig(), Options{})

	next, _ := m.Update(keyMsg("right"))
	m = next.(Model)
	tick(t, m, moveHoldTicks+2)

	for i, held := range g.held {
		expected := i < moveHoldTicks
		if held != expected {
			t.Errorf("tick %d: held = %v, expected %v", i, held, expected)
		}
	}
}

func TestModelQuit(t *testing.T) {
	g := &stubGame{overAt: 100}
	m := NewModel(g, testConfig(), Options{})

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelRecordsInput(t *testing.T) {
	g := &stubGame{overAt: 100}
	m := NewModel(g, testConfig(), Options{Record: true})

	next, _ := m.Update(keyMsg("enter"))
	m = next.(Model)
	m = tick(t, m, 5)

	rec := m.Recording()
	if rec == nil {
		t.Fatal("Recording() = nil, expected a recording")
	}
	if rec.Ticks != 5 || rec.GameID != "stub" || rec.Seed != 1 {
		t.Errorf("recording header = %d/%s/%d", rec.Ticks, rec.GameID, rec.Seed)
	}
	if len(rec.Frames) != 1 || rec.Frames[0].Tick != 1 {
		t.Errorf("Frames = %+v, expected confirm on tick 1", rec.Frames)
	}

	if NewModel(&stubGame{}, testConfig(), Options{}).Recording() != nil {
		t.Error("Recording() without Record should be nil")
	}
}

func TestModelView(t *testing.T) {
	g := &stubGame{overAt: 100}
	m := NewModel(g, testConfig(), Options{})

	if !strings.Contains(m.View(), "stub") {
		t.Error("View() should contain the rendered game")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hi")
	s.SetColored(4, 1, '#', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() lines = %d, expected 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "hi") {
		t.Errorf("first line = %q, expected prefix hi", lines[0])
	}
	if !strings.Contains(lines[1], "#") {
		t.Errorf("second line = %q, expected #", lines[1])
	}
}

func TestModelPublishesToFeed(t *testing.T) {
	hub := feed.NewHub(nil)
	defer hub.Close()

	g := &stubGame{overAt: 100}
	m := NewModel(g, testConfig(), Options{Feed: hub, FeedEvery: 2})
	tick(t, m, 5)

	if g.observed != 2 {
		t.Errorf("Observe() calls = %d, expected 2", g.observed)
	}
}
