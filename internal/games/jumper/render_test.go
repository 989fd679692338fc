package jumper

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

func renderString(m *Machine, w, h int) string {
	screen := core.NewScreen(w, h)
	m.Render(screen)
	return screen.String()
}

func TestRenderMenu(t *testing.T) {
	m, _ := newTestMachine(t)
	out := renderString(m, 80, 24)

	for _, want := range []string{"PLATFORMER JUMPER", "START GAME", "SOUND: ON", "Instructions:"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q:\n%s", want, out)
		}
	}

	m.ToggleSound()
	if out := renderString(m, 80, 24); !strings.Contains(out, "SOUND: OFF") {
		t.Error("menu did not reflect muted sound")
	}
}

func TestRenderStartButtonMatchesHitRegion(t *testing.T) {
	m, _ := newTestMachine(t)
	screen := core.NewScreen(80, 24)
	m.Render(screen)

	if !strings.Contains(screen.Row(9), "START GAME") {
		t.Errorf("row 9 = %q, expected the start button", screen.Row(9))
	}
	if !strings.Contains(screen.Row(11), "SOUND") {
		t.Errorf("row 11 = %q, expected the sound button", screen.Row(11))
	}
}

func TestRenderPlaying(t *testing.T) {
	m, _ := newTestMachine(t)
	startPlaying(t, m)
	screen := core.NewScreen(80, 24)
	m.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Score: 0") || !strings.Contains(out, "Boosts:") {
		t.Errorf("HUD missing:\n%s", out)
	}
	if strings.Count(out, string(ChargeFull)) != 3 {
		t.Errorf("expected 3 full boost charges:\n%s", out)
	}

	// Body center (400, 500) maps to cell (40, 20).
	if c := screen.GetCell(40, 20); c.Rune != BodyChar && c.Rune != ShineChar {
		t.Errorf("cell (40,20) = %q, expected body", c.Rune)
	}
	// Start platform top (340..460, 550) maps to row 22.
	if c := screen.GetCell(40, 22); c.Rune != PlatformChar || c.Color != core.ColorHighlight {
		t.Errorf("cell (40,22) = %+v, expected unvisited platform", c)
	}
}

func TestRenderGameOver(t *testing.T) {
	m, _ := newTestMachine(t)
	startPlaying(t, m)
	gameOver(t, m)

	out := renderString(m, 80, 24)
	for _, want := range []string{"GAME OVER! Press R to restart", "Final Score: 0", "Platforms Landed: 0", "Game Time: 0:00", "Return to Menu"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	m, _ := newTestMachine(t)
	if out := renderString(m, 30, 10); !strings.Contains(out, "Terminal too small") {
		t.Errorf("expected size warning:\n%s", out)
	}
}

func TestRenderNightStars(t *testing.T) {
	m := NewNight()
	m.ResetWithConfig(testRuntime(), config.DefaultJumperConfig())
	startPlaying(t, m)
	screen := core.NewScreen(80, 24)
	m.Render(screen)

	gray := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			c := screen.GetCell(x, y)
			if c.Colored && c.Color.R == c.Color.G && c.Color.G == c.Color.B && strings.ContainsRune(".+*", c.Rune) {
				gray++
			}
		}
	}
	if gray == 0 {
		t.Error("no stars drawn")
	}
}

func TestViewJSON(t *testing.T) {
	m, _ := newTestMachine(t)
	startPlaying(t, m)

	data, err := json.Marshal(m.Observe())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var v View
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v.State != "playing" || len(v.Platforms) != 16 || v.BoostCharges != 3 || v.Game != "jumper" {
		t.Errorf("decoded view = state %q platforms %d boosts %d", v.State, len(v.Platforms), v.BoostCharges)
	}
}
