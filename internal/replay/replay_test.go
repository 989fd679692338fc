package replay

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

// script returns the input for a tick of a short scripted run.
func script(tick int) core.InputFrame {
	in := core.NewInputFrame()
	switch {
	case tick == 1:
		in.Set(core.ActionConfirm)
	case tick >= 10 && tick < 40:
		in.Hold(core.ActionRight)
	case tick == 60:
		in.Set(core.ActionBoost)
	case tick >= 80 && tick < 120:
		in.Hold(core.ActionLeft)
	case tick == 200:
		in.SetClick(40, 12)
	}
	return in
}

// recordRun plays the script live and returns the recording and final state.
func recordRun(t *testing.T, ticks int) (*Recording, core.GameState) {
	t.Helper()
	runtime := testRuntime()
	cfg := config.DefaultJumperConfig()

	m := jumper.New()
	m.ResetWithConfig(runtime, cfg)
	rec := NewRecorder(m.ID(), runtime, cfg)

	for tick := 1; tick <= ticks; tick++ {
		in := script(tick)
		rec.Record(in)
		m.Step(in)
	}
	return rec.Recording(), m.State()
}

func TestRecorderSkipsEmptyFrames(t *testing.T) {
	rec, _ := recordRun(t, 300)

	if rec.Ticks != 300 {
		t.Errorf("Ticks = %d, expected 300", rec.Ticks)
	}
	// 1 confirm + 30 right + 1 boost + 40 left + 1 click
	if len(rec.Frames) != 73 {
		t.Errorf("len(Frames) = %d, expected 73", len(rec.Frames))
	}
	if rec.Frames[0].Tick != 1 || len(rec.Frames[0].Actions) != 1 || rec.Frames[0].Actions[0] != core.ActionConfirm {
		t.Errorf("Frames[0] = %+v, expected confirm on tick 1", rec.Frames[0])
	}
	last := rec.Frames[len(rec.Frames)-1]
	if last.Click == nil || *last.Click != (core.Point{X: 40, Y: 12}) {
		t.Errorf("last frame click = %v, expected (40,12)", last.Click)
	}
}

func TestPlayMatchesLiveRun(t *testing.T) {
	rec, live := recordRun(t, 1500)

	got, err := Play(rec)
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if got.State != live {
		t.Errorf("Play() state = %+v, expected %+v", got.State, live)
	}
	if got.Ticks != 1500 {
		t.Errorf("Play() ticks = %d, expected 1500", got.Ticks)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	rec, live := recordRun(t, 600)
	path := filepath.Join(t.TempDir(), "run.jrec")

	if err := Save(path, rec); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.GameID != "jumper" || loaded.Seed != 42 || loaded.Ticks != 600 {
		t.Errorf("Load() header = %s/%d/%d, expected jumper/42/600", loaded.GameID, loaded.Seed, loaded.Ticks)
	}
	if loaded.Config != rec.Config {
		t.Errorf("Load() config differs from recorded config")
	}

	got, err := Play(loaded)
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if got.State != live {
		t.Errorf("Play() after load = %+v, expected %+v", got.State, live)
	}
}

func TestDecodeRejectsOtherVersion(t *testing.T) {
	rec, _ := recordRun(t, 10)
	rec.Version = Version + 1

	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if _, err := Decode(&buf); !errors.Is(err, ErrVersion) {
		t.Errorf("Decode() error = %v, expected ErrVersion", err)
	}
}

func TestPlayUnknownGame(t *testing.T) {
	rec := &Recording{Version: Version, GameID: "nope", Config: config.DefaultJumperConfig()}
	if _, err := Play(rec); err == nil {
		t.Error("Play() with unknown game should fail")
	}
}

func TestDecodeRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.JumperConfig)
	}{
		{"zero replenish", func(c *config.JumperConfig) { c.Boost.ReplenishEvery = 0 }},
		{"negative stars", func(c *config.JumperConfig) { c.Stars.Count = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := recordRun(t, 20)
			tt.mutate(&rec.Config)

			var buf bytes.Buffer
			if err := Encode(&buf, rec); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if _, err := Decode(&buf); !errors.Is(err, config.ErrInvalid) {
				t.Errorf("Decode() error = %v, expected ErrInvalid", err)
			}
			if _, err := Play(rec); !errors.Is(err, config.ErrInvalid) {
				t.Errorf("Play() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.jrec")); err == nil {
		t.Error("Load() of missing file should fail")
	}
}

func TestRecorderResize(t *testing.T) {
	rec := NewRecorder("jumper", testRuntime(), config.DefaultJumperConfig())
	rec.Resize(100, 30)
	rec.Record(core.NewInputFrame())
	rec.Resize(120, 40)
	rec.Record(core.NewInputFrame())
	rec.Record(core.NewInputFrame())

	got := rec.Recording()
	if got.ScreenW != 100 || got.ScreenH != 30 {
		t.Errorf("initial size = %dx%d, expected 100x30", got.ScreenW, got.ScreenH)
	}
	if len(got.Frames) != 1 {
		t.Fatalf("len(Frames) = %d, expected 1", len(got.Frames))
	}
	f := got.Frames[0]
	if f.Tick != 2 || f.Size == nil || *f.Size != (core.Point{X: 120, Y: 40}) {
		t.Errorf("resize frame = %+v, expected tick 2 size 120x40", f)
	}
}
