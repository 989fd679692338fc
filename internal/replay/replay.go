// Package replay records the input frames of a run and re-simulates them
// headless. The game core is deterministic for a seed, so a recording is
// the seed, the tuning and the non-empty input frames.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// Version is the current recording format.
const Version = 1

// ErrVersion is returned when a recording was written by another format version.
var ErrVersion = errors.New("replay: unsupported version")

// Frame is the input delivered on one tick. Ticks are 1-based.
// Size is a terminal resize applied before the tick's input.
type Frame struct {
	Tick    uint64        `msgpack:"t"`
	Actions []core.Action `msgpack:"a,omitempty"`
	Holding []core.Action `msgpack:"h,omitempty"`
	Click   *core.Point   `msgpack:"c,omitempty"`
	Size    *core.Point   `msgpack:"s,omitempty"`
}

// Recording is a complete, replayable run.
type Recording struct {
	Version  int                 `msgpack:"version"`
	GameID   string              `msgpack:"game_id"`
	Seed     int64               `msgpack:"seed"`
	ScreenW  int                 `msgpack:"screen_w"`
	ScreenH  int                 `msgpack:"screen_h"`
	TickRate int                 `msgpack:"tick_rate"`
	Config   config.JumperConfig `msgpack:"config"`
	Ticks    uint64              `msgpack:"ticks"`
	Frames   []Frame             `msgpack:"frames"`
}

// Runtime returns the runtime configuration the recording was made with.
func (r *Recording) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  r.ScreenW,
		ScreenH:  r.ScreenH,
		TickRate: r.TickRate,
		Seed:     r.Seed,
	}
}

// Recorder accumulates frames as the platform steps the game.
type Recorder struct {
	rec     Recording
	resized *core.Point
}

// NewRecorder starts a recording for the given game.
func NewRecorder(gameID string, runtime core.RuntimeConfig, cfg config.JumperConfig) *Recorder {
	return &Recorder{rec: Recording{
		Version:  Version,
		GameID:   gameID,
		Seed:     runtime.Seed,
		ScreenW:  runtime.ScreenW,
		ScreenH:  runtime.ScreenH,
		TickRate: runtime.TickRate,
		Config:   cfg,
	}}
}

// Record stores the input of the next tick. Empty frames only advance the tick.
func (r *Recorder) Record(in core.InputFrame) {
	r.rec.Ticks++
	if in.Empty() && r.resized == nil {
		return
	}
	f := Frame{
		Tick:    r.rec.Ticks,
		Actions: sortedActions(in.Actions),
		Holding: sortedActions(in.Holding),
		Size:    r.resized,
	}
	r.resized = nil
	if in.Click != nil {
		c := *in.Click
		f.Click = &c
	}
	r.rec.Frames = append(r.rec.Frames, f)
}

// Resize records a new screen size, applied before the next tick.
// Before the first tick it replaces the initial size.
func (r *Recorder) Resize(w, h int) {
	if r.rec.Ticks == 0 {
		r.rec.ScreenW = w
		r.rec.ScreenH = h
		return
	}
	r.resized = &core.Point{X: w, Y: h}
}

// Recording returns the frames recorded so far.
func (r *Recorder) Recording() *Recording {
	rec := r.rec
	rec.Frames = append([]Frame(nil), r.rec.Frames...)
	return &rec
}

// Save writes the recording to path.
func (r *Recorder) Save(path string) error {
	return Save(path, r.Recording())
}

func sortedActions(m map[core.Action]bool) []core.Action {
	var out []core.Action
	for a, on := range m {
		if on {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// input rebuilds the InputFrame of a recorded frame.
func (f Frame) input() core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range f.Actions {
		in.Set(a)
	}
	for _, a := range f.Holding {
		in.Hold(a)
	}
	if f.Click != nil {
		in.SetClick(f.Click.X, f.Click.Y)
	}
	return in
}

// Encode writes rec to w.
func Encode(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads a recording from r.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if rec.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	if err := rec.Config.Validate(); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return &rec, nil
}

// Save writes rec to path.
func Save(path string, rec *Recording) error {
	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from path.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// configurable is implemented by games that accept explicit tuning.
type configurable interface {
	ResetWithConfig(core.RuntimeConfig, config.JumperConfig)
}

// Result is the outcome of a headless replay.
type Result struct {
	Ticks uint64
	State core.GameState
}

// Play re-simulates rec without a terminal and returns the final state.
func Play(rec *Recording) (Result, error) {
	if err := rec.Config.Validate(); err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}

	game, err := registry.Create(rec.GameID)
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}

	if c, ok := game.(configurable); ok {
		c.ResetWithConfig(rec.Runtime(), rec.Config)
	} else {
		game.Reset(rec.Runtime())
	}

	next := 0
	for tick := uint64(1); tick <= rec.Ticks; tick++ {
		in := core.NewInputFrame()
		if next < len(rec.Frames) && rec.Frames[next].Tick == tick {
			f := rec.Frames[next]
			if rz, ok := game.(registry.Resizer); ok && f.Size != nil {
				rz.Resize(f.Size.X, f.Size.Y)
			}
			in = f.input()
			next++
		}
		game.Step(in)
	}

	return Result{Ticks: rec.Ticks, State: game.State()}, nil
}
