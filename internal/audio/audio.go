// Package audio provides best-effort sound output for the game core.
// Every call is fire-and-forget: failures are logged and swallowed so the
// simulation never sees an audio error.
package audio

import (
	"errors"

	"github.com/charmbracelet/log"
)

// ErrUnavailable is returned by a Sink that can never produce sound.
// The Mixer disables itself for the rest of the run when it sees it.
var ErrUnavailable = errors.New("audio: unavailable")

// Effect identifies a short sound effect.
type Effect int

const (
	EffectJump Effect = iota
	EffectBoost
	EffectLand
	EffectGameOver
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectJump:
		return "jump"
	case EffectBoost:
		return "boost"
	case EffectLand:
		return "land"
	case EffectGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Gateway is the audio surface the game core talks to.
type Gateway interface {
	PlayEffect(e Effect)
	SetMusicPlaying(playing bool)
	// Available reports whether the gateway can still produce sound.
	Available() bool
}

// Sink performs the actual output and may fail.
type Sink interface {
	Play(e Effect) error
	Music(playing bool) error
}

// Mixer adapts a Sink to the Gateway contract.
type Mixer struct {
	sink     Sink
	logger   *log.Logger
	disabled bool
	music    bool
}

// NewMixer creates a mixer over sink. A nil logger discards failure logs.
func NewMixer(sink Sink, logger *log.Logger) *Mixer {
	if sink == nil {
		sink = NopSink{}
	}
	return &Mixer{sink: sink, logger: logger}
}

// PlayEffect plays e, ignoring any failure.
func (m *Mixer) PlayEffect(e Effect) {
	if m.disabled {
		return
	}
	m.handle(m.sink.Play(e), "effect", e.String())
}

// SetMusicPlaying starts or stops background music, ignoring any failure.
// Repeated calls with the same value do not reach the sink.
func (m *Mixer) SetMusicPlaying(playing bool) {
	if m.disabled || m.music == playing {
		return
	}
	m.music = playing
	m.handle(m.sink.Music(playing), "music", playing)
}

// MusicPlaying reports the last requested music state.
func (m *Mixer) MusicPlaying() bool {
	return m.music
}

// Available reports whether the mixer still forwards to its sink.
func (m *Mixer) Available() bool {
	return !m.disabled
}

func (m *Mixer) handle(err error, key string, val any) {
	if err == nil {
		return
	}
	if errors.Is(err, ErrUnavailable) {
		m.disabled = true
		m.music = false
	}
	if m.logger != nil {
		m.logger.Debug("audio call failed", key, val, "err", err, "disabled", m.disabled)
	}
}

// Compile-time interface check.
var _ Gateway = (*Mixer)(nil)
