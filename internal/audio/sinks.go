package audio

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NopSink discards all output.
type NopSink struct{}

func (NopSink) Play(Effect) error { return nil }
func (NopSink) Music(bool) error  { return nil }

// BellSink rings the terminal bell for selected effects.
// Music has no terminal equivalent and is accepted silently.
type BellSink struct {
	w     io.Writer
	rings map[Effect]bool
}

// DefaultBellEffects are the effects loud enough to deserve a bell.
var DefaultBellEffects = []Effect{EffectBoost, EffectGameOver}

// NewBellSink writes BEL to w for each effect in effects.
// A nil writer makes every call fail with ErrUnavailable.
func NewBellSink(w io.Writer, effects ...Effect) *BellSink {
	if len(effects) == 0 {
		effects = DefaultBellEffects
	}
	rings := make(map[Effect]bool, len(effects))
	for _, e := range effects {
		rings[e] = true
	}
	return &BellSink{w: w, rings: rings}
}

func (b *BellSink) Play(e Effect) error {
	if b.w == nil {
		return ErrUnavailable
	}
	if !b.rings[e] {
		return nil
	}
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		return fmt.Errorf("audio: bell: %w", err)
	}
	return nil
}

func (b *BellSink) Music(bool) error {
	if b.w == nil {
		return ErrUnavailable
	}
	return nil
}

// LogSink reports audio events to a logger instead of a speaker.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) Play(e Effect) error {
	if s.Logger == nil {
		return ErrUnavailable
	}
	s.Logger.Info("sound", "effect", e.String())
	return nil
}

func (s LogSink) Music(playing bool) error {
	if s.Logger == nil {
		return ErrUnavailable
	}
	s.Logger.Info("music", "playing", playing)
	return nil
}
