package audio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

type fakeSink struct {
	played []Effect
	music  []bool
	err    error
}

func (f *fakeSink) Play(e Effect) error {
	f.played = append(f.played, e)
	return f.err
}

func (f *fakeSink) Music(playing bool) error {
	f.music = append(f.music, playing)
	return f.err
}

func TestMixerForwardsEffects(t *testing.T) {
	sink := &fakeSink{}
	m := NewMixer(sink, nil)

	m.PlayEffect(EffectJump)
	m.PlayEffect(EffectLand)

	if len(sink.played) != 2 || sink.played[0] != EffectJump || sink.played[1] != EffectLand {
		t.Errorf("played = %v, expected [jump land]", sink.played)
	}
}

func TestMixerMusicDeduplicates(t *testing.T) {
	sink := &fakeSink{}
	m := NewMixer(sink, nil)

	m.SetMusicPlaying(true)
	m.SetMusicPlaying(true)
	m.SetMusicPlaying(false)

	if len(sink.music) != 2 {
		t.Errorf("music calls = %v, expected 2", sink.music)
	}
	if m.MusicPlaying() {
		t.Error("MusicPlaying() = true, expected false")
	}
}

func TestMixerSwallowsTransientErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	sink := &fakeSink{err: errors.New("device busy")}
	m := NewMixer(sink, logger)

	m.PlayEffect(EffectBoost)
	m.PlayEffect(EffectBoost)

	if !m.Available() {
		t.Error("transient errors should not disable the mixer")
	}
	if len(sink.played) != 2 {
		t.Errorf("played %d effects, expected 2", len(sink.played))
	}
	if !strings.Contains(buf.String(), "device busy") {
		t.Errorf("log output %q missing error", buf.String())
	}
}

func TestMixerDisablesOnUnavailable(t *testing.T) {
	sink := &fakeSink{err: ErrUnavailable}
	m := NewMixer(sink, nil)

	m.PlayEffect(EffectGameOver)
	if m.Available() {
		t.Fatal("Available() = true after ErrUnavailable")
	}

	m.PlayEffect(EffectJump)
	m.SetMusicPlaying(true)
	if len(sink.played) != 1 || len(sink.music) != 0 {
		t.Errorf("disabled mixer reached sink: played=%v music=%v", sink.played, sink.music)
	}
}

func TestBellSink(t *testing.T) {
	var buf bytes.Buffer
	b := NewBellSink(&buf)

	for _, e := range []Effect{EffectJump, EffectBoost, EffectLand, EffectGameOver} {
		if err := b.Play(e); err != nil {
			t.Fatalf("Play(%v) error = %v", e, err)
		}
	}
	if buf.String() != "\a\a" {
		t.Errorf("bell output = %q, expected two bells", buf.String())
	}

	var nilBell BellSink
	if err := nilBell.Play(EffectBoost); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Play() on nil writer = %v, expected ErrUnavailable", err)
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	s := LogSink{Logger: log.New(&buf)}
	if err := s.Play(EffectLand); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "land") {
		t.Errorf("log output %q missing effect", buf.String())
	}
	if err := (LogSink{}).Music(true); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Music() without logger = %v, expected ErrUnavailable", err)
	}
}

func TestEffectString(t *testing.T) {
	if EffectGameOver.String() != "gameover" || Effect(99).String() != "unknown" {
		t.Error("unexpected Effect names")
	}
}
