package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// SessionStats accumulates the figures of one play session.
// Every field only grows until the next session replaces the struct.
type SessionStats struct {
	Score           int
	MaxHeight       float64
	PlatformsLanded int
	BoostsUsed      int
	ElapsedSeconds  int
}

// observeHeight raises MaxHeight to h if h is a new record.
func (s *SessionStats) observeHeight(h float64) {
	if h > s.MaxHeight {
		s.MaxHeight = h
	}
}

// RunStats converts the session figures for the platform layer.
func (s SessionStats) RunStats() core.RunStats {
	return core.RunStats{
		Score:           s.Score,
		MaxHeight:       int(math.Floor(s.MaxHeight)),
		PlatformsLanded: s.PlatformsLanded,
		BoostsUsed:      s.BoostsUsed,
		ElapsedSeconds:  s.ElapsedSeconds,
	}
}

// Clock formats ElapsedSeconds as m:ss.
func (s SessionStats) Clock() string {
	return fmt.Sprintf("%d:%02d", s.ElapsedSeconds/60, s.ElapsedSeconds%60)
}
