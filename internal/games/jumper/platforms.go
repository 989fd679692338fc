package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Platform is one landing surface in the pool.
// ID is unique for the lifetime of a field; a recycled platform gets a new ID.
type Platform struct {
	ID      int
	Rect    core.RectF
	Visited bool
}

// PlatformField is the fixed-size pool of platforms.
type PlatformField struct {
	cfg       config.PlatformConfig
	worldW    float64
	worldH    float64
	rng       *RNG
	platforms []Platform
	nextID    int
}

// NewPlatformField generates the opening layout: a start platform centered
// under startX, then the rest at strictly decreasing heights one gap apart.
func NewPlatformField(cfg config.PlatformConfig, world config.WorldConfig, startX float64, rng *RNG) *PlatformField {
	f := &PlatformField{
		cfg:       cfg,
		worldW:    world.Width,
		worldH:    world.Height,
		rng:       rng,
		platforms: make([]Platform, 0, cfg.Count),
	}

	f.add(startX-cfg.Width/2, world.Height-cfg.BaseOffset)
	for i := 0; i < cfg.Count-1; i++ {
		f.add(f.randomX(), world.Height-cfg.FirstOffset-float64(i)*cfg.Gap)
	}
	return f
}

func (f *PlatformField) add(x, y float64) {
	f.nextID++
	f.platforms = append(f.platforms, Platform{
		ID:   f.nextID,
		Rect: core.NewRectF(x, y, f.cfg.Width, f.cfg.Height),
	})
}

// randomX samples a left edge in [margin, worldW-width-margin].
func (f *PlatformField) randomX() float64 {
	lo := int(f.cfg.EdgeMargin)
	hi := int(f.worldW - f.cfg.Width - f.cfg.EdgeMargin)
	return float64(f.rng.IntRange(lo, hi))
}

// Len returns the pool size.
func (f *PlatformField) Len() int {
	return len(f.platforms)
}

// Platforms returns a copy of the pool in iteration order.
func (f *PlatformField) Platforms() []Platform {
	out := make([]Platform, len(f.platforms))
	copy(out, f.platforms)
	return out
}

// Get returns the platform at index i.
func (f *PlatformField) Get(i int) Platform {
	return f.platforms[i]
}

// Landing returns the index of the first platform that catches a falling
// body, or -1. The body's bottom edge must lie within the tolerance band
// below the platform top and overlap the platform shrunk by the edge inset.
func (f *PlatformField) Landing(b Body) int {
	if !b.Falling() {
		return -1
	}
	bottom := b.Bottom()
	for i, p := range f.platforms {
		top := p.Rect.Top()
		if bottom < top || bottom > top+f.cfg.LandTolerance {
			continue
		}
		if b.Pos.X+b.Radius > p.Rect.Left()+f.cfg.EdgeInset &&
			b.Pos.X-b.Radius < p.Rect.Right()-f.cfg.EdgeInset {
			return i
		}
	}
	return -1
}

// Visit marks the platform at index i as landed on.
// It returns true only the first time for a given platform identity.
func (f *PlatformField) Visit(i int) bool {
	if f.platforms[i].Visited {
		return false
	}
	f.platforms[i].Visited = true
	return true
}

// Shift moves every platform down by dy.
func (f *PlatformField) Shift(dy float64) {
	for i := range f.platforms {
		f.platforms[i].Rect.Y += dy
	}
}

// HighestY returns the smallest top y in the pool.
func (f *PlatformField) HighestY() float64 {
	if len(f.platforms) == 0 {
		return f.worldH
	}
	y := f.platforms[0].Rect.Y
	for _, p := range f.platforms[1:] {
		if p.Rect.Y < y {
			y = p.Rect.Y
		}
	}
	return y
}

// Recycle retires every platform whose top has passed the bottom of the
// world and spawns a replacement one gap above the current highest.
// It returns the number of platforms replaced.
func (f *PlatformField) Recycle(gap float64) int {
	n := 0
	for i := 0; i < len(f.platforms); {
		if f.platforms[i].Rect.Top() <= f.worldH {
			i++
			continue
		}
		f.platforms = append(f.platforms[:i], f.platforms[i+1:]...)
		f.add(f.randomX(), f.HighestY()-gap)
		n++
	}
	return n
}
