// Package config provides YAML/TOML game configuration loading and
// difficulty management for the jumper.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for configs the simulation cannot run.
var ErrInvalid = errors.New("config: invalid")

// JumperConfig contains all tuning for the vertical platform jumper.
type JumperConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world" json:"world"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics" json:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player" json:"player"`
	Platforms  PlatformConfig   `yaml:"platforms" toml:"platforms" json:"platforms"`
	Boost      BoostConfig      `yaml:"boost" toml:"boost" json:"boost"`
	Particles  ParticleConfig   `yaml:"particles" toml:"particles" json:"particles"`
	Stars      StarConfig       `yaml:"stars" toml:"stars" json:"stars"`
	HUD        HUDConfig        `yaml:"hud" toml:"hud" json:"hud"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty" json:"difficulty"`
}

// WorldConfig is the size of the simulated area in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width" json:"width" jsonschema:"minimum=1"`
	Height float64 `yaml:"height" toml:"height" json:"height" jsonschema:"minimum=1"`
}

// PhysicsConfig defines per-frame kinematics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity" json:"gravity" jsonschema:"description=Downward acceleration per frame"`
	JumpPower   float64 `yaml:"jump_power" toml:"jump_power" json:"jump_power" jsonschema:"description=Upward speed after a bounce or boost"`
	MoveSpeed   float64 `yaml:"move_speed" toml:"move_speed" json:"move_speed"`
	ScrollSpeed float64 `yaml:"scroll_speed" toml:"scroll_speed" json:"scroll_speed" jsonschema:"description=World shift per frame while the body is above mid-screen"`
}

// PlayerConfig defines the circular body.
type PlayerConfig struct {
	Radius      float64 `yaml:"radius" toml:"radius" json:"radius"`
	StartOffset float64 `yaml:"start_offset" toml:"start_offset" json:"start_offset" jsonschema:"description=Start height above the bottom edge"`
}

// PlatformConfig defines the recycled platform pool and the landing band.
type PlatformConfig struct {
	Count         int     `yaml:"count" toml:"count" json:"count" jsonschema:"minimum=2"`
	Width         float64 `yaml:"width" toml:"width" json:"width"`
	Height        float64 `yaml:"height" toml:"height" json:"height"`
	Gap           float64 `yaml:"gap" toml:"gap" json:"gap"`
	EdgeMargin    float64 `yaml:"edge_margin" toml:"edge_margin" json:"edge_margin"`
	BaseOffset    float64 `yaml:"base_offset" toml:"base_offset" json:"base_offset" jsonschema:"description=Start platform top above the bottom edge"`
	FirstOffset   float64 `yaml:"first_offset" toml:"first_offset" json:"first_offset" jsonschema:"description=First generated platform top above the bottom edge"`
	LandTolerance float64 `yaml:"land_tolerance" toml:"land_tolerance" json:"land_tolerance"`
	EdgeInset     float64 `yaml:"edge_inset" toml:"edge_inset" json:"edge_inset"`
}

// BoostConfig defines the boost jump resource.
type BoostConfig struct {
	MaxCharges     int `yaml:"max_charges" toml:"max_charges" json:"max_charges"`
	InitialCharges int `yaml:"initial_charges" toml:"initial_charges" json:"initial_charges"`
	ReplenishEvery int `yaml:"replenish_every" toml:"replenish_every" json:"replenish_every" jsonschema:"description=Distinct landings per recovered charge"`
}

// ParticleConfig defines the boost burst.
type ParticleConfig struct {
	Burst         int     `yaml:"burst" toml:"burst" json:"burst"`
	MinRadius     int     `yaml:"min_radius" toml:"min_radius" json:"min_radius"`
	MaxRadius     int     `yaml:"max_radius" toml:"max_radius" json:"max_radius"`
	MinLifetime   int     `yaml:"min_lifetime" toml:"min_lifetime" json:"min_lifetime"`
	MaxLifetime   int     `yaml:"max_lifetime" toml:"max_lifetime" json:"max_lifetime"`
	FadeBelow     int     `yaml:"fade_below" toml:"fade_below" json:"fade_below"`
	FadeFactor    float64 `yaml:"fade_factor" toml:"fade_factor" json:"fade_factor"`
	Gravity       float64 `yaml:"gravity" toml:"gravity" json:"gravity"`
	VisibleRadius float64 `yaml:"visible_radius" toml:"visible_radius" json:"visible_radius"`
}

// StarConfig defines the night theme background.
type StarConfig struct {
	Count    int     `yaml:"count" toml:"count" json:"count"`
	Parallax float64 `yaml:"parallax" toml:"parallax" json:"parallax"`
}

// HUDConfig holds display timings.
type HUDConfig struct {
	SoundStatusTicks int `yaml:"sound_status_ticks" toml:"sound_status_ticks" json:"sound_status_ticks"`
}

// Validate checks the invariants the simulation relies on.
func (c JumperConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalid)
	case c.Platforms.Count < 2:
		return fmt.Errorf("%w: platform count %d < 2", ErrInvalid, c.Platforms.Count)
	case c.Platforms.Width <= 0 || c.Platforms.Height <= 0 || c.Platforms.Gap <= 0:
		return fmt.Errorf("%w: platform size and gap must be positive", ErrInvalid)
	case c.World.Width-c.Platforms.Width-2*c.Platforms.EdgeMargin < 0:
		return fmt.Errorf("%w: no room for platforms between margins", ErrInvalid)
	case c.Player.Radius <= 0:
		return fmt.Errorf("%w: player radius must be positive", ErrInvalid)
	case c.Physics.Gravity <= 0 || c.Physics.JumpPower <= 0:
		return fmt.Errorf("%w: gravity and jump power must be positive", ErrInvalid)
	case c.Physics.MoveSpeed < 0 || c.Physics.ScrollSpeed < 0:
		return fmt.Errorf("%w: move and scroll speed must not be negative", ErrInvalid)
	case c.Boost.MaxCharges < 0 || c.Boost.InitialCharges < 0 || c.Boost.InitialCharges > c.Boost.MaxCharges:
		return fmt.Errorf("%w: initial boost charges must be within [0, max]", ErrInvalid)
	case c.Boost.ReplenishEvery <= 0:
		return fmt.Errorf("%w: replenish_every must be positive", ErrInvalid)
	case c.Particles.MinRadius > c.Particles.MaxRadius || c.Particles.MinLifetime > c.Particles.MaxLifetime:
		return fmt.Errorf("%w: particle ranges are inverted", ErrInvalid)
	case c.Particles.MinLifetime <= 0:
		return fmt.Errorf("%w: particle lifetime must be positive", ErrInvalid)
	case c.Particles.Burst <= 0:
		return fmt.Errorf("%w: particle burst must be positive", ErrInvalid)
	case c.Particles.FadeFactor <= 0 || c.Particles.FadeFactor >= 1:
		return fmt.Errorf("%w: fade_factor must be in (0, 1)", ErrInvalid)
	case c.Stars.Count < 0:
		return fmt.Errorf("%w: star count must not be negative", ErrInvalid)
	case c.HUD.SoundStatusTicks < 0:
		return fmt.Errorf("%w: sound_status_ticks must not be negative", ErrInvalid)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled" json:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level" json:"initial_level" jsonschema:"minimum=0,maximum=1"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression" json:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling" json:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type" json:"type" jsonschema:"enum=score,enum=time,enum=none"`
	MaxAt int    `yaml:"max_at" toml:"max_at" json:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ScrollMultiplier float64 `yaml:"scroll_multiplier" toml:"scroll_multiplier" json:"scroll_multiplier"` // Added to scroll speed factor at max difficulty
	GapIncrease      float64 `yaml:"gap_increase" toml:"gap_increase" json:"gap_increase"`                // Extra platform gap at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *JumperConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression = ProgressionConfig{Type: "score", MaxAt: 200}
	}

	switch preset {
	case DifficultyEasy:
		cfg.Boost.InitialCharges = cfg.Boost.MaxCharges
	case DifficultyHard:
		cfg.Boost.InitialCharges = cfg.Boost.MaxCharges / 2
	}
}
