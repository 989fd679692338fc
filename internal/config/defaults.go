package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the built-in jumper tuning.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:     0.4,
			JumpPower:   10,
			MoveSpeed:   6,
			ScrollSpeed: 4,
		},
		Player: PlayerConfig{
			Radius:      20,
			StartOffset: 100,
		},
		Platforms: PlatformConfig{
			Count:         16,
			Width:         120,
			Height:        20,
			Gap:           80,
			EdgeMargin:    50,
			BaseOffset:    50,
			FirstOffset:   150,
			LandTolerance: 15,
			EdgeInset:     5,
		},
		Boost: BoostConfig{
			MaxCharges:     3,
			InitialCharges: 3,
			ReplenishEvery: 5,
		},
		Particles: ParticleConfig{
			Burst:         20,
			MinRadius:     2,
			MaxRadius:     6,
			MinLifetime:   20,
			MaxLifetime:   40,
			FadeBelow:     10,
			FadeFactor:    0.9,
			Gravity:       0.05,
			VisibleRadius: 0.5,
		},
		Stars: StarConfig{
			Count:    100,
			Parallax: 0.7,
		},
		HUD: HUDConfig{
			SoundStatusTicks: 180,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				ScrollMultiplier: 0.5,
				GapIncrease:      30,
			},
		},
	}
}
