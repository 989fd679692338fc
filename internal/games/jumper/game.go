// Package jumper implements an endless vertical platform jumper.
// The body bounces automatically off platforms; the player steers it,
// spends boost charges mid-air and climbs as high as possible while the
// world scrolls down and recycles platforms above.
package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// loadConfig resolves the tuning for a new machine.
// A broken custom file falls back to defaults rather than failing the game.
func loadConfig() config.JumperConfig {
	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		cfg = config.DefaultJumperConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	return cfg
}

func init() {
	registry.Register("jumper", func() registry.Game {
		return New()
	})
	registry.Register("jumper_night", func() registry.Game {
		return NewNight()
	})
}
