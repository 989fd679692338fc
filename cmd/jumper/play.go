package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/audio"
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/feed"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/replay"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRecord     string
	flagSpectate   string
	flagFeedEvery  int
	flagSound      string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: jumper).

Controls:
  Left/A, Right/D  - Move
  Space            - Boost jump (mid-air, uses a charge)
  Enter / click    - Start from the menu
  M                - Toggle sound
  R                - Restart after game over
  B/Esc            - Back to menu after game over
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  jumper play
  jumper play jumper_night
  jumper play --difficulty hard
  jumper play --config ./my-jumper.yaml
  jumper play --record run.jrec
  jumper play --spectate :8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay of the session to this file")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address (e.g. :8080)")
	playCmd.Flags().IntVar(&flagFeedEvery, "feed-every", 2, "Ticks between spectator frames")
	playCmd.Flags().StringVar(&flagSound, "sound", "bell", "Sound output: bell, log, none")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "jumper"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'jumper list' to see available games)", gameID)
	}

	// The game falls back to defaults on a broken file; fail loudly here instead
	if flagConfig != "" {
		if _, err := config.LoadJumper(flagConfig); err != nil {
			return err
		}
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	jumper.SetConfigPath(flagConfig)
	jumper.SetDifficultyPreset(flagDifficulty)

	logger, closeLog, err := fileLogger("jumper")
	if err != nil {
		return err
	}
	defer closeLog()

	sink, err := soundSink(flagSound, logger)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Store:     store,
		Sink:      sink,
		FeedEvery: flagFeedEvery,
		Record:    flagRecord != "",
		Logger:    logger,
	}

	if flagSpectate != "" {
		hub := feed.NewHub(logger)
		srv, err := feed.Listen(flagSpectate, hub)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			//nolint:errcheck // Shutting down anyway
			srv.Shutdown(ctx)
		}()
		opts.Feed = hub
	}

	// Run the game
	final, err := tui.Run(game, cfg, opts)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if flagRecord != "" {
		if err := replay.Save(flagRecord, final.Recording()); err != nil {
			return err
		}
		fmt.Printf("Replay saved to %s\n", flagRecord)
	}

	return nil
}

// soundSink resolves the --sound flag.
func soundSink(name string, logger *log.Logger) (audio.Sink, error) {
	switch name {
	case "bell":
		return audio.NewBellSink(os.Stderr), nil
	case "log":
		return audio.LogSink{Logger: logger}, nil
	case "none":
		return audio.NopSink{}, nil
	}
	return nil, fmt.Errorf("unknown sound output %q (use bell, log or none)", name)
}
