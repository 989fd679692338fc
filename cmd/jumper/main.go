// jumper is an endless vertical platform jumper for the terminal.
//
// Usage:
//
//	jumper list              - List available games
//	jumper play [game]       - Play (jumper or jumper_night)
//	jumper serve             - Start SSH server for remote play
//	jumper scores [game]     - Show the best runs
//	jumper replay <file>     - Re-simulate a recorded run
//	jumper config schema     - Print the config JSON schema
//	jumper config dump       - Print the effective config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.jumper/runs.db)
//	--log <path>    - Write logs to a file while the game owns the terminal
//
// Flag defaults can also come from the environment or a .env file:
// JUMPER_FPS, JUMPER_DB, JUMPER_CONFIG, JUMPER_DIFFICULTY.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

// envFlags maps flag names to the environment variables that default them.
var envFlags = map[string]string{
	"fps":        "JUMPER_FPS",
	"db":         "JUMPER_DB",
	"config":     "JUMPER_CONFIG",
	"difficulty": "JUMPER_DIFFICULTY",
}

func main() {
	// A missing .env is the normal case
	//nolint:errcheck // Optional file
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Platform Jumper - bounce your way up in the terminal",
	Long: `Platform Jumper is an endless vertical platformer for the terminal.
The ball bounces off platforms on its own; steer it, spend boost charges
mid-air and climb as high as you can.

Available commands:
  list     - Show all available games
  play     - Play a game
  serve    - Start SSH server for remote play
  scores   - View the best runs
  replay   - Re-simulate a recorded run
  config   - Inspect game configuration

Examples:
  jumper play
  jumper play jumper_night --difficulty hard
  jumper play --record run.jrec --spectate :8080
  jumper replay run.jrec
  jumper serve --ssh :2222
  jumper scores --tui`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return applyEnv(cmd)
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumper/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (default: discard while playing)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills flags the user did not set from the environment.
func applyEnv(cmd *cobra.Command) error {
	for name, env := range envFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := cmd.Flags().Set(name, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
	}
	return nil
}

// fileLogger returns a logger writing to --log, or a discarding one.
// The returned func closes the file.
func fileLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, func() { f.Close() }, nil
}
