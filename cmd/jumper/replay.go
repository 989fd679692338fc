package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run",
	Long: `Replay a file written by 'jumper play --record' without a terminal
and print the final state. The same seed, tuning and input always give the
same result.

Examples:
  jumper play --record run.jrec
  jumper replay run.jrec`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	rec, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	result, err := replay.Play(rec)
	if err != nil {
		return err
	}

	s := result.State.Stats
	fmt.Printf("Game:    %s (seed %d)\n", rec.GameID, rec.Seed)
	fmt.Printf("Ticks:   %d at %d/s, %d input frames\n", result.Ticks, rec.TickRate, len(rec.Frames))
	fmt.Printf("Score:   %d\n", s.Score)
	fmt.Printf("Height:  %d\n", s.MaxHeight)
	fmt.Printf("Landed:  %d\n", s.PlatformsLanded)
	fmt.Printf("Boosts:  %d\n", s.BoostsUsed)
	fmt.Printf("Time:    %d:%02d\n", s.ElapsedSeconds/60, s.ElapsedSeconds%60)
	fmt.Printf("Ended:   %s\n", endState(result.State.GameOver, result.State.InMenu))
	return nil
}

func endState(gameOver, inMenu bool) string {
	switch {
	case gameOver:
		return "game over"
	case inMenu:
		return "menu"
	default:
		return "playing"
	}
}
