package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/audio"
)

func envTestCmd() (*cobra.Command, *int, *string) {
	var fps int
	var difficulty string
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVar(&fps, "fps", 60, "")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "")
	return cmd, &fps, &difficulty
}

func TestApplyEnvFillsUnsetFlags(t *testing.T) {
	t.Setenv("JUMPER_FPS", "30")
	t.Setenv("JUMPER_DIFFICULTY", "hard")

	cmd, fps, difficulty := envTestCmd()
	if err := applyEnv(cmd); err != nil {
		t.Fatalf("applyEnv() failed: %v", err)
	}
	if *fps != 30 {
		t.Errorf("fps = %d, expected 30", *fps)
	}
	if *difficulty != "hard" {
		t.Errorf("difficulty = %q, expected hard", *difficulty)
	}
}

func TestApplyEnvKeepsExplicitFlags(t *testing.T) {
	t.Setenv("JUMPER_FPS", "30")

	cmd, fps, _ := envTestCmd()
	if err := cmd.Flags().Set("fps", "120"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := applyEnv(cmd); err != nil {
		t.Fatalf("applyEnv() failed: %v", err)
	}
	if *fps != 120 {
		t.Errorf("fps = %d, expected explicit 120", *fps)
	}
}

func TestApplyEnvRejectsBadValue(t *testing.T) {
	t.Setenv("JUMPER_FPS", "fast")

	cmd, _, _ := envTestCmd()
	if err := applyEnv(cmd); err == nil {
		t.Error("applyEnv() with JUMPER_FPS=fast should fail")
	}
}

func TestSoundSink(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"bell", false},
		{"log", false},
		{"none", false},
		{"speaker", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink, err := soundSink(tt.name, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("soundSink(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && sink == nil {
				t.Errorf("soundSink(%q) = nil", tt.name)
			}
		})
	}

	if _, ok := mustSink(t, "none").(audio.NopSink); !ok {
		t.Error("soundSink(none) should be a NopSink")
	}
}

func mustSink(t *testing.T, name string) audio.Sink {
	t.Helper()
	sink, err := soundSink(name, nil)
	if err != nil {
		t.Fatalf("soundSink(%q) failed: %v", name, err)
	}
	return sink
}
