package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

var flagDumpFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect game configuration",
	Long: `Inspect the jumper tuning.

Config files are searched in order:
  --config <path>
  ~/.jumper/configs/jumper.{yaml,yml,toml}
  ./configs/jumper.{yaml,yml,toml}
  built-in defaults`,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.SchemaJSON()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	},
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective config",
	Long: `Print the config the game would run with, after the search order and
the difficulty preset are applied.

Examples:
  jumper config dump > ~/.jumper/configs/jumper.yaml
  jumper config dump --format toml --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

func init() {
	configDumpCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	configDumpCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configDumpCmd.Flags().StringVar(&flagDumpFormat, "format", "yaml", "Output format: yaml or toml")

	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	data, err := config.Encode(cfg, flagDumpFormat)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
