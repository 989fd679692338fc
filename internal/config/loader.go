package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames lists the file names tried in each search directory, in order.
var configNames = []string{"jumper.yaml", "jumper.yml", "jumper.toml"}

// LoadJumper loads jumper configuration.
// Search order: customPath -> ~/.jumper/configs/jumper.{yaml,toml} -> ./configs/jumper.{yaml,toml} -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadJumper(customPath string) (JumperConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JumperConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return JumperConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return JumperConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".jumper", "configs"))
	}
	dirs = append(dirs, "configs")

	// Broken files in search directories are skipped, not fatal.
	for _, dir := range dirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			cfg, err := decode(path, data)
			if err != nil || cfg.Validate() != nil {
				continue
			}
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode("jumper.yaml", defaultJumperYAML)
	if err != nil {
		return DefaultJumperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data over the default config, choosing the format by extension.
func decode(path string, data []byte) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return JumperConfig{}, err
		}
	default:
		if len(bytes.TrimSpace(data)) == 0 {
			return cfg, nil
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return JumperConfig{}, err
		}
	}
	return cfg, nil
}

// Encode writes cfg in the format named by format ("yaml" or "toml").
func Encode(cfg JumperConfig, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
	case "yaml", "yml", "":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
	return buf.Bytes(), nil
}
