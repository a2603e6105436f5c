// Package config loads cmtail's optional TOML configuration file, which
// supplies defaults the command-line flags can override.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable defaults.
type Config struct {
	PollInterval time.Duration // follow-mode wait interval
	NoColor      bool
	TailLines    int // count used for "-n -1"
}

const (
	defaultConfigPath   = "~/.config/cmtail/config.toml"
	defaultPollInterval = 500 * time.Millisecond
	defaultTailLines    = 200
)

// Load locates and parses the config file, falling back to defaults when it
// is missing. An unreadable or malformed file is an error; a missing one is
// not.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{PollInterval: defaultPollInterval, TailLines: defaultTailLines}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		PollInterval string `toml:"poll_interval"`
		NoColor      bool   `toml:"no_color"`
		TailLines    int    `toml:"tail_lines"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if interval := strings.TrimSpace(raw.PollInterval); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return Config{}, fmt.Errorf("parse config poll_interval: %w", err)
		}
		if d > 0 {
			cfg.PollInterval = d
		}
	}

	cfg.NoColor = raw.NoColor
	if raw.TailLines > 0 {
		cfg.TailLines = raw.TailLines
	}
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
