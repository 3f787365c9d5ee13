package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.snaketerm/config.yaml ->
// ./configs/snaketerm.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the fallback
// locations fail silently to the next candidate.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "snaketerm.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the per-user config path, or empty when the home
// directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snaketerm", "config.yaml")
}

// normalize fills zero values a partial user config may leave behind so
// downstream code never divides by or loops on zero.
func normalize(cfg Config) Config {
	def := Default()

	if cfg.Board.MinSize <= 0 {
		cfg.Board.MinSize = def.Board.MinSize
	}
	if cfg.Board.MaxSize <= 0 {
		cfg.Board.MaxSize = def.Board.MaxSize
	}
	if cfg.Game.Lives <= 0 {
		cfg.Game.Lives = def.Game.Lives
	}
	if cfg.Game.ScoreReward <= 0 {
		cfg.Game.ScoreReward = def.Game.ScoreReward
	}
	if cfg.Game.InitialSnakeLength <= 0 {
		cfg.Game.InitialSnakeLength = def.Game.InitialSnakeLength
	}
	if cfg.Speed.TickRate <= 0 {
		cfg.Speed.TickRate = def.Speed.TickRate
	}
	if cfg.Speed.MoveEveryTicks <= 0 {
		cfg.Speed.MoveEveryTicks = def.Speed.MoveEveryTicks
	}
	if cfg.Speed.MinMoveTicks <= 0 {
		cfg.Speed.MinMoveTicks = def.Speed.MinMoveTicks
	}
	return cfg
}
