package config

import (
	_ "embed"
)

//go:embed defaults/snaketerm.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when the
// embedded YAML cannot be parsed. The cadence numbers come from a 60 Hz
// tick rate: a 10-tick move interval is roughly one cell every 160 ms,
// shrinking toward 3 ticks at max difficulty.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:   0, // Fit terminal
			Height:  0,
			MinSize: 4,
			MaxSize: 48,
		},
		Game: GameConfig{
			Lives:              3,
			ScoreReward:        1,
			InitialSnakeLength: 3,
		},
		Speed: SpeedConfig{
			TickRate:       60,
			MoveEveryTicks: 10,
			MinMoveTicks:   3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 7,
			},
		},
	}
}
