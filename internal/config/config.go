// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// Config contains all tunable parameters for the game.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Game       GameConfig       `yaml:"game"`
	Speed      SpeedConfig      `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playing field dimensions.
// Width/Height of 0 mean "fit the terminal", clamped to [MinSize, MaxSize].
type BoardConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
}

// GameConfig defines session rules.
type GameConfig struct {
	Lives              int `yaml:"lives"`                // Respawns before the run ends
	ScoreReward        int `yaml:"score_reward"`         // Score granted per food eaten
	InitialSnakeLength int `yaml:"initial_snake_length"` // Segments at the start of a run
}

// SpeedConfig defines the simulation cadence. The engine is stepped once
// every MoveEveryTicks platform ticks; difficulty progression shrinks the
// interval down to MinMoveTicks.
type SpeedConfig struct {
	TickRate       int `yaml:"tick_rate"`
	MoveEveryTicks int `yaml:"move_every_ticks"`
	MinMoveTicks   int `yaml:"min_move_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	// Ticks removed from the move interval at max difficulty.
	IntervalReduction int `yaml:"interval_reduction"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// The "fixed" preset disables progression entirely.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
