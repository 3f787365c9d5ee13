package config

import "math"

// DifficultyManager derives the live move interval from the score or the
// elapsed ticks, following the configured progression curve.
type DifficultyManager struct {
	speed        SpeedConfig
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager for the given speed and
// difficulty settings.
func NewDifficultyManager(speed SpeedConfig, cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		speed:        speed,
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level in [0, 1].
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from the initial level to 1.0.
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MoveInterval returns how many platform ticks pass between engine steps
// at the current difficulty. Higher difficulty means a shorter interval,
// never below MinMoveTicks.
func (d *DifficultyManager) MoveInterval(score, ticks int) int {
	level := d.Level(score, ticks)
	reduction := int(level * float64(d.cfg.Scaling.IntervalReduction))

	interval := d.speed.MoveEveryTicks - reduction
	if interval < d.speed.MinMoveTicks {
		interval = d.speed.MinMoveTicks
	}
	if interval < 1 {
		interval = 1
	}
	return interval
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
