package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// Point the fallback locations at empty directories so a config on
	// the developer's machine cannot leak into the test.
	t.Setenv("HOME", t.TempDir())
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Board.MinSize != 4 {
		t.Errorf("MinSize = %d, expected 4", cfg.Board.MinSize)
	}
	if cfg.Game.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", cfg.Game.Lives)
	}
	if cfg.Game.ScoreReward != 1 {
		t.Errorf("ScoreReward = %d, expected 1", cfg.Game.ScoreReward)
	}
	if cfg.Game.InitialSnakeLength != 3 {
		t.Errorf("InitialSnakeLength = %d, expected 3", cfg.Game.InitialSnakeLength)
	}
	if cfg.Speed.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.Speed.TickRate)
	}
	if cfg.Speed.MoveEveryTicks != 10 {
		t.Errorf("MoveEveryTicks = %d, expected 10", cfg.Speed.MoveEveryTicks)
	}
}

func TestLoadGameRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	data := []byte("game:\n  lives: 5\n  score_reward: 7\n  initial_snake_length: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Game.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Game.Lives)
	}
	if cfg.Game.ScoreReward != 7 {
		t.Errorf("ScoreReward = %d, expected 7", cfg.Game.ScoreReward)
	}
	if cfg.Game.InitialSnakeLength != 4 {
		t.Errorf("InitialSnakeLength = %d, expected 4", cfg.Game.InitialSnakeLength)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("board:\n  width: 16\n  height: 12\ngame:\n  lives: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Board.Width != 16 || cfg.Board.Height != 12 {
		t.Errorf("board = %dx%d, expected 16x12", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Game.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Game.Lives)
	}
	// Unset fields are backfilled from the defaults.
	if cfg.Speed.TickRate != 60 {
		t.Errorf("TickRate = %d, expected backfilled 60", cfg.Speed.TickRate)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load should fail for an unreadable custom path")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
	}

	for _, tc := range tests {
		cfg := Default()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Difficulty.Enabled != tc.enabled {
			t.Errorf("%s: Enabled = %v", tc.preset, cfg.Difficulty.Enabled)
		}
		if cfg.Difficulty.InitialLevel != tc.level {
			t.Errorf("%s: InitialLevel = %v, expected %v", tc.preset, cfg.Difficulty.InitialLevel, tc.level)
		}
	}

	cfg := Default()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := Default()
	dm := NewDifficultyManager(cfg.Speed, cfg.Difficulty)

	if got := dm.Level(0, 0); got != 0.0 {
		t.Errorf("Level(0) = %v, expected 0", got)
	}
	if got := dm.Level(15, 0); got != 0.5 {
		t.Errorf("Level(15) = %v, expected 0.5 at half max_at", got)
	}
	if got := dm.Level(30, 0); got != 1.0 {
		t.Errorf("Level(30) = %v, expected 1.0 at max_at", got)
	}
	if got := dm.Level(1000, 0); got != 1.0 {
		t.Errorf("Level(1000) = %v, expected clamp at 1.0", got)
	}
}

func TestMoveIntervalShrinksWithScore(t *testing.T) {
	cfg := Default()
	dm := NewDifficultyManager(cfg.Speed, cfg.Difficulty)

	start := dm.MoveInterval(0, 0)
	if start != cfg.Speed.MoveEveryTicks {
		t.Errorf("start interval = %d, expected %d", start, cfg.Speed.MoveEveryTicks)
	}

	prev := start
	for score := 1; score <= 40; score++ {
		got := dm.MoveInterval(score, 0)
		if got > prev {
			t.Errorf("interval grew with score: %d -> %d at score %d", prev, got, score)
		}
		if got < cfg.Speed.MinMoveTicks {
			t.Errorf("interval %d below minimum %d", got, cfg.Speed.MinMoveTicks)
		}
		prev = got
	}

	if end := dm.MoveInterval(30, 0); end != cfg.Speed.MinMoveTicks {
		t.Errorf("interval at max_at = %d, expected minimum %d", end, cfg.Speed.MinMoveTicks)
	}
}

func TestMoveIntervalFixedWhenDisabled(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyFixed)
	dm := NewDifficultyManager(cfg.Speed, cfg.Difficulty)

	if a, b := dm.MoveInterval(0, 0), dm.MoveInterval(100, 0); a != b {
		t.Errorf("disabled progression should keep a constant interval: %d vs %d", a, b)
	}
}
