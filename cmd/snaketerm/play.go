package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/snaketerm/snaketerm/internal/config"
	"github.com/snaketerm/snaketerm/internal/core"
	"github.com/snaketerm/snaketerm/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long:  `Start an interactive game. Identical to running snaketerm with no subcommand.`,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
			config.ApplyPreset(&cfg, preset)
		default:
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	// Flags override config.
	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
	}
	if flagLives > 0 {
		cfg.Game.Lives = flagLives
	}
	if flagFPS > 0 {
		cfg.Speed.TickRate = flagFPS
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	} else {
		logger.Warn("cannot detect terminal size, using defaults", "error", termErr)
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Speed.TickRate,
		Seed:     flagSeed,
	}

	logger.Debug("starting game",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"screen", fmt.Sprintf("%dx%d", width, height),
		"lives", cfg.Game.Lives,
		"seed", flagSeed,
	)

	if err := tui.Run(cfg, rt); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// newLogger builds the CLI logger. Without --debug only warnings and
// errors go to stderr; the alternate screen hides anything quieter
// anyway. With --debug everything is appended to the given file so the
// log does not fight the TUI for the terminal.
func newLogger() *log.Logger {
	if flagDebug != "" {
		f, err := os.OpenFile(flagDebug, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err == nil {
			return log.NewWithOptions(f, log.Options{
				ReportTimestamp: true,
				Level:           log.DebugLevel,
				Prefix:          "snaketerm",
			})
		}
		fmt.Fprintf(os.Stderr, "cannot open debug log %s: %v\n", flagDebug, err)
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.WarnLevel,
		Prefix: "snaketerm",
	})
}
