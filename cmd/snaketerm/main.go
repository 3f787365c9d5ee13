// snaketerm is a terminal Snake game.
//
// Usage:
//
//	snaketerm               - Play with defaults
//	snaketerm play          - Same, explicit
//	snaketerm version       - Print the version
//
// Flags:
//
//	--fps <rate>          - Tick rate (default from config, 60)
//	--seed <value>        - RNG seed for reproducible runs (0 = random)
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--width/--height      - Board size (0 = fit terminal)
//	--lives <n>           - Lives per round
//	--debug <path>        - Write a debug log to the given file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
	flagLives      int
	flagDebug      string
)

var rootCmd = &cobra.Command{
	Use:   "snaketerm",
	Short: "Snake in your terminal",
	Long: `snaketerm is a terminal-based Snake game.

Controls:
  Arrows/WASD/HJKL - Steer the snake
  P                - Pause
  Tab              - Session leaderboard
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty presets:
  easy   - Start slow, speeds up with your score
  normal - Start at 30% speed progression
  hard   - Start at 70% speed progression
  fixed  - Constant speed, no progression

Examples:
  snaketerm
  snaketerm --difficulty hard
  snaketerm --width 20 --height 20 --lives 1
  snaketerm --config ./my-snake.yaml --seed 42`,
	RunE: runPlay,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config value)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagWidth, "width", 0, "Board width in cells (0 = fit terminal)")
	pf.IntVar(&flagHeight, "height", 0, "Board height in cells (0 = fit terminal)")
	pf.IntVar(&flagLives, "lives", 0, "Lives per round (0 = config value)")
	pf.StringVar(&flagDebug, "debug", "", "Write a debug log to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
}
