package tui

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/snaketerm/snaketerm/internal/config"
	"github.com/snaketerm/snaketerm/internal/core"
	"github.com/snaketerm/snaketerm/internal/snake"
)

// Model is the Bubble Tea model driving the game. It owns the engine
// state and the per-run session: lives, round results and the
// leaderboard. The engine itself stays pure; everything stateful about a
// run lives here.
type Model struct {
	runtime core.RuntimeConfig
	cfg     config.Config
	diff    *config.DifficultyManager
	keys    *KeyMapper
	rng     *rand.Rand
	screen  *core.Screen
	input   core.InputFrame
	scores  *SessionScores
	board   LeaderboardView

	layout  boardLayout
	state   snake.State
	pending snake.Direction

	lives      int
	tick       int
	moveTicker int

	paused     bool
	roundOver  bool
	showScores bool
	quitting   bool
}

// NewModel creates a model for one interactive run.
func NewModel(cfg config.Config, rt core.RuntimeConfig) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Speed.TickRate
	}

	scores := NewSessionScores()
	m := Model{
		runtime: rt,
		cfg:     cfg,
		diff:    config.NewDifficultyManager(cfg.Speed, cfg.Difficulty),
		keys:    NewKeyMapper(),
		rng:     rand.New(rand.NewSource(rt.Seed)),
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		input:   core.NewInputFrame(),
		scores:  scores,
		board:   NewLeaderboardView(scores, rt.ScreenW, rt.ScreenH),
		lives:   cfg.Game.Lives,
	}
	m.layout = computeLayout(rt.ScreenW, rt.ScreenH, cfg.Board)
	m.spawnRound(0, cfg.Game.InitialSnakeLength)
	return m
}

// spawnRound puts a snake of the given length on the board, carrying
// over the score accumulated by earlier lives of the same round.
func (m *Model) spawnRound(score, length int) {
	if m.layout.TooSmall {
		return
	}
	state, err := snake.New(snake.Params{
		Width:  m.layout.BoardW,
		Height: m.layout.BoardH,
		Length: length,
		Reward: m.cfg.Game.ScoreReward,
	}, m.rng)
	if err != nil {
		// computeLayout guarantees the minimum size, so this only fires
		// for hostile custom configs; treat it like a too-small window.
		m.layout.TooSmall = true
		return
	}
	state.Score = score
	m.state = state
	m.pending = state.Dir
	m.moveTicker = 0
}

// currentLength is the snake length to respawn with: the earned length
// survives losing a life, so a long snake stays long.
func (m *Model) currentLength() int {
	if len(m.state.Body) == 0 {
		return m.cfg.Game.InitialSnakeLength
	}
	return len(m.state.Body)
}

// restartSession begins a new round after game over: full lives, zero
// score, starting length, same board.
func (m *Model) restartSession() {
	m.lives = m.cfg.Game.Lives
	m.roundOver = false
	m.paused = false
	m.spawnRound(0, m.cfg.Game.InitialSnakeLength)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showScores {
		switch action {
		case core.ActionScores, core.ActionBack:
			m.showScores = false
			return m, nil
		default:
			return m, m.board.Update(msg)
		}
	}

	if action == core.ActionScores {
		m.board.Refresh()
		m.showScores = true
		return m, nil
	}

	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleResize recomputes the layout for the new terminal size. The
// current round restarts because the board dimensions change.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.board.Resize(msg.Width, msg.Height)

	m.layout = computeLayout(msg.Width, msg.Height, m.cfg.Board)
	if !m.roundOver {
		m.spawnRound(m.state.Score, m.currentLength())
	}
	return m, nil
}

// handleTick runs one platform tick: input application, fixed-cadence
// engine stepping and session bookkeeping.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++

	if m.showScores || m.layout.TooSmall {
		m.input.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	if m.input.Has(core.ActionRestart) && m.roundOver {
		m.restartSession()
		m.input.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	if m.input.Has(core.ActionPause) && !m.roundOver {
		m.paused = !m.paused
	}

	if m.paused || m.roundOver {
		m.input.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	m.bufferDirection()
	m.input.Clear()

	m.moveTicker++
	if m.moveTicker >= m.diff.MoveInterval(m.state.Score, m.tick) {
		m.moveTicker = 0
		m.advance()
	}

	return m, tickCmd(m.runtime.TickRate)
}

// bufferDirection records the latest direction request. Reversals are
// rejected against the actual direction of travel so two quick key
// presses within one move interval cannot fold the snake onto its neck.
func (m *Model) bufferDirection() {
	requested := m.pending
	switch {
	case m.input.Has(core.ActionUp):
		requested = snake.DirUp
	case m.input.Has(core.ActionDown):
		requested = snake.DirDown
	case m.input.Has(core.ActionLeft):
		requested = snake.DirLeft
	case m.input.Has(core.ActionRight):
		requested = snake.DirRight
	}

	if requested != m.state.Dir.Opposite() || len(m.state.Body) == 1 {
		m.pending = requested
	}
}

// advance steps the engine once and applies the session rules on death.
func (m *Model) advance() {
	m.state = snake.UpdateDirection(m.state, m.pending)
	m.state = snake.Step(m.state, m.rng)

	if m.state.Alive {
		return
	}

	if m.state.Won {
		m.scores.Record(m.state.Score, true)
		m.roundOver = true
		return
	}

	m.lives--
	if m.lives > 0 {
		m.spawnRound(m.state.Score, m.currentLength())
		return
	}
	m.scores.Record(m.state.Score, false)
	m.roundOver = true
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.board.View()
	}

	m.screen.Clear()

	speed := m.cfg.Speed.MoveEveryTicks - m.diff.MoveInterval(m.state.Score, m.tick) + 1
	drawHUD(m.screen, m.state.Score, m.lives, speed)

	if m.layout.TooSmall {
		drawOverlay(m.screen, "Window too small", "Resize to continue")
		return RenderScreen(m.screen)
	}

	drawBoard(m.screen, m.state, m.layout)

	switch {
	case m.roundOver && m.state.Won:
		drawOverlay(m.screen, "You Win!", fmt.Sprintf("Final Score: %d — press R to play again", m.state.Score))
	case m.roundOver:
		drawOverlay(m.screen, "Game Over", fmt.Sprintf("Score: %d — press R to restart", m.state.Score))
	case m.paused:
		drawOverlay(m.screen, "Paused", "Press P to continue")
	}

	return RenderScreen(m.screen)
}

// Run starts the interactive game and blocks until the user quits.
func Run(cfg config.Config, rt core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(cfg, rt),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
