package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/snaketerm/snaketerm/internal/core"
)

// RoundResult is the outcome of one finished round in this run.
type RoundResult struct {
	Round   int
	Score   int
	Won     bool
	EndedAt time.Time
}

// SessionScores keeps the results of all rounds played during the current
// process run. Nothing is written to disk; the leaderboard lives and dies
// with the session.
type SessionScores struct {
	rounds []RoundResult
}

// NewSessionScores creates an empty session score store.
func NewSessionScores() *SessionScores {
	return &SessionScores{}
}

// Record appends a finished round.
func (s *SessionScores) Record(score int, won bool) {
	s.rounds = append(s.rounds, RoundResult{
		Round:   len(s.rounds) + 1,
		Score:   score,
		Won:     won,
		EndedAt: time.Now(),
	})
}

// Len returns the number of recorded rounds.
func (s *SessionScores) Len() int {
	return len(s.rounds)
}

// Best returns the highest score of the run, or 0 before any round ends.
func (s *SessionScores) Best() int {
	best := 0
	for _, r := range s.rounds {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

// Ranked returns the rounds ordered by score descending; equal scores
// keep play order.
func (s *SessionScores) Ranked() []RoundResult {
	ranked := make([]RoundResult, len(s.rounds))
	copy(ranked, s.rounds)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// leaderboardKeyMap defines the key bindings of the leaderboard view.
type leaderboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k leaderboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k leaderboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

func defaultLeaderboardKeyMap() leaderboardKeyMap {
	return leaderboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab", "back to game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LeaderboardView renders the session scores with a scrollable table.
// It is embedded in the game model and toggled with Tab.
type LeaderboardView struct {
	scores *SessionScores
	table  table.Model
	help   help.Model
	keys   leaderboardKeyMap
	width  int
	height int
}

// NewLeaderboardView creates the leaderboard over the given score store.
func NewLeaderboardView(scores *SessionScores, width, height int) LeaderboardView {
	v := LeaderboardView{
		scores: scores,
		help:   help.New(),
		keys:   defaultLeaderboardKeyMap(),
		width:  width,
		height: height,
	}
	v.table = v.createTable()
	v.Refresh()
	return v
}

func (v *LeaderboardView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Round", Width: 7},
		{Title: "Score", Width: 10},
		{Title: "Result", Width: 8},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(3, v.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh rebuilds the table rows from the score store.
func (v *LeaderboardView) Refresh() {
	ranked := v.scores.Ranked()
	rows := make([]table.Row, len(ranked))
	for i, r := range ranked {
		result := "died"
		if r.Won {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Round),
			fmt.Sprintf("%d", r.Score),
			result,
			r.EndedAt.Format("15:04:05"),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// Resize adapts the view to new terminal dimensions.
func (v *LeaderboardView) Resize(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width
	v.table.SetHeight(core.Max(3, height-8))
}

// Update forwards key messages to the table for scrolling and returns
// any command the table produces for the program to run.
func (v *LeaderboardView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return cmd
}

// View renders the leaderboard screen.
func (v LeaderboardView) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := fmt.Sprintf("SESSION SCORES — best %d", v.scores.Best())
	b.WriteString(centerText(titleStyle.Render(title), v.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if v.scores.Len() == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(centerText(tableStyle.Render(
			emptyStyle.Render("No rounds finished yet.\nScores reset when you exit.")), v.width))
	} else {
		b.WriteString(centerText(tableStyle.Render(v.table.View()), v.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(v.help.View(v.keys)))

	return b.String()
}

// centerText pads a (possibly multi-line) block so it appears centered.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(line)
	}
	return b.String()
}
