package tui

import (
	"fmt"

	"github.com/snaketerm/snaketerm/internal/config"
	"github.com/snaketerm/snaketerm/internal/core"
	"github.com/snaketerm/snaketerm/internal/snake"
)

const hudHeight = 2 // Status line plus separator

// boardLayout places the playing field on the screen: the board is
// centered under the HUD with a one-cell border around it.
type boardLayout struct {
	BoardW, BoardH   int
	OffsetX, OffsetY int // Screen position of board cell (0,0)
	TooSmall         bool
}

// computeLayout derives the board size from terminal dimensions and
// config. Explicit config dimensions win; otherwise the board fills the
// terminal, clamped to [MinSize, MaxSize].
func computeLayout(screenW, screenH int, board config.BoardConfig) boardLayout {
	availW := screenW - 2 // Border columns
	availH := screenH - hudHeight - 2

	w, h := board.Width, board.Height
	if w <= 0 {
		w = core.Clamp(availW, board.MinSize, board.MaxSize)
	}
	if h <= 0 {
		h = core.Clamp(availH, board.MinSize, board.MaxSize)
	}

	l := boardLayout{BoardW: w, BoardH: h}
	if w < board.MinSize || h < board.MinSize || w > availW || h > availH {
		l.TooSmall = true
		return l
	}

	l.OffsetX = (screenW-w)/2 + 1
	l.OffsetY = hudHeight + 1
	return l
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, score, lives, speed int) {
	hud := fmt.Sprintf(" Snake — Score: %d  Lives: %d  Speed: %d", score, lives, speed)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// drawBoard draws the border, snake and food for the given state.
func drawBoard(dst *core.Screen, s snake.State, l boardLayout) {
	dst.DrawBox(core.NewRect(l.OffsetX-1, l.OffsetY-1, l.BoardW+2, l.BoardH+2))

	fx := l.OffsetX + s.Food.X
	fy := l.OffsetY + s.Food.Y
	dst.SetColored(fx, fy, '*', core.ColorBrightRed)

	for i, seg := range s.Body {
		x := l.OffsetX + seg.X
		y := l.OffsetY + seg.Y
		if i == 0 {
			dst.SetColored(x, y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColored(x, y, 'o', core.ColorGreen)
		}
	}
}

// drawOverlay draws a centered two-line message box over the board.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
