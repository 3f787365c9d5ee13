// Package snake implements the pure Snake game-state engine.
// It contains no external dependencies (especially no Bubble Tea) so the
// simulation stays deterministic and testable: every operation takes a
// State and an explicit randomness source and returns a new State.
package snake

import (
	"errors"
	"fmt"
)

// MinBoardSize is the smallest playable board edge. Anything smaller
// cannot hold the initial snake plus food.
const MinBoardSize = 4

// ScoreReward is the default score granted for each food eaten.
const ScoreReward = 1

// InitialLength is the default number of segments the snake spawns with.
const InitialLength = 3

// Engine errors.
var (
	ErrBoardTooSmall  = errors.New("snake: board must be at least 4x4")
	ErrNoSpaceForFood = errors.New("snake: no empty cell left to spawn food")
)

// Point is a cell coordinate on the board. (0,0) is the top-left corner,
// X grows right and Y grows down.
type Point struct {
	X, Y int
}

// Add returns the point translated by another point.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction is the snake's direction of travel.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit translation for one step in this direction.
func (d Direction) Vector() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Opposite returns the reverse of this direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rand is the randomness boundary consumed by the engine. It is satisfied
// by *math/rand.Rand; tests supply fixed implementations for determinism.
type Rand interface {
	// Intn returns a uniform value in [0, n). n must be > 0.
	Intn(n int) int
}

// State is one immutable snapshot of a running game. Step and
// UpdateDirection never modify their receiver's backing storage from the
// caller's perspective; they return fresh values.
type State struct {
	Width  int
	Height int
	Body   []Point // Head at index 0, all cells distinct, len >= 1.
	Dir    Direction
	Food   Point
	Score  int
	Reward int // Score granted per food eaten.
	Alive  bool
	Won    bool // Set together with Alive=false when the snake fills the board.
}

// Head returns the leading segment of the snake.
func (s State) Head() Point {
	return s.Body[0]
}

// Contains reports whether any snake segment occupies p.
func (s State) Contains(p Point) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// InBounds reports whether p lies inside the board.
func (s State) InBounds(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Params configure a new game. Zero values fall back to the package
// defaults, so Params{Width: w, Height: h} behaves like NewState.
type Params struct {
	Width  int
	Height int
	// Length is the number of segments the snake spawns with.
	// Zero means InitialLength; lengths that would not fit on the
	// centered starting row are clamped.
	Length int
	// Reward is the score granted per food eaten. Zero means ScoreReward.
	Reward int
}

// New creates the starting state for the given parameters: a snake
// centered on the board heading right, and food spawned via rng on a free
// cell. Returns ErrBoardTooSmall for boards smaller than MinBoardSize in
// either dimension.
func New(p Params, rng Rand) (State, error) {
	if p.Width < MinBoardSize || p.Height < MinBoardSize {
		return State{}, fmt.Errorf("%w: got %dx%d", ErrBoardTooSmall, p.Width, p.Height)
	}

	length := p.Length
	if length <= 0 {
		length = InitialLength
	}
	reward := p.Reward
	if reward <= 0 {
		reward = ScoreReward
	}

	cx, cy := p.Width/2, p.Height/2
	// The snake extends leftward from the centered head, so it can hold
	// at most cx+1 segments on the starting row.
	if length > cx+1 {
		length = cx + 1
	}

	body := make([]Point, length)
	for i := range body {
		body[i] = Point{X: cx - i, Y: cy}
	}

	food, err := SpawnFood(body, p.Width, p.Height, rng)
	if err != nil {
		return State{}, err
	}

	return State{
		Width:  p.Width,
		Height: p.Height,
		Body:   body,
		Dir:    DirRight,
		Food:   food,
		Score:  0,
		Reward: reward,
		Alive:  true,
	}, nil
}

// NewState creates the starting state for a board of the given size with
// the default snake length and reward.
func NewState(width, height int, rng Rand) (State, error) {
	return New(Params{Width: width, Height: height}, rng)
}

// SpawnFood picks a uniformly random cell that is inside the board and
// not occupied by body. Returns ErrNoSpaceForFood when the snake covers
// every cell.
func SpawnFood(body []Point, width, height int, rng Rand) (Point, error) {
	occupied := make(map[Point]bool, len(body))
	for _, seg := range body {
		occupied[seg] = true
	}

	free := make([]Point, 0, width*height-len(occupied))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return Point{}, ErrNoSpaceForFood
	}
	return free[rng.Intn(len(free))], nil
}
