// Package maze defines positions, directions and sentinel errors for grid mazes.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction and lookups.
var (
	// ErrEmptyLayout indicates the layout has no rows or no columns.
	ErrEmptyLayout = errors.New("maze: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrNoStart indicates the layout has no 'P' cell.
	ErrNoStart = errors.New("maze: layout has no start cell 'P'")
	// ErrMultipleStarts indicates more than one 'P' cell.
	ErrMultipleStarts = errors.New("maze: layout has more than one start cell 'P'")
	// ErrNoGoal indicates the layout has no '.' cell.
	ErrNoGoal = errors.New("maze: layout has no goal cell '.'")
	// ErrUnknownCell indicates a character outside the layout alphabet.
	ErrUnknownCell = errors.New("maze: unknown layout character")
	// ErrUnknownCost indicates an unrecognised cost function name.
	ErrUnknownCost = errors.New("maze: unknown cost function")
	// ErrUnknownHeuristic indicates an unrecognised heuristic name.
	ErrUnknownHeuristic = errors.New("maze: unknown heuristic")
)

// Layout characters.
const (
	CellWall  = '%'
	CellStart = 'P'
	CellGoal  = '.'
	CellOpen  = ' '
)

// Position is a cell coordinate; X grows to the east, Y grows to the south
// (row 0 is the first line of the layout).
type Position struct {
	X, Y int
}

// String formats p as "(x,y)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Move returns the neighbouring position in direction d.
func (p Position) Move(d Direction) Position {
	off := d.offset()
	return Position{X: p.X + off[0], Y: p.Y + off[1]}
}

// Direction is a move between adjacent cells.
type Direction string

// The four moves, in the order successors are generated.
const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
)

// Directions lists the moves in successor order.
var Directions = [...]Direction{North, South, East, West}

// offset returns the (dx, dy) of d; unknown directions do not move.
func (d Direction) offset() [2]int {
	switch d {
	case North:
		return [2]int{0, -1}
	case South:
		return [2]int{0, 1}
	case East:
		return [2]int{1, 0}
	case West:
		return [2]int{-1, 0}
	default:
		return [2]int{0, 0}
	}
}

// Valid reports whether d is one of the four moves.
func (d Direction) Valid() bool { return d.offset() != [2]int{0, 0} }
