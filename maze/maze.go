package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Maze is an immutable grid of walls with one start cell and one or more goal
// cells. Walls are stored row-major: walls[y][x].
type Maze struct {
	Width, Height int
	Start         Position
	Goals         []Position // row-major order
	walls         [][]bool
}

// Parse reads a layout from r. Trailing carriage returns and trailing blank
// lines are ignored. Besides '%', 'P', '.' and ' ', the Pacman characters
// 'o' (capsule) and 'G' (ghost) are accepted and treated as open floor.
// Complexity: O(W×H).
func Parse(r io.Reader) (*Maze, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: reading layout: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return fromRows(rows)
}

// ParseString is Parse over a string.
func ParseString(layout string) (*Maze, error) {
	return Parse(strings.NewReader(layout))
}

// fromRows validates the rectangular layout and builds the wall grid.
func fromRows(rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	m := &Maze{Width: w, Height: h, walls: make([][]bool, h)}
	starts := 0
	for y, row := range rows {
		m.walls[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			switch c := row[x]; c {
			case CellWall:
				m.walls[y][x] = true
			case CellStart:
				m.Start = Position{X: x, Y: y}
				starts++
			case CellGoal:
				m.Goals = append(m.Goals, Position{X: x, Y: y})
			case CellOpen, 'o', 'G':
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCell, c, x, y)
			}
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	case len(m.Goals) == 0:
		return nil, ErrNoGoal
	}

	return m, nil
}

// InBounds reports whether p lies within the grid.
func (m *Maze) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// IsWall reports whether p is a wall. Positions outside the grid count as walls.
func (m *Maze) IsWall(p Position) bool {
	return !m.InBounds(p) || m.walls[p.Y][p.X]
}

// Open returns the number of non-wall cells.
func (m *Maze) Open() int {
	n := 0
	for _, row := range m.walls {
		for _, wall := range row {
			if !wall {
				n++
			}
		}
	}

	return n
}

// String renders the maze back in layout form.
func (m *Maze) String() string {
	goals := make(map[Position]bool, len(m.Goals))
	for _, g := range m.Goals {
		goals[g] = true
	}
	var b strings.Builder
	b.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := Position{X: x, Y: y}
			switch {
			case m.walls[y][x]:
				b.WriteByte(CellWall)
			case p == m.Start:
				b.WriteByte(CellStart)
			case goals[p]:
				b.WriteByte(CellGoal)
			default:
				b.WriteByte(CellOpen)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
