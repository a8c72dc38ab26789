package maze

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// CostFn returns the cost of stepping onto p.
type CostFn func(p Position) float64

// UniformCost charges 1 for every step.
func UniformCost(Position) float64 { return 1 }

// StayEastCost makes cells cheaper the further east they lie: 0.5^x.
func StayEastCost(p Position) float64 { return math.Pow(0.5, float64(p.X)) }

// StayWestCost makes cells dearer the further east they lie: 2^x.
func StayWestCost(p Position) float64 { return math.Pow(2, float64(p.X)) }

// ParseCost maps "uniform", "east" or "west" to a CostFn.
func ParseCost(name string) (CostFn, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uniform":
		return UniformCost, nil
	case "east", "stay-east":
		return StayEastCost, nil
	case "west", "stay-west":
		return StayWestCost, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownCost, name)
}

// ProblemOption configures a PositionProblem.
type ProblemOption func(*PositionProblem)

// WithCost sets the step cost function. A nil function is ignored.
func WithCost(fn CostFn) ProblemOption {
	return func(pp *PositionProblem) {
		if fn != nil {
			pp.cost = fn
		}
	}
}

// WithStart overrides the start cell of the layout.
func WithStart(p Position) ProblemOption {
	return func(pp *PositionProblem) { pp.start = p }
}

// WithGoal replaces the goal cells of the layout with the single cell p.
func WithGoal(p Position) ProblemOption {
	return func(pp *PositionProblem) {
		pp.goals = []Position{p}
	}
}

// PositionProblem searches for a path from the start cell to any goal cell.
type PositionProblem struct {
	maze    *Maze
	start   Position
	goals   []Position
	goalSet map[Position]struct{}
	cost    CostFn
}

var _ search.Problem[Position, Direction] = (*PositionProblem)(nil)

// NewPositionProblem builds a problem over m using the layout's start and goals
// and UniformCost unless overridden.
func NewPositionProblem(m *Maze, opts ...ProblemOption) *PositionProblem {
	pp := &PositionProblem{
		maze:  m,
		start: m.Start,
		goals: append([]Position(nil), m.Goals...),
		cost:  UniformCost,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(pp)
		}
	}
	pp.goalSet = make(map[Position]struct{}, len(pp.goals))
	for _, g := range pp.goals {
		pp.goalSet[g] = struct{}{}
	}

	return pp
}

// Maze returns the underlying grid.
func (pp *PositionProblem) Maze() *Maze { return pp.maze }

// Goals returns a copy of the goal cells.
func (pp *PositionProblem) Goals() []Position {
	return append([]Position(nil), pp.goals...)
}

// StartState returns the start cell.
func (pp *PositionProblem) StartState() Position { return pp.start }

// IsGoal reports whether p is a goal cell.
func (pp *PositionProblem) IsGoal(p Position) bool {
	_, ok := pp.goalSet[p]
	return ok
}

// Successors returns the open neighbours of p in North, South, East, West order.
func (pp *PositionProblem) Successors(p Position) []search.Successor[Position, Direction] {
	out := make([]search.Successor[Position, Direction], 0, len(Directions))
	for _, d := range Directions {
		next := p.Move(d)
		if pp.maze.IsWall(next) {
			continue
		}
		out = append(out, search.Successor[Position, Direction]{State: next, Action: d, Cost: pp.cost(next)})
	}

	return out
}

// CostOfActions sums the step costs of actions from the start cell. A move
// into a wall, off the grid or with an unknown direction yields +Inf.
func (pp *PositionProblem) CostOfActions(actions []Direction) float64 {
	p, total := pp.start, 0.0
	for _, d := range actions {
		if !d.Valid() {
			return math.Inf(1)
		}
		p = p.Move(d)
		if pp.maze.IsWall(p) {
			return math.Inf(1)
		}
		total += pp.cost(p)
	}

	return total
}
