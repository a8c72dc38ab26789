package search

import (
	"fmt"
	"math"
)

// Successor is one outgoing transition of a state: the next state, the action
// that reaches it and the non-negative incremental cost of that action.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem is the capability a domain implements to become searchable.
//
// StartState must be deterministic. IsGoal must be side-effect free.
// Successors may return an empty slice for dead ends; its order only affects
// DFS/BFS tie-breaking. Every Cost must be >= 0. CostOfActions returns the
// total cost of replaying actions from the start state and is used only for
// external verification, never by the strategies.
type Problem[S comparable, A any] interface {
	StartState() S
	IsGoal(state S) bool
	Successors(state S) []Successor[S, A]
	CostOfActions(actions []A) float64
}

// Heuristic estimates the remaining cost from state to the nearest goal of p.
// The estimate must be non-negative; +Inf marks a state from which no goal is
// reachable. For AStar to return optimal paths it must also be admissible and
// consistent.
type Heuristic[S comparable, A any] func(state S, p Problem[S, A]) float64

// NullHeuristic is the trivial heuristic; it always returns 0.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 { return 0 }

// Unimplemented can be embedded by a domain type that implements Problem
// incrementally. Each method panics with an error wrapping ErrNotImplemented;
// the search entry points recover that panic and return the error, so a
// missing capability is reported loudly and never looks like "no path".
type Unimplemented[S comparable, A any] struct{}

// StartState panics with ErrNotImplemented.
func (Unimplemented[S, A]) StartState() S {
	panic(fmt.Errorf("%w: StartState", ErrNotImplemented))
}

// IsGoal panics with ErrNotImplemented.
func (Unimplemented[S, A]) IsGoal(S) bool {
	panic(fmt.Errorf("%w: IsGoal", ErrNotImplemented))
}

// Successors panics with ErrNotImplemented.
func (Unimplemented[S, A]) Successors(S) []Successor[S, A] {
	panic(fmt.Errorf("%w: Successors", ErrNotImplemented))
}

// CostOfActions panics with ErrNotImplemented.
func (Unimplemented[S, A]) CostOfActions([]A) float64 {
	panic(fmt.Errorf("%w: CostOfActions", ErrNotImplemented))
}

// Replay walks actions from the start state of p, following for each action the
// first successor that carries it. It returns the state reached and the summed
// successor costs, or ErrIllegalAction when an action is not offered.
//
// Replay is the reference check that a returned action sequence is executable:
// p.IsGoal(state) must hold for the state it returns.
func Replay[S comparable, A comparable](p Problem[S, A], actions []A) (S, float64, error) {
	var zero S
	if p == nil {
		return zero, 0, ErrNilProblem
	}
	state := p.StartState()
	total := 0.0
	for i, a := range actions {
		found := false
		for _, sc := range p.Successors(state) {
			if sc.Action == a {
				state = sc.State
				total += sc.Cost
				found = true
				break
			}
		}
		if !found {
			return state, math.Inf(1), fmt.Errorf("%w: step %d action %v", ErrIllegalAction, i, a)
		}
	}

	return state, total, nil
}
