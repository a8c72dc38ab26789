package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/frontier"
)

// bestFirstRunner holds the mutable state of one UCS or AStar call.
//
// cost and path are the side tables keyed by state: cost[s] is the best total
// path cost found so far and path[s] the actions achieving it. They are only
// ever written together, through record.
type bestFirstRunner[S comparable, A any] struct {
	problem   Problem[S, A]
	heuristic Heuristic[S, A] // nil for UCS
	t         *tracker
	pq        *frontier.PriorityQueue[S]
	cost      map[S]float64
	path      map[S][]A
	closed    map[S]struct{} // popped states; their cost is final
}

// UCS expands the state of least total path cost first (Dijkstra).
//
// When all successor costs are non-negative the first time a state is popped
// its recorded cost is optimal, so the returned path is a minimum-cost path.
//
// Returns:
//
//   - actions: a minimum-cost path to a goal; empty (non-nil) when no goal is
//     reachable or the start state is a goal.
//   - err:     nil, or one of the errors below. actions is nil on error.
//
// Preconditions and validation (in order):
//  1. p must be non-nil (ErrNilProblem).
//  2. Options must be valid (ErrOptionViolation).
//  3. Every Problem method used must be implemented (ErrNotImplemented).
//  4. Every successor cost must be >= 0 and not NaN (ErrInvalidCost).
//  5. The context must stay live (ctx.Err()) and MaxExpansions must not be
//     exceeded (ErrExpansionLimit); both are checked once per pop.
//
// Complexity:
//
//   - Time:   O((V + E) log V) over the reachable states and transitions.
//   - Memory: O(V) for the queue and the cost/path tables.
func UCS[S comparable, A any](p Problem[S, A], opts ...Option) (actions []A, err error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	t := begin(StrategyUCS, o)
	defer func() {
		if r := recover(); r != nil {
			actions, err = nil, t.recovered(r)
		}
		t.finish(err)
	}()

	return newBestFirst(p, nil, t).run()
}

// AStar expands the state of least g + h first, where g is the recorded path
// cost and h the heuristic estimate of the remaining cost.
//
// The relaxation test compares g alone against the previously recorded g.
// Popped states are never reopened, so optimality requires h to be admissible
// and consistent; that is the caller's responsibility and is not checked.
// A nil heuristic means NullHeuristic, which makes AStar behave exactly like UCS.
//
// Returns:
//
//   - actions: the path to the first goal popped; empty (non-nil) when no goal
//     is reachable or the start state is a goal.
//   - err:     nil, or one of the errors below. actions is nil on error.
//
// Preconditions and validation (in order):
//  1. p must be non-nil (ErrNilProblem).
//  2. Options must be valid (ErrOptionViolation).
//  3. Every Problem method used must be implemented (ErrNotImplemented).
//  4. Every estimate must be >= 0 and not NaN (ErrInvalidHeuristic).
//  5. Every successor cost must be >= 0 and not NaN (ErrInvalidCost).
//  6. The context must stay live (ctx.Err()) and MaxExpansions must not be
//     exceeded (ErrExpansionLimit); both are checked once per pop.
//
// Complexity:
//
//   - Time:   O((V + E) log V) worst case; a tighter h expands fewer states.
//   - Memory: O(V) for the queue and the cost/path tables.
func AStar[S comparable, A any](p Problem[S, A], h Heuristic[S, A], opts ...Option) (actions []A, err error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if h == nil {
		h = NullHeuristic[S, A]
	}

	t := begin(StrategyAStar, o)
	defer func() {
		if r := recover(); r != nil {
			actions, err = nil, t.recovered(r)
		}
		t.finish(err)
	}()

	return newBestFirst(p, h, t).run()
}

func newBestFirst[S comparable, A any](p Problem[S, A], h Heuristic[S, A], t *tracker) *bestFirstRunner[S, A] {
	return &bestFirstRunner[S, A]{
		problem:   p,
		heuristic: h,
		t:         t,
		pq:        frontier.NewPriorityQueue[S](16),
		cost:      make(map[S]float64),
		path:      make(map[S][]A),
		closed:    make(map[S]struct{}),
	}
}

// record stores cost and path for s in one step.
func (r *bestFirstRunner[S, A]) record(s S, g float64, path []A) {
	r.cost[s] = g
	r.path[s] = path
}

// priority returns the frontier key of s reached with cost g:
// g for UCS, g + h(s) for AStar.
func (r *bestFirstRunner[S, A]) priority(s S, g float64) (float64, error) {
	if r.heuristic == nil {
		return g, nil
	}
	h := r.heuristic(s, r.problem)
	if h < 0 || math.IsNaN(h) {
		return 0, fmt.Errorf("%w: h(%v)=%v", ErrInvalidHeuristic, s, h)
	}

	return g + h, nil
}

// run seeds the tables with the start state and processes the queue.
func (r *bestFirstRunner[S, A]) run() ([]A, error) {
	start := r.problem.StartState()
	f, err := r.priority(start, 0)
	if err != nil {
		return nil, err
	}
	r.record(start, 0, []A{})
	r.pq.Push(start, f)

	for !r.pq.IsEmpty() {
		if err = r.t.pop(r.pq.Len()); err != nil {
			return nil, err
		}
		cur, _ := r.pq.Pop()
		r.closed[cur] = struct{}{}

		if r.problem.IsGoal(cur) {
			r.t.found(len(r.path[cur]), r.cost[cur])
			return r.path[cur], nil
		}
		if err = r.t.expand(); err != nil {
			return nil, err
		}
		if err = r.relax(cur); err != nil {
			return nil, err
		}
	}

	return []A{}, nil
}

// relax examines every successor of cur and records strictly cheaper paths.
func (r *bestFirstRunner[S, A]) relax(cur S) error {
	successors := r.problem.Successors(cur)
	r.t.generated(len(successors))

	g := r.cost[cur]
	for _, sc := range successors {
		if sc.Cost < 0 || math.IsNaN(sc.Cost) {
			return fmt.Errorf("%w: %v→%v cost=%v", ErrInvalidCost, cur, sc.State, sc.Cost)
		}
		if _, done := r.closed[sc.State]; done {
			continue
		}

		candidate := g + sc.Cost
		if old, seen := r.cost[sc.State]; seen && candidate >= old {
			continue
		}

		f, err := r.priority(sc.State, candidate)
		if err != nil {
			return err
		}
		r.record(sc.State, candidate, extend(r.path[cur], sc.Action))
		r.pq.Update(sc.State, f)
	}

	return nil
}

// extend returns a new slice holding path followed by a; path is not modified.
func extend[A any](path []A, a A) []A {
	next := make([]A, len(path)+1)
	copy(next, path)
	next[len(path)] = a

	return next
}
