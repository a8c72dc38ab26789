package search

import "github.com/katalvlaran/lvsearch/frontier"

// dfsWalker encapsulates mutable DFS state for one call.
type dfsWalker[S comparable, A any] struct {
	problem Problem[S, A]
	t       *tracker
	stack   *frontier.Stack[*node[S, A]]
}

// DFS searches the deepest nodes first and returns the first path found.
//
// Cycle handling is per path: a successor is skipped only if it already lies
// on the path of the entry being expanded. The same state may therefore be
// reached many times through different paths, and the result is not
// necessarily the shortest or cheapest path. Search terminates on finite
// state spaces because no single path can revisit a state.
//
// Returns:
//
//   - actions: the path to the first goal popped; empty (non-nil) when no
//     goal is reachable or the start state is a goal.
//   - err:     nil, or one of the errors below. actions is nil on error.
//
// Preconditions and validation (in order):
//  1. p must be non-nil (ErrNilProblem).
//  2. Options must be valid (ErrOptionViolation).
//  3. Every Problem method used must be implemented (ErrNotImplemented).
//  4. The context must stay live (ctx.Err()) and MaxExpansions must not be
//     exceeded (ErrExpansionLimit); both are checked once per pop.
//
// Complexity:
//
//   - Time:   exponential in the worst case, since states recur across paths.
//   - Memory: O(b×d) frontier entries for branching factor b and depth d.
func DFS[S comparable, A any](p Problem[S, A], opts ...Option) (actions []A, err error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	t := begin(StrategyDFS, o)
	defer func() {
		if r := recover(); r != nil {
			actions, err = nil, t.recovered(r)
		}
		t.finish(err)
	}()

	w := &dfsWalker[S, A]{problem: p, t: t, stack: frontier.NewStack[*node[S, A]](16)}
	w.stack.Push(root[S, A](p.StartState()))

	return w.loop()
}

// loop pops entries until a goal is found or the stack empties.
func (w *dfsWalker[S, A]) loop() ([]A, error) {
	for !w.stack.IsEmpty() {
		if err := w.t.pop(w.stack.Len()); err != nil {
			return nil, err
		}
		cur, _ := w.stack.Pop()
		if w.problem.IsGoal(cur.state) {
			w.t.found(cur.depth, 0)
			return cur.actions(), nil
		}
		if err := w.t.expand(); err != nil {
			return nil, err
		}

		successors := w.problem.Successors(cur.state)
		w.t.generated(len(successors))
		for _, sc := range successors {
			if cur.onPath(sc.State) {
				continue // path-checking only; other branches may revisit
			}
			w.stack.Push(cur.child(sc))
		}
	}

	return []A{}, nil
}
