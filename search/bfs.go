package search

import "github.com/katalvlaran/lvsearch/frontier"

// bfsWalker encapsulates mutable BFS state for one call.
type bfsWalker[S comparable, A any] struct {
	problem Problem[S, A]
	t       *tracker
	queue   *frontier.Queue[*node[S, A]]
	visited map[S]struct{}
}

// BFS searches the shallowest nodes first.
//
// A state is marked visited when it is enqueued, not when it is dequeued, so
// no state enters the queue twice even if several parents reach it before it
// is popped. With uniform action costs the returned path has the minimum
// number of actions; under non-uniform costs it need not be the cheapest.
//
// Returns:
//
//   - actions: the shallowest path to a goal; empty (non-nil) when no goal is
//     reachable or the start state is a goal.
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
//   - Time:   O(V + E) over the reachable states and transitions.
//   - Memory: O(V) for the visited set and queue.
func BFS[S comparable, A any](p Problem[S, A], opts ...Option) (actions []A, err error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	t := begin(StrategyBFS, o)
	defer func() {
		if r := recover(); r != nil {
			actions, err = nil, t.recovered(r)
		}
		t.finish(err)
	}()

	w := &bfsWalker[S, A]{
		problem: p,
		t:       t,
		queue:   frontier.NewQueue[*node[S, A]](16),
		visited: make(map[S]struct{}),
	}
	w.enqueue(root[S, A](p.StartState()))

	return w.loop()
}

// enqueue marks n's state visited and appends n to the queue.
func (w *bfsWalker[S, A]) enqueue(n *node[S, A]) {
	w.visited[n.state] = struct{}{}
	w.queue.Push(n)
}

// loop processes the queue until a goal is popped or the queue empties.
func (w *bfsWalker[S, A]) loop() ([]A, error) {
	for !w.queue.IsEmpty() {
		if err := w.t.pop(w.queue.Len()); err != nil {
			return nil, err
		}
		cur, _ := w.queue.Pop()
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
			if _, seen := w.visited[sc.State]; seen {
				continue
			}
			w.enqueue(cur.child(sc))
		}
	}

	return []A{}, nil
}
