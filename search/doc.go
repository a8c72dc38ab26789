// Package search computes action sequences through abstract state spaces.
//
// A domain describes itself with the Problem interface (start state, goal test,
// successor generation, action costs) and the package finds a sequence of
// actions leading from the start state to a goal state.
//
// What:
//
//   - DFS:   depth-first graph search with a per-path visited set. Finds some
//     path, not necessarily the cheapest; revisits states reached by other paths.
//   - BFS:   breadth-first search with a global visited set marked at enqueue
//     time. Minimum number of actions when all actions cost the same.
//   - UCS:   uniform-cost search (Dijkstra). Minimum total cost for non-negative costs.
//   - AStar: best-first on g + h. Minimum total cost when h is admissible and
//     consistent; NullHeuristic makes it identical to UCS.
//
// Results:
//
//	Every entry point returns ([]A, error). A nil error with an empty slice means
//	either that no path exists or that the start state is already a goal; callers
//	that need to tell the two apart check p.IsGoal(p.StartState()) themselves.
//	Errors are reserved for misuse: ErrNilProblem, ErrNotImplemented,
//	ErrInvalidCost, ErrInvalidHeuristic, ErrOptionViolation, ErrExpansionLimit,
//	or the context error when the search is cancelled.
//
// Complexity (b = branching factor, d = solution depth, V/E = reachable states/edges):
//
//   - DFS:   Time O(b^m) in the worst case (m = longest simple path), Memory O(b·m) frontier.
//   - BFS:   Time O(V + E), Memory O(V).
//   - UCS:   Time O((V + E) log V), Memory O(V) plus one action path per recorded state.
//   - AStar: same bound as UCS; usually far fewer expansions with an informative h.
//
// Concurrency:
//
//	A call allocates its own frontier, visited set, cost table and path table.
//	Independent searches may run in parallel on a shared Problem as long as the
//	Problem's methods are safe for concurrent reads.
//
// Options:
//
//   - WithContext(ctx)          cancellation, checked once per frontier pop.
//   - WithMaxExpansions(n)      stop with ErrExpansionLimit after n expansions.
//   - WithLogger(l)             debug records at start and finish.
//   - WithStats(&s)             expansion counters for the completed run.
//   - WithTracerProvider(tp)    OpenTelemetry tracer provider (default: global).
//   - WithMeterProvider(mp)     OpenTelemetry meter provider (default: global).
package search
