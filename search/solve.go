package search

import "fmt"

// Solve runs the strategy s on p. The heuristic is used only by StrategyAStar
// and may be nil there (NullHeuristic).
func Solve[S comparable, A any](s Strategy, p Problem[S, A], h Heuristic[S, A], opts ...Option) ([]A, error) {
	switch s {
	case StrategyDFS:
		return DFS(p, opts...)
	case StrategyBFS:
		return BFS(p, opts...)
	case StrategyUCS:
		return UCS(p, opts...)
	case StrategyAStar:
		return AStar(p, h, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}
