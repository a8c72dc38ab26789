package maze

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// goaler is implemented by problems that expose their goal cells.
type goaler interface {
	Goals() []Position
}

// ManhattanHeuristic returns the smallest |dx|+|dy| from p to a goal of prob.
// Problems that do not expose goals get 0.
func ManhattanHeuristic(p Position, prob search.Problem[Position, Direction]) float64 {
	return nearest(p, prob, func(a, b Position) float64 {
		return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
	})
}

// EuclideanHeuristic returns the smallest straight-line distance from p to a goal of prob.
func EuclideanHeuristic(p Position, prob search.Problem[Position, Direction]) float64 {
	return nearest(p, prob, func(a, b Position) float64 {
		return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
	})
}

func nearest(p Position, prob search.Problem[Position, Direction], dist func(a, b Position) float64) float64 {
	g, ok := prob.(goaler)
	if !ok {
		return 0
	}
	goals := g.Goals()
	if len(goals) == 0 {
		return 0
	}
	best := math.Inf(1)
	for _, goal := range goals {
		best = math.Min(best, dist(p, goal))
	}

	return best
}

// Admissible reports whether the named heuristic never overestimates under the
// named cost function. The distance heuristics assume every step costs at
// least 1, which holds for uniform and stay-west costs but not stay-east
// (0.5^x). Unknown names report true; ParseHeuristic and ParseCost reject them.
func Admissible(heuristic, cost string) bool {
	switch strings.ToLower(strings.TrimSpace(heuristic)) {
	case "manhattan", "euclidean":
	default:
		return true
	}
	switch strings.ToLower(strings.TrimSpace(cost)) {
	case "east", "stay-east":
		return false
	}

	return true
}

// ParseHeuristic maps "null", "manhattan" or "euclidean" to a heuristic.
func ParseHeuristic(name string) (search.Heuristic[Position, Direction], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "null", "none":
		return search.NullHeuristic[Position, Direction], nil
	case "manhattan":
		return ManhattanHeuristic, nil
	case "euclidean":
		return EuclideanHeuristic, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}
