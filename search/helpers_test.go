package search_test

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvsearch/internal/testgraph"
	"github.com/katalvlaran/lvsearch/search"
)

// strategyFunc adapts every strategy to one signature for table tests.
type strategyFunc func(p search.Problem[string, string], opts ...search.Option) ([]string, error)

// allStrategies returns DFS, BFS, UCS and AStar(NullHeuristic) by name.
func allStrategies() map[string]strategyFunc {
	return map[string]strategyFunc{
		"DFS": search.DFS[string, string],
		"BFS": search.BFS[string, string],
		"UCS": search.UCS[string, string],
		"AStar": func(p search.Problem[string, string], opts ...search.Option) ([]string, error) {
			return search.AStar(p, nil, opts...)
		},
	}
}

// randomEdges builds m random directed edges over n states "n0".."n{n-1}"
// with integer costs in [0, maxCost]. Costs of 0 are deliberately included.
func randomEdges(rng *rand.Rand, n, m, maxCost int) []testgraph.Edge {
	edges := make([]testgraph.Edge, 0, m)
	for i := 0; i < m; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		edges = append(edges, testgraph.Edge{
			From:   fmt.Sprintf("n%d", u),
			To:     fmt.Sprintf("n%d", v),
			Action: fmt.Sprintf("e%d", i), // unique so Replay is unambiguous
			Cost:   float64(rng.Intn(maxCost + 1)),
		})
	}

	return edges
}

// minCost is a Bellman-Ford reference: the cheapest cost from start to any goal,
// +Inf when unreachable. With unit=true every edge costs 1 (minimum hop count).
func minCost(edges []testgraph.Edge, start string, goals []string, unit bool) float64 {
	dist := map[string]float64{start: 0}
	get := func(s string) float64 {
		if d, ok := dist[s]; ok {
			return d
		}
		return math.Inf(1)
	}
	for changed := true; changed; {
		changed = false
		for _, e := range edges {
			c := e.Cost
			if unit {
				c = 1
			}
			if d := get(e.From) + c; d < get(e.To) {
				dist[e.To] = d
				changed = true
			}
		}
	}
	best := math.Inf(1)
	for _, g := range goals {
		best = math.Min(best, get(g))
	}

	return best
}

// distToGoal computes the exact remaining cost d*(s) for every state by
// running the reference backwards; states that cannot reach a goal get +Inf.
func distToGoal(edges []testgraph.Edge, goals []string) map[string]float64 {
	dist := map[string]float64{}
	for _, g := range goals {
		dist[g] = 0
	}
	get := func(s string) float64 {
		if d, ok := dist[s]; ok {
			return d
		}
		return math.Inf(1)
	}
	for changed := true; changed; {
		changed = false
		for _, e := range edges {
			if d := get(e.To) + e.Cost; d < get(e.From) {
				dist[e.From] = d
				changed = true
			}
		}
	}

	return dist
}

// scaledHeuristic returns h(s) = alpha * d*(s), admissible and consistent for
// 0 < alpha <= 1.
func scaledHeuristic(dist map[string]float64, alpha float64) search.Heuristic[string, string] {
	return func(s string, _ search.Problem[string, string]) float64 {
		d, ok := dist[s]
		if !ok {
			return math.Inf(1)
		}
		return alpha * d
	}
}

// sscanXY parses the "x,y" state ids produced by testgraph.Grid.
func sscanXY(s string, x, y *int) (int, error) {
	return fmt.Sscanf(s, "%d,%d", x, y)
}
