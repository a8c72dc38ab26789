// Package testgraph provides an explicit edge-list search.Problem for tests:
// string states, string actions, per-edge costs, and a fixed set of goals.
package testgraph

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/lvsearch/search"
)

// Edge is one directed transition.
type Edge struct {
	From, To string
	Action   string
	Cost     float64
}

// Graph is an immutable-after-build Problem over string states.
// Successors are returned in the order the edges were added.
type Graph struct {
	start string
	goals map[string]bool
	out   map[string][]search.Successor[string, string]

	calls atomic.Int64 // Successors invocations
}

var _ search.Problem[string, string] = (*Graph)(nil)

// New returns a graph with the given start state and goal states.
func New(start string, goals ...string) *Graph {
	g := &Graph{
		start: start,
		goals: make(map[string]bool, len(goals)),
		out:   make(map[string][]search.Successor[string, string]),
	}
	for _, goal := range goals {
		g.goals[goal] = true
	}

	return g
}

// Add appends a directed edge and returns g for chaining.
// When action is empty it defaults to "from->to".
func (g *Graph) Add(from, to, action string, cost float64) *Graph {
	if action == "" {
		action = from + "->" + to
	}
	g.out[from] = append(g.out[from], search.Successor[string, string]{State: to, Action: action, Cost: cost})

	return g
}

// AddEdges appends every edge in order.
func (g *Graph) AddEdges(edges ...Edge) *Graph {
	for _, e := range edges {
		g.Add(e.From, e.To, e.Action, e.Cost)
	}

	return g
}

// StartState returns the start state.
func (g *Graph) StartState() string { return g.start }

// IsGoal reports whether s is one of the goals.
func (g *Graph) IsGoal(s string) bool { return g.goals[s] }

// Successors returns a copy of the outgoing edges of s.
func (g *Graph) Successors(s string) []search.Successor[string, string] {
	g.calls.Add(1)
	out := g.out[s]
	cp := make([]search.Successor[string, string], len(out))
	copy(cp, out)

	return cp
}

// Calls returns how many times Successors has been invoked.
func (g *Graph) Calls() int64 { return g.calls.Load() }

// CostOfActions replays actions from the start; an action not offered by the
// current state yields +Inf.
func (g *Graph) CostOfActions(actions []string) float64 {
	_, cost, err := search.Replay[string, string](g, actions)
	if err != nil {
		return math.Inf(1)
	}

	return cost
}

// Chain builds states "0".."n" where state i has the single successor i+1
// with action "next" and cost 1, and the goal is state n.
func Chain(n int) *Graph {
	g := New("0", strconv.Itoa(n))
	for i := 0; i < n; i++ {
		g.Add(strconv.Itoa(i), strconv.Itoa(i+1), "next", 1)
	}

	return g
}

// Grid builds an open w×h 4-connected grid with unit costs, start "0,0" and
// goal "w-1,h-1". Actions are "N", "S", "E", "W"; successors are generated in
// that order.
func Grid(w, h int) *Graph {
	return GridWithGoal(w, h, w-1, h-1)
}

// GridWithGoal is Grid with the goal placed at (gx, gy).
func GridWithGoal(w, h, gx, gy int) *Graph {
	id := func(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }
	g := New(id(0, 0), id(gx, gy))
	moves := []struct {
		dx, dy int
		name   string
	}{{0, -1, "N"}, {0, 1, "S"}, {1, 0, "E"}, {-1, 0, "W"}}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for _, m := range moves {
				nx, ny := x+m.dx, y+m.dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				g.Add(id(x, y), id(nx, ny), m.name, 1)
			}
		}
	}

	return g
}
