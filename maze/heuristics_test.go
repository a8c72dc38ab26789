package maze_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

func TestHeuristics_NearestGoal(t *testing.T) {
	m := loadLayout(t, "twoGoals.lay")
	pp := maze.NewPositionProblem(m)
	p := maze.Position{X: 4, Y: 1}

	// goals at (7,1) and (1,3)
	assert.Equal(t, 3.0, maze.ManhattanHeuristic(p, pp))
	assert.Equal(t, 3.0, maze.EuclideanHeuristic(p, pp))
	assert.Equal(t, 0.0, maze.ManhattanHeuristic(maze.Position{X: 1, Y: 3}, pp))
	assert.InDelta(t, math.Sqrt(5), maze.EuclideanHeuristic(maze.Position{X: 6, Y: 3}, pp), 1e-12)
}

// TestHeuristics_Consistent checks h(a) <= cost(a,b) + h(b) for every
// open cell and neighbour under unit costs, and h = 0 on goals.
func TestHeuristics_Consistent(t *testing.T) {
	for _, layout := range []string{"tinyMaze.lay", "twoGoals.lay"} {
		m := loadLayout(t, layout)
		pp := maze.NewPositionProblem(m)
		for name, h := range map[string]search.Heuristic[maze.Position, maze.Direction]{
			"manhattan": maze.ManhattanHeuristic,
			"euclidean": maze.EuclideanHeuristic,
		} {
			for y := 0; y < m.Height; y++ {
				for x := 0; x < m.Width; x++ {
					a := maze.Position{X: x, Y: y}
					if m.IsWall(a) {
						continue
					}
					if pp.IsGoal(a) {
						assert.Equal(t, 0.0, h(a, pp), "%s %s goal %v", layout, name, a)
					}
					for _, sc := range pp.Successors(a) {
						assert.LessOrEqual(t, h(a, pp), sc.Cost+h(sc.State, pp)+1e-9,
							"%s %s %v→%v", layout, name, a, sc.State)
					}
				}
			}
		}
	}
}

// TestHeuristics_WithoutGoals falls back to 0 for problems that do not
// expose their goal cells.
func TestHeuristics_WithoutGoals(t *testing.T) {
	var other search.Problem[maze.Position, maze.Direction] = opaque{}
	assert.Equal(t, 0.0, maze.ManhattanHeuristic(maze.Position{X: 9, Y: 9}, other))
	assert.Equal(t, 0.0, maze.EuclideanHeuristic(maze.Position{X: 9, Y: 9}, other))
}

type opaque struct {
	search.Unimplemented[maze.Position, maze.Direction]
}

func TestHeuristics_AStarExpandsFewerThanUCS(t *testing.T) {
	layout := "%%%%%%%%%%%%\n" +
		"%          %\n" +
		"%          %\n" +
		"%P        .%\n" +
		"%          %\n" +
		"%          %\n" +
		"%%%%%%%%%%%%\n"
	m, err := maze.ParseString(layout)
	require.NoError(t, err)

	var ucs, astar search.Stats
	pp := maze.NewPositionProblem(m)
	a1, err := search.UCS[maze.Position, maze.Direction](pp, search.WithStats(&ucs))
	require.NoError(t, err)
	a2, err := search.AStar[maze.Position, maze.Direction](pp, maze.ManhattanHeuristic, search.WithStats(&astar))
	require.NoError(t, err)

	assert.Equal(t, pp.CostOfActions(a1), pp.CostOfActions(a2))
	assert.Equal(t, 9.0, pp.CostOfActions(a2))
	assert.Less(t, astar.Expanded, ucs.Expanded)
}

func TestParseHeuristic(t *testing.T) {
	m := loadLayout(t, "tinyMaze.lay")
	pp := maze.NewPositionProblem(m)
	for name, want := range map[string]float64{"": 0, "null": 0, "Manhattan": 8, "euclidean": math.Hypot(4, 4)} {
		h, err := maze.ParseHeuristic(name)
		require.NoError(t, err, name)
		assert.InDelta(t, want, h(m.Start, pp), 1e-12, name)
	}

	_, err := maze.ParseHeuristic("psychic")
	assert.ErrorIs(t, err, maze.ErrUnknownHeuristic)
}

func TestAdmissible(t *testing.T) {
	cases := []struct {
		heuristic, cost string
		want            bool
	}{
		{"manhattan", "uniform", true},
		{"euclidean", "west", true},
		{"null", "east", true},
		{"", "stay-east", true},
		{"Manhattan", "east", false},
		{"euclidean", " stay-east ", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, maze.Admissible(tc.heuristic, tc.cost), "%s/%s", tc.heuristic, tc.cost)
	}
}

// TestAdmissible_EastCostOverestimates shows why stay-east is flagged: one
// step east costs less than the Manhattan estimate drops.
func TestAdmissible_EastCostOverestimates(t *testing.T) {
	m := loadLayout(t, "twoGoals.lay")
	pp := maze.NewPositionProblem(m, maze.WithCost(maze.StayEastCost))
	p := maze.Position{X: 6, Y: 1}
	next := p.Move(maze.East)
	assert.Greater(t, maze.ManhattanHeuristic(p, pp), maze.StayEastCost(next)+maze.ManhattanHeuristic(next, pp))
}
