package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/internal/testgraph"
	"github.com/katalvlaran/lvsearch/search"
)

func TestBFS_NilProblem(t *testing.T) {
	actions, err := search.BFS[string, string](nil)
	assert.Nil(t, actions)
	assert.ErrorIs(t, err, search.ErrNilProblem)
}

// TestBFS_FewestActions picks the 3-hop route over the 4-hop route even though
// the 4-hop route is listed first.
func TestBFS_FewestActions(t *testing.T) {
	g := testgraph.New("A", "K").
		Add("A", "B", "", 1).Add("B", "C", "", 1).Add("C", "D", "", 1).Add("D", "K", "", 1).
		Add("A", "E", "", 1).Add("E", "F", "", 1).Add("F", "K", "", 1)

	actions, err := search.BFS[string, string](g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A->E", "E->F", "F->K"}, actions)
}

// TestBFS_IgnoresCost shows BFS minimises action count, not cost.
func TestBFS_IgnoresCost(t *testing.T) {
	g := testgraph.New("S", "G").
		Add("S", "G", "direct", 3).
		Add("S", "M", "toM", 1).
		Add("M", "G", "mG", 1)

	actions, err := search.BFS[string, string](g)
	require.NoError(t, err)
	assert.Equal(t, []string{"direct"}, actions)
}

// TestBFS_MarksVisitedOnEnqueue builds a graph where C is reachable from both
// A and B before it is popped; it must be enqueued (and expanded) only once,
// and its path must come from the first parent, A.
func TestBFS_MarksVisitedOnEnqueue(t *testing.T) {
	g := testgraph.New("S", "G").
		Add("S", "A", "", 1).
		Add("S", "B", "", 1).
		Add("A", "C", "", 1).
		Add("B", "C", "", 1).
		Add("C", "G", "", 1)

	var st search.Stats
	actions, err := search.BFS[string, string](g, search.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, []string{"S->A", "A->C", "C->G"}, actions)
	assert.Equal(t, 4, st.Expanded, "S, A, B, C expanded once each")
	assert.Equal(t, 3, st.Depth)
}

// TestBFS_GridShortest checks the Manhattan length on an open grid.
func TestBFS_GridShortest(t *testing.T) {
	g := testgraph.Grid(6, 4)
	actions, err := search.BFS[string, string](g)
	require.NoError(t, err)
	assert.Len(t, actions, 5+3)
}
