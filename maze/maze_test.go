package maze_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/maze"
)

func loadLayout(t *testing.T, name string) *maze.Maze {
	t.Helper()
	f, err := os.Open("testdata/" + name)
	require.NoError(t, err)
	defer f.Close()

	m, err := maze.Parse(f)
	require.NoError(t, err)

	return m
}

func TestParse_TinyMaze(t *testing.T) {
	m := loadLayout(t, "tinyMaze.lay")
	assert.Equal(t, 7, m.Width)
	assert.Equal(t, 7, m.Height)
	assert.Equal(t, maze.Position{X: 5, Y: 1}, m.Start)
	assert.Equal(t, []maze.Position{{X: 1, Y: 5}}, m.Goals)
	assert.True(t, m.IsWall(maze.Position{X: 0, Y: 0}))
	assert.False(t, m.IsWall(maze.Position{X: 1, Y: 1}))
	assert.Equal(t, 16, m.Open())
}

func TestParse_RoundTrip(t *testing.T) {
	raw, err := os.ReadFile("testdata/tinyMaze.lay")
	require.NoError(t, err)

	m, err := maze.ParseString(string(raw))
	require.NoError(t, err)
	assert.Equal(t, string(raw), m.String())
}

func TestParse_CRLFAndTrailingBlankLines(t *testing.T) {
	m, err := maze.ParseString("%%%%\r\n%P.%\r\n%%%%\r\n\n\n")
	require.NoError(t, err)
	assert.Equal(t, 4, m.Width)
	assert.Equal(t, 3, m.Height)
}

func TestParse_PacmanExtrasAreOpen(t *testing.T) {
	m, err := maze.ParseString("%%%%%%\n%PoG.%\n%%%%%%")
	require.NoError(t, err)
	assert.False(t, m.IsWall(maze.Position{X: 2, Y: 1}))
	assert.False(t, m.IsWall(maze.Position{X: 3, Y: 1}))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		layout string
		want   error
	}{
		{"empty", "", maze.ErrEmptyLayout},
		{"only blank lines", "\n\n", maze.ErrEmptyLayout},
		{"ragged", "%%%%\n%P.\n%%%%", maze.ErrNonRectangular},
		{"no start", "%%%\n%.%\n%%%", maze.ErrNoStart},
		{"two starts", "%%%%%\n%PP.%\n%%%%%", maze.ErrMultipleStarts},
		{"no goal", "%%%\n%P%\n%%%", maze.ErrNoGoal},
		{"unknown cell", "%%%%\n%P.#\n%%%%", maze.ErrUnknownCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := maze.ParseString(tc.layout)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestParse_ReaderError(t *testing.T) {
	_, err := maze.Parse(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestMaze_OutOfBoundsIsWall(t *testing.T) {
	m := loadLayout(t, "tinyMaze.lay")
	for _, p := range []maze.Position{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 7, Y: 3}, {X: 3, Y: 7}} {
		assert.False(t, m.InBounds(p), p.String())
		assert.True(t, m.IsWall(p), p.String())
	}
}

func TestPosition_Move(t *testing.T) {
	p := maze.Position{X: 3, Y: 3}
	assert.Equal(t, maze.Position{X: 3, Y: 2}, p.Move(maze.North))
	assert.Equal(t, maze.Position{X: 3, Y: 4}, p.Move(maze.South))
	assert.Equal(t, maze.Position{X: 4, Y: 3}, p.Move(maze.East))
	assert.Equal(t, maze.Position{X: 2, Y: 3}, p.Move(maze.West))
	assert.Equal(t, p, p.Move(maze.Direction("Stop")))
	assert.False(t, maze.Direction("Stop").Valid())
	assert.Equal(t, "(3,3)", p.String())
}

func TestMaze_StringMarksGoals(t *testing.T) {
	m, err := maze.ParseString("%%%%%\n%P .%\n%%%%%")
	require.NoError(t, err)
	assert.True(t, strings.Contains(m.String(), "%P .%"))
}
