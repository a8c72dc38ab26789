// Package maze treats a Pacman-style text layout as a searchable grid: every
// open cell is a state, moves go North, South, East or West, and walls block.
//
// What:
//
//   - Parse reads a layout ('%' wall, 'P' start, '.' goal, ' ' open) into an
//     immutable Maze.
//   - PositionProblem adapts a Maze to search.Problem[Position, Direction],
//     with pluggable per-cell cost functions (uniform, stay-east, stay-west).
//   - ManhattanHeuristic and EuclideanHeuristic estimate the distance to the
//     nearest goal; both are admissible and consistent for uniform costs.
//
// Why:
//
//   - Grid mazes are the canonical workload for the search package and the
//     fixture the command line tool runs against.
//
// Complexity:
//
//   - Parse:       O(W×H) time and memory.
//   - Successors:  O(1) per call (at most four neighbours).
//   - Heuristics:  O(G) per call, G = number of goals.
//
// Errors:
//
//   - ErrEmptyLayout:    no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNoStart:        no 'P' cell.
//   - ErrMultipleStarts: more than one 'P' cell.
//   - ErrNoGoal:         no '.' cell.
//   - ErrUnknownCell:    a character outside the layout alphabet.
//   - ErrUnknownCost, ErrUnknownHeuristic: bad names passed to ParseCost/ParseHeuristic.
package maze
