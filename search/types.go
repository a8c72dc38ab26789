// Package search defines sentinel errors, functional options and run
// statistics shared by the DFS, BFS, UCS and AStar strategies.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilProblem is returned when a nil Problem is passed.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNotImplemented marks a Problem capability that the domain did not supply.
	ErrNotImplemented = errors.New("search: capability not implemented")

	// ErrInvalidCost is returned by UCS and AStar when a successor carries a
	// negative or NaN cost; optimality cannot be guaranteed for such problems.
	ErrInvalidCost = errors.New("search: successor cost must be a non-negative number")

	// ErrInvalidHeuristic is returned by AStar when the heuristic yields a
	// negative or NaN estimate.
	ErrInvalidHeuristic = errors.New("search: heuristic must return a non-negative number")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseStrategy and Solve.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrIllegalAction is returned by Replay when an action is not offered
	// by any successor of the current state.
	ErrIllegalAction = errors.New("search: illegal action")
)

// Strategy names one of the four search algorithms.
type Strategy int

const (
	// StrategyDFS is depth-first search.
	StrategyDFS Strategy = iota
	// StrategyBFS is breadth-first search.
	StrategyBFS
	// StrategyUCS is uniform-cost search.
	StrategyUCS
	// StrategyAStar is A* search.
	StrategyAStar
)

// Strategies lists every strategy in declaration order.
var Strategies = []Strategy{StrategyDFS, StrategyBFS, StrategyUCS, StrategyAStar}

// String returns the short name: "dfs", "bfs", "ucs" or "astar".
func (s Strategy) String() string {
	switch s {
	case StrategyDFS:
		return "dfs"
	case StrategyBFS:
		return "bfs"
	case StrategyUCS:
		return "ucs"
	case StrategyAStar:
		return "astar"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a short or long name to a Strategy, case-insensitively.
// Accepted: dfs/depthFirstSearch, bfs/breadthFirstSearch,
// ucs/uniformCostSearch, astar/a*/aStarSearch.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depthfirstsearch", "depth-first":
		return StrategyDFS, nil
	case "bfs", "breadthfirstsearch", "breadth-first":
		return StrategyBFS, nil
	case "ucs", "uniformcostsearch", "uniform-cost", "dijkstra":
		return StrategyUCS, nil
	case "astar", "a*", "astarsearch":
		return StrategyAStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Stats reports counters for one completed search call.
type Stats struct {
	Strategy    Strategy
	Expanded    int     // states whose successors were generated
	Generated   int     // successor records inspected
	MaxFrontier int     // largest frontier size observed
	Found       bool    // a goal state was popped
	Depth       int     // number of actions in the returned path
	Cost        float64 // recorded path cost (UCS/AStar only; 0 otherwise)
}

// Option configures a search call via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters shared by all strategies.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per frontier pop.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit once that many
	// states have been expanded. 0 means no limit.
	MaxExpansions int

	// Logger receives debug records at start and finish of a search.
	Logger *slog.Logger

	// Stats, if non-nil, is overwritten with the counters of the run.
	Stats *Stats

	// TracerProvider and MeterProvider supply OpenTelemetry instruments.
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion limit
//   - a logger that discards everything
//   - no stats collection
//   - the global OpenTelemetry providers
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxExpansions:  0,
		Logger:         slog.New(slog.DiscardHandler),
		Stats:          nil,
		TracerProvider: otel.GetTracerProvider(),
		MeterProvider:  otel.GetMeterProvider(),
	}
}

// WithContext sets a custom context for cancellation.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0:  limit to n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStats makes the search fill *s with its counters.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp != nil {
			o.MeterProvider = mp
		}
	}
}

// buildOptions applies opts over DefaultOptions and returns the recorded
// option error, if any.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
