package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

type runFlags struct {
	layout        string
	strategy      string
	heuristic     string
	cost          string
	maxExpansions int
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search one layout with one strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			defer func() { err = errors.Join(err, a.closeTelemetry(cmd)) }()

			flags := cmd.Flags()
			if flags.Changed("strategy") {
				a.cfg.Strategy = f.strategy
			}
			if flags.Changed("heuristic") {
				a.cfg.Heuristic = f.heuristic
			}
			if flags.Changed("cost") {
				a.cfg.Cost = f.cost
			}
			if flags.Changed("max-expansions") {
				a.cfg.MaxExpansions = f.maxExpansions
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			return a.run(cmd, f.layout)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.layout, "layout", "", "maze layout file")
	fl.StringVar(&f.strategy, "strategy", "", "dfs, bfs, ucs or astar")
	fl.StringVar(&f.heuristic, "heuristic", "", "null, manhattan or euclidean (astar only)")
	fl.StringVar(&f.cost, "cost", "", "uniform, east or west")
	fl.IntVar(&f.maxExpansions, "max-expansions", 0, "abort after this many expansions (0 = no limit)")

	return cmd
}

// result is the outcome of one strategy on one layout.
type result struct {
	strategy search.Strategy
	actions  []maze.Direction
	cost     float64
	stats    search.Stats
}

func (a *app) run(cmd *cobra.Command, layout string) error {
	pp, err := a.problem(layout)
	if err != nil {
		return err
	}
	strategy, err := search.ParseStrategy(a.cfg.Strategy)
	if err != nil {
		return err
	}
	h, err := maze.ParseHeuristic(a.cfg.Heuristic)
	if err != nil {
		return err
	}
	if strategy == search.StrategyAStar {
		a.warnInadmissible()
	}

	ctx, cancel := a.withTimeout(cmd.Context())
	defer cancel()

	var res result
	res.strategy = strategy
	res.actions, err = search.Solve[maze.Position, maze.Direction](strategy, pp, h, a.searchOptions(ctx, &res.stats)...)
	if err != nil {
		return fmt.Errorf("%s: %w", strategy, err)
	}
	res.cost = pp.CostOfActions(res.actions)
	writeResult(cmd.OutOrStdout(), res)

	return nil
}

func writeResult(w io.Writer, r result) {
	fmt.Fprintf(w, "strategy: %s\n", r.strategy)
	fmt.Fprintf(w, "found:    %t\n", r.stats.Found)
	fmt.Fprintf(w, "actions:  %d\n", len(r.actions))
	fmt.Fprintf(w, "cost:     %g\n", r.cost)
	fmt.Fprintf(w, "expanded: %d\n", r.stats.Expanded)
	fmt.Fprintf(w, "path:     %s\n", joinActions(r.actions))
}

func joinActions(actions []maze.Direction) string {
	parts := make([]string, len(actions))
	for i, d := range actions {
		parts[i] = string(d)
	}

	return strings.Join(parts, ",")
}
