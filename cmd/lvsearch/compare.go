package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

func newCompareCmd(a *app) *cobra.Command {
	var layout string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Search one layout with every strategy in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			defer func() { err = errors.Join(err, a.closeTelemetry(cmd)) }()

			return a.compare(cmd, layout)
		},
	}
	cmd.Flags().StringVar(&layout, "layout", "", "maze layout file")

	return cmd
}

// compare runs every strategy concurrently on the same problem and prints one
// line per strategy in declaration order.
func (a *app) compare(cmd *cobra.Command, layout string) error {
	pp, err := a.problem(layout)
	if err != nil {
		return err
	}
	h, err := maze.ParseHeuristic(a.cfg.Heuristic)
	if err != nil {
		return err
	}
	a.warnInadmissible()

	ctx, cancel := a.withTimeout(cmd.Context())
	defer cancel()

	results := make([]result, len(search.Strategies))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range search.Strategies {
		g.Go(func() error {
			r := &results[i]
			r.strategy = s
			actions, err := search.Solve[maze.Position, maze.Direction](s, pp, h, a.searchOptions(gctx, &r.stats)...)
			if err != nil {
				return fmt.Errorf("%s: %w", s, err)
			}
			r.actions = actions
			r.cost = pp.CostOfActions(actions)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(w, "%-6s found=%t actions=%d cost=%g expanded=%d\n",
			r.strategy, r.stats.Found, len(r.actions), r.cost, r.stats.Expanded)
	}

	return nil
}
