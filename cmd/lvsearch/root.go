package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

var errLayoutRequired = errors.New("--layout is required")

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	trace      bool

	cfg       config.Config
	logger    *slog.Logger
	telemetry *telemetry // nil unless tracing
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvsearch",
		Short:         "Run DFS, BFS, UCS and A* over maze layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.closeTelemetry(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.BoolVar(&a.trace, "trace", false, "print OpenTelemetry spans and metrics to stdout")

	root.AddCommand(newRunCmd(a), newCompareCmd(a), newVersionCmd())

	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger and tracer provider.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("trace") {
		cfg.Trace = a.trace
	}
	cfg.Log.Output = cmd.ErrOrStderr()

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.With(slog.String("run_id", uuid.NewString()))

	if cfg.Trace {
		tel, err := newTelemetry(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		a.telemetry = tel
	}

	return nil
}

// closeTelemetry flushes and drops the providers installed by --trace. It is
// safe to call more than once. Commands that search defer it themselves
// because cobra skips PersistentPostRunE when RunE fails.
func (a *app) closeTelemetry(cmd *cobra.Command) error {
	if a.telemetry == nil {
		return nil
	}
	tel := a.telemetry
	a.telemetry = nil

	return tel.Shutdown(context.WithoutCancel(cmd.Context()))
}

// warnInadmissible logs when the configured heuristic can overestimate under
// the configured cost function, which voids the A* optimality guarantee.
func (a *app) warnInadmissible() {
	if a.cfg.HeuristicAdmissible() {
		return
	}
	a.logger.Warn("heuristic may overestimate step costs; astar paths may not be cheapest",
		slog.String("heuristic", a.cfg.Heuristic),
		slog.String("cost", a.cfg.Cost))
}

// problem parses the layout file and builds the maze problem for the
// configured cost function.
func (a *app) problem(path string) (*maze.PositionProblem, error) {
	if path == "" {
		return nil, errLayoutRequired
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := maze.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cost, err := maze.ParseCost(a.cfg.Cost)
	if err != nil {
		return nil, err
	}
	a.logger.Info("layout loaded",
		slog.String("layout", path),
		slog.Int("width", m.Width),
		slog.Int("height", m.Height),
		slog.Int("goals", len(m.Goals)))

	return maze.NewPositionProblem(m, maze.WithCost(cost)), nil
}

// searchOptions returns the options shared by every strategy run.
func (a *app) searchOptions(ctx context.Context, stats *search.Stats) []search.Option {
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithMaxExpansions(a.cfg.MaxExpansions),
		search.WithLogger(a.logger),
		search.WithStats(stats),
	}
	if a.telemetry != nil {
		opts = append(opts,
			search.WithTracerProvider(a.telemetry.tracer),
			search.WithMeterProvider(a.telemetry.meter))
	}

	return opts
}

// withTimeout applies the configured timeout to ctx.
func (a *app) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Timeout)
	}

	return context.WithCancel(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvsearch version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "lvsearch", version)
		},
	}
}
