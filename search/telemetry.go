package search

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/katalvlaran/lvsearch/search"

// Metric names recorded for every search call.
const (
	MetricExpanded = "search.expanded"
	MetricRuns     = "search.runs"
	MetricDuration = "search.duration"
)

// instruments bundles the meters of one search call.
type instruments struct {
	expanded metric.Int64Counter
	runs     metric.Int64Counter
	duration metric.Float64Histogram
}

// newInstruments creates the counters on mp, falling back to no-op
// instruments for any that the provider rejects.
func newInstruments(mp metric.MeterProvider) instruments {
	meter := mp.Meter(instrumentationName)
	fallback := noop.Meter{}

	expanded, err := meter.Int64Counter(MetricExpanded,
		metric.WithDescription("States expanded by search calls"))
	if err != nil {
		expanded, _ = fallback.Int64Counter(MetricExpanded)
	}
	runs, err := meter.Int64Counter(MetricRuns,
		metric.WithDescription("Completed search calls"))
	if err != nil {
		runs, _ = fallback.Int64Counter(MetricRuns)
	}
	duration, err := meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Duration of search calls"),
		metric.WithUnit("s"))
	if err != nil {
		duration, _ = fallback.Float64Histogram(MetricDuration)
	}

	return instruments{expanded: expanded, runs: runs, duration: duration}
}

// tracker owns the per-call bookkeeping that is not part of an algorithm:
// cancellation, the expansion cap, counters, logging, tracing and metrics.
type tracker struct {
	opts  Options
	ctx   context.Context
	span  trace.Span
	inst  instruments
	start time.Time
	stats Stats
}

// begin starts the span and logs the start of a search.
func begin(strategy Strategy, o Options) *tracker {
	ctx, span := o.TracerProvider.Tracer(instrumentationName).Start(o.Ctx, "search."+strategy.String(),
		trace.WithAttributes(attribute.String("search.strategy", strategy.String())))
	t := &tracker{
		opts:  o,
		ctx:   ctx,
		span:  span,
		inst:  newInstruments(o.MeterProvider),
		start: time.Now(),
		stats: Stats{Strategy: strategy},
	}
	o.Logger.LogAttrs(ctx, slog.LevelDebug, "search started",
		slog.String("strategy", strategy.String()),
		slog.Int("max_expansions", o.MaxExpansions))

	return t
}

// pop is called once per frontier pop. It honours cancellation and records
// the frontier size seen before the pop.
func (t *tracker) pop(frontierLen int) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	if frontierLen > t.stats.MaxFrontier {
		t.stats.MaxFrontier = frontierLen
	}

	return nil
}

// expand counts one expansion and enforces MaxExpansions.
func (t *tracker) expand() error {
	if t.opts.MaxExpansions > 0 && t.stats.Expanded >= t.opts.MaxExpansions {
		return ErrExpansionLimit
	}
	t.stats.Expanded++

	return nil
}

// generated counts successor records inspected during one expansion.
func (t *tracker) generated(n int) { t.stats.Generated += n }

// found records a successful goal pop.
func (t *tracker) found(depth int, cost float64) {
	t.stats.Found = true
	t.stats.Depth = depth
	t.stats.Cost = cost
}

// recovered converts a panic raised by an Unimplemented capability into an
// error. Any other panic value is re-raised after the span is closed.
func (t *tracker) recovered(r any) error {
	if e, ok := r.(error); ok && errors.Is(e, ErrNotImplemented) {
		return e
	}
	t.span.End()
	panic(r)
}

// finish publishes stats, metrics, the span and the closing log record.
func (t *tracker) finish(err error) {
	elapsed := time.Since(t.start)
	strategy := t.stats.Strategy.String()

	if t.opts.Stats != nil {
		*t.opts.Stats = t.stats
	}

	// metrics are recorded on a background context so a cancelled search
	// still reports its work
	ctx := context.WithoutCancel(t.ctx)
	attrs := metric.WithAttributes(
		attribute.String("strategy", strategy),
		attribute.Bool("found", t.stats.Found),
	)
	t.inst.expanded.Add(ctx, int64(t.stats.Expanded), attrs)
	t.inst.runs.Add(ctx, 1, attrs)
	t.inst.duration.Record(ctx, elapsed.Seconds(), attrs)

	t.span.SetAttributes(
		attribute.Int("search.expanded", t.stats.Expanded),
		attribute.Int("search.generated", t.stats.Generated),
		attribute.Bool("search.found", t.stats.Found),
		attribute.Int("search.depth", t.stats.Depth),
	)
	if err != nil {
		t.span.RecordError(err)
		t.span.SetStatus(codes.Error, err.Error())
	}
	t.span.End()

	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelWarn
	}
	t.opts.Logger.LogAttrs(ctx, level, "search finished",
		slog.String("strategy", strategy),
		slog.Bool("found", t.stats.Found),
		slog.Int("depth", t.stats.Depth),
		slog.Int("expanded", t.stats.Expanded),
		slog.Int("generated", t.stats.Generated),
		slog.Int("max_frontier", t.stats.MaxFrontier),
		slog.Duration("elapsed", elapsed),
		slog.Any("error", err),
	)
}
