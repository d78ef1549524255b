package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ctchen222/minimax-tic-tac-toe/internal/game"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "ctchen222/minimax-tic-tac-toe/internal/bot"

// Option configures an Engine.
type Option func(e *engineOptions)

type engineOptions struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *engineOptions) {
		if tp != nil {
			o.tracerProvider = tp
		}
	}
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *engineOptions) {
		if mp != nil {
			o.meterProvider = mp
		}
	}
}

// Engine runs the minimax search and reports each search as a span and as
// node count and duration metrics. Its move choices are those of BestMove.
type Engine struct {
	tracer   trace.Tracer
	nodes    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewEngine creates an Engine using the global OpenTelemetry providers
// unless overridden.
func NewEngine(options ...Option) (*Engine, error) {
	o := &engineOptions{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, option := range options {
		option(o)
	}

	meter := o.meterProvider.Meter(instrumentationName)
	nodes, err := meter.Int64Counter("tictactoe.search.nodes",
		metric.WithDescription("Positions visited by the minimax search."),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create search node counter: %w", err)
	}

	duration, err := meter.Float64Histogram("tictactoe.search.duration",
		metric.WithDescription("Wall time of one best-move search."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create search duration histogram: %w", err)
	}

	return &Engine{
		tracer:   o.tracerProvider.Tracer(instrumentationName),
		nodes:    nodes,
		duration: duration,
	}, nil
}

// BestMove returns O's optimal move on board and its minimax value.
// It panics with ErrTerminalBoard if the board is already finished.
func (e *Engine) BestMove(ctx context.Context, board *game.Board) (game.Move, int) {
	ctx, span := e.tracer.Start(ctx, "bot.BestMove", trace.WithAttributes(
		attribute.Int("board.empty_cells", len(board.EmptyCells())),
	))
	defer span.End()

	start := time.Now()
	s := search{board: board}
	move, score := s.bestMove()
	elapsed := time.Since(start)

	e.nodes.Add(ctx, s.nodes)
	e.duration.Record(ctx, float64(elapsed.Microseconds())/1000)

	span.SetAttributes(
		attribute.Int("move.row", move.Row),
		attribute.Int("move.col", move.Col),
		attribute.Int("search.score", score),
		attribute.Int64("search.nodes", s.nodes),
	)
	slog.DebugContext(ctx, "minimax search finished",
		"move.row", move.Row,
		"move.col", move.Col,
		"search.score", score,
		"search.nodes", s.nodes,
		"search.duration", elapsed,
	)

	return move, score
}
