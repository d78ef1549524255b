package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/minimax-tic-tac-toe/internal/events"
	"ctchen222/minimax-tic-tac-toe/internal/game"
	"ctchen222/minimax-tic-tac-toe/internal/player"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("room")

var (
	ErrIllegalMove  = errors.New("player returned an illegal move")
	ErrMarkMismatch = errors.New("player seated with the wrong mark")
)

// FirstPlayerChooser decides which mark opens a game.
type FirstPlayerChooser func() game.PlayerMark

// Option configures a Room.
type Option func(r *Room)

// WithFirstPlayer replaces the random choice of the opening side.
func WithFirstPlayer(choose FirstPlayerChooser) Option {
	return func(r *Room) {
		if choose != nil {
			r.chooseFirst = choose
		}
	}
}

// Room seats two players and plays games between them, one at a time.
type Room struct {
	players     map[game.PlayerMark]player.Player
	listener    events.Listener
	chooseFirst FirstPlayerChooser
}

// NewRoom seats playerX as X and playerO as O.
func NewRoom(playerX, playerO player.Player, listener events.Listener, options ...Option) (*Room, error) {
	if playerX.Mark() != game.PlayerX {
		return nil, fmt.Errorf("%w: %s plays %q, want X", ErrMarkMismatch, playerX.Name(), playerX.Mark())
	}
	if playerO.Mark() != game.PlayerO {
		return nil, fmt.Errorf("%w: %s plays %q, want O", ErrMarkMismatch, playerO.Name(), playerO.Mark())
	}
	if listener == nil {
		listener = events.Nop{}
	}

	r := &Room{
		players: map[game.PlayerMark]player.Player{
			game.PlayerX: playerX,
			game.PlayerO: playerO,
		},
		listener:    listener,
		chooseFirst: game.RandomlyChooseFirstPlayer,
	}
	for _, option := range options {
		option(r)
	}
	return r, nil
}

// Player returns who plays mark in this room.
func (r *Room) Player(mark game.PlayerMark) player.Player {
	return r.players[mark]
}

// Play runs one game on a fresh board until it is won or tied.
func (r *Room) Play(ctx context.Context) (game.Result, error) {
	g := game.NewGame(r.chooseFirst())

	ctx, span := tracer.Start(ctx, "room.Play", trace.WithAttributes(
		attribute.String("game.id", g.ID),
		attribute.String("game.first", string(g.CurrentTurn)),
	))
	defer span.End()

	slog.DebugContext(ctx, "game started", "game.id", g.ID, "game.first", g.CurrentTurn)
	r.listener.GameStarted(events.GameStarted{GameID: g.ID, First: g.CurrentTurn})

	for {
		mark := g.CurrentTurn
		current := r.players[mark]

		r.listener.TurnStarted(events.TurnStarted{
			GameID:     g.ID,
			Board:      g.Board,
			Mark:       mark,
			PlayerName: current.Name(),
			IsBot:      current.IsBot(),
		})

		move, err := current.NextMove(ctx, g.Board)
		if errors.Is(err, player.ErrRetryTurn) {
			slog.DebugContext(ctx, "turn replayed", "game.id", g.ID, "player.mark", mark, "reason", err)
			continue
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Player failed to move")
			return game.InProgress, fmt.Errorf("%s failed to move: %w", current.Name(), err)
		}

		if err := g.Move(move.Row, move.Col); err != nil {
			err = fmt.Errorf("%w: %s played %s: %w", ErrIllegalMove, current.Name(), move, err)
			slog.ErrorContext(ctx, "illegal move", "game.id", g.ID, "player.mark", mark, "move.row", move.Row, "move.col", move.Col, "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Illegal move")
			return game.InProgress, err
		}

		slog.DebugContext(ctx, "move applied", "game.id", g.ID, "player.mark", mark, "move.row", move.Row, "move.col", move.Col)
		r.listener.MoveMade(events.MoveMade{
			GameID:     g.ID,
			Mark:       mark,
			Move:       move,
			PlayerName: current.Name(),
			IsBot:      current.IsBot(),
		})

		result := g.Result()
		if !result.IsOver() {
			continue
		}

		over := events.GameOver{GameID: g.ID, Board: g.Board, Result: result}
		if winner := result.Winner(); winner != game.None {
			over.WinnerName = r.players[winner].Name()
			over.WinnerIsBot = r.players[winner].IsBot()
		}
		r.listener.GameOver(over)

		span.SetAttributes(attribute.String("game.result", result.String()))
		slog.InfoContext(ctx, "game over", "game.id", g.ID, "game.result", result.String())
		return result, nil
	}
}
