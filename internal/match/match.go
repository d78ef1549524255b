package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/minimax-tic-tac-toe/internal/events"
	"ctchen222/minimax-tic-tac-toe/internal/game"
	"ctchen222/minimax-tic-tac-toe/internal/player"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultWinsNeeded is the number of game wins that takes a match.
const DefaultWinsNeeded = 2

var tracer = otel.Tracer("match")

var ErrInvalidWinsNeeded = errors.New("wins needed must be at least 1")

// Table plays single games between two seated players.
type Table interface {
	Play(ctx context.Context) (game.Result, error)
	Player(mark game.PlayerMark) player.Player
}

// Score counts the games each side has won. Ties count for nobody.
type Score struct {
	X int `json:"x"`
	O int `json:"o"`
}

// Of returns the wins of mark.
func (s Score) Of(mark game.PlayerMark) int {
	switch mark {
	case game.PlayerX:
		return s.X
	case game.PlayerO:
		return s.O
	default:
		return 0
	}
}

func (s *Score) record(result game.Result) {
	switch result.Winner() {
	case game.PlayerX:
		s.X++
	case game.PlayerO:
		s.O++
	}
}

type Option func(m *Match)

// WithWinsNeeded sets how many games a side must win to take the match.
func WithWinsNeeded(n int) Option {
	return func(m *Match) {
		m.winsNeeded = n
	}
}

// Match plays games at a table until one side reaches the required wins.
type Match struct {
	ID         string
	table      Table
	listener   events.Listener
	winsNeeded int
	score      Score
}

func NewMatch(table Table, listener events.Listener, options ...Option) (*Match, error) {
	if listener == nil {
		listener = events.Nop{}
	}
	m := &Match{
		ID:         uuid.New().String(),
		table:      table,
		listener:   listener,
		winsNeeded: DefaultWinsNeeded,
	}
	for _, option := range options {
		option(m)
	}
	if m.winsNeeded < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWinsNeeded, m.winsNeeded)
	}
	return m, nil
}

// Score returns the games won so far.
func (m *Match) Score() Score {
	return m.score
}

// WinsNeeded returns the number of wins that ends the match.
func (m *Match) WinsNeeded() int {
	return m.winsNeeded
}

// Run plays games until a side has won WinsNeeded of them and returns that
// side with the final score. A failed game ends the match with its error.
func (m *Match) Run(ctx context.Context) (game.PlayerMark, Score, error) {
	ctx, span := tracer.Start(ctx, "match.Run", trace.WithAttributes(
		attribute.String("match.id", m.ID),
		attribute.Int("match.wins_needed", m.winsNeeded),
	))
	defer span.End()

	oIsBot := m.table.Player(game.PlayerO).IsBot()
	games := 0

	for m.score.X < m.winsNeeded && m.score.O < m.winsNeeded {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Match interrupted")
			return game.None, m.score, err
		}

		result, err := m.table.Play(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Game failed")
			return game.None, m.score, fmt.Errorf("game %d of match %s: %w", games+1, m.ID, err)
		}
		games++

		m.score.record(result)
		slog.DebugContext(ctx, "score updated", "match.id", m.ID, "score.x", m.score.X, "score.o", m.score.O)
		m.listener.ScoreUpdated(events.ScoreUpdated{
			MatchID: m.ID,
			XWins:   m.score.X,
			OWins:   m.score.O,
			OIsBot:  oIsBot,
		})
	}

	winner := game.PlayerX
	if m.score.O >= m.winsNeeded {
		winner = game.PlayerO
	}
	champion := m.table.Player(winner)

	span.SetAttributes(
		attribute.String("match.winner", string(winner)),
		attribute.Int("match.games", games),
	)
	slog.InfoContext(ctx, "match over", "match.id", m.ID, "match.winner", winner, "match.games", games)
	m.listener.MatchOver(events.MatchOver{
		MatchID:    m.ID,
		Winner:     winner,
		WinnerName: champion.Name(),
		IsBot:      champion.IsBot(),
	})

	return winner, m.score, nil
}
