package player

//go:generate mockgen -source=player.go -destination=mocks/mock_player.go -package=mocks

import (
	"context"
	"errors"

	"ctchen222/minimax-tic-tac-toe/internal/game"
)

// ErrRetryTurn is returned by NextMove when the player gave no usable move
// and should be asked again from the start of the turn.
var ErrRetryTurn = errors.New("retry turn")

// Player is one side of a game. NextMove receives a copy of the board and
// must return an empty cell on it.
type Player interface {
	Name() string
	Mark() game.PlayerMark
	IsBot() bool
	NextMove(ctx context.Context, board game.Board) (game.Move, error)
}
