package bot

import (
	"context"

	"ctchen222/minimax-tic-tac-toe/internal/game"
)

// ComputerName is how the computer player is announced.
const ComputerName = "Computer"

// Player is the computer opponent. It always plays O.
type Player struct {
	engine *Engine
}

// NewBotPlayer creates the computer player on top of engine.
func NewBotPlayer(engine *Engine) *Player {
	return &Player{engine: engine}
}

func (p *Player) Name() string { return ComputerName }

func (p *Player) Mark() game.PlayerMark { return game.PlayerO }

func (p *Player) IsBot() bool { return true }

// NextMove searches a copy of board, so the caller's board is never touched.
func (p *Player) NextMove(ctx context.Context, board game.Board) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return game.Move{}, err
	}

	move, _ := p.engine.BestMove(ctx, &board)
	return move, nil
}
