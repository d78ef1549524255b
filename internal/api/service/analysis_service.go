package service

//go:generate mockgen -source=analysis_service.go -destination=mocks/mock_analysis_service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"ctchen222/minimax-tic-tac-toe/internal/bot"
	"ctchen222/minimax-tic-tac-toe/internal/game"
)

var (
	ErrImpossibleBoard = errors.New("impossible board")
	ErrUnknownSide     = errors.New("side to move must be X or O")
)

// Analysis is the verdict on one board.
type Analysis struct {
	Result game.Result
	// Score is the minimax value from O's side with the requested side to move.
	Score int
	// BestMove is set only when O is to move and the game is in progress.
	BestMove *game.Move
}

// AnalysisService evaluates boards with the minimax engine.
type AnalysisService interface {
	Analyze(ctx context.Context, board game.Board, next game.PlayerMark) (Analysis, error)
}

type analysisService struct {
	engine *bot.Engine
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(engine *bot.Engine) AnalysisService {
	return &analysisService{engine: engine}
}

// Analyze scores board with next to move. Boards that no game could produce
// are rejected before searching.
func (s *analysisService) Analyze(ctx context.Context, board game.Board, next game.PlayerMark) (Analysis, error) {
	if next != game.PlayerX && next != game.PlayerO {
		return Analysis{}, fmt.Errorf("%w: got %q", ErrUnknownSide, next)
	}
	if diff := board.Count(game.PlayerX) - board.Count(game.PlayerO); diff > 1 || diff < -1 {
		return Analysis{}, fmt.Errorf("%w: %d X against %d O", ErrImpossibleBoard, board.Count(game.PlayerX), board.Count(game.PlayerO))
	}
	if board.CheckWin(game.PlayerX) && board.CheckWin(game.PlayerO) {
		return Analysis{}, fmt.Errorf("%w: both sides have a line", ErrImpossibleBoard)
	}

	analysis := Analysis{Result: board.Result()}
	if analysis.Result.IsOver() || next == game.PlayerX {
		analysis.Score = bot.Evaluate(&board, next)
		return analysis, nil
	}

	move, score := s.engine.BestMove(ctx, &board)
	analysis.Score = score
	analysis.BestMove = &move
	return analysis, nil
}
