package bot

import (
	"errors"
	"fmt"
	"math"

	"ctchen222/minimax-tic-tac-toe/internal/game"
)

// Scores are absolute: O maximizes and X minimizes, whoever is to move.
const (
	scoreOWin = 1
	scoreXWin = -1
	scoreTie  = 0
)

// ErrTerminalBoard is the panic value of BestMove on a finished board.
var ErrTerminalBoard = errors.New("bot: best move requested on a finished board")

// Evaluate returns the minimax value of board with toMove to play.
// The board is modified during the search and restored before returning.
func Evaluate(board *game.Board, toMove game.PlayerMark) int {
	s := search{board: board}
	return s.evaluate(toMove)
}

// BestMove returns the optimal move for O. Among equally scored moves the
// first one in EmptyCells order wins. The board must be in progress.
func BestMove(board *game.Board) game.Move {
	s := search{board: board}
	move, _ := s.bestMove()
	return move
}

// search walks the game tree on a single board with apply/undo pairs.
type search struct {
	board *game.Board
	nodes int64
}

func (s *search) bestMove() (game.Move, int) {
	if s.board.Result().IsOver() {
		panic(ErrTerminalBoard)
	}

	best := game.Move{Row: -1, Col: -1}
	bestScore := math.MinInt
	for _, mv := range s.board.EmptyCells() {
		s.board.Apply(mv.Row, mv.Col, game.PlayerO)
		score := s.evaluate(game.PlayerX)
		s.board.Undo(mv.Row, mv.Col)

		if score > bestScore {
			bestScore = score
			best = mv
		}
	}
	return best, bestScore
}

func (s *search) evaluate(toMove game.PlayerMark) int {
	s.nodes++

	if score, done := terminalScore(s.board); done {
		return score
	}

	var best int
	switch toMove {
	case game.PlayerO:
		best = math.MinInt
	case game.PlayerX:
		best = math.MaxInt
	default:
		panic(fmt.Sprintf("bot: evaluate called with mark %q", toMove))
	}

	for _, mv := range s.board.EmptyCells() {
		s.board.Apply(mv.Row, mv.Col, toMove)
		score := s.evaluate(toMove.Opponent())
		s.board.Undo(mv.Row, mv.Col)

		if toMove == game.PlayerO {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

// terminalScore checks O before X, then a full board.
func terminalScore(board *game.Board) (int, bool) {
	switch {
	case board.CheckWin(game.PlayerO):
		return scoreOWin, true
	case board.CheckWin(game.PlayerX):
		return scoreXWin, true
	case board.IsFull():
		return scoreTie, true
	default:
		return 0, false
	}
}
