package proto

import "ctchen222/minimax-tic-tac-toe/internal/game"

// AnalyzeRequest asks for the minimax value of a board with next to move.
// Cells are "", "X" or "O".
type AnalyzeRequest struct {
	Board [][]string `json:"board" binding:"required" validate:"len=3,dive,len=3,dive,cell"`
	Next  string     `json:"next" binding:"required" validate:"mark"`
}

// AnalyzeResponse reports the state of the board, its value from O's side,
// and O's best move when O is to move on a board still in play.
type AnalyzeResponse struct {
	Result   string     `json:"result"`
	Score    int        `json:"score"`
	BestMove *game.Move `json:"best_move,omitempty"`
}

// ToBoard converts the request cells into a game board. The request must
// already have passed validation.
func (r AnalyzeRequest) ToBoard() game.Board {
	var board game.Board
	for row := range game.Size {
		for col := range game.Size {
			board[row][col] = game.PlayerMark(r.Board[row][col])
		}
	}
	return board
}
