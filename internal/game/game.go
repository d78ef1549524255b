package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Board boundaries
	BorderMin = 0
	BorderMax = 2
	Size      = BorderMax + 1
)

var (
	ErrOutOfRange   = errors.New("cell is out of range")
	ErrCellOccupied = errors.New("cell already occupied")
	ErrGameFinished = errors.New("game already finished")
)

// Opponent returns the other player's mark. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// Move identifies a cell by row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Board is the 3x3 grid, indexed [row][col].
type Board [Size][Size]PlayerMark

// EmptyCells returns the empty positions in row-major order.
func (b *Board) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size)
	for r := range Size {
		for c := range Size {
			if b[r][c] == None {
				cells = append(cells, Move{Row: r, Col: c})
			}
		}
	}
	return cells
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
	for r := range Size {
		for c := range Size {
			if b[r][c] == None {
				return false
			}
		}
	}
	return true
}

// CanPlay reports whether a mark may be placed at (row, col).
func (b *Board) CanPlay(row, col int) error {
	if row < BorderMin || row > BorderMax || col < BorderMin || col > BorderMax {
		return fmt.Errorf("%w: row %d, column %d", ErrOutOfRange, row, col)
	}
	if b[row][col] != None {
		return fmt.Errorf("%w: row %d, column %d", ErrCellOccupied, row, col)
	}
	return nil
}

// Apply places mark at (row, col). The cell must be in range and empty;
// callers holding untrusted coordinates check CanPlay first.
func (b *Board) Apply(row, col int, mark PlayerMark) {
	if err := b.CanPlay(row, col); err != nil {
		panic(fmt.Sprintf("game: apply %s: %v", mark, err))
	}
	b[row][col] = mark
}

// Undo clears the cell at (row, col).
func (b *Board) Undo(row, col int) {
	b[row][col] = None
}

// CheckWin reports whether any row, column or diagonal is filled with mark.
func (b *Board) CheckWin(mark PlayerMark) bool {
	if mark == None {
		return false
	}

	// Check rows and columns
	for i := range Size {
		if b[i][0] == mark && b[i][1] == mark && b[i][2] == mark {
			return true
		}
		if b[0][i] == mark && b[1][i] == mark && b[2][i] == mark {
			return true
		}
	}

	// Check diagonals
	if b[0][0] == mark && b[1][1] == mark && b[2][2] == mark {
		return true
	}
	return b[0][2] == mark && b[1][1] == mark && b[2][0] == mark
}

// Result classifies the board. X is checked before O.
func (b *Board) Result() Result {
	switch {
	case b.CheckWin(PlayerX):
		return XWins
	case b.CheckWin(PlayerO):
		return OWins
	case b.IsFull():
		return Tie
	default:
		return InProgress
	}
}

// Count returns how many cells hold mark.
func (b *Board) Count(mark PlayerMark) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if b[r][c] == mark {
				n++
			}
		}
	}
	return n
}

// String renders the board one row per line, cells joined by " | " and each
// row followed by a rule.
func (b Board) String() string {
	var sb strings.Builder
	for r := range Size {
		cells := make([]string, Size)
		for c := range Size {
			cells[c] = b[r][c].Symbol()
		}
		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("-", 9))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Symbol is the printable form of a cell; empty cells print as a space.
func (m PlayerMark) Symbol() string {
	if m == None {
		return " "
	}
	return string(m)
}

// Game is one game in progress: its board and whose turn it is.
type Game struct {
	ID          string
	Board       Board
	CurrentTurn PlayerMark
}

// NewGame creates an empty game with first to move.
func NewGame(first PlayerMark) *Game {
	return &Game{
		ID:          uuid.New().String(),
		CurrentTurn: first,
	}
}

// Move plays the current side's mark at (row, col) and passes the turn.
func (g *Game) Move(row, col int) error {
	if g.Board.Result().IsOver() {
		return ErrGameFinished
	}
	if err := g.Board.CanPlay(row, col); err != nil {
		return err
	}

	g.Board.Apply(row, col, g.CurrentTurn)
	g.CurrentTurn = g.CurrentTurn.Opponent()
	return nil
}

// Result reports the state of the game's board.
func (g *Game) Result() Result {
	return g.Board.Result()
}
