package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = PlayerX
	o = PlayerO
	e = None
)

func TestCheckWin(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		mark  PlayerMark
		want  bool
	}{
		{name: "Empty board", board: Board{}, mark: x, want: false},
		{name: "X - first row", board: Board{{x, x, x}, {e, o, e}, {e, e, o}}, mark: x, want: true},
		{name: "X - second row", board: Board{{o, e, o}, {x, x, x}, {e, e, e}}, mark: x, want: true},
		{name: "X - third row", board: Board{{o, e, o}, {e, e, e}, {x, x, x}}, mark: x, want: true},
		{name: "O - first column", board: Board{{o, x, e}, {o, x, e}, {o, e, x}}, mark: o, want: true},
		{name: "O - second column", board: Board{{x, o, e}, {x, o, e}, {e, o, e}}, mark: o, want: true},
		{name: "O - third column", board: Board{{x, e, o}, {x, e, o}, {e, e, o}}, mark: o, want: true},
		{name: "X - main diagonal", board: Board{{x, e, e}, {e, x, e}, {e, e, x}}, mark: x, want: true},
		{name: "O - anti-diagonal", board: Board{{e, e, o}, {e, o, e}, {o, e, e}}, mark: o, want: true},
		{name: "Line belongs to the other mark", board: Board{{x, x, x}, {e, o, e}, {e, e, o}}, mark: o, want: false},
		{name: "Partial board, no line", board: Board{{x, e, e}, {e, o, e}, {e, e, e}}, mark: x, want: false},
		{name: "Full board, no line", board: Board{{x, o, x}, {x, o, o}, {o, x, x}}, mark: x, want: false},
		{name: "None never wins", board: Board{}, mark: None, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.CheckWin(tt.mark); got != tt.want {
				t.Errorf("CheckWin(%q) got = %v, want %v", tt.mark, got, tt.want)
			}
		})
	}
}

func TestResult(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Result
	}{
		{name: "Empty board is in progress", board: Board{}, want: InProgress},
		{name: "Partial board is in progress", board: Board{{x, e, e}, {e, o, e}, {e, e, e}}, want: InProgress},
		{name: "X wins with empty cells left", board: Board{{x, x, x}, {o, o, e}, {e, e, e}}, want: XWins},
		{name: "O wins with empty cells left", board: Board{{x, x, o}, {x, o, e}, {o, e, e}}, want: OWins},
		{name: "Full board without a line is a tie", board: Board{{x, o, x}, {x, o, o}, {o, x, x}}, want: Tie},
		{name: "Full board with a line is a win", board: Board{{x, x, x}, {o, o, x}, {o, x, o}}, want: XWins},
		{name: "Two lines report X first", board: Board{{x, x, x}, {o, o, o}, {e, e, e}}, want: XWins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.Result(); got != tt.want {
				t.Errorf("Result() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsBoardFull(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{name: "Empty board is not full", board: Board{}, want: false},
		{name: "One empty cell left", board: Board{{x, o, x}, {x, o, o}, {o, x, e}}, want: false},
		{name: "Full board is full", board: Board{{x, o, x}, {x, o, o}, {o, x, x}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.IsFull(); got != tt.want {
				t.Errorf("IsFull() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmptyCells(t *testing.T) {
	t.Run("Row-major order on an empty board", func(t *testing.T) {
		var b Board

		cells := b.EmptyCells()

		require.Len(t, cells, 9)
		i := 0
		for r := range Size {
			for c := range Size {
				assert.Equal(t, Move{Row: r, Col: c}, cells[i])
				i++
			}
		}
	})

	t.Run("Skips occupied cells", func(t *testing.T) {
		b := Board{{x, e, o}, {e, x, e}, {o, e, e}}

		cells := b.EmptyCells()

		assert.Equal(t, []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}, cells)
	})

	t.Run("Full board has none", func(t *testing.T) {
		b := Board{{x, o, x}, {x, o, o}, {o, x, x}}

		assert.Empty(t, b.EmptyCells())
	})
}

func TestApplyUndo(t *testing.T) {
	t.Run("Undo restores the previous board", func(t *testing.T) {
		// Given: a board with a few marks
		b := Board{{x, e, e}, {e, o, e}, {e, e, e}}
		before := b

		// When: a move is applied and then undone
		b.Apply(2, 2, x)
		require.Equal(t, x, b[2][2])
		b.Undo(2, 2)

		// Then: the board is identical to the starting board
		assert.Equal(t, before, b)
	})

	t.Run("Apply on an occupied cell panics", func(t *testing.T) {
		b := Board{{x, e, e}, {e, e, e}, {e, e, e}}

		assert.Panics(t, func() { b.Apply(0, 0, o) })
	})

	t.Run("Apply out of range panics", func(t *testing.T) {
		var b Board

		assert.Panics(t, func() { b.Apply(3, 0, x) })
	})
}

func TestCanPlay(t *testing.T) {
	b := Board{{x, e, e}, {e, e, e}, {e, e, e}}

	tests := []struct {
		name     string
		row, col int
		wantErr  error
	}{
		{name: "Empty cell", row: 1, col: 1},
		{name: "Occupied cell", row: 0, col: 0, wantErr: ErrCellOccupied},
		{name: "Row too small", row: -1, col: 0, wantErr: ErrOutOfRange},
		{name: "Row too large", row: 3, col: 0, wantErr: ErrOutOfRange},
		{name: "Column too small", row: 0, col: -1, wantErr: ErrOutOfRange},
		{name: "Column too large", row: 0, col: 3, wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.CanPlay(tt.row, tt.col)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBoardString(t *testing.T) {
	b := Board{{x, e, e}, {e, o, e}, {e, e, x}}

	want := "X |   |  \n---------\n" +
		"  | O |  \n---------\n" +
		"  |   | X\n---------\n"

	assert.Equal(t, want, b.String())
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, None, None.Opponent())
}

func TestResultWinner(t *testing.T) {
	assert.Equal(t, PlayerX, XWins.Winner())
	assert.Equal(t, PlayerO, OWins.Winner())
	assert.Equal(t, None, Tie.Winner())
	assert.Equal(t, None, InProgress.Winner())
	assert.False(t, InProgress.IsOver())
	assert.True(t, Tie.IsOver())
}

func TestGame_Move(t *testing.T) {
	t.Run("Move places the current mark and passes the turn", func(t *testing.T) {
		// Given: a new game that O opens
		g := NewGame(PlayerO)
		require.NotEmpty(t, g.ID)

		// When: O plays the center
		err := g.Move(1, 1)

		// Then: the mark is on the board and X is next
		require.NoError(t, err)
		assert.Equal(t, PlayerO, g.Board[1][1])
		assert.Equal(t, PlayerX, g.CurrentTurn)
	})

	t.Run("Occupied cell leaves the game unchanged", func(t *testing.T) {
		g := NewGame(PlayerX)
		require.NoError(t, g.Move(0, 0))
		before := *g

		err := g.Move(0, 0)

		assert.ErrorIs(t, err, ErrCellOccupied)
		assert.Equal(t, before, *g)
	})

	t.Run("No moves after the game is won", func(t *testing.T) {
		g := NewGame(PlayerX)
		g.Board = Board{{x, x, x}, {o, o, e}, {e, e, e}}
		g.CurrentTurn = PlayerO

		err := g.Move(1, 2)

		assert.ErrorIs(t, err, ErrGameFinished)
		assert.Equal(t, XWins, g.Result())
	})
}

func TestRandomlyChooseFirstPlayer(t *testing.T) {
	// Not a statistical test, only checks that both marks show up
	seenX := false
	seenO := false
	for i := 0; i < 100; i++ {
		player := RandomlyChooseFirstPlayer()
		if player != PlayerX && player != PlayerO {
			t.Errorf("RandomlyChooseFirstPlayer() returned invalid player: %v", player)
		}
		if player == PlayerX {
			seenX = true
		}
		if player == PlayerO {
			seenO = true
		}
	}

	if !seenX || !seenO {
		t.Errorf("RandomlyChooseFirstPlayer() did not return both marks over 100 runs. Seen X: %v, Seen O: %v", seenX, seenO)
	}
}
