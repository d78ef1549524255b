package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ctchen222/minimax-tic-tac-toe/internal/game"
	"ctchen222/minimax-tic-tac-toe/internal/player"
	"ctchen222/minimax-tic-tac-toe/internal/validator"
)

// HumanName is how a console player is addressed.
const HumanName = "Player"

const (
	rowPrompt      = "Enter row (0, 1, 2): "
	colPrompt      = "Enter column (0, 1, 2): "
	invalidMessage = "Invalid move. Try again."
)

// cellInput is what a human typed for one move.
type cellInput struct {
	Row int `validate:"min=0,max=2"`
	Col int `validate:"min=0,max=2"`
}

// Human reads moves from the console.
type Human struct {
	mark  game.PlayerMark
	input *Input
	out   io.Writer
}

func NewHuman(mark game.PlayerMark, input *Input, out io.Writer) *Human {
	return &Human{
		mark:  mark,
		input: input,
		out:   out,
	}
}

func (h *Human) Name() string          { return HumanName }
func (h *Human) Mark() game.PlayerMark { return h.mark }
func (h *Human) IsBot() bool           { return false }

// NextMove asks for a row and a column. When they do not name an empty cell
// it prints a notice and returns player.ErrRetryTurn so the turn is replayed.
func (h *Human) NextMove(ctx context.Context, board game.Board) (game.Move, error) {
	row, err := h.ask(ctx, rowPrompt)
	if err != nil {
		return game.Move{}, err
	}
	col, err := h.ask(ctx, colPrompt)
	if err != nil {
		return game.Move{}, err
	}

	in, ok := parseCell(row, col)
	if !ok || validator.GetValidator().Struct(in) != nil || board.CanPlay(in.Row, in.Col) != nil {
		fmt.Fprintln(h.out, invalidMessage)
		return game.Move{}, fmt.Errorf("%w: row %q, column %q", player.ErrRetryTurn, row, col)
	}
	return game.Move{Row: in.Row, Col: in.Col}, nil
}

// ask prints prompt and returns the next line of input.
func (h *Human) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(h.out, prompt)
	return h.input.ReadLine(ctx)
}

func parseCell(row, col string) (cellInput, bool) {
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return cellInput{}, false
	}
	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return cellInput{}, false
	}
	return cellInput{Row: r, Col: c}, true
}
