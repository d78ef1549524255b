package console

import (
	"fmt"
	"io"
	"strings"

	"ctchen222/minimax-tic-tac-toe/internal/events"
	"ctchen222/minimax-tic-tac-toe/internal/game"

	"github.com/muesli/termenv"
)

const (
	rowSeparator  = "---------"
	computerLabel = "Computer"
)

// Renderer prints game and match events as the console game's transcript.
type Renderer struct {
	out *termenv.Output
}

var _ events.Listener = (*Renderer)(nil)

// NewRenderer writes to w. Without colour, marks are printed as plain text.
func NewRenderer(w io.Writer, color bool) *Renderer {
	var options []termenv.OutputOption
	if !color {
		options = append(options, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{out: termenv.NewOutput(w, options...)}
}

func (r *Renderer) mark(m game.PlayerMark) string {
	switch m {
	case game.PlayerX:
		return r.out.String(m.Symbol()).Foreground(r.out.Color("1")).Bold().String()
	case game.PlayerO:
		return r.out.String(m.Symbol()).Foreground(r.out.Color("4")).Bold().String()
	default:
		return m.Symbol()
	}
}

func (r *Renderer) printBoard(b game.Board) {
	for _, row := range b {
		cells := make([]string, len(row))
		for i, m := range row {
			cells[i] = r.mark(m)
		}
		fmt.Fprintln(r.out, strings.Join(cells, " | "))
		fmt.Fprintln(r.out, rowSeparator)
	}
}

func (r *Renderer) GameStarted(events.GameStarted) {}

func (r *Renderer) TurnStarted(e events.TurnStarted) {
	r.printBoard(e.Board)
	fmt.Fprintf(r.out, "%s %s's turn.\n", e.PlayerName, r.mark(e.Mark))
}

func (r *Renderer) MoveMade(e events.MoveMade) {
	if e.IsBot {
		fmt.Fprintf(r.out, "%s chooses row %d, column %d\n", e.PlayerName, e.Move.Row, e.Move.Col)
	}
}

func (r *Renderer) GameOver(e events.GameOver) {
	r.printBoard(e.Board)
	winner := e.Result.Winner()
	switch {
	case winner == game.None:
		fmt.Fprintln(r.out, "It's a tie!")
	case e.WinnerIsBot:
		fmt.Fprintf(r.out, "%s wins!\n", e.WinnerName)
	default:
		fmt.Fprintf(r.out, "%s %s wins!\n", e.WinnerName, r.mark(winner))
	}
}

func (r *Renderer) ScoreUpdated(e events.ScoreUpdated) {
	opponent := HumanName + " " + r.mark(game.PlayerO)
	if e.OIsBot {
		opponent = computerLabel
	}
	fmt.Fprintf(r.out, "Score: %s %s %d - %d %s\n", HumanName, r.mark(game.PlayerX), e.XWins, e.OWins, opponent)
}

func (r *Renderer) MatchOver(e events.MatchOver) {
	if e.IsBot {
		fmt.Fprintf(r.out, "%s wins!\n", e.WinnerName)
		return
	}
	fmt.Fprintf(r.out, "%s %s wins!\n", e.WinnerName, r.mark(e.Winner))
}
