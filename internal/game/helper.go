package game

import "math/rand/v2"

// Result is the state of a board: still being played, won by one side, or tied.
type Result int

const (
	InProgress Result = iota
	XWins
	OWins
	Tie
)

func (r Result) String() string {
	switch r {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Tie:
		return "tie"
	default:
		return "in_progress"
	}
}

// IsOver reports whether no further moves can be made.
func (r Result) IsOver() bool {
	return r != InProgress
}

// Winner returns the winning mark, or None for a tie or a game in progress.
func (r Result) Winner() PlayerMark {
	switch r {
	case XWins:
		return PlayerX
	case OWins:
		return PlayerO
	default:
		return None
	}
}

// RandomlyChooseFirstPlayer picks the side that opens a game.
func RandomlyChooseFirstPlayer() PlayerMark {
	if rand.IntN(2) == 0 {
		return PlayerX
	}
	return PlayerO
}
