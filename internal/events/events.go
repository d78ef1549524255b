package events

//go:generate mockgen -source=events.go -destination=mocks/mock_listener.go -package=mocks

import "ctchen222/minimax-tic-tac-toe/internal/game"

// Listener receives notifications from a game loop and a match.
// Implementations render them; they never change game state.
type Listener interface {
	GameStarted(e GameStarted)
	TurnStarted(e TurnStarted)
	MoveMade(e MoveMade)
	GameOver(e GameOver)
	ScoreUpdated(e ScoreUpdated)
	MatchOver(e MatchOver)
}

// GameStarted is published once per game, before the first turn.
type GameStarted struct {
	GameID string
	First  game.PlayerMark
}

// TurnStarted is published before a player is asked for a move.
type TurnStarted struct {
	GameID     string
	Board      game.Board
	Mark       game.PlayerMark
	PlayerName string
	IsBot      bool
}

// MoveMade is published after a move has been applied.
type MoveMade struct {
	GameID     string
	Mark       game.PlayerMark
	Move       game.Move
	PlayerName string
	IsBot      bool
}

// GameOver is published when a game reaches a win or a tie.
type GameOver struct {
	GameID string
	Board  game.Board
	Result game.Result
	// WinnerName and WinnerIsBot are empty for a tie.
	WinnerName  string
	WinnerIsBot bool
}

// ScoreUpdated is published after every game of a match.
type ScoreUpdated struct {
	MatchID string
	XWins   int
	OWins   int
	// OIsBot is true when O is the computer.
	OIsBot bool
}

// MatchOver is published once a side has won enough games.
type MatchOver struct {
	MatchID    string
	Winner     game.PlayerMark
	WinnerName string
	IsBot      bool
}

// Nop ignores every event.
type Nop struct{}

func (Nop) GameStarted(GameStarted)   {}
func (Nop) TurnStarted(TurnStarted)   {}
func (Nop) MoveMade(MoveMade)         {}
func (Nop) GameOver(GameOver)         {}
func (Nop) ScoreUpdated(ScoreUpdated) {}
func (Nop) MatchOver(MatchOver)       {}
