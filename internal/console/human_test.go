package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"ctchen222/minimax-tic-tac-toe/internal/game"
	"ctchen222/minimax-tic-tac-toe/internal/player"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHuman(input string) (*Human, *bytes.Buffer) {
	var out bytes.Buffer
	return NewHuman(game.PlayerX, NewInput(strings.NewReader(input)), &out), &out
}

func TestHuman_Identity(t *testing.T) {
	h, _ := newTestHuman("")

	assert.Equal(t, HumanName, h.Name())
	assert.Equal(t, game.PlayerX, h.Mark())
	assert.False(t, h.IsBot())
}

func TestHuman_NextMove(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  game.Move
	}{
		{name: "Row and column", input: "1\n2\n", want: game.Move{Row: 1, Col: 2}},
		{name: "Surrounding spaces", input: " 2 \n\t0\n", want: game.Move{Row: 2, Col: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, out := newTestHuman(tt.input)

			got, err := h.NextMove(context.Background(), game.Board{})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, rowPrompt+colPrompt, out.String())
		})
	}
}

func TestHuman_NextMove_InvalidInputRetriesTurn(t *testing.T) {
	occupied := game.Board{{game.PlayerO, game.None, game.None}}

	tests := []struct {
		name  string
		board game.Board
		input string
	}{
		{name: "Row out of range", input: "3\n0\n"},
		{name: "Negative column", input: "0\n-1\n"},
		{name: "Not a number", input: "a\nb\n"},
		{name: "Empty lines", input: "\n\n"},
		{name: "Occupied cell", board: occupied, input: "0\n0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, out := newTestHuman(tt.input)
			before := tt.board

			_, err := h.NextMove(context.Background(), tt.board)

			assert.ErrorIs(t, err, player.ErrRetryTurn)
			assert.Equal(t, before, tt.board)
			assert.Equal(t, rowPrompt+colPrompt+invalidMessage+"\n", out.String())
		})
	}
}

func TestHuman_NextMove_AfterRetryReadsNextLines(t *testing.T) {
	h, _ := newTestHuman("9\n9\n1\n1\n")

	_, err := h.NextMove(context.Background(), game.Board{})
	require.ErrorIs(t, err, player.ErrRetryTurn)

	got, err := h.NextMove(context.Background(), game.Board{})
	require.NoError(t, err)
	assert.Equal(t, game.Move{Row: 1, Col: 1}, got)
}

func TestHuman_NextMove_InputClosed(t *testing.T) {
	for _, input := range []string{"", "1\n"} {
		h, _ := newTestHuman(input)

		_, err := h.NextMove(context.Background(), game.Board{})

		assert.ErrorIs(t, err, ErrInputClosed, "input %q", input)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestHuman_NextMove_ReadError(t *testing.T) {
	var out bytes.Buffer
	h := NewHuman(game.PlayerX, NewInput(failingReader{}), &out)

	_, err := h.NextMove(context.Background(), game.Board{})

	assert.EqualError(t, err, "read move: broken pipe")
}

func TestHuman_NextMove_CancelledContext(t *testing.T) {
	h, out := newTestHuman("1\n1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.NextMove(ctx, game.Board{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestHuman_NextMove_CancelWhileWaitingForInput(t *testing.T) {
	// Given: a terminal that never sends a line
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	var out bytes.Buffer
	h := NewHuman(game.PlayerX, NewInput(pr), &out)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := h.NextMove(ctx, game.Board{})
		done <- err
	}()

	// When: the context is cancelled while the row prompt is waiting
	time.Sleep(20 * time.Millisecond)
	cancel()

	// Then: NextMove gives up right away
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("NextMove still blocked after the context was cancelled")
	}
}

func TestHumans_ShareInput(t *testing.T) {
	var out bytes.Buffer
	input := NewInput(strings.NewReader("0\n0\n1\n1\n"))
	px := NewHuman(game.PlayerX, input, &out)
	po := NewHuman(game.PlayerO, input, &out)

	mx, err := px.NextMove(context.Background(), game.Board{})
	require.NoError(t, err)
	mo, err := po.NextMove(context.Background(), game.Board{})
	require.NoError(t, err)

	assert.Equal(t, game.Move{Row: 0, Col: 0}, mx)
	assert.Equal(t, game.Move{Row: 1, Col: 1}, mo)
}
