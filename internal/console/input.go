package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

var ErrInputClosed = errors.New("console input closed")

type line struct {
	text string
	err  error
}

// Input hands out lines of r one at a time. Reading happens on a background
// goroutine, so a waiting caller returns as soon as its context is done.
// Players sharing a terminal must share one Input.
type Input struct {
	scanner *bufio.Scanner
	lines   chan line
	start   sync.Once
}

func NewInput(r io.Reader) *Input {
	return &Input{
		scanner: bufio.NewScanner(r),
		lines:   make(chan line),
	}
}

// ReadLine blocks until a line arrives, the input ends, or ctx is done.
func (in *Input) ReadLine(ctx context.Context) (string, error) {
	in.start.Do(func() { go in.read() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-in.lines:
		if !ok {
			return "", ErrInputClosed
		}
		return l.text, l.err
	}
}

func (in *Input) read() {
	defer close(in.lines)
	for in.scanner.Scan() {
		in.lines <- line{text: in.scanner.Text()}
	}
	if err := in.scanner.Err(); err != nil {
		in.lines <- line{err: fmt.Errorf("read move: %w", err)}
	}
}
