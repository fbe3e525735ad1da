// Package prompt asks the user for the year to look up.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Text is shown before reading the year.
const Text = "Enter a date (YYYY): "

// ErrCanceled is returned when the user closes the input without answering.
var ErrCanceled = errors.New("prompt canceled")

// Prompter asks for one answer.
type Prompter interface {
	Ask(ctx context.Context) (string, error)
}

// Line prompts on a plain stream and reads one line per question.
type Line struct {
	in  *bufio.Reader
	out io.Writer

	// pending carries a read that outlived a canceled Ask; the next Ask
	// picks it up instead of starting a second reader.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// Verify Line implements Prompter at compile time.
var _ Prompter = (*Line)(nil)

// NewLine creates a line prompter. The reader is buffered once so that
// repeated questions do not lose input.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// Ask writes the prompt and returns the next line without its line ending.
// A final line without a newline is still returned; end of input with
// nothing typed yields ErrCanceled. Canceling ctx abandons the wait and
// returns ctx.Err().
func (l *Line) Ask(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(l.out, Text); err != nil {
		return "", err
	}

	if l.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := l.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		l.pending = ch
	}

	var res lineResult
	select {
	case <-ctx.Done():
		fmt.Fprintln(l.out)
		return "", ctx.Err()
	case res = <-l.pending:
		l.pending = nil
	}

	if res.err != nil {
		if !errors.Is(res.err, io.EOF) {
			return "", res.err
		}
		if res.line == "" {
			// Keep the shell prompt off the question line.
			fmt.Fprintln(l.out)
			return "", ErrCanceled
		}
	}
	return strings.TrimRight(res.line, "\r\n"), nil
}
