package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("1949\n"), &out)

	got, err := p.Ask(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1949", got)
	assert.Equal(t, "Enter a date (YYYY): ", out.String())
}

func TestLine_AskRepeatedly(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("abc\r\n1949"), &out)

	first, err := p.Ask(context.Background())
	require.NoError(t, err)
	second, err := p.Ask(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "abc", first)
	assert.Equal(t, "1949", second, "last line without newline is kept")
	assert.Equal(t, strings.Repeat(Text, 2), out.String())
}

func TestLine_EOF(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader(""), &out)

	_, err := p.Ask(context.Background())

	assert.ErrorIs(t, err, ErrCanceled)
	assert.Equal(t, Text+"\n", out.String())
}

func TestLine_EmptyLineIsAnAnswer(t *testing.T) {
	p := NewLine(strings.NewReader("\n"), &bytes.Buffer{})

	got, err := p.Ask(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLine_CanceledContext(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("1949\n"), &out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Ask(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestLine_ReadError(t *testing.T) {
	p := NewLine(failingReader{}, &bytes.Buffer{})

	_, err := p.Ask(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCanceled)
}

func TestLine_CancelWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	p := NewLine(pr, &out)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := p.Ask(ctx)
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Ask still blocked after cancel")
	}
}

func TestLine_AskAfterCancelKeepsInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	p := NewLine(pr, &bytes.Buffer{})

	// The read is already waiting on the pipe when the context goes away.
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err := p.Ask(ctx)
	require.ErrorIs(t, err, context.Canceled)

	go func() { _, _ = io.WriteString(pw, "1949\n") }()

	got, err := p.Ask(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1949", got)
}
