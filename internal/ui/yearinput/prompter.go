package yearinput

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/bookdate/internal/prompt"
)

// Prompter runs the year input as a short-lived terminal program.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// Verify Prompter implements prompt.Prompter at compile time.
var _ prompt.Prompter = (*Prompter)(nil)

// NewPrompter creates a terminal prompter on the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Ask implements prompt.Prompter.
func (p *Prompter) Ask(ctx context.Context) (string, error) {
	prog := tea.NewProgram(New(),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := prog.Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("unexpected model %T", final)
	}
	return m.Result()
}
