// Package report prints lookup outcomes.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/llehouerou/bookdate/internal/catalog"
)

var (
	accentColor = lipgloss.Color("39") // cyan/blue
	mutedColor  = lipgloss.Color("245")
	warnColor   = lipgloss.Color("214")
)

// Writer renders results to an output stream. Styling follows the stream:
// a terminal gets bold labels and colors, anything else gets plain text.
type Writer struct {
	w       io.Writer
	label   lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

// New returns a Writer whose styling adapts to w.
func New(w io.Writer) *Writer {
	return newWriter(w, lipgloss.NewRenderer(w))
}

// NewPlain returns a Writer that never emits escape sequences.
func NewPlain(w io.Writer) *Writer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.Ascii)
	return newWriter(w, r)
}

func newWriter(w io.Writer, r *lipgloss.Renderer) *Writer {
	return &Writer{
		w:       w,
		label:   r.NewStyle().Bold(true).Foreground(accentColor),
		muted:   r.NewStyle().Foreground(mutedColor),
		warning: r.NewStyle().Foreground(warnColor),
	}
}

// Found prints the matching book under a header echoing the query as typed.
func (p *Writer) Found(query string, b catalog.Book) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Book found for the date %s:\n", query)
	fmt.Fprintf(&sb, "%s %s\n", p.label.Render("Title:"), b.Title)
	fmt.Fprintf(&sb, "%s %s\n", p.label.Render("Author:"), b.Author)
	fmt.Fprintf(&sb, "%s %s\n", p.label.Render("Date:"), b.DateString())
	_, err := io.WriteString(p.w, sb.String())
	return err
}

// NotFound prints the negative result for a well-formed year.
func (p *Writer) NotFound(query string) error {
	_, err := fmt.Fprintln(p.w, p.muted.Render("No match found for the date "+query))
	return err
}

// Invalid tells the user the text was not a year.
func (p *Writer) Invalid(query string) error {
	msg := fmt.Sprintf("Invalid date %q: expected a year (YYYY)", query)
	_, err := fmt.Fprintln(p.w, p.warning.Render(msg))
	return err
}
