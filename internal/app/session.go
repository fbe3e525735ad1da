package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/llehouerou/bookdate/internal/catalog"
	"github.com/llehouerou/bookdate/internal/errmsg"
	"github.com/llehouerou/bookdate/internal/prompt"
	"github.com/llehouerou/bookdate/internal/report"
)

// Session asks for a year, looks it up and prints the outcome. Input that is
// not a year is reported and asked again, up to MaxAttempts prompts.
type Session struct {
	Finder      catalog.Finder
	Prompter    prompt.Prompter
	Report      *report.Writer
	MaxAttempts int
	Logger      *slog.Logger
}

// Run completes one lookup. A not-found year, exhausted attempts and a
// prompt closed by the user all end normally with a nil error. Canceling
// ctx stops the session with an error wrapping ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	attempts := max(s.MaxAttempts, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		text, err := s.Prompter.Ask(ctx)
		if err == nil {
			// An interrupt that lands as the answer arrives still wins.
			err = ctx.Err()
		}
		if errors.Is(err, prompt.ErrCanceled) {
			s.Logger.Debug("prompt canceled", "attempt", attempt)
			return nil
		}
		if err != nil {
			return &Error{Op: errmsg.OpPromptRead, Err: err}
		}

		book, err := catalog.Lookup(s.Finder, text)

		var inputErr *catalog.InputError
		switch {
		case err == nil:
			s.Logger.Debug("lookup matched", "query", text, "title", book.Title)
			return s.report(s.Report.Found(text, book))

		case errors.Is(err, catalog.ErrNotFound):
			s.Logger.Debug("lookup missed", "query", text)
			return s.report(s.Report.NotFound(text))

		case errors.As(err, &inputErr):
			s.Logger.Debug("invalid year", "query", text, "attempt", attempt, "error", inputErr.Err)
			if err := s.report(s.Report.Invalid(text)); err != nil {
				return err
			}

		default:
			return &Error{Op: errmsg.OpLookup, Context: text, Err: err}
		}
	}

	s.Logger.Info("giving up after invalid input", "attempts", attempts)
	return nil
}

func (s *Session) report(err error) error {
	if err != nil {
		return &Error{Op: errmsg.OpReport, Err: err}
	}
	return nil
}
